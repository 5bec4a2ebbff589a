package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/sombox/internal/db"
)

// NavigationState is the snapshot restored after the loading screen.
// Targets use the "zone-index" form.
type NavigationState struct {
	View          string // "home", "guide", "grid" or "player"
	FocusTarget   string
	OriginView    string // view the player was opened from
	OriginTarget  string
	GuideCountry  string
	GuideCategory string
	FavoritesOnly bool
	GridCard      string // home card the grid was opened with
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT view, focus_target, origin_view, origin_target, guide_country,
		       guide_category, favorites_only, grid_card
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var focusTarget, originView, originTarget, guideCountry sql.NullString
	var guideCategory, gridCard sql.NullString

	err := row.Scan(&state.View, &focusTarget, &originView, &originTarget, &guideCountry,
		&guideCategory, &state.FavoritesOnly, &gridCard)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.FocusTarget = dbutil.StringValue(focusTarget)
	state.OriginView = dbutil.StringValue(originView)
	state.OriginTarget = dbutil.StringValue(originTarget)
	state.GuideCountry = dbutil.StringValue(guideCountry)
	state.GuideCategory = dbutil.StringValue(guideCategory)
	state.GridCard = dbutil.StringValue(gridCard)

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, view, focus_target, origin_view, origin_target, guide_country,
		                              guide_category, favorites_only, grid_card)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			view = excluded.view,
			focus_target = excluded.focus_target,
			origin_view = excluded.origin_view,
			origin_target = excluded.origin_target,
			guide_country = excluded.guide_country,
			guide_category = excluded.guide_category,
			favorites_only = excluded.favorites_only,
			grid_card = excluded.grid_card
	`, state.View, dbutil.NullString(state.FocusTarget), dbutil.NullString(state.OriginView),
		dbutil.NullString(state.OriginTarget), dbutil.NullString(state.GuideCountry),
		dbutil.NullString(state.GuideCategory), state.FavoritesOnly, dbutil.NullString(state.GridCard))

	return err
}
