// Package app is the root Bubble Tea model. It routes input between the
// screens, owns the timers and talks to the player and the state store.
package app

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/app/navctl"
	"github.com/llehouerou/sombox/internal/app/popupctl"
	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/config"
	"github.com/llehouerou/sombox/internal/dial"
	"github.com/llehouerou/sombox/internal/errmsg"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/keymap"
	"github.com/llehouerou/sombox/internal/mpris"
	"github.com/llehouerou/sombox/internal/notify"
	"github.com/llehouerou/sombox/internal/player"
	"github.com/llehouerou/sombox/internal/state"
	"github.com/llehouerou/sombox/internal/ui/grid"
	"github.com/llehouerou/sombox/internal/ui/guide"
	"github.com/llehouerou/sombox/internal/ui/home"
	"github.com/llehouerou/sombox/internal/ui/loading"
	"github.com/llehouerou/sombox/internal/ui/playerbar"
)

// Deps are the collaborators the model drives.
type Deps struct {
	Catalog  *catalog.Catalog
	Player   player.Interface
	State    state.Interface
	Notifier notify.Notifier  // nil disables notifications
	Remote   *mpris.Remote    // nil when MPRIS is off
	Stderr   <-chan string    // captured C-library output, may be nil
	Now      func() time.Time // nil uses time.Now
}

// Model is the application state.
type Model struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	nav     *navctl.Manager
	loading loading.Model
	popups  *popupctl.Manager
	dial    *dial.Buffer
	keys    *keymap.Resolver

	player   player.Interface
	state    state.Interface
	notifier *notify.Replacer
	remote   *mpris.Remote
	stderr   <-chan string

	// playback: the channel on screen and the collection it was opened from
	channel  *catalog.Channel
	zap      []catalog.Channel
	zapIndex int
	playGen  uint64

	now    func() time.Time
	clock  time.Time
	width  int
	height int
}

// New builds the model on the loading screen. Favorites and volume are read
// from the state store; failures there are shown once the UI is up.
func New(cfg *config.Config, deps Deps) Model {
	if cfg == nil {
		cfg = &config.Config{}
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	cat := deps.Catalog

	g := guide.New(cat, cfg.InitialCountry())
	g.SetDebounce(cfg.ScrollDebounce())
	gr := grid.New(cat, cfg.GetGridColumns())
	gr.SetDebounce(cfg.ScrollDebounce())
	h := home.New(catalog.HomeCards(), catalog.HomeRows)

	m := Model{
		cfg:      cfg,
		catalog:  cat,
		nav:      navctl.New(h, g, gr, playerbar.New()),
		loading:  loading.New(),
		popups:   popupctl.New(),
		dial:     dial.New(cfg.DialTimeout()),
		keys:     keymap.NewResolver(keymap.Bindings),
		player:   deps.Player,
		state:    deps.State,
		notifier: notify.NewReplacer(deps.Notifier),
		remote:   deps.Remote,
		stderr:   deps.Stderr,
		now:      now,
		clock:    now(),
	}

	if err := m.loadFavorites(); err != nil {
		m.popups.ShowError(errmsg.Format(errmsg.OpFavoritesLoad, err))
	}
	m.restoreVolume()
	m.refreshHome()

	nav := m.nav
	st := m.state
	nav.Focus().Subscribe(func(c focus.Change) {
		if c.View == focus.ViewLoading {
			return
		}
		st.SaveNavigation(nav.Capture())
	})
	return m
}

// Init starts the splash animation, the clock and the stderr listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loading.Init(),
		clockTick(m.now()),
		m.listenStderr(),
	)
}

// ActiveView returns the active view.
func (m Model) ActiveView() focus.View {
	return m.nav.View()
}

// Focus returns the focus target of the active view.
func (m Model) Focus() focus.Target {
	return m.nav.Current()
}

// Channel returns the channel on the player screen, if any.
func (m Model) Channel() *catalog.Channel {
	return m.channel
}

func (m *Model) showError(op errmsg.Op, err error) {
	log.Printf("%s: %v", op, err)
	m.popups.ShowError(errmsg.Format(op, err))
}
