package catalog

import "strings"

// Filter narrows the line-up. Zero values match everything.
type Filter struct {
	Country       string
	Category      string
	Kind          *Kind
	FavoritesOnly bool
	Query         string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return (f.Country == "" || f.Country == AllCountries) &&
		f.Category == "" && f.Kind == nil && !f.FavoritesOnly &&
		strings.TrimSpace(f.Query) == ""
}

// Title describes the filtered collection, e.g. "Sports Channels".
func (f Filter) Title() string {
	switch {
	case f.FavoritesOnly:
		return "Favorite Channels"
	case f.Kind != nil && *f.Kind == KindRadio:
		return "Radio Stations"
	case f.Category != "":
		return f.Category + " Channels"
	default:
		return "All Channels"
	}
}

func (f Filter) matches(ch Channel, favorite bool) bool {
	if f.Country != "" && f.Country != AllCountries && !strings.EqualFold(ch.Country, f.Country) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(ch.Category, f.Category) {
		return false
	}
	if f.Kind != nil && ch.Kind != *f.Kind {
		return false
	}
	if f.FavoritesOnly && !favorite {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(ch.Name), q) ||
		strings.Contains(strings.ToLower(ch.Description), q) ||
		strings.Contains(strings.ToLower(ch.Category), q)
}

// KindPtr returns a pointer to k for use in a Filter.
func KindPtr(k Kind) *Kind {
	return &k
}
