package catalog

import (
	"maps"
	"slices"
	"strings"
)

// Catalog is the in-memory line-up plus the favorites set.
type Catalog struct {
	channels  []Channel
	countries []Country
	favorites map[string]bool
}

// New builds a catalog. Countries missing from the list but referenced by a
// channel are appended in order of first appearance.
func New(channels []Channel, countries []Country) *Catalog {
	c := &Catalog{
		channels:  slices.Clone(channels),
		countries: slices.Clone(countries),
		favorites: make(map[string]bool),
	}
	known := make(map[string]bool, len(countries))
	for _, co := range countries {
		known[strings.ToLower(co.Name)] = true
	}
	for _, ch := range channels {
		if ch.Favorite {
			c.favorites[ch.ID] = true
		}
		if ch.Country == "" || known[strings.ToLower(ch.Country)] {
			continue
		}
		known[strings.ToLower(ch.Country)] = true
		c.countries = append(c.countries, Country{
			ID:   slug(ch.Country),
			Name: ch.Country,
			Code: code(ch.Country),
		})
	}
	return c
}

// Len returns the number of channels.
func (c *Catalog) Len() int {
	return len(c.channels)
}

// Channels returns every channel in line-up order.
func (c *Catalog) Channels() []Channel {
	return slices.Clone(c.channels)
}

// Countries returns the guide filter entries, starting with AllCountries.
func (c *Catalog) Countries() []Country {
	out := make([]Country, 0, len(c.countries)+1)
	out = append(out, Country{ID: "all", Name: AllCountries, Code: "**"})
	return append(out, c.countries...)
}

// Categories returns the distinct channel categories in line-up order.
func (c *Catalog) Categories() []string {
	var out []string
	for _, ch := range c.channels {
		if ch.Category != "" && !slices.Contains(out, ch.Category) {
			out = append(out, ch.Category)
		}
	}
	return out
}

// CountryCount returns how many channels a country entry holds.
func (c *Catalog) CountryCount(name string) int {
	return len(c.Filter(Filter{Country: name}))
}

// Filter returns the channels matching f in line-up order. A channel's
// display number is its 1-based position in this result.
func (c *Catalog) Filter(f Filter) []Channel {
	out := make([]Channel, 0, len(c.channels))
	for _, ch := range c.channels {
		if f.matches(ch, c.favorites[ch.ID]) {
			ch.Favorite = c.favorites[ch.ID]
			out = append(out, ch)
		}
	}
	return out
}

// Featured returns up to n live TV channels, best rated first. Ties keep
// line-up order.
func (c *Catalog) Featured(n int) []Channel {
	live := c.Filter(Filter{Kind: KindPtr(KindTV)})
	live = slices.DeleteFunc(live, func(ch Channel) bool { return !ch.Live })
	slices.SortStableFunc(live, func(a, b Channel) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	return live[:min(n, len(live))]
}

// ByID looks a channel up.
func (c *Catalog) ByID(id string) (Channel, error) {
	for _, ch := range c.channels {
		if ch.ID == id {
			ch.Favorite = c.favorites[ch.ID]
			return ch, nil
		}
	}
	return Channel{}, ErrNotFound
}

// IsFavorite reports whether the channel is starred.
func (c *Catalog) IsFavorite(id string) bool {
	return c.favorites[id]
}

// SetFavorites replaces the favorites set, ignoring unknown ids.
func (c *Catalog) SetFavorites(ids []string) {
	c.favorites = make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, err := c.ByID(id); err == nil {
			c.favorites[id] = true
		}
	}
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (c *Catalog) ToggleFavorite(id string) (bool, error) {
	if _, err := c.ByID(id); err != nil {
		return false, err
	}
	if c.favorites[id] {
		delete(c.favorites, id)
		return false, nil
	}
	c.favorites[id] = true
	return true, nil
}

// Favorites returns the starred ids, sorted.
func (c *Catalog) Favorites() []string {
	return slices.Sorted(maps.Keys(c.favorites))
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

func code(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) <= 2 {
		return s
	}
	if f := strings.Fields(s); len(f) > 1 {
		return f[0][:1] + f[1][:1]
	}
	return s[:2]
}
