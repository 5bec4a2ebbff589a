package catalog

// Destination is the screen a home card opens.
type Destination int

const (
	ToGuide Destination = iota
	ToGrid
)

// Card is one entry of the home menu.
type Card struct {
	ID       string
	Title    string
	Subtitle string
	Icon     string
	Dest     Destination
	Filter   Filter
}

// HomeRows is the number of cards on each row of the home menu.
var HomeRows = []int{4, 5}

// HomeCards returns the home menu in display order.
func HomeCards() []Card {
	return []Card{
		{ID: "live-tv", Title: "Live TV", Subtitle: "Channel guide", Icon: "▶", Dest: ToGuide},
		{ID: "all", Title: "All Channels", Subtitle: "Browse everything", Icon: "▦", Dest: ToGrid},
		{ID: "movies", Title: "Movies", Subtitle: "Films & series", Icon: "◎", Dest: ToGrid, Filter: Filter{Category: "Movies"}},
		{ID: "sports", Title: "Sports", Subtitle: "Live games", Icon: "◉", Dest: ToGrid, Filter: Filter{Category: "Sports"}},
		{ID: "news", Title: "News", Subtitle: "Around the clock", Icon: "◆", Dest: ToGrid, Filter: Filter{Category: "News"}},
		{ID: "entertainment", Title: "Entertainment", Subtitle: "Shows & comedy", Icon: "★", Dest: ToGrid, Filter: Filter{Category: "Entertainment"}},
		{ID: "documentary", Title: "Documentary", Subtitle: "Nature & science", Icon: "◍", Dest: ToGrid, Filter: Filter{Category: "Documentary"}},
		{ID: "radio", Title: "Radios", Subtitle: "Stations", Icon: "♪", Dest: ToGrid, Filter: Filter{Kind: KindPtr(KindRadio)}},
		{ID: "favorites", Title: "Favorites", Subtitle: "Your channels", Icon: "♥", Dest: ToGrid, Filter: Filter{FavoritesOnly: true}},
	}
}
