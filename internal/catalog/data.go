package catalog

// DefaultCountries is the built-in country list of the guide.
var DefaultCountries = []Country{
	{ID: "us", Name: "United States", Code: "US"},
	{ID: "ukraine", Name: "Ukraine", Code: "UA"},
	{ID: "brazil", Name: "Brazil", Code: "BR"},
	{ID: "germany", Name: "Germany", Code: "DE"},
	{ID: "france", Name: "France", Code: "FR"},
	{ID: "portugal", Name: "Portugal", Code: "PT"},
	{ID: "south-africa", Name: "South Africa", Code: "ZA"},
	{ID: "china", Name: "China", Code: "CN"},
}

// DefaultChannels is the built-in line-up.
var DefaultChannels = []Channel{
	{
		ID: "1", Name: "Premium Movies HD", Category: "Movies", Country: "United States",
		StreamURL:   "https://example.com/stream1",
		Description: "Latest blockbuster movies in crystal clear HD",
		Rating:      4.8, Live: true, Viewers: 12847, Views: 4_300_000,
		Badges: []string{"HD", "EPG"},
	},
	{
		ID: "2", Name: "Sports Central", Category: "Sports", Country: "United States",
		StreamURL:   "https://example.com/stream2",
		Description: "Live sports coverage 24/7",
		Rating:      4.6, Live: true, Viewers: 8934, Views: 3_500_000,
		Badges: []string{"HD", "LIVE"},
	},
	{
		ID: "3", Name: "Global News Network", Category: "News", Country: "United States",
		StreamURL:   "https://example.com/stream3",
		Description: "Breaking news and current affairs",
		Rating:      4.4, Live: true, Viewers: 5632, Views: 2_100_000,
		Badges: []string{"HD", "EPG", "LIVE"},
	},
	{
		ID: "4", Name: "Comedy Gold", Category: "Entertainment", Country: "United States",
		StreamURL:   "https://example.com/stream4",
		Description: "Non-stop comedy shows and stand-up",
		Rating:      4.7, Live: true, Viewers: 3421, Views: 1_700_000,
		Badges: []string{"HD", "EPG"},
	},
	{
		ID: "5", Name: "Documentary World", Category: "Documentary", Country: "Germany",
		StreamURL:   "https://example.com/stream5",
		Description: "Fascinating documentaries from around the globe",
		Rating:      4.9, Live: false, Viewers: 2156, Views: 920_000,
		Badges:   []string{"4K", "EPG"},
		Favorite: true,
	},
	{
		ID: "6", Name: "Tech Today", Category: "Technology", Country: "Germany",
		StreamURL:   "https://example.com/stream6",
		Description: "Latest tech news, reviews, and innovations",
		Rating:      4.5, Live: true, Viewers: 7843, Views: 1_100_000,
		Badges: []string{"HD"},
	},
	{
		ID: "7", Name: "Nat Geo Wild HD", Category: "Documentary", Country: "United States",
		StreamURL:   "https://example.com/stream7",
		Description: "Wildlife, nature and the animal kingdom",
		Rating:      4.8, Live: true, Viewers: 9210, Views: 8_200_000,
		Badges:   []string{"HD", "EPG"},
		Favorite: true,
	},
	{
		ID: "8", Name: "Disney Channel", Category: "Entertainment", Country: "United States",
		StreamURL:   "https://example.com/stream8",
		Description: "Animated series and family movies",
		Rating:      4.5, Live: true, Viewers: 6120, Views: 850_000,
		Badges: []string{"4K", "EPG", "S"},
	},
	{
		ID: "9", Name: "HBO Family", Category: "Movies", Country: "United States",
		StreamURL:   "https://example.com/stream9",
		Description: "Movies and series for the whole family",
		Rating:      4.6, Live: true, Viewers: 4388, Views: 1_700_000,
		Badges: []string{"HD", "EPG"},
	},
	{
		ID: "10", Name: "CNN International", Category: "News", Country: "United States",
		StreamURL:   "https://example.com/stream10",
		Description: "World news around the clock",
		Rating:      4.3, Live: true, Viewers: 7702, Views: 2_100_000,
		Badges: []string{"HD", "EPG", "LIVE"},
	},
	{
		ID: "11", Name: "ESPN", Category: "Sports", Country: "United States",
		StreamURL:   "https://example.com/stream11",
		Description: "Games, highlights and analysis",
		Rating:      4.7, Live: true, Viewers: 11034, Views: 3_500_000,
		Badges:   []string{"HD", "EPG", "LIVE"},
		Favorite: true,
	},
	{
		ID: "12", Name: "Kyiv 24", Category: "News", Country: "Ukraine",
		StreamURL:   "https://example.com/stream12",
		Description: "Ukrainian news and talk shows",
		Rating:      4.1, Live: true, Viewers: 2290, Views: 640_000,
		Badges: []string{"HD", "LIVE"},
	},
	{
		ID: "13", Name: "Globo Esporte", Category: "Sports", Country: "Brazil",
		StreamURL:   "https://example.com/stream13",
		Description: "Brazilian football and motorsport",
		Rating:      4.6, Live: true, Viewers: 9930, Views: 5_400_000,
		Badges: []string{"HD", "EPG", "LIVE"},
	},
	{
		ID: "14", Name: "Cine Paris", Category: "Movies", Country: "France",
		StreamURL:   "https://example.com/stream14",
		Description: "French and European cinema",
		Rating:      4.4, Live: false, Viewers: 1840, Views: 410_000,
		Badges: []string{"HD"},
	},
	{
		ID: "15", Name: "RTP Internacional", Category: "Entertainment", Country: "Portugal",
		StreamURL:   "https://example.com/stream15",
		Description: "Portuguese series, music and shows",
		Rating:      4.2, Live: true, Viewers: 1512, Views: 380_000,
		Badges: []string{"HD", "EPG"},
	},
	{
		ID: "16", Name: "Safari Live", Category: "Documentary", Country: "South Africa",
		StreamURL:   "https://example.com/stream16",
		Description: "Live game drives from the bush",
		Rating:      4.9, Live: true, Viewers: 3305, Views: 1_200_000,
		Badges: []string{"4K", "LIVE"},
	},
	{
		ID: "17", Name: "CGTN", Category: "News", Country: "China",
		StreamURL:   "https://example.com/stream17",
		Description: "International news from Beijing",
		Rating:      4.0, Live: true, Viewers: 4620, Views: 2_800_000,
		Badges: []string{"HD", "EPG"},
	},
	{
		ID: "18", Name: "Jazz FM", Category: "Radio", Country: "United States",
		StreamURL:   "https://example.com/radio/jazz.mp3",
		Description: "Smooth jazz all day long",
		Rating:      4.7, Live: true, Viewers: 1203, Views: 260_000,
		Badges: []string{"LIVE"},
		Kind:   KindRadio,
	},
	{
		ID: "19", Name: "Radio Nova", Category: "Radio", Country: "France",
		StreamURL:   "https://example.com/radio/nova.mp3",
		Description: "Eclectic music from Paris",
		Rating:      4.5, Live: true, Viewers: 870, Views: 190_000,
		Badges: []string{"LIVE"},
		Kind:   KindRadio,
	},
	{
		ID: "20", Name: "Antena 1", Category: "Radio", Country: "Portugal",
		StreamURL:   "https://example.com/radio/antena1.mp3",
		Description: "News, talk and Portuguese music",
		Rating:      4.2, Live: true, Viewers: 640, Views: 120_000,
		Badges: []string{"LIVE"},
		Kind:   KindRadio,
	},
}

// Default returns a catalog holding the built-in line-up.
func Default() *Catalog {
	return New(DefaultChannels, DefaultCountries)
}
