package repositories

import "tripdeck/internal/models/catalog_models"

var sampleDestinations = []catalog_models.Destination{
	{Name: "Paris", Country: "France", Lat: 48.8566, Lng: 2.3522},
	{Name: "New York", Country: "United States", Lat: 40.7128, Lng: -74.0060},
	{Name: "Tokyo", Country: "Japan", Lat: 35.6762, Lng: 139.6503},
	{Name: "London", Country: "United Kingdom", Lat: 51.5074, Lng: -0.1278},
	{Name: "Sydney", Country: "Australia", Lat: -33.8688, Lng: 151.2093},
}

var sampleAttractions = map[string][]catalog_models.Attraction{
	"paris": {
		{
			ID:          "paris-eiffel-tower",
			Name:        "Eiffel Tower",
			Description: "Iconic iron tower offering city views.",
			Image:       "/src/images/eiffel-tower.avif",
			Rating:      4.7,
			Price:       "₹2100",
		},
		{
			ID:          "paris-louvre-museum",
			Name:        "Louvre Museum",
			Description: "World's largest art museum & historic monument.",
			Image:       "/src/images/louvre-museum.avif",
			Rating:      4.8,
			Price:       "₹1400",
		},
		{
			ID:          "paris-notre-dame",
			Name:        "Notre-Dame Cathedral",
			Description: "Medieval Catholic cathedral with gargoyles.",
			Image:       "/src/images/notre-dame-cathedral.avif",
			Rating:      4.6,
			Price:       "Free",
		},
		{
			ID:          "paris-montmartre",
			Name:        "Montmartre",
			Description: "Artsy hilltop area with Sacré-Cœur Basilica.",
			Image:       "/src/images/montmartre.avif",
			Rating:      4.5,
			Price:       "Free",
		},
		{
			ID:          "paris-seine-cruise",
			Name:        "Seine River Cruise",
			Description: "Scenic boat tour of Paris landmarks.",
			Image:       "/src/images/seine-river.avif",
			Rating:      4.4,
			Price:       "₹1200",
		},
		{
			ID:          "paris-champs-elysees",
			Name:        "Champs-Élysées",
			Description: "Famous avenue with shops & Arc de Triomphe.",
			Image:       "/src/images/champs.avif",
			Rating:      4.3,
			Price:       "Free",
		},
	},
	"new york": {
		{
			ID:          "new-york-statue-of-liberty",
			Name:        "Statue of Liberty",
			Description: "Iconic copper statue representing freedom.",
			Image:       "/src/images/statue-of-liberty.avif",
			Rating:      4.7,
			Price:       "₹1900",
		},
		{
			ID:          "new-york-central-park",
			Name:        "Central Park",
			Description: "Urban park spanning 843 acres.",
			Image:       "/src/images/central-park.avif",
			Rating:      4.8,
			Price:       "Free",
		},
		{
			ID:          "new-york-empire-state",
			Name:        "Empire State Building",
			Description: "Iconic 102-story Art Deco skyscraper.",
			Image:       "/src/images/empire-state.avif",
			Rating:      4.6,
			Price:       "₹3500",
		},
		{
			ID:          "new-york-times-square",
			Name:        "Times Square",
			Description: "Bustling intersection famous for bright lights & Broadway theaters.",
			Image:       "/src/images/times-square.avif",
			Rating:      4.5,
			Price:       "Free",
		},
		{
			ID:          "new-york-met-museum",
			Name:        "Metropolitan Museum of Art",
			Description: "One of world's largest art museums.",
			Image:       "/src/images/museum.avif",
			Rating:      4.8,
			Price:       "₹2000",
		},
		{
			ID:          "new-york-brooklyn-bridge",
			Name:        "Brooklyn Bridge",
			Description: "Historic bridge connecting Manhattan & Brooklyn.",
			Image:       "/src/images/brooklyn-bridge.avif",
			Rating:      4.7,
			Price:       "Free",
		},
	},
	"tokyo": {
		{
			ID:          "tokyo-skytree",
			Name:        "Tokyo Skytree",
			Description: "Tallest tower in Japan with observation decks.",
			Image:       "/src/images/tokyo-skytree.avif",
			Rating:      4.5,
			Price:       "₹1400",
		},
		{
			ID:          "tokyo-sensoji-temple",
			Name:        "Senso-ji Temple",
			Description: "Ancient Buddhist temple in Asakusa.",
			Image:       "/src/images/senso.avif",
			Rating:      4.7,
			Price:       "Free",
		},
		{
			ID:          "tokyo-shibuya-crossing",
			Name:        "Shibuya Crossing",
			Description: "Famous busy intersection in Shibuya.",
			Image:       "/src/images/shibuya.avif",
			Rating:      4.6,
			Price:       "Free",
		},
		{
			ID:          "tokyo-meiji-shrine",
			Name:        "Meiji Shrine",
			Description: "Shinto shrine dedicated to Emperor Meiji.",
			Image:       "/src/images/meiji.avif",
			Rating:      4.7,
			Price:       "Free",
		},
		{
			ID:          "tokyo-disneyland",
			Name:        "Tokyo Disneyland",
			Description: "Theme park with rides & Disney characters.",
			Image:       "/src/images/tokyo-disneyland.avif",
			Rating:      4.8,
			Price:       "₹6500",
		},
		{
			ID:          "tokyo-tsukiji-market",
			Name:        "Tsukiji Outer Market",
			Description: "Famous food market with fresh seafood.",
			Image:       "/src/images/tsukiji.avif",
			Rating:      4.5,
			Price:       "Free",
		},
	},
}

var sampleTravelTips = map[string][]string{
	"paris": {
		"The Paris Museum Pass gives you access to over 50 museums and monuments.",
		"Try to visit the Eiffel Tower early in the morning to avoid crowds.",
		"Many museums in Paris are free on the first Sunday of each month.",
		"Learn a few basic French phrases - locals appreciate the effort.",
	},
	"new york": {
		"The MetroCard is your best option for getting around the city.",
		"Visit popular attractions early in the morning or on weekdays to avoid crowds.",
		"Many museums have 'pay what you wish' days or hours.",
		"Central Park offers free guided tours on weekends.",
	},
	"tokyo": {
		"Get a Suica or Pasmo card for easy travel on public transportation.",
		"Most restaurants have realistic food displays (sampuru) in their windows.",
		"Tipping is not customary in Japan and might even cause confusion.",
		"The best time to view cherry blossoms is late March to early April.",
	},
}
