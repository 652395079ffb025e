package database

import (
	"time"

	"plantscan/entities"
)

// CurrentMemberID is the member the mock session signs everyone in as.
const CurrentMemberID = "1"

func DefaultPlants() []entities.GuidePlant {
	return []entities.GuidePlant{
		{
			ID: "1", Name: "Fiddle Leaf Fig", ScientificName: "Ficus lyrata", Family: "Moraceae",
			Description: "The Fiddle Leaf Fig is a popular indoor plant known for its large, violin-shaped leaves and dramatic appearance. Native to western Africa, it has become a staple in modern interior design due to its sculptural quality and ability to make a bold statement in any room.",
			Care:         entities.CareInfo{Sunlight: "Bright Indirect Light", Water: "Medium", Temperature: "65-75°F (18-24°C)", Humidity: "30-65%"},
			NativeRegion: "Western Africa",
			Uses:         []string{"Indoor Decoration", "Air Purification", "Statement Plant"},
			FunFacts: []string{
				"Can grow up to 50 feet tall in its natural habitat",
				"The leaves can grow up to 18 inches long",
				"It's actually a type of fig tree, though it rarely produces fruit indoors",
			},
			Popularity: 95, Difficulty: "Moderate", Category: "Indoor",
		},
		{
			ID: "2", Name: "Monstera Deliciosa", ScientificName: "Monstera deliciosa", Family: "Araceae",
			Description: "Known as the Swiss Cheese Plant, Monstera deliciosa is beloved for its distinctive split leaves with natural holes called fenestrations. This tropical climbing plant is native to Central America and has become one of the most Instagram-worthy houseplants.",
			Care:         entities.CareInfo{Sunlight: "Bright Indirect Light", Water: "Medium", Temperature: "65-80°F (18-27°C)", Humidity: "40-60%"},
			NativeRegion: "Central America",
			Uses:         []string{"Indoor Decoration", "Air Purification", "Living Wall"},
			FunFacts: []string{
				"Young plants don't have fenestrations - they develop as the plant matures",
				"Can produce edible fruit in its natural habitat",
				`The name "deliciosa" refers to the fruit, not the leaves`,
			},
			Popularity: 92, Difficulty: "Easy", Category: "Indoor",
		},
		{
			ID: "3", Name: "Snake Plant", ScientificName: "Sansevieria trifasciata", Family: "Asparagaceae",
			Description: "The Snake Plant, also known as Mother-in-Law's Tongue, is one of the most resilient houseplants. Its upright, sword-like leaves with yellow edges make it an architectural addition to any space, while its low-maintenance nature makes it perfect for beginners.",
			Care:         entities.CareInfo{Sunlight: "Low to Bright Light", Water: "Low", Temperature: "60-80°F (15-27°C)", Humidity: "30-50%"},
			NativeRegion: "West Africa",
			Uses:         []string{"Indoor Decoration", "Air Purification", "Low Light Areas"},
			FunFacts: []string{
				"Can survive in very low light conditions",
				"Releases oxygen at night, making it great for bedrooms",
				"Can go weeks without water",
			},
			Popularity: 88, Difficulty: "Very Easy", Category: "Indoor",
		},
		{
			ID: "4", Name: "Peace Lily", ScientificName: "Spathiphyllum wallisii", Family: "Araceae",
			Description: "The Peace Lily is an elegant houseplant known for its glossy green leaves and distinctive white blooms. Native to tropical regions of the Americas and southeastern Asia, it's prized for both its beauty and air-purifying qualities.",
			Care:         entities.CareInfo{Sunlight: "Low to Medium Light", Water: "Medium to High", Temperature: "65-80°F (18-27°C)", Humidity: "40-60%"},
			NativeRegion: "Central America, Southeast Asia",
			Uses:         []string{"Indoor Decoration", "Air Purification", "Low Light Areas"},
			FunFacts: []string{
				`The white "flowers" are actually modified leaves called spathes`,
				"Can bloom multiple times per year with proper care",
				"Drooping leaves indicate it needs water",
			},
			Popularity: 85, Difficulty: "Easy", Category: "Indoor",
		},
		{
			ID: "5", Name: "Rubber Plant", ScientificName: "Ficus elastica", Family: "Moraceae",
			Description: "The Rubber Plant is a classic houseplant with thick, glossy leaves that can range from deep green to burgundy. Originally from India, this robust plant can grow into an impressive indoor tree with proper care.",
			Care:         entities.CareInfo{Sunlight: "Bright Indirect Light", Water: "Medium", Temperature: "60-75°F (15-24°C)", Humidity: "40-50%"},
			NativeRegion: "India, Southeast Asia",
			Uses:         []string{"Indoor Decoration", "Air Purification", "Statement Plant"},
			FunFacts: []string{
				"Was once a major source of natural rubber",
				"Can grow up to 8 feet tall indoors",
				"The milky sap can be irritating to skin",
			},
			Popularity: 82, Difficulty: "Easy", Category: "Indoor",
		},
		{
			ID: "6", Name: "Pothos", ScientificName: "Epipremnum aureum", Family: "Araceae",
			Description: "Golden Pothos is one of the most popular trailing houseplants, known for its heart-shaped leaves with golden variegation. This fast-growing vine is incredibly forgiving and can thrive in various lighting conditions.",
			Care:         entities.CareInfo{Sunlight: "Low to Bright Light", Water: "Low to Medium", Temperature: "60-80°F (15-27°C)", Humidity: "30-60%"},
			NativeRegion: "Southeast Asia",
			Uses:         []string{"Hanging Baskets", "Trailing Plant", "Air Purification"},
			FunFacts: []string{
				"Can grow in water indefinitely",
				"Leaves lose variegation in low light",
				"One of the best plants for beginners",
			},
			Popularity: 90, Difficulty: "Very Easy", Category: "Indoor",
		},
		{
			ID: "7", Name: "Aloe Vera", ScientificName: "Aloe barbadensis miller", Family: "Asphodelaceae",
			Description: "Aloe Vera is a succulent plant known for its medicinal properties and thick, fleshy leaves. Native to the Arabian Peninsula, it has been cultivated worldwide for its healing gel and low-maintenance care requirements.",
			Care:         entities.CareInfo{Sunlight: "Bright Direct Light", Water: "Low", Temperature: "60-75°F (15-24°C)", Humidity: "10-30%"},
			NativeRegion: "Arabian Peninsula",
			Uses:         []string{"Medicinal", "Skincare", "Drought-tolerant Landscaping"},
			FunFacts: []string{
				"Gel inside leaves can soothe burns and cuts",
				"Can survive without water for months",
				"Produces yellow flowers on tall spikes",
			},
			Popularity: 87, Difficulty: "Very Easy", Category: "Succulent",
		},
		{
			ID: "8", Name: "Jade Plant", ScientificName: "Crassula ovata", Family: "Crassulaceae",
			Description: `The Jade Plant is a popular succulent with thick, oval-shaped leaves and a tree-like appearance. Native to South Africa, it's often called the "money tree" and is believed to bring good luck and prosperity.`,
			Care:         entities.CareInfo{Sunlight: "Bright Direct Light", Water: "Low", Temperature: "65-75°F (18-24°C)", Humidity: "30-50%"},
			NativeRegion: "South Africa",
			Uses:         []string{"Indoor Decoration", "Bonsai", "Good Luck Charm"},
			FunFacts: []string{
				"Can live for decades with proper care",
				"Produces small white or pink flowers",
				"Symbol of friendship in many cultures",
			},
			Popularity: 80, Difficulty: "Easy", Category: "Succulent",
		},
	}
}

func avatar(photo string) string {
	return "https://images.unsplash.com/" + photo + "?w=100&h=100&fit=crop&crop=face"
}

func DefaultMembers() []entities.Member {
	return []entities.Member{
		{ID: "1", Name: "Alex Green", Username: "@alexgreen", Avatar: avatar("photo-1472099645785-5658abf4ff4e"),
			Badges: []string{"Plant Expert", "Community Helper"}, JoinDate: "2024-01-15", PostsCount: 47, Reputation: 1250},
		{ID: "2", Name: "Sarah Johnson", Username: "@sarahj", Avatar: avatar("photo-1494790108755-2616b612b786"),
			Badges: []string{"New Member"}, PostsCount: 3, Reputation: 120},
		{ID: "3", Name: "Mike Chen", Username: "@mikec", Avatar: avatar("photo-1507003211169-0a1dd7228f2d"),
			Badges: []string{"Plant Expert", "Propagation Master"}, PostsCount: 78, Reputation: 2480},
		{ID: "4", Name: "Emma Wilson", Username: "@emmaw", Avatar: avatar("photo-1438761681033-6461ffad8d80"),
			Badges: []string{"New Member"}, PostsCount: 2, Reputation: 95},
		{ID: "5", Name: "David Park", Username: "@davidp", Avatar: avatar("photo-1500648767791-00dcc994a43e"),
			Badges: []string{"Plant Enthusiast"}, PostsCount: 11, Reputation: 640},
		{ID: "6", Name: "Lisa Rodriguez", Username: "@lisar", Avatar: avatar("photo-1489424731084-a5d8b219a5bb"),
			Badges: []string{"Outdoor Expert", "Seasonal Specialist"}, PostsCount: 65, Reputation: 1920},
		{ID: "7", Name: "James Wilson", Username: "@jamesw", Avatar: avatar("photo-1472099645785-5658abf4ff4e"),
			Badges: []string{"Indoor Specialist"}, PostsCount: 52, Reputation: 1650},
	}
}

// DefaultPosts returns the starter threads, dated relative to now.
func DefaultPosts(now time.Time) []entities.Post {
	img := func(photo string) string {
		return "https://images.unsplash.com/" + photo + "?w=400&h=300&fit=crop"
	}
	return []entities.Post{
		{
			ID: "1", Title: "Help! My fiddle leaf fig leaves are turning brown",
			Content:  "I've had this beautiful fiddle leaf fig for about 6 months now, and recently I've noticed the leaves are starting to turn brown around the edges. I water it once a week and it gets indirect sunlight. What could be causing this?",
			AuthorID: "2", Upvotes: 12, Downvotes: 1, Comments: 8, Views: 156,
			Tags:  []string{"fiddle-leaf-fig", "help", "brown-leaves", "watering"},
			Image: img("photo-1586625623060-806b7cfab8e7"), Trending: true,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: "2", Title: "Amazing propagation success with my pothos!",
			Content:  "Just wanted to share my excitement - I successfully propagated 12 pothos cuttings and they're all thriving! Here are some tips that worked for me...",
			AuthorID: "3", Upvotes: 28, Downvotes: 0, Comments: 15, Views: 324,
			Tags:  []string{"pothos", "propagation", "success", "tips"},
			Image: img("photo-1416879595882-3373a0480b5b"), Trending: true,
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID: "3", Title: "Best soil mix for succulents?",
			Content:  "I'm new to succulents and want to make sure I get the soil right. What's the best commercial mix, or should I make my own? Looking for recommendations!",
			AuthorID: "4", Upvotes: 15, Downvotes: 2, Comments: 12, Views: 289,
			Tags:      []string{"succulents", "soil", "beginner", "recommendations"},
			Solved:    true,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: "4", Title: "My monstera deliciosa just got its first fenestration!",
			Content:  "I'm so excited! After 8 months of caring for my monstera, it finally produced its first leaf with holes. The wait was so worth it!",
			AuthorID: "5", Upvotes: 42, Downvotes: 0, Comments: 18, Views: 567,
			Tags:  []string{"monstera", "fenestration", "milestone", "excitement"},
			Image: img("photo-1506905925346-21bda4d32df4"), Trending: true,
			CreatedAt: now.Add(-24*time.Hour - time.Minute),
		},
		{
			ID: "5", Title: "Winter care tips for outdoor plants",
			Content:  "With winter approaching, I wanted to share some tips for protecting your outdoor plants from frost and cold temperatures...",
			AuthorID: "6", Upvotes: 35, Downvotes: 1, Comments: 22, Views: 445,
			Tags:      []string{"winter", "outdoor", "care", "tips", "frost"},
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}

func DefaultTags() []entities.TagStat {
	return []entities.TagStat{
		{Name: "fiddle-leaf-fig", Count: 124, Trending: true},
		{Name: "propagation", Count: 98, Trending: true},
		{Name: "succulents", Count: 186},
		{Name: "monstera", Count: 142, Trending: true},
		{Name: "watering", Count: 203},
		{Name: "soil", Count: 167},
		{Name: "beginner", Count: 89},
		{Name: "help", Count: 256},
		{Name: "winter", Count: 67, Trending: true},
		{Name: "outdoor", Count: 134},
	}
}

// Guidelines are the community rules shown next to the forum.
func Guidelines() []string {
	return []string{
		"Be respectful and kind to all community members",
		"Share accurate information and cite sources when possible",
		"Use clear, descriptive titles for your posts",
		"Include high-quality photos when asking for plant ID",
		"Search before posting to avoid duplicates",
	}
}
