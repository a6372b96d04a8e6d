package catalog

import "event-marketplace/internal/models"

// SeedEvents returns the fixed event fixtures the marketplace ships
// with. Prices are in cents.
func SeedEvents() []models.EventRecord {
	return []models.EventRecord{
		{
			ID:          "1",
			Title:       "Tech Conference 2024",
			Description: "Join us for the biggest tech conference of the year featuring industry leaders, innovative startups, and cutting-edge technology demonstrations.",
			Date:        "2024-03-15",
			Time:        "09:00",
			Venue:       "Convention Center",
			Location:    "Downtown City",
			Category:    "Technology",
			Organizer:   "Tech Events Inc.",
			Status:      models.EventUpcoming,
			Capacity:    500,
			Sold:        245,
			Featured:    true,
			TicketTypes: []models.TicketType{
				{
					ID:          "1",
					Name:        "Early Bird",
					Price:       9900,
					Available:   50,
					Total:       100,
					Description: "Limited early bird pricing",
					Perks:       []string{"Conference materials", "Networking lunch", "Certificate"},
				},
				{
					ID:          "2",
					Name:        "Regular",
					Price:       14900,
					Available:   180,
					Total:       300,
					Description: "Standard conference ticket",
					Perks:       []string{"Conference materials", "Networking lunch"},
				},
				{
					ID:          "3",
					Name:        "VIP",
					Price:       29900,
					Available:   25,
					Total:       100,
					Description: "Premium experience with exclusive benefits",
					Perks:       []string{"All Regular benefits", "VIP seating", "Meet & greet", "Exclusive dinner"},
				},
			},
		},
		{
			ID:          "2",
			Title:       "Music Festival Summer",
			Description: "Three days of amazing music with top artists from around the world. Experience the best in electronic, rock, and indie music.",
			Date:        "2024-06-20",
			Time:        "16:00",
			Venue:       "City Park",
			Location:    "Central Park",
			Category:    "Music",
			Organizer:   "Summer Music Ltd.",
			Status:      models.EventUpcoming,
			Capacity:    2000,
			Sold:        1200,
			Featured:    true,
			TicketTypes: []models.TicketType{
				{
					ID:          "4",
					Name:        "General Admission",
					Price:       7900,
					Available:   500,
					Total:       1500,
					Description: "Access to all stages and areas",
				},
				{
					ID:          "5",
					Name:        "VIP Pass",
					Price:       19900,
					Available:   150,
					Total:       300,
					Description: "Premium experience with exclusive access",
					Perks:       []string{"VIP area access", "Complimentary drinks", "Artist meet & greet"},
				},
				{
					ID:          "6",
					Name:        "3-Day Pass",
					Price:       19900,
					Available:   150,
					Total:       200,
					Description: "Full festival access for all three days",
					Perks:       []string{"All days access", "Festival merchandise", "Camping pass"},
				},
			},
		},
		{
			ID:          "3",
			Title:       "Art Exhibition Opening",
			Description: "Discover contemporary art from emerging and established artists. An exclusive opening night with wine tasting and artist talks.",
			Date:        "2024-04-10",
			Time:        "18:00",
			Venue:       "Modern Art Gallery",
			Location:    "Arts District",
			Category:    "Art",
			Organizer:   "Gallery Modern",
			Status:      models.EventUpcoming,
			Capacity:    150,
			Sold:        89,
			Featured:    false,
			TicketTypes: []models.TicketType{
				{
					ID:          "7",
					Name:        "Standard Entry",
					Price:       2500,
					Available:   40,
					Total:       100,
					Description: "Gallery access and wine tasting",
				},
				{
					ID:          "8",
					Name:        "Collector Pass",
					Price:       7500,
					Available:   21,
					Total:       50,
					Description: "Exclusive benefits for art collectors",
					Perks:       []string{"Private viewing", "Artist meet & greet", "Catalog signed by artists"},
				},
			},
		},
		{
			ID:          "4",
			Title:       "Business Summit 2024",
			Description: "Network with industry leaders and learn about the latest business trends, strategies, and innovations that will shape the future.",
			Date:        "2024-05-08",
			Time:        "08:30",
			Venue:       "Business Center",
			Location:    "Financial District",
			Category:    "Business",
			Organizer:   "Business Leaders Network",
			Status:      models.EventUpcoming,
			Capacity:    300,
			Sold:        156,
			Featured:    true,
			TicketTypes: []models.TicketType{
				{
					ID:          "9",
					Name:        "Professional",
					Price:       19900,
					Available:   80,
					Total:       200,
					Description: "Full summit access with networking opportunities",
				},
				{
					ID:          "10",
					Name:        "Executive",
					Price:       39900,
					Available:   64,
					Total:       100,
					Description: "Premium experience with exclusive sessions",
					Perks:       []string{"Executive lounge access", "Private networking dinner", "One-on-one mentoring"},
				},
			},
		},
		{
			ID:          "5",
			Title:       "Food & Wine Festival",
			Description: "Savor the finest cuisines and wines from around the world. Meet renowned chefs and participate in cooking workshops.",
			Date:        "2024-07-15",
			Time:        "12:00",
			Venue:       "Waterfront Plaza",
			Location:    "Marina District",
			Category:    "Food",
			Organizer:   "Culinary Events Co.",
			Status:      models.EventUpcoming,
			Capacity:    800,
			Sold:        432,
			Featured:    false,
			TicketTypes: []models.TicketType{
				{
					ID:          "11",
					Name:        "Tasting Pass",
					Price:       6500,
					Available:   200,
					Total:       500,
					Description: "Access to all food and wine tastings",
				},
				{
					ID:          "12",
					Name:        "Chef Experience",
					Price:       15000,
					Available:   168,
					Total:       300,
					Description: "Includes cooking workshops and chef meet & greets",
					Perks:       []string{"Cooking workshop", "Recipe book", "Chef autograph session"},
				},
			},
		},
		{
			ID:          "6",
			Title:       "Startup Pitch Competition",
			Description: "Watch innovative startups pitch their ideas to top investors. Network with entrepreneurs and discover the next big thing.",
			Date:        "2024-08-22",
			Time:        "14:00",
			Venue:       "Innovation Hub",
			Location:    "Tech Quarter",
			Category:    "Business",
			Organizer:   "Startup Accelerator",
			Status:      models.EventUpcoming,
			Capacity:    250,
			Sold:        127,
			Featured:    true,
			TicketTypes: []models.TicketType{
				{
					ID:          "13",
					Name:        "Observer",
					Price:       4900,
					Available:   73,
					Total:       150,
					Description: "Watch the competition and network",
				},
				{
					ID:          "14",
					Name:        "Investor Pass",
					Price:       19900,
					Available:   50,
					Total:       100,
					Description: "Access to private investor sessions",
					Perks:       []string{"Investor meetup", "Startup pitch decks", "Private networking"},
				},
			},
		},
	}
}
