package catalog

import "github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"

// SeedProducts returns the default catalogue used when no persisted snapshot
// exists yet.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:            "1",
			Name:          "Wireless Bluetooth Headphones",
			Description:   "Premium over-ear headphones with active noise cancellation and 30-hour battery life.",
			Brand:         "SoundCore",
			Category:      "Electronics",
			Price:         2999,
			OriginalPrice: 4999,
			Stock:         25,
			Rating:        4.5,
			ReviewCount:   2,
			Images:        []string{"https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg"},
			Tags:          []string{"wireless", "bluetooth", "audio"},
			Featured:      true,
			Reviews: []model.Review{
				{UserID: "2", UserName: "John Doe", Rating: 5, Comment: "Great sound quality for the price."},
				{UserID: "2", UserName: "John Doe", Rating: 4, Comment: "Battery easily lasts a full week of commutes."},
			},
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Description: "Water-resistant fitness tracker with heart-rate monitoring, GPS and sleep tracking.",
			Brand:       "FitTech",
			Category:    "Electronics",
			Price:       5499,
			Stock:       12,
			Rating:      4.2,
			ReviewCount: 0,
			Images:      []string{"https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg"},
			Tags:        []string{"fitness", "smartwatch", "wearable"},
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "Classic Denim Jacket",
			Description: "Timeless unisex denim jacket in stonewashed blue, 100% cotton.",
			Brand:       "UrbanWear",
			Category:    "Fashion",
			Price:       1799,
			Discount:    10,
			Stock:       40,
			Rating:      4.0,
			ReviewCount: 0,
			Images:      []string{"https://images.pexels.com/photos/1124468/pexels-photo-1124468.jpeg"},
			Tags:        []string{"denim", "jacket", "casual"},
		},
		{
			ID:          "4",
			Name:        "Stainless Steel Water Bottle",
			Description: "Double-walled insulated bottle, keeps drinks cold for 24 hours. 750ml.",
			Brand:       "HydroMax",
			Category:    "Home & Kitchen",
			Price:       899,
			Stock:       0,
			Rating:      4.7,
			ReviewCount: 0,
			Images:      []string{"https://images.pexels.com/photos/1000084/pexels-photo-1000084.jpeg"},
			Tags:        []string{"bottle", "insulated", "eco"},
		},
		{
			ID:          "5",
			Name:        "Ergonomic Office Chair",
			Description: "Adjustable mesh-back chair with lumbar support and tilt lock.",
			Brand:       "ComfortSeat",
			Category:    "Furniture",
			Price:       12999,
			Stock:       7,
			Rating:      4.3,
			ReviewCount: 0,
			Images:      []string{"https://images.pexels.com/photos/1957477/pexels-photo-1957477.jpeg"},
			Tags:        []string{"chair", "office", "ergonomic"},
		},
		{
			ID:          "6",
			Name:        "Leather Messenger Bag",
			Description: "Handcrafted full-grain leather bag that fits a 15-inch laptop.",
			Brand:       "UrbanWear",
			Category:    "Fashion",
			Price:       3499,
			Stock:       15,
			Rating:      4.6,
			ReviewCount: 0,
			Images:      []string{"https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg"},
			Tags:        []string{"leather", "bag", "laptop"},
			Featured:    true,
		},
	}
}
