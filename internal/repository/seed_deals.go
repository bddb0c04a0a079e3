package repository

import (
	"time"

	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/utils"
)

// SampleDeals returns the demo catalog written on first load of an empty
// deals store. Ids are fresh on every call; createdAt is staggered by a
// minute so "newest" ordering follows the list order.
func SampleDeals() []models.Deal {
	samples := []models.Deal{
		{
			Title:         "pTron Orbis Era Smart Glasses with Bluetooth V5.4",
			Description:   "Open Ear Music, Handsfree Calls, Protects Eye from harmful Blue Light",
			ImageURL:      "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400&h=400&fit=crop",
			CurrentPrice:  1499,
			OriginalPrice: 3799,
			Store:         models.StoreAmazon,
			Category:      "Electronics",
			ProductURL:    "https://www.amazon.in",
		},
		{
			Title:         "boAt Airdopes 141 Bluetooth Earbuds",
			Description:   "42H Playtime, Beast Mode, ENx Tech, IWP, Smooth Touch Controls",
			ImageURL:      "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=400&h=400&fit=crop",
			CurrentPrice:  999,
			OriginalPrice: 4490,
			Store:         models.StoreAmazon,
			Category:      "Electronics",
			ProductURL:    "https://www.amazon.in",
		},
		{
			Title:         "Noise ColorFit Pro 4 Smartwatch",
			Description:   `1.72" AMOLED Display, Bluetooth Calling, 100+ Sports Modes`,
			ImageURL:      "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop",
			CurrentPrice:  2499,
			OriginalPrice: 5999,
			Store:         models.StoreFlipkart,
			Category:      "Electronics",
			ProductURL:    "https://www.flipkart.com",
		},
		{
			Title:         "Campus Men Running Shoes",
			Description:   "Lightweight, Comfortable, Breathable Sports Shoes",
			ImageURL:      "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop",
			CurrentPrice:  699,
			OriginalPrice: 1499,
			Store:         models.StoreAmazon,
			Category:      "Fashion",
			ProductURL:    "https://www.amazon.in",
		},
		{
			Title:         "Prestige Electric Kettle 1.5L",
			Description:   "1500W, Auto Shut-off, Stainless Steel Body",
			ImageURL:      "https://images.unsplash.com/photo-1594213114665-8a3eaa07b0ba?w=400&h=400&fit=crop",
			CurrentPrice:  599,
			OriginalPrice: 1295,
			Store:         models.StoreFlipkart,
			Category:      "Home & Kitchen",
			ProductURL:    "https://www.flipkart.com",
		},
		{
			Title:         "Himalaya Face Wash Combo Pack",
			Description:   "Neem Face Wash + Purifying Scrub + Moisturizer",
			ImageURL:      "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=400&fit=crop",
			CurrentPrice:  299,
			OriginalPrice: 599,
			Store:         models.StoreAmazon,
			Category:      "Beauty",
			ProductURL:    "https://www.amazon.in",
		},
	}

	now := time.Now().UTC()
	for i := range samples {
		id := utils.GenerateID()
		samples[i].ID = id
		samples[i].Slug = utils.GenerateSlug(samples[i].Title, id)
		samples[i].CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		samples[i].IsActive = true
	}
	return samples
}
