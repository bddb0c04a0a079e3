package models

import (
	"fmt"
	"time"
)

// Store enumerates the marketplaces a deal can point to.
type Store string

const (
	StoreAmazon   Store = "amazon"
	StoreFlipkart Store = "flipkart"
	StoreOther    Store = "other"
)

// ParseStore converts a raw string to a Store, returning an error for unknown values.
func ParseStore(s string) (Store, error) {
	st := Store(s)
	switch st {
	case StoreAmazon, StoreFlipkart, StoreOther:
		return st, nil
	}
	return "", fmt.Errorf("unknown store %q", s)
}

// DealCategories are the category suggestions offered by the admin console.
var DealCategories = []string{
	"Electronics",
	"Fashion",
	"Home & Kitchen",
	"Beauty",
	"Sports",
	"Books",
	"Toys",
	"Other",
}

// Deal is a promotional product listing.
// ID, Slug and CreatedAt are assigned once at creation and never change.
type Deal struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	CurrentPrice  float64   `json:"currentPrice"`
	OriginalPrice float64   `json:"originalPrice"`
	Store         Store     `json:"store"`
	Category      string    `json:"category"`
	ProductURL    string    `json:"productUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	IsActive      bool      `json:"isActive"`
}

// RecordID implements repository.Record.
func (d Deal) RecordID() string { return d.ID }

// DealInput holds the caller-supplied fields of a new deal.
type DealInput struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	CurrentPrice  float64 `json:"currentPrice"`
	OriginalPrice float64 `json:"originalPrice"`
	Store         Store   `json:"store"`
	Category      string  `json:"category"`
	ProductURL    string  `json:"productUrl"`
	IsActive      *bool   `json:"isActive"`
}

// DealPatch is a partial update. Nil fields are left untouched; identity
// fields are deliberately absent.
type DealPatch struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"imageUrl"`
	CurrentPrice  *float64 `json:"currentPrice"`
	OriginalPrice *float64 `json:"originalPrice"`
	Store         *Store   `json:"store"`
	Category      *string  `json:"category"`
	ProductURL    *string  `json:"productUrl"`
	IsActive      *bool    `json:"isActive"`
}

// Apply returns d with every non-nil patch field merged over it.
func (p DealPatch) Apply(d Deal) Deal {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.ImageURL != nil {
		d.ImageURL = *p.ImageURL
	}
	if p.CurrentPrice != nil {
		d.CurrentPrice = *p.CurrentPrice
	}
	if p.OriginalPrice != nil {
		d.OriginalPrice = *p.OriginalPrice
	}
	if p.Store != nil {
		d.Store = *p.Store
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.ProductURL != nil {
		d.ProductURL = *p.ProductURL
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
	return d
}
