package model

import "time"

// Product represents a product in the storefront catalogue.
//
// Field names follow the JSON payloads the storefront persists and serves.
// InStock is kept alongside Stock for payload compatibility but is always
// normalised to Stock > 0 by the catalogue store, so the two cannot drift.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"originalPrice,omitempty" validate:"gte=0"`
	Discount      float64  `json:"discount,omitempty" validate:"gte=0,lte=100"`
	Stock         int      `json:"stock" validate:"gte=0"`
	InStock       bool     `json:"inStock"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int      `json:"reviewCount"`
	Images        []string `json:"images"`
	Tags          []string `json:"tags"`
	Featured      bool     `json:"featured"`
	Reviews       []Review `json:"reviews"`
}

// Review is a customer review attached to a product. Immutable once created.
type Review struct {
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// ProductUpdate describes a partial update to a product. Nil fields are left
// untouched.
type ProductUpdate struct {
	Name          *string   `json:"name,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Brand         *string   `json:"brand,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Price         *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Discount      *float64  `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
	Stock         *int      `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Images        *[]string `json:"images,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Featured      *bool     `json:"featured,omitempty"`
}

// ReviewRequest is the payload for submitting a product review.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}
