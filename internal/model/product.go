package model

import "time"

// Product is a shop item managed from the admin dashboard.
type Product struct {
	ID          int       `json:"id"`
	CategoryID  int       `json:"category_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PriceCents  int       `json:"price_cents"`
	ImageURL    string    `json:"image_url"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	CategoryID  int    `json:"category_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,max=128"`
	Slug        string `json:"slug" binding:"required,max=128,lowercase"`
	Description string `json:"description" binding:"max=4096"`
	PriceCents  int    `json:"price_cents" binding:"gte=0"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=512"`
	Available   *bool  `json:"available" binding:"required"`
}
