package dto

import (
	"encoding/json"
	"time"
)

type CreateListingRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	PricePerNight float64         `json:"pricePerNight"`
	MaxGuests     int             `json:"maxGuests"`
	Avatar        string          `json:"avatar"`
	Img           json.RawMessage `json:"img"`
}

type UpdateListingRequest struct {
	ID            uint            `json:"id" binding:"required"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	PricePerNight *float64        `json:"pricePerNight"`
	MaxGuests     *int            `json:"maxGuests"`
	Avatar        string          `json:"avatar"`
	Img           json.RawMessage `json:"img"`
}

type ChangeListingStatusRequest struct {
	ID       uint `json:"id" binding:"required"`
	IsActive bool `json:"isActive"`
}

type ListingResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"pricePerNight"`
	MaxGuests     int       `json:"maxGuests"`
	IsActive      bool      `json:"isActive"`
	Avatar        string    `json:"avatar"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ListingDetailResponse struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	PricePerNight float64         `json:"pricePerNight"`
	MaxGuests     int             `json:"maxGuests"`
	IsActive      bool            `json:"isActive"`
	Avatar        string          `json:"avatar"`
	Img           json.RawMessage `json:"img"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Host          UserInfo        `json:"host"`
}
