package dto

import "time"

type CreateBookingRequest struct {
	ListingID  uint    `json:"listingId" binding:"required"`
	StartDate  string  `json:"startDate" binding:"required,bookdate"`
	EndDate    string  `json:"endDate" binding:"required,bookdate"`
	TotalPrice float64 `json:"totalPrice"`
}

type ChangeBookingStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type BookingListingResponse struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight"`
	Avatar        string  `json:"avatar"`
}

type BookingResponse struct {
	ID         uint                   `json:"id"`
	Code       string                 `json:"code"`
	Guest      ActorResponse          `json:"guest"`
	Listing    BookingListingResponse `json:"listing"`
	StartDate  string                 `json:"startDate"`
	EndDate    string                 `json:"endDate"`
	Nights     int                    `json:"nights"`
	Status     string                 `json:"status"`
	TotalPrice float64                `json:"totalPrice"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}
