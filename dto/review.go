package dto

import "time"

type CreateReviewRequest struct {
	ListingID uint   `json:"listingId" binding:"required"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	ListingID uint      `json:"listingId"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	Author    UserInfo  `json:"author"`
}
