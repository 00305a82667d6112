package models

import (
	"time"
)

// Booking status values
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Code       string    `json:"code" gorm:"type:varchar(36);uniqueIndex"`
	ListingID  uint      `json:"listingId"`
	Listing    Listing   `json:"listing" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	GuestID    uint      `json:"guestId"`
	Guest      User      `json:"guest" gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
	StartDate  time.Time `json:"startDate" gorm:"type:date"`
	EndDate    time.Time `json:"endDate" gorm:"type:date"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status" gorm:"type:varchar(16);default:pending"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights is the whole-day span of the booking, floored at 0.
func (b *Booking) Nights() int {
	nights := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}
