package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Listing struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	HostID        uint            `json:"hostId"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	PricePerNight float64         `json:"pricePerNight"`
	MaxGuests     int             `json:"maxGuests" gorm:"default:1"`
	IsActive      bool            `json:"isActive" gorm:"default:true"`
	Avatar        string          `json:"avatar"`
	Img           json.RawMessage `json:"img" gorm:"type:json"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Host          User            `json:"host" gorm:"foreignKey:HostID"`
	Bookings      []Booking       `json:"bookings,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Reviews       []Review        `json:"reviews,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

func (l *Listing) ValidatePrice() error {
	if l.PricePerNight < 0 {
		return fmt.Errorf("invalid pricePerNight: %.2f, must not be negative", l.PricePerNight)
	}
	return nil
}

func (l *Listing) ValidateMaxGuests() error {
	if l.MaxGuests < 1 {
		return fmt.Errorf("invalid maxGuests: %d, must be at least 1", l.MaxGuests)
	}
	return nil
}
