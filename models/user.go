package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string        `gorm:"default:New User" json:"name"`
	Email       string        `gorm:"unique" json:"email"`
	Password    string        `json:"password"`
	IsVerified  bool          `gorm:"default:false" json:"is_verified"`
	PhoneNumber string        `gorm:"type:varchar(11)" json:"phoneNumber"`
	Avatar      string        `json:"avatar"`
	Role        int           `gorm:"default:0" json:"role"`
	Status      int           `gorm:"default:1" json:"status"`
	ListingIDs  pq.Int64Array `json:"listing_ids" gorm:"type:integer[]"` // ids of listings hosted by this user
	Listings    []Listing     `json:"listings,omitempty" gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE"`
	Bookings    []Booking     `json:"bookings,omitempty" gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
	Reviews     []Review      `json:"reviews,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
