package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ListingID uint      `json:"listingId"`
	AuthorID  uint      `json:"authorId"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Listing   Listing   `json:"-" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}
