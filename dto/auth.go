package dto

import "time"

type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type GoogleAuthInput struct {
	TokenID string `json:"tokenId" binding:"required"`
}

type UserLoginResponse struct {
	UserID       uint      `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	UserVerified bool      `json:"userVerified"`
	UserPhone    string    `json:"userPhone"`
	UserRole     int       `json:"userRole"`
	UserAvatar   string    `json:"userAvatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
