package controllers

import (
	"strings"

	"github.com/Kiptoos/alx-travel-app-0x01/config"
	"github.com/Kiptoos/alx-travel-app-0x01/dto"
	"github.com/Kiptoos/alx-travel-app-0x01/models"
	"github.com/Kiptoos/alx-travel-app-0x01/response"
	"github.com/Kiptoos/alx-travel-app-0x01/services"
	"github.com/Kiptoos/alx-travel-app-0x01/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func userLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UserAvatar:   user.Avatar,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// RegisterUser creates an account.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterInput true "Registration request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = string(hashed)

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, userLoginResponse(user))
}

// Login authenticates by email or phone and returns an access token.
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginInput true "Login request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email or password is not valid")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email or password is not valid")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info":   userLoginResponse(user),
		"accessToken": accessToken,
	})
}

// AuthGoogle signs in with a Google ID token, creating the account on first
// use.
// @Summary Google sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param google body dto.GoogleAuthInput true "Google token"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/google [post]
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	payload, err := services.VerifyGoogleIDToken(input.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if email == "" {
		response.BadRequest(c, "Google token carries no email")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		user = models.User{
			Name:       name,
			Email:      strings.ToLower(email),
			Avatar:     picture,
			IsVerified: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	accessToken, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, 60*24*3, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   userLoginResponse(user),
		"accessToken": accessToken,
	})
}

// GetProfile returns the authenticated user's profile.
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /profile [get]
func GetProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, err := services.GetIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, userLoginResponse(user))
}
