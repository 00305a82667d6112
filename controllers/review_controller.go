package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Kiptoos/alx-travel-app-0x01/config"
	"github.com/Kiptoos/alx-travel-app-0x01/dto"
	"github.com/Kiptoos/alx-travel-app-0x01/models"
	"github.com/Kiptoos/alx-travel-app-0x01/response"
	"github.com/Kiptoos/alx-travel-app-0x01/services"
	"github.com/Kiptoos/alx-travel-app-0x01/validator"

	"github.com/gin-gonic/gin"
)

func convertToReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		ListingID: review.ListingID,
		Comment:   review.Comment,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
		Author: dto.UserInfo{
			ID:     review.Author.ID,
			Name:   review.Author.Name,
			Avatar: review.Author.Avatar,
		},
	}
}

// GetAllReviews lists reviews, optionally for one listing.
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param listingId query int false "Listing id"
// @Success 200 {object} response.Response
// @Router /reviews [get]
func GetAllReviews(c *gin.Context) {
	listingIdFilter := c.DefaultQuery("listingId", "")

	cacheKey := "reviews:all"
	if listingIdFilter != "" {
		cacheKey = fmt.Sprintf("reviews:listing:%s", listingIdFilter)
	}

	var reviewResponses []dto.ReviewResponse

	err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &reviewResponses)
	if err == nil && len(reviewResponses) > 0 {
		response.Success(c, reviewResponses)
		return
	}

	tx := config.DB.Preload("Author")
	if listingIdFilter != "" {
		if parsedListingId, err := strconv.Atoi(listingIdFilter); err == nil {
			tx = tx.Where("listing_id = ?", parsedListingId)
		}
	}

	var reviews []models.Review
	if err := tx.Order("created_at DESC").Limit(20).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	reviewResponses = make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, reviewResponses, 10*time.Minute); err != nil {
		log.Printf("Error caching reviews: %v", err)
	}

	response.Success(c, reviewResponses)
}

// CreateReview adds a review by the authenticated user. One review per user
// per listing; reviews are immutable once created.
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body dto.CreateReviewRequest true "Review"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reviews [post]
func CreateReview(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	review := models.Review{
		ListingID: request.ListingID,
		AuthorID:  userID.(uint),
		Comment:   request.Comment,
		Rating:    request.Rating,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, review.ListingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var existingReview models.Review
	if err := config.DB.Where("author_id = ? AND listing_id = ?", review.AuthorID, review.ListingID).First(&existingReview).Error; err == nil {
		response.Error(c, 0, "You have already reviewed this listing")
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if config.RedisClient != nil {
		_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "reviews:all")
		_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, fmt.Sprintf("reviews:listing:%d", review.ListingID))
	}

	if err := config.DB.Preload("Author").First(&review, review.ID).Error; err == nil {
		response.Success(c, convertToReviewResponse(review))
		return
	}

	response.Success(c, review)
}

// GetReviewDetail returns one review by id.
// @Summary Review detail
// @Tags reviews
// @Produce json
// @Param id path int true "Review id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviews/{id} [get]
func GetReviewDetail(c *gin.Context) {
	id := c.Param("id")

	var review models.Review
	if err := config.DB.Preload("Author").First(&review, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToReviewResponse(review))
}
