package controllers

import (
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Kiptoos/alx-travel-app-0x01/config"
	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/dto"
	"github.com/Kiptoos/alx-travel-app-0x01/models"
	"github.com/Kiptoos/alx-travel-app-0x01/response"
	"github.com/Kiptoos/alx-travel-app-0x01/services"
	"github.com/Kiptoos/alx-travel-app-0x01/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

const listingsCacheKey = "listings:all"

func convertToListingResponse(listing models.Listing) dto.ListingResponse {
	return dto.ListingResponse{
		ID:            listing.ID,
		Title:         listing.Title,
		Location:      listing.Location,
		PricePerNight: listing.PricePerNight,
		MaxGuests:     listing.MaxGuests,
		IsActive:      listing.IsActive,
		Avatar:        listing.Avatar,
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
	}
}

func convertToListingDetailResponse(listing models.Listing) dto.ListingDetailResponse {
	return dto.ListingDetailResponse{
		ID:            listing.ID,
		Title:         listing.Title,
		Description:   listing.Description,
		Location:      listing.Location,
		PricePerNight: listing.PricePerNight,
		MaxGuests:     listing.MaxGuests,
		IsActive:      listing.IsActive,
		Avatar:        listing.Avatar,
		Img:           listing.Img,
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
		Host: dto.UserInfo{
			ID:     listing.Host.ID,
			Name:   listing.Host.Name,
			Avatar: listing.Host.Avatar,
		},
	}
}

func loadListingsFromDB(allListings *[]models.Listing) error {
	return config.DB.Model(&models.Listing{}).
		Preload("Host").
		Find(allListings).Error
}

func invalidateListingsCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, listingsCacheKey); err != nil {
		log.Printf("Error dropping listings cache: %v", err)
	}
}

// GetAllListings lists listings with the price/availability/search filters
// applied, sortable by the allow-listed keys, paginated.
// @Summary List listings
// @Tags listings
// @Produce json
// @Param min_price query number false "Minimum nightly price"
// @Param max_price query number false "Maximum nightly price"
// @Param available query bool false "Active flag filter"
// @Param search query string false "Free-text search"
// @Param sort_by query string false "price_per_night | created_at | updated_at"
// @Param sort_order query string false "asc | desc"
// @Success 200 {object} response.Response
// @Router /listings [get]
func GetAllListings(c *gin.Context) {
	minPriceStr := c.Query("min_price")
	maxPriceStr := c.Query("max_price")
	availableStr := c.Query("available")
	searchQuery := c.Query("search")
	sortBy := c.Query("sort_by")
	sortOrder := c.Query("sort_order")

	pageStr := c.Query("page")
	limitStr := c.Query("limit")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	params := services.ListingFilterParams{
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}

	if minPriceStr != "" {
		minPrice, err := strconv.ParseFloat(minPriceStr, 64)
		if err != nil {
			response.BadRequest(c, "min_price is not a valid number")
			return
		}
		params.MinPrice = &minPrice
	}
	if maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil {
			response.BadRequest(c, "max_price is not a valid number")
			return
		}
		params.MaxPrice = &maxPrice
	}
	if availableStr != "" {
		available, err := strconv.ParseBool(availableStr)
		if err != nil {
			response.BadRequest(c, "available must be true or false")
			return
		}
		params.Available = &available
	}
	if searchQuery != "" {
		decoded, err := url.QueryUnescape(searchQuery)
		if err == nil {
			searchQuery = decoded
		}
		params.Search = searchQuery
	}

	var allListings []models.Listing

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, listingsCacheKey, &allListings); err != nil || len(allListings) == 0 {
		if err := loadListingsFromDB(&allListings); err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, listingsCacheKey, allListings, 60*time.Minute); err != nil {
			log.Printf("Error caching listings: %v", err)
		}
	}

	filtered := services.FilterListings(allListings, params)
	total := len(filtered)

	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Listing{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	listingResponses := make([]dto.ListingResponse, 0, len(filtered))
	for _, listing := range filtered {
		listingResponses = append(listingResponses, convertToListingResponse(listing))
	}

	response.SuccessWithPagination(c, listingResponses, page, limit, total)
}

// CreateListing creates a listing owned by the authenticated host.
// @Summary Create listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing body dto.CreateListingRequest true "Listing"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /listings [post]
func CreateListing(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	maxGuests := request.MaxGuests
	if maxGuests == 0 {
		maxGuests = 1
	}

	listing := models.Listing{
		HostID:        userID.(uint),
		Title:         request.Title,
		Description:   request.Description,
		Location:      request.Location,
		PricePerNight: request.PricePerNight,
		MaxGuests:     maxGuests,
		IsActive:      true,
		Avatar:        request.Avatar,
		Img:           request.Img,
	}

	if err := validator.ValidateListing(&listing); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&listing).Error; err != nil {
		response.ServerError(c)
		return
	}

	// keep the host's listing id array current
	var host models.User
	if err := config.DB.First(&host, listing.HostID).Error; err == nil {
		host.ListingIDs = append(host.ListingIDs, int64(listing.ID))
		if err := config.DB.Model(&host).Update("listing_ids", pq.Int64Array(host.ListingIDs)).Error; err != nil {
			log.Printf("Error updating host listing ids: %v", err)
		}
	}

	invalidateListingsCache()

	response.Success(c, convertToListingDetailResponse(listing))
}

// GetListingDetail returns one listing by id.
// @Summary Listing detail
// @Tags listings
// @Produce json
// @Param id path int true "Listing id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /listings/{id} [get]
func GetListingDetail(c *gin.Context) {
	id := c.Param("id")

	var listing models.Listing
	if err := config.DB.Preload("Host").First(&listing, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToListingDetailResponse(listing))
}

// UpdateListing mutates a listing, policy gated.
// @Summary Update listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing body dto.UpdateListingRequest true "Listing update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /listings [put]
func UpdateListing(c *gin.Context) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")

	var request dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !services.CanModifyListing(userID.(uint), userRole.(int), &listing) {
		response.Forbidden(c)
		return
	}

	if request.Title != "" {
		listing.Title = request.Title
	}
	if request.Description != "" {
		listing.Description = request.Description
	}
	if request.Location != "" {
		listing.Location = request.Location
	}
	if request.PricePerNight != nil {
		listing.PricePerNight = *request.PricePerNight
	}
	if request.MaxGuests != nil {
		listing.MaxGuests = *request.MaxGuests
	}
	if request.Avatar != "" {
		listing.Avatar = request.Avatar
	}
	if len(request.Img) > 0 {
		listing.Img = request.Img
	}

	if err := validator.ValidateListing(&listing); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&listing).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingsCache()

	response.Success(c, convertToListingDetailResponse(listing))
}

// ChangeListingStatus soft-activates or deactivates a listing. Listings are
// never hard-deleted through the API.
// @Summary Change listing active flag
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status body dto.ChangeListingStatusRequest true "Status change"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /listingStatus [put]
func ChangeListingStatus(c *gin.Context) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")

	var request dto.ChangeListingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !services.CanModifyListing(userID.(uint), userRole.(int), &listing) {
		response.Forbidden(c)
		return
	}

	listing.IsActive = request.IsActive
	if err := config.DB.Save(&listing).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingsCache()

	response.Success(c, convertToListingResponse(listing))
}

// GetListingBookings lists a listing's bookings, newest start date first.
// Restricted to the listing host and staff.
// @Summary Bookings of a listing
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /listings/{id}/bookings [get]
func GetListingBookings(c *gin.Context) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id is not valid")
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !services.CanModifyListing(userID.(uint), userRole.(int), &listing) {
		response.Forbidden(c)
		return
	}

	bookingRepo := services.NewGormBookingRepository(config.DB)
	bookings, err := bookingRepo.ListByListing(uint(id))
	if err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

// parseDateQuery reads an optional date query param.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return time.Time{}, false, nil
	}
	parsed, err := time.Parse(constants.DateLayout, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return parsed, true, nil
}
