package controllers

import (
	"strconv"
	"time"

	"github.com/Kiptoos/alx-travel-app-0x01/config"
	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/dto"
	"github.com/Kiptoos/alx-travel-app-0x01/errors"
	"github.com/Kiptoos/alx-travel-app-0x01/models"
	"github.com/Kiptoos/alx-travel-app-0x01/response"
	"github.com/Kiptoos/alx-travel-app-0x01/services"

	"github.com/gin-gonic/gin"
)

func bookingService() *services.BookingService {
	return services.NewBookingService(services.BookingServiceOptions{DB: config.DB})
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:   booking.ID,
		Code: booking.Code,
		Guest: dto.ActorResponse{
			Name:        booking.Guest.Name,
			Email:       booking.Guest.Email,
			PhoneNumber: booking.Guest.PhoneNumber,
		},
		Listing: dto.BookingListingResponse{
			ID:            booking.Listing.ID,
			Title:         booking.Listing.Title,
			Location:      booking.Listing.Location,
			PricePerNight: booking.Listing.PricePerNight,
			Avatar:        booking.Listing.Avatar,
		},
		StartDate:  booking.StartDate.Format(constants.DateLayout),
		EndDate:    booking.EndDate.Format(constants.DateLayout),
		Nights:     booking.Nights(),
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
	}
}

// respondBookingError maps AppError codes onto the HTTP envelope. Not-found
// covers both genuine misses and policy denials.
func respondBookingError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}
	switch appErr.Code {
	case errors.ErrCodeBookingNotFound, errors.ErrCodeListingNotFound:
		response.NotFound(c)
	case errors.ErrCodeDBError:
		response.ServerError(c)
	default:
		response.ValidationError(c, appErr.Message)
	}
}

// CreateBooking books a listing for the authenticated guest. Dates are
// validated and the total price derived unless explicitly supplied.
// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body dto.CreateBookingRequest true "Booking"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bookings [post]
func CreateBooking(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	booking, err := bookingService().Create(request, userID.(uint))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	var guest models.User
	if err := config.DB.First(&guest, booking.GuestID).Error; err == nil {
		booking.Guest = guest
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// GetBookingDetail returns one booking. Requesters outside the booking's
// guest, the listing host and staff get a 404, never a 403.
// @Summary Booking detail
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [get]
func GetBookingDetail(c *gin.Context) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id is not valid")
		return
	}

	booking, err := bookingService().GetVisible(uint(id), userID.(uint), userRole.(int))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// GetBookings lists bookings for staff, filterable by listing id and by a
// [from, to] date window (interval overlap, boundaries inclusive).
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param listing query int false "Listing id"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /bookings [get]
func GetBookings(c *gin.Context) {
	from, hasFrom, err := parseDateQuery(c, "from")
	if err != nil {
		response.BadRequest(c, "from is not a valid date")
		return
	}
	to, hasTo, err := parseDateQuery(c, "to")
	if err != nil {
		response.BadRequest(c, "to is not a valid date")
		return
	}

	bookingRepo := services.NewGormBookingRepository(config.DB)
	bookings, err := bookingRepo.ListAll()
	if err != nil {
		response.ServerError(c)
		return
	}

	listingStr := c.Query("listing")
	if listingStr != "" {
		listingID, err := strconv.Atoi(listingStr)
		if err != nil {
			response.BadRequest(c, "listing is not a valid id")
			return
		}
		bookings = services.FilterBookingsByListing(bookings, uint(listingID))
	}

	if hasFrom || hasTo {
		if !hasFrom {
			from = time.Time{}
		}
		if !hasTo {
			// open-ended window
			to = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		}
		bookings = services.FilterBookingsByWindow(bookings, from, to)
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

// GetMyBookings lists the authenticated guest's own bookings, newest first.
// @Summary My bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /my-bookings [get]
func GetMyBookings(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	bookingRepo := services.NewGormBookingRepository(config.DB)
	bookings, err := bookingRepo.ListByGuest(userID.(uint))
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

// ChangeBookingStatus confirms or cancels a pending booking.
// @Summary Change booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status body dto.ChangeBookingStatusRequest true "Status change"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookingStatus [put]
func ChangeBookingStatus(c *gin.Context) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")

	var request dto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	booking, err := bookingService().ChangeStatus(request.ID, request.Status, userID.(uint), userRole.(int))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}
