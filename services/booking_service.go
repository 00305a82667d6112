package services

import (
	"time"

	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/dto"
	"github.com/Kiptoos/alx-travel-app-0x01/errors"
	"github.com/Kiptoos/alx-travel-app-0x01/models"
	"github.com/Kiptoos/alx-travel-app-0x01/services/logger"
	"github.com/Kiptoos/alx-travel-app-0x01/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService owns every booking write path so the date validation and the
// price derivation are applied uniformly no matter which handler the request
// came through.
type BookingService struct {
	listings ListingRepository
	bookings BookingRepository
	logger   logger.Logger
}

type BookingServiceOptions struct {
	DB       *gorm.DB
	Listings ListingRepository
	Bookings BookingRepository
	Logger   logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	listings := opts.Listings
	bookings := opts.Bookings
	if listings == nil {
		listings = NewGormListingRepository(opts.DB)
	}
	if bookings == nil {
		bookings = NewGormBookingRepository(opts.DB)
	}
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		listings: listings,
		bookings: bookings,
		logger:   l,
	}
}

// Create validates and persists a new booking for guestID. The listing must
// exist and be active; a bad listing reference fails the whole create rather
// than saving an unpriced record. When the request carries no price (or an
// explicit zero), the total is derived from the nightly rate.
func (s *BookingService) Create(request dto.CreateBookingRequest, guestID uint) (*models.Booking, error) {
	startDate, err := time.Parse(constants.DateLayout, request.StartDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "startDate is not a valid date", err)
	}

	endDate, err := time.Parse(constants.DateLayout, request.EndDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "endDate is not a valid date", err)
	}

	if err := validator.ValidateBookingDates(startDate, endDate, time.Now()); err != nil {
		return nil, err
	}

	if request.TotalPrice < 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPrice, "totalPrice must not be negative", nil)
	}

	listing, err := s.listings.GetByID(request.ListingID)
	if err != nil {
		return nil, err
	}

	if !listing.IsActive {
		return nil, errors.NewAppError(errors.ErrCodeListingInactive, "Listing is not open for booking", nil)
	}

	booking := &models.Booking{
		Code:       uuid.NewString(),
		ListingID:  listing.ID,
		GuestID:    guestID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     models.BookingStatusPending,
		TotalPrice: request.TotalPrice,
	}

	// An explicitly supplied non-zero price wins over the derived one.
	if booking.TotalPrice == 0 {
		booking.TotalPrice = ComputeTotalPrice(listing.PricePerNight, startDate, endDate)
	}

	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking %s created: listing=%d guest=%d nights=%d total=%.2f",
		booking.Code, booking.ListingID, booking.GuestID, booking.Nights(), booking.TotalPrice)

	booking.Listing = *listing
	return booking, nil
}

// ChangeStatus moves a booking along pending -> confirmed | cancelled. The
// requester must pass the booking visibility policy; denials read as
// not-found.
func (s *BookingService) ChangeStatus(bookingID uint, status string, userID uint, role int) (*models.Booking, error) {
	if err := validator.ValidateBookingStatus(status); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if !CanViewBooking(userID, role, booking) {
		return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Booking not found", nil)
	}

	if booking.Status != models.BookingStatusPending && booking.Status != status {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus,
			"Only pending bookings can change status", nil)
	}

	booking.Status = status
	if err := s.bookings.Save(booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking %d status changed to %s by user %d", booking.ID, status, userID)
	return booking, nil
}

// GetVisible loads a booking and applies the visibility policy. Unauthorized
// requesters get a not-found error, never a forbidden one.
func (s *BookingService) GetVisible(bookingID uint, userID uint, role int) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if !CanViewBooking(userID, role, booking) {
		return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Booking not found", nil)
	}

	return booking, nil
}

// ExpireStalePending cancels pending bookings whose end date has passed.
// Ran from the daily cron job.
func (s *BookingService) ExpireStalePending() (int, error) {
	stale, err := s.bookings.ListStalePending()
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range stale {
		stale[i].Status = models.BookingStatusCancelled
		if err := s.bookings.Save(&stale[i]); err != nil {
			s.logger.Error("could not expire booking %d: %v", stale[i].ID, err)
			continue
		}
		expired++
	}

	if expired > 0 {
		s.logger.Info("expired %d stale pending bookings", expired)
	}
	return expired, nil
}
