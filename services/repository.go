package services

import (
	stderrors "errors"

	"github.com/Kiptoos/alx-travel-app-0x01/errors"
	"github.com/Kiptoos/alx-travel-app-0x01/models"

	"gorm.io/gorm"
)

// ListingRepository is the persistence surface the booking flow needs from
// listings.
type ListingRepository interface {
	GetByID(id uint) (*models.Listing, error)
}

// BookingRepository is the persistence surface for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	Save(booking *models.Booking) error
	ListByGuest(guestID uint) ([]models.Booking, error)
	ListByListing(listingID uint) ([]models.Booking, error)
	ListAll() ([]models.Booking, error)
	ListStalePending() ([]models.Booking, error)
}

// GormListingRepository backs ListingRepository with GORM.
type GormListingRepository struct {
	db *gorm.DB
}

func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

func (r *GormListingRepository) GetByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.Preload("Host").First(&listing, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeListingNotFound, "Listing not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load listing", err)
	}
	return &listing, nil
}

// GormBookingRepository backs BookingRepository with GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Could not create booking", err)
	}
	return nil
}

func (r *GormBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Preload("Listing").Preload("Guest").First(&booking, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Booking not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load booking", err)
	}
	return &booking, nil
}

func (r *GormBookingRepository) Save(booking *models.Booking) error {
	if err := r.db.Save(booking).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Could not save booking", err)
	}
	return nil
}

func (r *GormBookingRepository) ListByGuest(guestID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Listing").Preload("Guest").
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list bookings", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByListing(listingID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Listing").Preload("Guest").
		Where("listing_id = ?", listingID).
		Order("start_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list bookings", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Listing").Preload("Guest").
		Order("start_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list bookings", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListStalePending() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("status = ? AND end_date < CURRENT_DATE", models.BookingStatusPending).
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list stale bookings", err)
	}
	return bookings, nil
}
