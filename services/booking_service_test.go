package services

import (
	"testing"
	"time"

	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/dto"
	"github.com/Kiptoos/alx-travel-app-0x01/errors"
	"github.com/Kiptoos/alx-travel-app-0x01/models"

	"github.com/stretchr/testify/require"
)

type fakeListingRepo struct {
	listings map[uint]*models.Listing
}

func (r *fakeListingRepo) GetByID(id uint) (*models.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeListingNotFound, "Listing not found", nil)
	}
	copied := *listing
	return &copied, nil
}

type fakeBookingRepo struct {
	bookings map[uint]*models.Booking
	listings map[uint]*models.Listing
	nextID   uint
}

func newFakeBookingRepo(listings map[uint]*models.Listing) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[uint]*models.Booking{},
		listings: listings,
		nextID:   1,
	}
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	booking.ID = r.nextID
	r.nextID++
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

// GetByID mirrors the association preload the real repository does.
func (r *fakeBookingRepo) GetByID(id uint) (*models.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Booking not found", nil)
	}
	copied := *booking
	if listing, ok := r.listings[copied.ListingID]; ok {
		copied.Listing = *listing
	}
	return &copied, nil
}

func (r *fakeBookingRepo) Save(booking *models.Booking) error {
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) ListByGuest(guestID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.GuestID == guestID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByListing(listingID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ListingID == listingID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) ListStalePending() ([]models.Booking, error) {
	today := time.Now().Truncate(24 * time.Hour)
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.BookingStatusPending && b.EndDate.Before(today) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func newTestService(listings map[uint]*models.Listing) (*BookingService, *fakeBookingRepo) {
	bookingRepo := newFakeBookingRepo(listings)
	svc := NewBookingService(BookingServiceOptions{
		Listings: &fakeListingRepo{listings: listings},
		Bookings: bookingRepo,
	})
	return svc, bookingRepo
}

func futureDate(daysAhead int) string {
	return time.Now().AddDate(0, 0, daysAhead).Format(constants.DateLayout)
}

func activeListing(id uint, rate float64) map[uint]*models.Listing {
	return map[uint]*models.Listing{
		id: {ID: id, HostID: 10, Title: "Test listing", PricePerNight: rate, MaxGuests: 2, IsActive: true},
	}
}

func TestCreateBookingDerivesPrice(t *testing.T) {
	svc, _ := newTestService(activeListing(1, 100.00))

	booking, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 1,
		StartDate: futureDate(10),
		EndDate:   futureDate(13),
	}, 20)

	require.NoError(t, err)
	require.Equal(t, 300.00, booking.TotalPrice)
	require.Equal(t, 3, booking.Nights())
	require.Equal(t, models.BookingStatusPending, booking.Status)
	require.NotEmpty(t, booking.Code)
}

func TestCreateBookingKeepsExplicitPrice(t *testing.T) {
	svc, _ := newTestService(activeListing(1, 100.00))

	booking, err := svc.Create(dto.CreateBookingRequest{
		ListingID:  1,
		StartDate:  futureDate(10),
		EndDate:    futureDate(13),
		TotalPrice: 250.00,
	}, 20)

	require.NoError(t, err)
	require.Equal(t, 250.00, booking.TotalPrice)
}

func TestCreateBookingZeroNights(t *testing.T) {
	svc, _ := newTestService(activeListing(1, 100.00))

	booking, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 1,
		StartDate: futureDate(10),
		EndDate:   futureDate(10),
	}, 20)

	require.NoError(t, err)
	require.Equal(t, 0, booking.Nights())
	require.Equal(t, 0.00, booking.TotalPrice)
}

func TestCreateBookingRejectsInvertedRange(t *testing.T) {
	svc, repo := newTestService(activeListing(1, 100.00))

	_, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 1,
		StartDate: futureDate(13),
		EndDate:   futureDate(10),
	}, 20)

	require.Error(t, err)
	require.Equal(t, errors.ErrCodeInvalidDateRange, errors.GetAppError(err).Code)
	require.Empty(t, repo.bookings)
}

func TestCreateBookingRejectsPastEndDate(t *testing.T) {
	svc, repo := newTestService(activeListing(1, 100.00))

	_, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 1,
		StartDate: futureDate(-5),
		EndDate:   futureDate(-2),
	}, 20)

	require.Error(t, err)
	require.Equal(t, errors.ErrCodeInvalidDateRange, errors.GetAppError(err).Code)
	require.Empty(t, repo.bookings)
}

func TestCreateBookingFailsOnMissingListing(t *testing.T) {
	svc, repo := newTestService(map[uint]*models.Listing{})

	_, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 42,
		StartDate: futureDate(10),
		EndDate:   futureDate(13),
	}, 20)

	require.Error(t, err)
	require.Equal(t, errors.ErrCodeListingNotFound, errors.GetAppError(err).Code)
	require.Empty(t, repo.bookings)
}

func TestCreateBookingRejectsInactiveListing(t *testing.T) {
	listings := map[uint]*models.Listing{
		1: {ID: 1, HostID: 10, PricePerNight: 100, MaxGuests: 2, IsActive: false},
	}
	svc, repo := newTestService(listings)

	_, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 1,
		StartDate: futureDate(10),
		EndDate:   futureDate(13),
	}, 20)

	require.Error(t, err)
	require.Equal(t, errors.ErrCodeListingInactive, errors.GetAppError(err).Code)
	require.Empty(t, repo.bookings)
}

func TestCreateBookingRejectsNegativePrice(t *testing.T) {
	svc, _ := newTestService(activeListing(1, 100.00))

	_, err := svc.Create(dto.CreateBookingRequest{
		ListingID:  1,
		StartDate:  futureDate(10),
		EndDate:    futureDate(13),
		TotalPrice: -1,
	}, 20)

	require.Error(t, err)
	require.Equal(t, errors.ErrCodeInvalidPrice, errors.GetAppError(err).Code)
}

func TestChangeStatusTransitions(t *testing.T) {
	svc, _ := newTestService(activeListing(1, 100.00))

	booking, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 1,
		StartDate: futureDate(10),
		EndDate:   futureDate(13),
	}, 20)
	require.NoError(t, err)

	// the guest confirms their own booking
	updated, err := svc.ChangeStatus(booking.ID, models.BookingStatusConfirmed, 20, constants.RoleGuest)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusConfirmed, updated.Status)

	// confirmed bookings cannot move again
	_, err = svc.ChangeStatus(booking.ID, models.BookingStatusCancelled, 20, constants.RoleGuest)
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeInvalidStatus, errors.GetAppError(err).Code)

	// unknown status values are rejected up front
	_, err = svc.ChangeStatus(booking.ID, "archived", 20, constants.RoleGuest)
	require.Error(t, err)
}

func TestChangeStatusHiddenFromStrangers(t *testing.T) {
	svc, _ := newTestService(activeListing(1, 100.00))

	booking, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 1,
		StartDate: futureDate(10),
		EndDate:   futureDate(13),
	}, 20)
	require.NoError(t, err)

	// a stranger gets not-found, not forbidden
	_, err = svc.ChangeStatus(booking.ID, models.BookingStatusCancelled, 77, constants.RoleGuest)
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeBookingNotFound, errors.GetAppError(err).Code)
}

func TestGetVisible(t *testing.T) {
	svc, _ := newTestService(activeListing(1, 100.00))

	booking, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 1,
		StartDate: futureDate(10),
		EndDate:   futureDate(13),
	}, 20)
	require.NoError(t, err)

	got, err := svc.GetVisible(booking.ID, 20, constants.RoleGuest)
	require.NoError(t, err)
	require.Equal(t, booking.ID, got.ID)

	// listing host sees it too
	_, err = svc.GetVisible(booking.ID, 10, constants.RoleHost)
	require.NoError(t, err)

	// unauthorized viewers get not-found
	_, err = svc.GetVisible(booking.ID, 77, constants.RoleGuest)
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeBookingNotFound, errors.GetAppError(err).Code)
}

func TestExpireStalePending(t *testing.T) {
	svc, repo := newTestService(activeListing(1, 100.00))

	stale := &models.Booking{
		ListingID: 1,
		GuestID:   20,
		StartDate: time.Now().AddDate(0, 0, -10),
		EndDate:   time.Now().AddDate(0, 0, -5),
		Status:    models.BookingStatusPending,
	}
	require.NoError(t, repo.Create(stale))

	fresh, err := svc.Create(dto.CreateBookingRequest{
		ListingID: 1,
		StartDate: futureDate(10),
		EndDate:   futureDate(13),
	}, 20)
	require.NoError(t, err)

	expired, err := svc.ExpireStalePending()
	require.NoError(t, err)
	require.Equal(t, 1, expired)

	got, err := repo.GetByID(stale.ID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusCancelled, got.Status)

	got, err = repo.GetByID(fresh.ID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusPending, got.Status)
}
