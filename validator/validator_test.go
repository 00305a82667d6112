package validator

import (
	"testing"
	"time"

	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/errors"
	"github.com/Kiptoos/alx-travel-app-0x01/models"

	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidateBookingDates(t *testing.T) {
	today := date("2024-03-10")

	tests := []struct {
		name     string
		start    string
		end      string
		wantCode errors.ErrorCode
	}{
		{name: "valid future range", start: "2024-03-12", end: "2024-03-15"},
		{name: "single day stay", start: "2024-03-12", end: "2024-03-12"},
		{name: "ends today", start: "2024-03-08", end: "2024-03-10"},
		{name: "start after end", start: "2024-03-15", end: "2024-03-12", wantCode: errors.ErrCodeInvalidDateRange},
		{name: "ended yesterday", start: "2024-03-05", end: "2024-03-09", wantCode: errors.ErrCodeInvalidDateRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBookingDates(date(tc.start), date(tc.end), today)
			if tc.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, tc.wantCode, errors.GetAppError(err).Code)
		})
	}
}

func TestValidateBookingDatesIgnoresTimeOfDay(t *testing.T) {
	// a timestamp later in the day must not push the date past "today"
	today := date("2024-03-10").Add(15 * time.Hour)
	err := ValidateBookingDates(date("2024-03-10"), date("2024-03-10"), today)
	require.NoError(t, err)
}

func TestValidateBookingStatus(t *testing.T) {
	require.NoError(t, ValidateBookingStatus(models.BookingStatusPending))
	require.NoError(t, ValidateBookingStatus(models.BookingStatusConfirmed))
	require.NoError(t, ValidateBookingStatus(models.BookingStatusCancelled))

	err := ValidateBookingStatus("archived")
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeInvalidStatus, errors.GetAppError(err).Code)

	err = ValidateBookingStatus("")
	require.Error(t, err)
}

func TestValidateListing(t *testing.T) {
	listing := &models.Listing{Title: "Seaside Cottage", PricePerNight: 80, MaxGuests: 2}
	require.NoError(t, ValidateListing(listing))

	t.Run("empty title", func(t *testing.T) {
		err := ValidateListing(&models.Listing{PricePerNight: 80, MaxGuests: 2})
		require.Error(t, err)
		require.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)
	})

	t.Run("negative price", func(t *testing.T) {
		err := ValidateListing(&models.Listing{Title: "Bad", PricePerNight: -1, MaxGuests: 2})
		require.Error(t, err)
		require.Equal(t, errors.ErrCodeInvalidPrice, errors.GetAppError(err).Code)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		require.NoError(t, ValidateListing(&models.Listing{Title: "Free stay", PricePerNight: 0, MaxGuests: 1}))
	})

	t.Run("zero guests", func(t *testing.T) {
		err := ValidateListing(&models.Listing{Title: "Bad", PricePerNight: 80})
		require.Error(t, err)
		require.Equal(t, errors.ErrCodeInvalidGuests, errors.GetAppError(err).Code)
	})
}

func TestValidateReview(t *testing.T) {
	valid := &models.Review{AuthorID: 1, ListingID: 1, Rating: 4}
	require.NoError(t, ValidateReview(valid))

	for _, rating := range []int{0, -1, 6} {
		err := ValidateReview(&models.Review{AuthorID: 1, ListingID: 1, Rating: rating})
		require.Error(t, err, "rating %d should be rejected", rating)
		require.Equal(t, errors.ErrCodeInvalidRating, errors.GetAppError(err).Code)
	}

	for _, rating := range []int{1, 5} {
		require.NoError(t, ValidateReview(&models.Review{AuthorID: 1, ListingID: 1, Rating: rating}))
	}

	err := ValidateReview(&models.Review{ListingID: 1, Rating: 3})
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)

	err = ValidateReview(&models.Review{AuthorID: 1, Rating: 3})
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)
}

func TestValidateUser(t *testing.T) {
	valid := &models.User{Email: "guest@example.com", Password: "secret1", Role: constants.RoleGuest}
	require.NoError(t, ValidateUser(valid))

	t.Run("bad email", func(t *testing.T) {
		err := ValidateUser(&models.User{Email: "not-an-email", Password: "secret1"})
		require.Error(t, err)
		require.Equal(t, errors.ErrCodeInvalidEmail, errors.GetAppError(err).Code)
	})

	t.Run("short password", func(t *testing.T) {
		err := ValidateUser(&models.User{Email: "guest@example.com", Password: "abc"})
		require.Error(t, err)
		require.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)
	})

	t.Run("bad phone", func(t *testing.T) {
		err := ValidateUser(&models.User{Email: "guest@example.com", Password: "secret1", PhoneNumber: "12345"})
		require.Error(t, err)
		require.Equal(t, errors.ErrCodeInvalidPhone, errors.GetAppError(err).Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		err := ValidateUser(&models.User{Email: "guest@example.com", Password: "secret1", Role: 9})
		require.Error(t, err)
		require.Equal(t, errors.ErrCodeInvalidRole, errors.GetAppError(err).Code)
	})
}
