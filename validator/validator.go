package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/errors"
	"github.com/Kiptoos/alx-travel-app-0x01/models"

	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
)

// Init registers the custom binding validations on gin's validator engine.
// Must run once before routes are served.
func Init() {
	if v, ok := binding.Validator.Engine().(*validatorv10.Validate); ok {
		v.RegisterValidation("bookdate", func(fl validatorv10.FieldLevel) bool {
			_, err := time.Parse(constants.DateLayout, fl.Field().String())
			return err == nil
		})
	}
}

// ValidateUser checks registration input.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email must not be empty", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must have at least 6 characters", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}

	if user.Role < constants.RoleGuest || user.Role > constants.RoleStaff {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is not valid", nil)
	}

	return nil
}

// ValidateListing checks the listing invariants before persisting.
func ValidateListing(listing *models.Listing) error {
	if listing.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "title must not be empty", nil)
	}

	if err := listing.ValidatePrice(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "pricePerNight must not be negative", err)
	}

	if err := listing.ValidateMaxGuests(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidGuests, "maxGuests must be at least 1", err)
	}

	return nil
}

// ValidateBookingDates enforces the temporal rules shared by every booking
// write path: start must not be after end, and end must not be in the past.
func ValidateBookingDates(start, end, today time.Time) error {
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	today = today.Truncate(24 * time.Hour)

	if start.After(end) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "startDate must not be after endDate", nil)
	}

	if end.Before(today) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "endDate must not be in the past", nil)
	}

	return nil
}

// ValidateBooking checks a booking against today's date.
func ValidateBooking(booking *models.Booking) error {
	if booking.ListingID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "listingId must not be empty", nil)
	}

	if err := ValidateBookingDates(booking.StartDate, booking.EndDate, time.Now()); err != nil {
		return err
	}

	if booking.TotalPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "totalPrice must not be negative", nil)
	}

	return nil
}

// ValidateBookingStatus accepts only the known status values.
func ValidateBookingStatus(status string) error {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("unknown booking status: %s", status), nil)
}

// ValidateReview checks the review invariants.
func ValidateReview(review *models.Review) error {
	if review.AuthorID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "authorId must not be empty", nil)
	}

	if review.ListingID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "listingId must not be empty", nil)
	}

	if review.Rating < 1 || review.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeInvalidRating, "rating must be between 1 and 5", nil)
	}

	return nil
}

// isValidEmail checks the email format.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone checks the phone number format.
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// ValidateEmail checks email format on its own.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}
	return nil
}

// ValidatePassword checks password strength.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password must have at least 6 characters", nil)
	}
	return nil
}
