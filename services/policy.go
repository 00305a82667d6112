package services

import (
	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/models"
)

// CanModifyListing decides whether the requester may mutate a listing.
// Only the owning host and staff qualify; everything else is denied.
func CanModifyListing(userID uint, role int, listing *models.Listing) bool {
	if listing == nil {
		return false
	}
	if role == constants.RoleStaff {
		return true
	}
	return listing.HostID != 0 && listing.HostID == userID
}

// CanViewBooking decides whether the requester may see or mutate a booking:
// staff, the booking's guest, or the listing's host. Callers must surface a
// denial as not-found so unauthorized users cannot probe for existence.
func CanViewBooking(userID uint, role int, booking *models.Booking) bool {
	if booking == nil {
		return false
	}
	if role == constants.RoleStaff {
		return true
	}
	if booking.GuestID == userID {
		return true
	}
	return booking.Listing.HostID != 0 && booking.Listing.HostID == userID
}
