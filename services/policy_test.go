package services

import (
	"testing"

	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/models"

	"github.com/stretchr/testify/require"
)

func TestCanModifyListing(t *testing.T) {
	listing := &models.Listing{ID: 1, HostID: 10}

	require.True(t, CanModifyListing(10, constants.RoleHost, listing))
	require.True(t, CanModifyListing(99, constants.RoleStaff, listing))

	// anyone else is denied
	require.False(t, CanModifyListing(11, constants.RoleHost, listing))
	require.False(t, CanModifyListing(11, constants.RoleGuest, listing))

	// no ownership means no access: deny by default
	require.False(t, CanModifyListing(11, constants.RoleHost, &models.Listing{ID: 2}))
	require.False(t, CanModifyListing(0, constants.RoleHost, &models.Listing{ID: 2}))
	require.False(t, CanModifyListing(10, constants.RoleHost, nil))
}

func TestCanViewBooking(t *testing.T) {
	booking := &models.Booking{
		ID:      1,
		GuestID: 20,
		Listing: models.Listing{ID: 1, HostID: 10},
	}

	require.True(t, CanViewBooking(20, constants.RoleGuest, booking))
	require.True(t, CanViewBooking(10, constants.RoleHost, booking))
	require.True(t, CanViewBooking(99, constants.RoleStaff, booking))

	// another guest sees nothing
	require.False(t, CanViewBooking(21, constants.RoleGuest, booking))
	require.False(t, CanViewBooking(11, constants.RoleHost, booking))
	require.False(t, CanViewBooking(20, constants.RoleGuest, nil))
}
