package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	require.Equal(t, 3, Nights(date(2024, 1, 1), date(2024, 1, 4)))
	require.Equal(t, 0, Nights(date(2024, 1, 4), date(2024, 1, 4)))
	// inverted ranges floor at zero
	require.Equal(t, 0, Nights(date(2024, 1, 4), date(2024, 1, 1)))
}

func TestComputeTotalPrice(t *testing.T) {
	// listing at 100.00/night, 3 nights
	require.Equal(t, 300.00, ComputeTotalPrice(100.00, date(2024, 1, 1), date(2024, 1, 4)))

	// zero nights always price to zero
	require.Equal(t, 0.00, ComputeTotalPrice(100.00, date(2024, 1, 1), date(2024, 1, 1)))

	// rounding to cents
	require.Equal(t, 299.97, ComputeTotalPrice(99.99, date(2024, 1, 1), date(2024, 1, 4)))
	require.Equal(t, 59.97, ComputeTotalPrice(19.99, date(2024, 1, 1), date(2024, 1, 4)))

	// free listings stay free
	require.Equal(t, 0.00, ComputeTotalPrice(0, date(2024, 1, 1), date(2024, 1, 4)))
}

func TestRoundPrice(t *testing.T) {
	require.Equal(t, 10.01, RoundPrice(10.006))
	require.Equal(t, 10.0, RoundPrice(10.004))
}
