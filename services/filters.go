package services

import (
	"sort"
	"strings"
	"time"

	"github.com/Kiptoos/alx-travel-app-0x01/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Sort keys accepted for listing queries. Anything else is ignored and the
// default ordering (created_at desc) applies.
const (
	SortByPrice     = "price_per_night"
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
)

// ListingFilterParams carries optional listing query filters. Nil pointer
// fields are no-ops.
type ListingFilterParams struct {
	MinPrice  *float64
	MaxPrice  *float64
	Available *bool
	Search    string
	SortBy    string
	SortOrder string
}

// FilterListings returns the subset of listings matching params, sorted.
// Pure; the input slice is not modified.
func FilterListings(listings []models.Listing, params ListingFilterParams) []models.Listing {
	filtered := make([]models.Listing, 0, len(listings))
	for _, listing := range listings {
		if params.MinPrice != nil && listing.PricePerNight < *params.MinPrice {
			continue
		}
		if params.MaxPrice != nil && listing.PricePerNight > *params.MaxPrice {
			continue
		}
		if params.Available != nil && listing.IsActive != *params.Available {
			continue
		}
		filtered = append(filtered, listing)
	}

	if params.Search != "" {
		filtered = searchListings(params.Search, filtered)
	}

	sortListings(filtered, params.SortBy, params.SortOrder)
	return filtered
}

func sortListings(listings []models.Listing, sortBy, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "desc")

	var less func(i, j int) bool
	switch sortBy {
	case SortByPrice:
		less = func(i, j int) bool { return listings[i].PricePerNight < listings[j].PricePerNight }
	case SortByCreatedAt:
		less = func(i, j int) bool { return listings[i].CreatedAt.Before(listings[j].CreatedAt) }
	case SortByUpdatedAt:
		less = func(i, j int) bool { return listings[i].UpdatedAt.Before(listings[j].UpdatedAt) }
	default:
		// unrecognized keys fall back to newest first
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.After(listings[j].CreatedAt)
		})
		return
	}

	if desc {
		sort.SliceStable(listings, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(listings, less)
	}
}

type scoredListing struct {
	listing models.Listing
	score   int
}

// searchListings ranks listings against a free-text query over title,
// location and description. Substring hits score highest, near matches via
// levenshtein similarity and the location matcher still qualify.
func searchListings(query string, listings []models.Listing) []models.Listing {
	query = normalizeInput(query)
	cmLocation := createMatcher(prepareLocationList(listings))

	scored := make([]scoredListing, 0, len(listings))
	for _, listing := range listings {
		score := scoreListing(query, listing, cmLocation)
		if score > 0 {
			scored = append(scored, scoredListing{listing: listing, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]models.Listing, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.listing)
	}
	return results
}

func scoreListing(query string, listing models.Listing, cmLocation *closestmatch.ClosestMatch) int {
	score := 0

	title := normalizeInput(listing.Title)
	location := normalizeInput(listing.Location)
	description := normalizeInput(listing.Description)

	if strings.Contains(title, query) {
		score += 13
	} else if calculateSimilarity(query, title) > 0.7 {
		score += 8
	}

	if strings.Contains(location, query) {
		score += 9
	} else if location != "" && cmLocation.Closest(query) == location && calculateSimilarity(query, location) > 0.5 {
		score += 4
	}

	if strings.Contains(description, query) {
		score += 3
	}

	return score
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

func prepareLocationList(listings []models.Listing) []string {
	uniqueValues := make(map[string]bool)
	for _, listing := range listings {
		if listing.Location != "" {
			uniqueValues[normalizeInput(listing.Location)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// FilterBookingsByWindow selects bookings overlapping [from, to], boundaries
// inclusive: booking.start <= to && booking.end >= from.
func FilterBookingsByWindow(bookings []models.Booking, from, to time.Time) []models.Booking {
	from = from.Truncate(24 * time.Hour)
	to = to.Truncate(24 * time.Hour)

	filtered := make([]models.Booking, 0, len(bookings))
	for _, booking := range bookings {
		start := booking.StartDate.Truncate(24 * time.Hour)
		end := booking.EndDate.Truncate(24 * time.Hour)
		if !start.After(to) && !end.Before(from) {
			filtered = append(filtered, booking)
		}
	}
	return filtered
}

// FilterBookingsByListing selects bookings of one listing. Composes with
// FilterBookingsByWindow.
func FilterBookingsByListing(bookings []models.Booking, listingID uint) []models.Booking {
	filtered := make([]models.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.ListingID == listingID {
			filtered = append(filtered, booking)
		}
	}
	return filtered
}
