package tour

import (
	"math"
	"sort"

	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
)

const epsilon = 1e-9

// shareFraction returns the fraction of ids in a (counted with repetition)
// that also occur in b. An empty a scores 0.
func shareFraction(a, b []int) float64 {
	if len(a) == 0 {
		return 0
	}
	members := make(map[int]struct{}, len(b))
	for _, id := range b {
		members[id] = struct{}{}
	}
	shared := 0
	for _, id := range a {
		if _, ok := members[id]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(a))
}

// coerce replaces an absent or non-positive value with its default so the
// normalized-budget division can never hit a zero divisor.
func coerce(v *float64, def float64) float64 {
	if v == nil || *v <= 0 {
		return def
	}
	return *v
}

func normalizedBudget(budget, guests, duration *float64) float64 {
	b := coerce(budget, DefaultTargetBudget)
	g := coerce(guests, DefaultGuestCount)
	d := coerce(duration, DefaultDurationDays)
	return b / (g * d)
}

// similarity scores how comparable a historical option is to the request.
// Different destinations and the user's own options are hard filters and
// score negative infinity.
//
// The budget term is the relative difference of the two normalized budgets,
// a distance, yet it is added to the four shared fractions with a positive
// sign. That matches the observed behavior this engine replicates; do not
// invert it.
func similarity(user *entity.TourRequest, other *entity.TourOption) float64 {
	if user.DestinationCityID == nil || other.DestinationCityID == nil ||
		*user.DestinationCityID != *other.DestinationCityID {
		return math.Inf(-1)
	}
	if user.UserID == other.UserID {
		return math.Inf(-1)
	}

	sharedHotels := shareFraction(user.HotelIDs, other.HotelIDs)
	sharedActivities := shareFraction(user.ActivityIDs, other.ActivityIDs)
	sharedRestaurants := shareFraction(user.RestaurantIDs, other.RestaurantIDs)
	sharedTransports := shareFraction(user.TransportIDs, other.TransportIDs)

	userNorm := normalizedBudget(user.TargetBudget, user.GuestCount, user.DurationDays)
	otherNorm := normalizedBudget(other.TargetBudget, other.GuestCount, other.DurationDays)
	sharedBudget := math.Abs((userNorm - otherNorm) / (userNorm + otherNorm + epsilon))

	return sharedBudget + sharedHotels + sharedActivities + sharedTransports + sharedRestaurants
}

type neighbor struct {
	UserID string
	Score  float64
}

// topKNeighbors ranks catalog options by similarity to the request and
// returns the owners of the best k. Hard-filtered options are discarded;
// an empty result is valid.
func topKNeighbors(user *entity.TourRequest, catalog []entity.TourOption, k int) []neighbor {
	neighbors := make([]neighbor, 0, len(catalog))
	for i := range catalog {
		score := similarity(user, &catalog[i])
		if math.IsInf(score, -1) {
			continue
		}
		neighbors = append(neighbors, neighbor{UserID: catalog[i].UserID, Score: score})
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Score > neighbors[j].Score
	})
	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}
