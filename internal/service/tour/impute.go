package tour

import (
	"errors"
	"sort"

	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
	"gonum.org/v1/gonum/mat"
)

// imputeAllFields fills every absent request field from the neighbor set:
// numeric fields take the neighbor mean (1.0 when no neighbor has the
// field), city fields the most frequent neighbor value, and each empty
// preference list the 3 ids occurring most often across the neighbors'
// corresponding lists.
func imputeAllFields(request *entity.TourRequest, neighbors []entity.TourOption) {
	if request.GuestCount == nil {
		request.GuestCount = ptrFloat(meanField(neighbors, func(o *entity.TourOption) *float64 { return o.GuestCount }))
	}
	if request.DurationDays == nil {
		request.DurationDays = ptrFloat(meanField(neighbors, func(o *entity.TourOption) *float64 { return o.DurationDays }))
	}
	if request.TargetBudget == nil {
		if mean, ok := meanFieldOK(neighbors, func(o *entity.TourOption) *float64 { return o.TargetBudget }); ok {
			request.TargetBudget = ptrFloat(mean)
		}
	}

	if request.StartCityID == nil {
		request.StartCityID = modeField(neighbors, func(o *entity.TourOption) *int { return o.StartCityID })
	}
	if request.DestinationCityID == nil {
		request.DestinationCityID = modeField(neighbors, func(o *entity.TourOption) *int { return o.DestinationCityID })
	}

	if len(request.HotelIDs) == 0 {
		request.HotelIDs = topFrequentIDs(neighbors, func(o *entity.TourOption) []int { return o.HotelIDs }, 3)
	}
	if len(request.ActivityIDs) == 0 {
		request.ActivityIDs = topFrequentIDs(neighbors, func(o *entity.TourOption) []int { return o.ActivityIDs }, 3)
	}
	if len(request.RestaurantIDs) == 0 {
		request.RestaurantIDs = topFrequentIDs(neighbors, func(o *entity.TourOption) []int { return o.RestaurantIDs }, 3)
	}
	if len(request.TransportIDs) == 0 {
		request.TransportIDs = topFrequentIDs(neighbors, func(o *entity.TourOption) []int { return o.TransportIDs }, 3)
	}
}

// imputeBudget is the fallback when target budget is still unset after
// imputeAllFields: an ordinary least-squares fit of neighbor budget on
// (duration, guests), evaluated at the request's own values. Without a
// usable neighbor row, or when the solve fails outright, the budget falls
// back to DefaultTargetBudget. Never an error; imputation shortfalls are
// resolved locally.
func imputeBudget(request *entity.TourRequest, neighbors []entity.TourOption) {
	var durations, guests, budgets []float64
	for i := range neighbors {
		o := &neighbors[i]
		if o.DurationDays == nil || o.GuestCount == nil || o.TargetBudget == nil {
			continue
		}
		durations = append(durations, *o.DurationDays)
		guests = append(guests, *o.GuestCount)
		budgets = append(budgets, *o.TargetBudget)
	}
	if len(budgets) == 0 {
		request.TargetBudget = ptrFloat(DefaultTargetBudget)
		return
	}

	rows := len(budgets)
	design := mat.NewDense(rows, 3, nil)
	for i := 0; i < rows; i++ {
		design.Set(i, 0, 1) // intercept
		design.Set(i, 1, durations[i])
		design.Set(i, 2, guests[i])
	}
	response := mat.NewVecDense(rows, budgets)

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(design, response); err != nil {
		// A Condition error still carries a usable least-squares solution;
		// everything else means the fit is not possible.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			request.TargetBudget = ptrFloat(DefaultTargetBudget)
			return
		}
	}

	d := coerce(request.DurationDays, DefaultDurationDays)
	g := coerce(request.GuestCount, DefaultGuestCount)
	predicted := coeffs.AtVec(0) + coeffs.AtVec(1)*d + coeffs.AtVec(2)*g
	request.TargetBudget = ptrFloat(predicted)
}

func meanField(neighbors []entity.TourOption, field func(*entity.TourOption) *float64) float64 {
	if mean, ok := meanFieldOK(neighbors, field); ok {
		return mean
	}
	return 1.0
}

func meanFieldOK(neighbors []entity.TourOption, field func(*entity.TourOption) *float64) (float64, bool) {
	sum, n := 0.0, 0
	for i := range neighbors {
		if v := field(&neighbors[i]); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// modeField returns the most frequent present value, smallest value on
// frequency ties, nil when no neighbor has the field.
func modeField(neighbors []entity.TourOption, field func(*entity.TourOption) *int) *int {
	counts := make(map[int]int)
	for i := range neighbors {
		if v := field(&neighbors[i]); v != nil {
			counts[*v]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	best, bestCount := 0, -1
	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best, bestCount = value, count
		}
	}
	return ptrInt(best)
}

// topFrequentIDs flattens the neighbors' id lists and returns the limit
// most frequent ids, first-seen order breaking frequency ties.
func topFrequentIDs(neighbors []entity.TourOption, field func(*entity.TourOption) []int, limit int) []int {
	counts := make(map[int]int)
	firstSeen := make(map[int]int)
	order := 0
	for i := range neighbors {
		for _, id := range field(&neighbors[i]) {
			if _, ok := counts[id]; !ok {
				firstSeen[id] = order
			}
			counts[id]++
			order++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return firstSeen[ids[i]] < firstSeen[ids[j]]
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

func ptrFloat(v float64) *float64 { return &v }

func ptrInt(v int) *int { return &v }
