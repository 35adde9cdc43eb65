package tour

import (
	"sort"

	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
)

// Fixed share of the daily budget allotted to each place category.
const (
	activityBudgetWeight   = 0.4
	restaurantBudgetWeight = 0.3
	hotelBudgetWeight      = 0.3
)

// selectPlaces picks the places an itinerary at the request's destination
// needs: enough unique activities and restaurants to fill one full
// duration's worth of slots (capped by catalog size) and exactly one hotel.
func (s *TourService) selectPlaces(request *entity.TourRequest) (activities, restaurants, hotels []entity.Place, err error) {
	cityID := 0
	if request.DestinationCityID != nil {
		cityID = *request.DestinationCityID
	}
	duration := coerce(request.DurationDays, DefaultDurationDays)
	budget := coerce(request.TargetBudget, DefaultTargetBudget)
	dailyBudget := budget / duration

	activityCatalog, err := s.catalogRepo.GetActivities(cityID)
	if err != nil {
		return nil, nil, nil, catalogErr("listing activities", err)
	}
	restaurantCatalog, err := s.catalogRepo.GetRestaurants(cityID)
	if err != nil {
		return nil, nil, nil, catalogErr("listing restaurants", err)
	}
	hotelCatalog, err := s.catalogRepo.GetHotels(cityID)
	if err != nil {
		return nil, nil, nil, catalogErr("listing hotels", err)
	}

	activityPool := make([]entity.Place, len(activityCatalog))
	for i, a := range activityCatalog {
		activityPool[i] = a.Place()
	}
	restaurantPool := make([]entity.Place, len(restaurantCatalog))
	for i, r := range restaurantCatalog {
		restaurantPool[i] = r.Place()
	}
	hotelPool := make([]entity.Place, len(hotelCatalog))
	for i, h := range hotelCatalog {
		hotelPool[i] = h.Place()
	}

	uniqueActivities := min(len(activityPool), int(float64(slotsPerDay(entity.CategoryActivity))*duration))
	uniqueRestaurants := min(len(restaurantPool), int(float64(slotsPerDay(entity.CategoryRestaurant))*duration))

	activities = pickWithBudget(activityPool, request.ActivityIDs, uniqueActivities, dailyBudget*activityBudgetWeight)
	restaurants = pickWithBudget(restaurantPool, request.RestaurantIDs, uniqueRestaurants, dailyBudget*restaurantBudgetWeight)
	hotels = pickWithBudget(hotelPool, request.HotelIDs, 1, dailyBudget*hotelBudgetWeight)
	return activities, restaurants, hotels, nil
}

// pickWithBudget picks count places, best rating first, under a
// per-category budget ceiling. Candidates are restricted to the preferred
// ids when any match; the first pick is accepted even when it alone blows
// the ceiling, and any shortfall is topped up with the cheapest unaccepted
// candidates, ceiling ignored.
func pickWithBudget(candidates []entity.Place, preferredIDs []int, count int, ceiling float64) []entity.Place {
	preferred := make(map[int]struct{}, len(preferredIDs))
	for _, id := range preferredIDs {
		preferred[id] = struct{}{}
	}
	selected := make([]entity.Place, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := preferred[c.ID]; ok {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		selected = append(selected, candidates...)
	}

	byRating := make([]entity.Place, len(selected))
	copy(byRating, selected)
	sort.SliceStable(byRating, func(i, j int) bool {
		return byRating[i].Rating > byRating[j].Rating
	})

	picked := make([]entity.Place, 0, count)
	pickedIDs := make(map[int]struct{}, count)
	totalCost := 0.0
	for _, item := range byRating {
		if totalCost+item.Cost <= ceiling || len(picked) == 0 {
			picked = append(picked, item)
			pickedIDs[item.ID] = struct{}{}
			totalCost += item.Cost
		}
		if len(picked) == count {
			break
		}
	}

	if len(picked) < count {
		remaining := make([]entity.Place, 0, len(byRating)-len(picked))
		for _, item := range byRating {
			if _, ok := pickedIDs[item.ID]; !ok {
				remaining = append(remaining, item)
			}
		}
		sort.SliceStable(remaining, func(i, j int) bool {
			return remaining[i].Cost < remaining[j].Cost
		})
		if fill := count - len(picked); fill < len(remaining) {
			remaining = remaining[:fill]
		}
		picked = append(picked, remaining...)
	}

	return picked
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
