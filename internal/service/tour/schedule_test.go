package tour

import (
	"testing"

	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleFixtures() (activities, restaurants, hotels []entity.Place) {
	activities = []entity.Place{
		{ID: 1, Name: "Museum", Category: entity.CategoryActivity, Cost: 50, Rating: 9},
		{ID: 2, Name: "Walk", Category: entity.CategoryActivity, Cost: 40, Rating: 8},
		{ID: 3, Name: "Cruise", Category: entity.CategoryActivity, Cost: 30, Rating: 7},
		{ID: 4, Name: "Garden", Category: entity.CategoryActivity, Cost: 20, Rating: 6},
	}
	restaurants = []entity.Place{
		{ID: 10, Name: "Bistro", Category: entity.CategoryRestaurant, Cost: 25, Rating: 9},
		{ID: 11, Name: "Diner", Category: entity.CategoryRestaurant, Cost: 15, Rating: 7},
	}
	hotels = []entity.Place{
		{ID: 20, Name: "Grand", Category: entity.CategoryHotel, Cost: 80, Rating: 9},
	}
	return activities, restaurants, hotels
}

func TestBuildScheduleSlotLayout(t *testing.T) {
	activities, restaurants, hotels := scheduleFixtures()
	request := &entity.TourRequest{DurationDays: fp(1)}

	schedule, _ := buildSchedule(request, activities, restaurants, hotels)
	require.Len(t, schedule, 1)

	day := schedule[0]
	assert.Equal(t, 1, day.Day)
	require.Len(t, day.Items, 9)

	// Template order is preserved.
	wantCategories := []entity.PlaceCategory{
		entity.CategoryActivity, entity.CategoryActivity, entity.CategoryHotel,
		entity.CategoryRestaurant, entity.CategoryActivity, entity.CategoryActivity,
		entity.CategoryHotel, entity.CategoryRestaurant, entity.CategoryHotel,
	}
	for i, item := range day.Items {
		assert.Equal(t, wantCategories[i], item.Category)
	}
	assert.Equal(t, "08:00:00", day.Items[0].StartTime)
	assert.Equal(t, "23:00:00", day.Items[8].EndTime)
}

func TestBuildScheduleHotelChargedOncePerDay(t *testing.T) {
	activities, restaurants, hotels := scheduleFixtures()
	request := &entity.TourRequest{DurationDays: fp(2)}

	schedule, _ := buildSchedule(request, activities, restaurants, hotels)
	require.Len(t, schedule, 2)

	for _, day := range schedule {
		hotelCost := 0.0
		hotelSlots := 0
		for _, item := range day.Items {
			if item.Category == entity.CategoryHotel {
				hotelSlots++
				hotelCost += item.Cost
				assert.Equal(t, 20, item.PlaceID)
				if item.StartTime == "20:00:00" {
					assert.Equal(t, 80.0, item.Cost)
				} else {
					assert.Equal(t, 0.0, item.Cost)
				}
			}
		}
		assert.Equal(t, 3, hotelSlots)
		assert.Equal(t, 80.0, hotelCost)
	}
}

func TestBuildScheduleTotalCost(t *testing.T) {
	activities, restaurants, hotels := scheduleFixtures()
	request := &entity.TourRequest{DurationDays: fp(1)}

	_, total := buildSchedule(request, activities, restaurants, hotels)

	// 4 activities + 2 restaurants + 1 hotel night.
	assert.InDelta(t, 50+40+30+20+25+15+80, total, 1e-9)
}

func TestBuildScheduleRoundRobinAcrossDays(t *testing.T) {
	activities := []entity.Place{
		{ID: 1, Name: "A", Category: entity.CategoryActivity, Cost: 10},
		{ID: 2, Name: "B", Category: entity.CategoryActivity, Cost: 10},
		{ID: 3, Name: "C", Category: entity.CategoryActivity, Cost: 10},
	}
	restaurants := []entity.Place{{ID: 10, Name: "R", Category: entity.CategoryRestaurant, Cost: 10}}
	hotels := []entity.Place{{ID: 20, Name: "H", Category: entity.CategoryHotel, Cost: 10}}
	request := &entity.TourRequest{DurationDays: fp(2)}

	schedule, _ := buildSchedule(request, activities, restaurants, hotels)
	require.Len(t, schedule, 2)

	dayIDs := func(day entity.DaySchedule) []int {
		var ids []int
		for _, item := range day.Items {
			if item.Category == entity.CategoryActivity {
				ids = append(ids, item.PlaceID)
			}
		}
		return ids
	}

	// Day 1 tops the 3-item pool back up to fill 4 slots.
	assert.Equal(t, []int{1, 2, 3, 1}, dayIDs(schedule[0]))
	// Day 2 restarts from the full selection; the unfillable 4th slot is
	// omitted.
	assert.Equal(t, []int{1, 2, 3}, dayIDs(schedule[1]))
}

func TestBuildSchedulePlaceholders(t *testing.T) {
	request := &entity.TourRequest{DurationDays: fp(1)}

	schedule, total := buildSchedule(request, nil, nil, nil)
	require.Len(t, schedule, 1)

	assert.Equal(t, 0.0, total)
	names := make(map[string]bool)
	for _, item := range schedule[0].Items {
		names[item.PlaceName] = true
		assert.Equal(t, 0.0, item.Cost)
	}
	assert.True(t, names["Default Activity"])
	assert.True(t, names["Default Restaurant"])
	assert.True(t, names["Default Hotel"])
}

func TestBuildScheduleDurationFloorAndClamp(t *testing.T) {
	activities, restaurants, hotels := scheduleFixtures()

	schedule, _ := buildSchedule(&entity.TourRequest{DurationDays: fp(2.9)}, activities, restaurants, hotels)
	assert.Len(t, schedule, 2)

	schedule, _ = buildSchedule(&entity.TourRequest{DurationDays: fp(0.4)}, activities, restaurants, hotels)
	assert.Len(t, schedule, 1)

	// Absent duration takes the default.
	schedule, _ = buildSchedule(&entity.TourRequest{}, activities, restaurants, hotels)
	assert.Len(t, schedule, 3)
}
