package tour

import "github.com/smarttravel/SmartTravelTour/internal/model/entity"

// timeSlots is the invariant daily template: 4 activity slots, 2 restaurant
// slots and 3 hotel slots in fixed chronological order, identical for every
// day of every itinerary.
var timeSlots = []entity.TimeSlot{
	{StartTime: "08:00:00", EndTime: "09:30:00", Category: entity.CategoryActivity},
	{StartTime: "09:30:00", EndTime: "11:00:00", Category: entity.CategoryActivity},
	{StartTime: "11:00:00", EndTime: "12:00:00", Category: entity.CategoryHotel},
	{StartTime: "12:00:00", EndTime: "14:00:00", Category: entity.CategoryRestaurant},
	{StartTime: "14:00:00", EndTime: "15:00:00", Category: entity.CategoryActivity},
	{StartTime: "15:00:00", EndTime: "16:30:00", Category: entity.CategoryActivity},
	{StartTime: "16:30:00", EndTime: "18:00:00", Category: entity.CategoryHotel},
	{StartTime: "18:00:00", EndTime: "20:00:00", Category: entity.CategoryRestaurant},
	{StartTime: "20:00:00", EndTime: "23:00:00", Category: entity.CategoryHotel},
}

func slotsPerDay(category entity.PlaceCategory) int {
	n := 0
	for _, slot := range timeSlots {
		if slot.Category == category {
			n++
		}
	}
	return n
}

// lastHotelSlotStart is the start of the chronologically last hotel slot;
// the single nightly hotel charge lands there.
func lastHotelSlotStart() string {
	last := ""
	for _, slot := range timeSlots {
		if slot.Category == entity.CategoryHotel && slot.StartTime > last {
			last = slot.StartTime
		}
	}
	return last
}

// buildSchedule packs the selected places into the fixed slot template for
// each day of the trip and returns the schedule with the total cost of
// every scheduled item. Empty selections are replaced by a zero-cost
// placeholder so synthesis never fails; one hotel covers all hotel slots
// of a day and is charged only once per night.
func buildSchedule(request *entity.TourRequest, activities, restaurants, hotels []entity.Place) ([]entity.DaySchedule, float64) {
	duration := int(coerce(request.DurationDays, DefaultDurationDays))
	if duration < 1 {
		duration = 1
	}

	if len(activities) == 0 {
		activities = []entity.Place{{Name: "Default Activity", Category: entity.CategoryActivity}}
	}
	if len(restaurants) == 0 {
		restaurants = []entity.Place{{Name: "Default Restaurant", Category: entity.CategoryRestaurant}}
	}
	if len(hotels) == 0 {
		hotels = []entity.Place{{Name: "Default Hotel", Category: entity.CategoryHotel}}
	}

	hotel := hotels[0]
	activitySlots := slotsPerDay(entity.CategoryActivity)
	restaurantSlots := slotsPerDay(entity.CategoryRestaurant)
	chargedSlotStart := lastHotelSlotStart()

	dayActivities := assignPerDay(activities, activitySlots, duration)
	dayRestaurants := assignPerDay(restaurants, restaurantSlots, duration)

	schedule := make([]entity.DaySchedule, 0, duration)
	totalCost := 0.0
	for day := 1; day <= duration; day++ {
		items := make([]entity.ScheduleItem, 0, len(timeSlots))
		activityIdx, restaurantIdx := 0, 0
		todayActivities := dayActivities[day-1]
		todayRestaurants := dayRestaurants[day-1]

		for _, slot := range timeSlots {
			switch slot.Category {
			case entity.CategoryActivity:
				if activityIdx < len(todayActivities) {
					place := todayActivities[activityIdx]
					activityIdx++
					items = append(items, scheduleItem(slot, place, place.Cost))
				}
			case entity.CategoryRestaurant:
				if restaurantIdx < len(todayRestaurants) {
					place := todayRestaurants[restaurantIdx]
					restaurantIdx++
					items = append(items, scheduleItem(slot, place, place.Cost))
				}
			case entity.CategoryHotel:
				cost := 0.0
				if slot.StartTime == chargedSlotStart {
					cost = hotel.Cost
				}
				items = append(items, scheduleItem(slot, hotel, cost))
			}
		}

		for _, item := range items {
			totalCost += item.Cost
		}
		schedule = append(schedule, entity.DaySchedule{Day: day, Items: items})
	}
	return schedule, totalCost
}

// assignPerDay distributes the selected places across days round-robin:
// each day draws from the places not yet used on prior days, and once the
// unused pool dips below the day's slot count the full selection is
// appended to top it back up, letting places repeat across days but not
// within one day while unique ones remain.
func assignPerDay(selected []entity.Place, slots, days int) [][]entity.Place {
	used := make(map[int]struct{})
	perDay := make([][]entity.Place, 0, days)
	for day := 0; day < days; day++ {
		remaining := make([]entity.Place, 0, len(selected))
		for _, place := range selected {
			if _, ok := used[place.ID]; !ok {
				remaining = append(remaining, place)
			}
		}
		if len(remaining) < slots {
			remaining = append(remaining, selected...)
		}
		if len(remaining) > slots {
			remaining = remaining[:slots]
		}
		for _, place := range remaining {
			used[place.ID] = struct{}{}
		}
		perDay = append(perDay, remaining)
	}
	return perDay
}

func scheduleItem(slot entity.TimeSlot, place entity.Place, cost float64) entity.ScheduleItem {
	return entity.ScheduleItem{
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		PlaceID:   place.ID,
		PlaceName: place.Name,
		Category:  slot.Category,
		Cost:      cost,
	}
}
