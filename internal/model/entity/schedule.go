package entity

// TimeSlot is one entry of the fixed daily template. Times are wall-clock
// "HH:MM:SS" strings; the template never varies per request.
type TimeSlot struct {
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	Category  PlaceCategory `json:"type"`
}

// ScheduleItem is a place assigned to a concrete slot of a concrete day.
type ScheduleItem struct {
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	PlaceID   int           `json:"place_id"`
	PlaceName string        `json:"place_name"`
	Category  PlaceCategory `json:"type"`
	Cost      float64       `json:"cost"`
}

// DaySchedule is one day of the itinerary, day indices starting at 1.
type DaySchedule struct {
	Day   int            `json:"day"`
	Items []ScheduleItem `json:"activities"`
}

// Itinerary is the final recommendation returned to the caller.
type Itinerary struct {
	ItineraryID        string        `json:"itinerary_id"`
	TourID             int           `json:"tour_id"`
	UserID             string        `json:"user_id"`
	StartCity          string        `json:"start_city"`
	DestinationCity    string        `json:"destination_city"`
	DurationDays       float64       `json:"duration_days"`
	GuestCount         float64       `json:"guest_count"`
	Budget             float64       `json:"budget"`
	TotalEstimatedCost float64       `json:"total_estimated_cost"`
	Schedule           []DaySchedule `json:"schedule"`
}
