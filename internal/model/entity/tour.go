package entity

// TourRequest is the incoming trip specification. Any field may be absent;
// missing fields are imputed from comparable historical options before the
// recommendation runs. A request is owned by the call that processes it and
// is mutated in place during imputation.
type TourRequest struct {
	UserID            string   `json:"user_id"`
	StartCityID       *int     `json:"start_city_id"`
	DestinationCityID *int     `json:"destination_city_id"`
	HotelIDs          []int    `json:"hotel_ids"`
	ActivityIDs       []int    `json:"activity_ids"`
	RestaurantIDs     []int    `json:"restaurant_ids"`
	TransportIDs      []int    `json:"transport_ids"`
	GuestCount        *float64 `json:"guest_count"`
	DurationDays      *float64 `json:"duration_days"`
	TargetBudget      *float64 `json:"target_budget"`
}

// TourOption is a previously recorded itinerary from the 'tour_options'
// table. Read-only snapshot; numeric columns are nullable in the schema.
type TourOption struct {
	OptionID          int      `json:"option_id" gorm:"column:option_id;primaryKey"`
	UserID            string   `json:"user_id" gorm:"column:user_id"`
	StartCityID       *int     `json:"start_city_id" gorm:"column:start_city_id"`
	DestinationCityID *int     `json:"destination_city_id" gorm:"column:destination_city_id"`
	GuestCount        *float64 `json:"guest_count" gorm:"column:guest_count"`
	DurationDays      *float64 `json:"duration_days" gorm:"column:duration_days"`
	TargetBudget      *float64 `json:"target_budget" gorm:"column:target_budget"`
	Rating            *float64 `json:"rating" gorm:"column:rating"`
	HotelIDs          []int    `json:"hotel_ids" gorm:"-"`
	ActivityIDs       []int    `json:"activity_ids" gorm:"-"`
	RestaurantIDs     []int    `json:"restaurant_ids" gorm:"-"`
	TransportIDs      []int    `json:"transport_ids" gorm:"-"`
}

func (TourOption) TableName() string {
	return "tour_options"
}

// RecommendationMode selects the strategy used to pick the reference option.
type RecommendationMode string

const (
	ModeAuto      RecommendationMode = "auto"
	ModeExisting  RecommendationMode = "existing"
	ModeColdStart RecommendationMode = "cold_start"
)

func (m RecommendationMode) Valid() bool {
	switch m {
	case ModeAuto, ModeExisting, ModeColdStart:
		return true
	}
	return false
}
