package entity

// Activity represents a bookable activity from the 'activities' table
type Activity struct {
	ActivityID int     `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	Name       string  `json:"name" gorm:"column:name"`
	CityID     int     `json:"city_id" gorm:"column:city_id"`
	Price      float64 `json:"price" gorm:"column:price"`
	Rating     float64 `json:"rating" gorm:"column:rating"`
}

func (Activity) TableName() string {
	return "activities"
}

// Restaurant represents a restaurant from the 'restaurants' table
type Restaurant struct {
	RestaurantID int     `json:"restaurant_id" gorm:"column:restaurant_id;primaryKey"`
	Name         string  `json:"name" gorm:"column:name"`
	CityID       int     `json:"city_id" gorm:"column:city_id"`
	PriceAvg     float64 `json:"price_avg" gorm:"column:price_avg"`
	Rating       float64 `json:"rating" gorm:"column:rating"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Hotel represents a hotel from the 'hotels' table
type Hotel struct {
	HotelID       int     `json:"hotel_id" gorm:"column:hotel_id;primaryKey"`
	Name          string  `json:"name" gorm:"column:name"`
	CityID        int     `json:"city_id" gorm:"column:city_id"`
	PricePerNight float64 `json:"price_per_night" gorm:"column:price_per_night"`
	Rating        float64 `json:"rating" gorm:"column:rating"`
}

func (Hotel) TableName() string {
	return "hotels"
}

// City represents a city from the 'cities' table
type City struct {
	CityID int    `json:"city_id" gorm:"column:city_id;primaryKey"`
	Name   string `json:"name" gorm:"column:name"`
}

func (City) TableName() string {
	return "cities"
}

// PlaceCategory distinguishes the three schedulable place kinds.
type PlaceCategory string

const (
	CategoryActivity   PlaceCategory = "activity"
	CategoryRestaurant PlaceCategory = "restaurant"
	CategoryHotel      PlaceCategory = "hotel"
)

// Place is the category-neutral view of an activity, restaurant or hotel
// used by selection and schedule synthesis. Cost carries the category's
// price column (per-activity price, average meal price, per-night price).
type Place struct {
	ID       int
	Name     string
	Category PlaceCategory
	Cost     float64
	Rating   float64
}

func (a Activity) Place() Place {
	return Place{ID: a.ActivityID, Name: a.Name, Category: CategoryActivity, Cost: a.Price, Rating: a.Rating}
}

func (r Restaurant) Place() Place {
	return Place{ID: r.RestaurantID, Name: r.Name, Category: CategoryRestaurant, Cost: r.PriceAvg, Rating: r.Rating}
}

func (h Hotel) Place() Place {
	return Place{ID: h.HotelID, Name: h.Name, Category: CategoryHotel, Cost: h.PricePerNight, Rating: h.Rating}
}
