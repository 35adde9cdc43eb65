package postgres

import (
	"errors"

	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
	"gorm.io/gorm"
)

// Keyed join rows linking a tour option to its preference ids.
type optionHotel struct {
	OptionID int `gorm:"column:option_id"`
	HotelID  int `gorm:"column:hotel_id"`
}

func (optionHotel) TableName() string { return "tour_options_hotels" }

type optionActivity struct {
	OptionID   int `gorm:"column:option_id"`
	ActivityID int `gorm:"column:activity_id"`
}

func (optionActivity) TableName() string { return "tour_options_activities" }

type optionRestaurant struct {
	OptionID     int `gorm:"column:option_id"`
	RestaurantID int `gorm:"column:restaurant_id"`
}

func (optionRestaurant) TableName() string { return "tour_options_restaurants" }

type optionTransport struct {
	OptionID    int `gorm:"column:option_id"`
	TransportID int `gorm:"column:transport_id"`
}

func (optionTransport) TableName() string { return "tour_options_transports" }

func (r *RepoDatabase) GetOptionsByUser(userID string) ([]entity.TourOption, error) {
	var options []entity.TourOption
	err := r.DB.Where("user_id = ?", userID).Order("option_id").Find(&options).Error
	if err != nil {
		return nil, err
	}
	if err := r.loadPreferenceIDs(options); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *RepoDatabase) GetOptionsByDestination(destinationCityID int, excludeUserID string) ([]entity.TourOption, error) {
	var options []entity.TourOption
	query := r.DB.Where("destination_city_id = ?", destinationCityID)
	if excludeUserID != "" {
		query = query.Where("user_id <> ?", excludeUserID)
	}
	err := query.Order("option_id").Find(&options).Error
	if err != nil {
		return nil, err
	}
	if err := r.loadPreferenceIDs(options); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *RepoDatabase) GetOptionsByUserIDs(userIDs []string) ([]entity.TourOption, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var options []entity.TourOption
	err := r.DB.Where("user_id IN ?", userIDs).Order("option_id").Find(&options).Error
	if err != nil {
		return nil, err
	}
	if err := r.loadPreferenceIDs(options); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *RepoDatabase) GetAllOptions() ([]entity.TourOption, error) {
	var options []entity.TourOption
	err := r.DB.Order("option_id").Find(&options).Error
	if err != nil {
		return nil, err
	}
	if err := r.loadPreferenceIDs(options); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *RepoDatabase) GetOptionByID(optionID int) (*entity.TourOption, error) {
	var option entity.TourOption
	err := r.DB.First(&option, "option_id = ?", optionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	single := []entity.TourOption{option}
	if err := r.loadPreferenceIDs(single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

func (r *RepoDatabase) CountOptionsForUser(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.TourOption{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RepoDatabase) GetActivities(cityID int) ([]entity.Activity, error) {
	var activities []entity.Activity
	err := r.DB.
		Select("activity_id, name, city_id, COALESCE(price, 0) AS price, COALESCE(rating, 0) AS rating").
		Where("city_id = ?", cityID).
		Order("activity_id").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *RepoDatabase) GetRestaurants(cityID int) ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	err := r.DB.
		Select("restaurant_id, name, city_id, COALESCE(price_avg, 0) AS price_avg, COALESCE(rating, 0) AS rating").
		Where("city_id = ?", cityID).
		Order("restaurant_id").
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *RepoDatabase) GetHotels(cityID int) ([]entity.Hotel, error) {
	var hotels []entity.Hotel
	err := r.DB.
		Select("hotel_id, name, city_id, COALESCE(price_per_night, 0) AS price_per_night, COALESCE(rating, 0) AS rating").
		Where("city_id = ?", cityID).
		Order("hotel_id").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *RepoDatabase) GetCityName(cityID int) (string, error) {
	var city entity.City
	err := r.DB.First(&city, "city_id = ?", cityID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return city.Name, nil
}

// loadPreferenceIDs fills the four preference id lists for every option in
// one query per join table. Ids are deduplicated per option, keeping the
// row order of the join table.
func (r *RepoDatabase) loadPreferenceIDs(options []entity.TourOption) error {
	if len(options) == 0 {
		return nil
	}
	optionIDs := make([]int, len(options))
	for i := range options {
		optionIDs[i] = options[i].OptionID
	}

	var hotels []optionHotel
	if err := r.DB.Where("option_id IN ?", optionIDs).Order("hotel_id").Find(&hotels).Error; err != nil {
		return err
	}
	var activities []optionActivity
	if err := r.DB.Where("option_id IN ?", optionIDs).Order("activity_id").Find(&activities).Error; err != nil {
		return err
	}
	var restaurants []optionRestaurant
	if err := r.DB.Where("option_id IN ?", optionIDs).Order("restaurant_id").Find(&restaurants).Error; err != nil {
		return err
	}
	var transports []optionTransport
	if err := r.DB.Where("option_id IN ?", optionIDs).Order("transport_id").Find(&transports).Error; err != nil {
		return err
	}

	hotelIDs := make(map[int][]int, len(options))
	for _, row := range hotels {
		hotelIDs[row.OptionID] = appendUnique(hotelIDs[row.OptionID], row.HotelID)
	}
	activityIDs := make(map[int][]int, len(options))
	for _, row := range activities {
		activityIDs[row.OptionID] = appendUnique(activityIDs[row.OptionID], row.ActivityID)
	}
	restaurantIDs := make(map[int][]int, len(options))
	for _, row := range restaurants {
		restaurantIDs[row.OptionID] = appendUnique(restaurantIDs[row.OptionID], row.RestaurantID)
	}
	transportIDs := make(map[int][]int, len(options))
	for _, row := range transports {
		transportIDs[row.OptionID] = appendUnique(transportIDs[row.OptionID], row.TransportID)
	}

	for i := range options {
		options[i].HotelIDs = hotelIDs[options[i].OptionID]
		options[i].ActivityIDs = activityIDs[options[i].OptionID]
		options[i].RestaurantIDs = restaurantIDs[options[i].OptionID]
		options[i].TransportIDs = transportIDs[options[i].OptionID]
	}
	return nil
}

func appendUnique(ids []int, id int) []int {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
