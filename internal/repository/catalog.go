package repository

import "github.com/smarttravel/SmartTravelTour/internal/model/entity"

// TourCatalogRepository is the read-only catalog the recommendation engine
// runs against. All queries are side-effect free and safe to issue in
// parallel across unrelated requests.
//
// Lookups that miss return a nil/zero result with a nil error; a non-nil
// error always means the catalog itself could not be reached.
type TourCatalogRepository interface {
	GetOptionsByUser(userID string) ([]entity.TourOption, error)
	GetOptionsByDestination(destinationCityID int, excludeUserID string) ([]entity.TourOption, error)
	GetOptionsByUserIDs(userIDs []string) ([]entity.TourOption, error)
	GetAllOptions() ([]entity.TourOption, error)
	GetOptionByID(optionID int) (*entity.TourOption, error)
	CountOptionsForUser(userID string) (int64, error)
	GetActivities(cityID int) ([]entity.Activity, error)
	GetRestaurants(cityID int) ([]entity.Restaurant, error)
	GetHotels(cityID int) ([]entity.Hotel, error)
	GetCityName(cityID int) (string, error)
}
