package tour

import (
	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
)

// fakeCatalog is an in-memory TourCatalogRepository for service tests.
// A non-nil err is returned from every query.
type fakeCatalog struct {
	options     []entity.TourOption
	activities  []entity.Activity
	restaurants []entity.Restaurant
	hotels      []entity.Hotel
	cities      map[int]string
	err         error
}

func (f *fakeCatalog) GetOptionsByUser(userID string) ([]entity.TourOption, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []entity.TourOption
	for _, o := range f.options {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeCatalog) GetOptionsByDestination(destinationCityID int, excludeUserID string) ([]entity.TourOption, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []entity.TourOption
	for _, o := range f.options {
		if o.DestinationCityID == nil || *o.DestinationCityID != destinationCityID {
			continue
		}
		if excludeUserID != "" && o.UserID == excludeUserID {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (f *fakeCatalog) GetOptionsByUserIDs(userIDs []string) ([]entity.TourOption, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = struct{}{}
	}
	var result []entity.TourOption
	for _, o := range f.options {
		if _, ok := wanted[o.UserID]; ok {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeCatalog) GetAllOptions() ([]entity.TourOption, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.TourOption(nil), f.options...), nil
}

func (f *fakeCatalog) GetOptionByID(optionID int) (*entity.TourOption, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.options {
		if o.OptionID == optionID {
			option := o
			return &option, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) CountOptionsForUser(userID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, o := range f.options {
		if o.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCatalog) GetActivities(cityID int) ([]entity.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []entity.Activity
	for _, a := range f.activities {
		if a.CityID == cityID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeCatalog) GetRestaurants(cityID int) ([]entity.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []entity.Restaurant
	for _, r := range f.restaurants {
		if r.CityID == cityID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeCatalog) GetHotels(cityID int) ([]entity.Hotel, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []entity.Hotel
	for _, h := range f.hotels {
		if h.CityID == cityID {
			result = append(result, h)
		}
	}
	return result, nil
}

func (f *fakeCatalog) GetCityName(cityID int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.cities[cityID], nil
}

func newService(catalog *fakeCatalog) *TourService {
	return &TourService{catalogRepo: catalog}
}

func fp(v float64) *float64 { return &v }

func ip(v int) *int { return &v }
