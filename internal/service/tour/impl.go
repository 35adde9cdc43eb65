package tour

import (
	"github.com/google/uuid"
	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
)

// BuildItinerary is the single entry point: it picks a reference option via
// the requested strategy, selects budget-constrained places at its
// destination and packs them into the day-by-day schedule. The request is
// owned by this call and may be mutated by imputation.
func (s *TourService) BuildItinerary(request *entity.TourRequest, mode entity.RecommendationMode) (*entity.Itinerary, error) {
	useExisting := mode == entity.ModeExisting
	if mode == entity.ModeAuto {
		count, err := s.catalogRepo.CountOptionsForUser(request.UserID)
		if err != nil {
			return nil, catalogErr("counting options for user", err)
		}
		useExisting = count > 1
	}

	var recommended []entity.TourOption
	var err error
	if useExisting {
		recommended, err = s.recommendExisting(request, DefaultTopN)
	} else {
		recommended, err = s.recommendColdStart(request, DefaultTopK, DefaultTopN)
	}
	if err != nil {
		return nil, err
	}
	if len(recommended) == 0 {
		return nil, ErrNoHistoryFound
	}

	chosen, err := s.catalogRepo.GetOptionByID(recommended[0].OptionID)
	if err != nil {
		return nil, catalogErr("fetching chosen option", err)
	}
	if chosen == nil {
		return nil, ErrOptionNotFound
	}

	reference := requestFromOption(chosen)
	activities, restaurants, hotels, err := s.selectPlaces(reference)
	if err != nil {
		return nil, err
	}
	schedule, totalCost := buildSchedule(reference, activities, restaurants, hotels)

	startCity, err := s.cityNameOrUnknown(chosen.StartCityID)
	if err != nil {
		return nil, err
	}
	destinationCity, err := s.cityNameOrUnknown(chosen.DestinationCityID)
	if err != nil {
		return nil, err
	}

	return &entity.Itinerary{
		ItineraryID:        uuid.NewString(),
		TourID:             chosen.OptionID,
		UserID:             chosen.UserID,
		StartCity:          startCity,
		DestinationCity:    destinationCity,
		DurationDays:       *reference.DurationDays,
		GuestCount:         *reference.GuestCount,
		Budget:             *reference.TargetBudget,
		TotalEstimatedCost: totalCost,
		Schedule:           schedule,
	}, nil
}

// requestFromOption turns the chosen historical option into the working
// profile driving selection and synthesis, absent numerics coerced to the
// documented defaults.
func requestFromOption(option *entity.TourOption) *entity.TourRequest {
	return &entity.TourRequest{
		UserID:            option.UserID,
		StartCityID:       option.StartCityID,
		DestinationCityID: option.DestinationCityID,
		HotelIDs:          option.HotelIDs,
		ActivityIDs:       option.ActivityIDs,
		RestaurantIDs:     option.RestaurantIDs,
		TransportIDs:      option.TransportIDs,
		GuestCount:        ptrFloat(coerce(option.GuestCount, DefaultGuestCount)),
		DurationDays:      ptrFloat(coerce(option.DurationDays, DefaultDurationDays)),
		TargetBudget:      ptrFloat(coerce(option.TargetBudget, DefaultTargetBudget)),
	}
}

func (s *TourService) cityNameOrUnknown(cityID *int) (string, error) {
	if cityID == nil {
		return "Unknown", nil
	}
	name, err := s.catalogRepo.GetCityName(*cityID)
	if err != nil {
		return "", catalogErr("looking up city name", err)
	}
	if name == "" {
		return "Unknown", nil
	}
	return name, nil
}
