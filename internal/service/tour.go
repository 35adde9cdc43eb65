package service

import "github.com/smarttravel/SmartTravelTour/internal/model/entity"

type TourService interface {
	BuildItinerary(request *entity.TourRequest, mode entity.RecommendationMode) (*entity.Itinerary, error)
}
