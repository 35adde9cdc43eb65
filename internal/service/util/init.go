package util

import (
	"github.com/smarttravel/SmartTravelTour/config"
	"github.com/smarttravel/SmartTravelTour/internal/repository/util"
	"github.com/smarttravel/SmartTravelTour/internal/service"
	"github.com/smarttravel/SmartTravelTour/internal/service/tour"
)

type ServiceWrapper struct {
	TourService service.TourService
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *ServiceWrapper {
	return &ServiceWrapper{
		TourService: tour.New(config, repo),
	}
}
