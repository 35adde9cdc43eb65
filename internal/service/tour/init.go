package tour

import (
	"github.com/smarttravel/SmartTravelTour/config"
	"github.com/smarttravel/SmartTravelTour/internal/repository"
	"github.com/smarttravel/SmartTravelTour/internal/repository/util"
)

// Defaults applied when a request or catalog field is absent or non-positive.
const (
	DefaultGuestCount   = 1.0
	DefaultDurationDays = 3.0
	DefaultTargetBudget = 1000.0

	// DefaultTopK bounds the neighbor search, DefaultTopN the number of
	// reference options the recommender keeps.
	DefaultTopK = 5
	DefaultTopN = 1
)

type TourService struct {
	catalogRepo repository.TourCatalogRepository
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *TourService {
	return &TourService{
		catalogRepo: repo.CatalogRepo,
	}
}
