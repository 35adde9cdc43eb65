package util

import (
	"github.com/smarttravel/SmartTravelTour/config"
	"github.com/smarttravel/SmartTravelTour/internal/repository"
	db "github.com/smarttravel/SmartTravelTour/internal/repository/postgres"
)

type RepoWrapper struct {
	CatalogRepo repository.TourCatalogRepository
}

func New(config *config.AppConfig) (repoWrapper *RepoWrapper, err error) {

	var dbConnection *db.RepoDatabase

	dbConnection, err = db.Init(config)
	if err != nil {
		return nil, err
	}

	repoWrapper = &RepoWrapper{
		CatalogRepo: dbConnection,
	}

	return
}
