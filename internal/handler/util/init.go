package util

import (
	"github.com/labstack/echo"
	"github.com/smarttravel/SmartTravelTour/config"
	"github.com/smarttravel/SmartTravelTour/internal/handler/tour"
	serv "github.com/smarttravel/SmartTravelTour/internal/service/util"
)

func InitHandler(config *config.AppConfig, e *echo.Echo, servWrapper *serv.ServiceWrapper) {
	tour.InitRoute(e, servWrapper)
}
