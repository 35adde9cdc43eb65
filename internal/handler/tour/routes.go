package tour

import (
	"github.com/labstack/echo"
	"github.com/smarttravel/SmartTravelTour/internal/service"
	"github.com/smarttravel/SmartTravelTour/internal/service/util"
)

type ApiWrapper struct {
	TourService service.TourService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		TourService: servWrapper.TourService,
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	group := e.Group("/api/v1/tour")
	group.POST("/recommendation", a.RecommendTour)
}
