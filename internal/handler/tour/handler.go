package tour

import (
	"errors"
	"net/http"

	"github.com/labstack/echo"
	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
	"github.com/smarttravel/SmartTravelTour/internal/service/tour"
)

// RecommendationRequest is the POST body for the recommendation endpoint.
// Every field is optional; absent fields are imputed by the engine.
type RecommendationRequest struct {
	UserID            string   `json:"user_id"`
	StartCityID       *int     `json:"start_city_id"`
	DestinationCityID *int     `json:"destination_city_id"`
	HotelIDs          []int    `json:"hotel_ids"`
	ActivityIDs       []int    `json:"activity_ids"`
	RestaurantIDs     []int    `json:"restaurant_ids"`
	TransportIDs      []int    `json:"transport_ids"`
	GuestCount        *float64 `json:"guest_count" validate:"omitempty,gt=0"`
	DurationDays      *float64 `json:"duration_days" validate:"omitempty,gt=0"`
	TargetBudget      *float64 `json:"target_budget" validate:"omitempty,gte=0"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *ApiWrapper) RecommendTour(c echo.Context) error {
	var body RecommendationRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "invalid_request",
			Message: "request body could not be parsed",
		})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	}

	mode := entity.RecommendationMode(c.QueryParam("mode"))
	if mode == "" {
		mode = entity.ModeAuto
	}
	if !mode.Valid() {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "invalid_mode",
			Message: "mode must be one of existing, cold_start, auto",
		})
	}

	request := &entity.TourRequest{
		UserID:            body.UserID,
		StartCityID:       body.StartCityID,
		DestinationCityID: body.DestinationCityID,
		HotelIDs:          body.HotelIDs,
		ActivityIDs:       body.ActivityIDs,
		RestaurantIDs:     body.RestaurantIDs,
		TransportIDs:      body.TransportIDs,
		GuestCount:        body.GuestCount,
		DurationDays:      body.DurationDays,
		TargetBudget:      body.TargetBudget,
	}

	itinerary, err := a.TourService.BuildItinerary(request, mode)
	if err != nil {
		switch {
		case errors.Is(err, tour.ErrNoHistoryFound):
			return c.JSON(http.StatusNotFound, errorResponse{
				Error:   "no_history_found",
				Message: "no suitable tour options found for this user",
			})
		case errors.Is(err, tour.ErrEmptyCatalog):
			return c.JSON(http.StatusNotFound, errorResponse{
				Error:   "empty_catalog",
				Message: "no tour options available to recommend from",
			})
		case errors.Is(err, tour.ErrOptionNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{
				Error:   "option_not_found",
				Message: "the chosen tour option no longer exists",
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": "Internal server error",
			})
		}
	}

	return c.JSON(http.StatusOK, itinerary)
}
