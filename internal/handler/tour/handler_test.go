package tour

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/labstack/echo"
	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
	tourService "github.com/smarttravel/SmartTravelTour/internal/service/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTourService struct {
	itinerary *entity.Itinerary
	err       error

	gotMode    entity.RecommendationMode
	gotRequest *entity.TourRequest
}

func (s *stubTourService) BuildItinerary(request *entity.TourRequest, mode entity.RecommendationMode) (*entity.Itinerary, error) {
	s.gotRequest = request
	s.gotMode = mode
	if s.err != nil {
		return nil, s.err
	}
	return s.itinerary, nil
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(body, query string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	target := "/api/v1/tour/recommendation"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRecommendTourSuccess(t *testing.T) {
	stub := &stubTourService{
		itinerary: &entity.Itinerary{
			ItineraryID:     "ref-1",
			TourID:          7,
			UserID:          "bob",
			DestinationCity: "Da Nang",
		},
	}
	api := &ApiWrapper{TourService: stub}

	body := `{"user_id":"bob","destination_city_id":5,"guest_count":2,"duration_days":3,"target_budget":900}`
	c, rec := newTestContext(body, "mode=cold_start")

	require.NoError(t, api.RecommendTour(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.ModeColdStart, stub.gotMode)
	require.NotNil(t, stub.gotRequest)
	require.NotNil(t, stub.gotRequest.DestinationCityID)
	assert.Equal(t, 5, *stub.gotRequest.DestinationCityID)

	var got entity.Itinerary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 7, got.TourID)
	assert.Equal(t, "Da Nang", got.DestinationCity)
}

func TestRecommendTourDefaultsToAutoMode(t *testing.T) {
	stub := &stubTourService{itinerary: &entity.Itinerary{}}
	api := &ApiWrapper{TourService: stub}

	c, rec := newTestContext(`{}`, "")

	require.NoError(t, api.RecommendTour(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.ModeAuto, stub.gotMode)
}

func TestRecommendTourRejectsInvalidMode(t *testing.T) {
	api := &ApiWrapper{TourService: &stubTourService{}}

	c, rec := newTestContext(`{}`, "mode=psychic")

	require.NoError(t, api.RecommendTour(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendTourRejectsNonPositiveGuests(t *testing.T) {
	api := &ApiWrapper{TourService: &stubTourService{}}

	c, rec := newTestContext(`{"guest_count":0}`, "")

	require.NoError(t, api.RecommendTour(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendTourErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{"no history", tourService.ErrNoHistoryFound, http.StatusNotFound, "no_history_found"},
		{"empty catalog", tourService.ErrEmptyCatalog, http.StatusNotFound, "empty_catalog"},
		{"option missing", tourService.ErrOptionNotFound, http.StatusNotFound, "option_not_found"},
		{"collaborator", tourService.ErrCollaboratorFailure, http.StatusInternalServerError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &ApiWrapper{TourService: &stubTourService{err: tc.err}}
			c, rec := newTestContext(`{}`, "")

			require.NoError(t, api.RecommendTour(c))
			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantKind != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantKind, resp["error"])
			}
		})
	}
}
