//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/httptest"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries, time.UTC)

	s.router.GET("/availability", s.handler.GetDayAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetDayAvailability() {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	serviceID := uuid.New()

	s.Run("success: returns 200 OK with slot start times", func() {
		view := &queries.AvailabilityView{
			Date:            "2026-09-14",
			DurationMinutes: 60,
			Slots: []time.Time{
				day.Add(9 * time.Hour),
				day.Add(9*time.Hour + 30*time.Minute),
			},
		}
		s.mockQueries.EXPECT().
			GetDayAvailability(gomock.Any(), day, []uuid.UUID{serviceID}, gomock.Nil()).
			Return(view, nil).Times(1)

		url := "/availability?date=2026-09-14&service_ids=" + serviceID.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-09-14", response.Date)
		s.Equal(60, response.DurationMinutes)
		s.Len(response.Slots, 2)
		s.Equal("2026-09-14T09:00:00Z", response.Slots[0])
	})

	s.Run("success: omits service_ids when duration is explicit", func() {
		view := &queries.AvailabilityView{
			Date:            "2026-09-14",
			DurationMinutes: 45,
			Slots:           []time.Time{},
		}
		s.mockQueries.EXPECT().
			GetDayAvailability(gomock.Any(), day, gomock.Nil(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-14&duration_minutes=45", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Slots)
	})

	s.Run("error: 400 for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=14-09-2026", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 for malformed service_ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-14&service_ids=abc,def", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 for non-numeric duration", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-14&duration_minutes=sixty", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: maps query failures to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "no duration source", err: errs.Mark(errors.New("no duration"), errs.ErrInvalidDuration), expectCode: http.StatusBadRequest},
			{name: "unknown service", err: errs.Mark(errors.New("missing"), errs.ErrServiceNotFound), expectCode: http.StatusNotFound},
			{name: "inactive service", err: errs.Mark(errors.New("inactive"), errs.ErrServiceInactive), expectCode: http.StatusUnprocessableEntity},
			{name: "unexpected failure", err: errors.New("database down"), expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().
					GetDayAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				url := "/availability?date=2026-09-14&service_ids=" + serviceID.String()
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})
}
