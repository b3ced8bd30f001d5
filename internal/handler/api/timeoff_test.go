//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/httptest"
	"slotbook/tests/common/testutil"
	commandsmock "slotbook/tests/mock/commands"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimeOffHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTimeOffCommands
	mockQueries  *queriesmock.MockTimeOffQueries
	handler      *api.TimeOffHandler
}

func (s *TimeOffHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTimeOffCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTimeOffQueries(s.mockCtrl)
	s.handler = api.NewTimeOffHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/time-off", s.handler.List)
	s.router.POST("/admin/time-off", s.handler.Create)
	s.router.PATCH("/admin/time-off/:id", s.handler.Update)
	s.router.DELETE("/admin/time-off/:id", s.handler.Delete)
}

func (s *TimeOffHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimeOffHandlerSuite(t *testing.T) {
	suite.Run(t, new(TimeOffHandlerTestSuite))
}

func (s *TimeOffHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with all periods", func() {
		views := []*queries.TimeOffView{
			builder.NewTimeOffBuilder().BuildView(),
			builder.NewTimeOffBuilder().AsWeekly().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/time-off", nil, "")

		var response []*resdto.TimeOffResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("weekly", response[1].Pattern)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/time-off", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *TimeOffHandlerTestSuite) TestCreate() {
	url := "/admin/time-off"
	b := builder.NewTimeOffBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.TimeOffResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Vacation", response.Title)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing title", mutate: testutil.Field("title", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing end_time", mutate: testutil.Field("end_time", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 422 for an inverted window", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidTimeOffWindow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 422 for a bad recurrence pattern", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidRecurrence).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *TimeOffHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/admin/time-off/" + id.String()

	s.Run("success: returns 200 OK with the updated period", func() {
		view := builder.NewTimeOffBuilder().WithTitle("Extended vacation").BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"title": "Extended vacation"}, "")

		var response resdto.TimeOffResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Extended vacation", response.Title)
	})

	s.Run("error: 400 for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/time-off/not-a-uuid", map[string]any{"title": "x"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 for unknown period", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrTimeOffNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"title": "x"}, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TimeOffHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/time-off/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown period", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(errs.Mark(errors.New("no rows"), errs.ErrTimeOffNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/time-off/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
