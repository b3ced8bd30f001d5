//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
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

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/appointments", s.handler.Book)
	s.router.GET("/admin/appointments", s.handler.List)
	s.router.GET("/admin/appointments/:id", s.handler.Get)
	s.router.POST("/admin/appointments/:id/cancel", s.handler.Cancel)
	s.router.POST("/admin/appointments/:id/complete", s.handler.Complete)
	s.router.POST("/admin/appointments/:id/no-show", s.handler.MarkNoShow)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestBook() {
	url := "/appointments"

	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildBookRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for a bookable slot", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing client_name", mutate: testutil.Field("client_name", nil)},
			{name: "missing client_email", mutate: testutil.Field("client_email", nil)},
			{name: "invalid client_email", mutate: testutil.Field("client_email", "not-an-email")},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing service_ids", mutate: testutil.Field("service_ids", nil)},
			{name: "empty service_ids", mutate: testutil.Field("service_ids", []string{})},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: maps domain failures to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown service", err: errs.Mark(errors.New("missing"), errs.ErrServiceNotFound), expectCode: http.StatusNotFound},
			{name: "inactive service", err: errs.Mark(errors.New("inactive"), errs.ErrServiceInactive), expectCode: http.StatusUnprocessableEntity},
			{name: "insufficient notice", err: errs.Mark(errors.New("too soon"), errs.ErrInsufficientNotice), expectCode: http.StatusUnprocessableEntity},
			{name: "slot not offered", err: errs.Mark(errors.New("not offered"), errs.ErrSlotNotAvailable), expectCode: http.StatusUnprocessableEntity},
			{name: "slot conflict", err: errs.Mark(errors.New("exclusion violation"), errs.ErrSlotConflict), expectCode: http.StatusConflict},
			{name: "unexpected failure", err: errors.New("database down"), expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with the appointment", func() {
		view := builder.NewAppointmentBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/appointments/"+view.ID.String(), nil, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/appointments/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 for unknown appointment", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrAppointmentNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/appointments/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with a page and cursor", func() {
		items := []*queries.AppointmentListItem{
			builder.NewAppointmentBuilder().BuildListItem(),
			builder.NewAppointmentBuilder().BuildListItem(),
		}
		next := &queries.Cursor{After: "opaque-cursor"}

		from := time.Now().UTC().Truncate(time.Hour)
		to := from.AddDate(0, 0, 7)

		s.mockQueries.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil(), 2).
			Return(items, next, nil).Times(1)

		url := fmt.Sprintf("/admin/appointments?from=%s&to=%s&limit=2",
			from.Format(time.RFC3339), to.Format(time.RFC3339))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Require().NotNil(response.NextCursor)
		s.Equal("opaque-cursor", *response.NextCursor)
	})

	s.Run("error: 400 for malformed range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/appointments?from=yesterday&to=tomorrow", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("success: cancel returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/appointments/"+id.String()+"/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: complete returns 204", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/appointments/"+id.String()+"/complete", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: no-show returns 204", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/appointments/"+id.String()+"/no-show", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown appointment", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(errs.Mark(errors.New("no rows"), errs.ErrAppointmentNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/appointments/"+id.String()+"/cancel", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 422 for an illegal transition", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), id).
			Return(errs.Mark(errors.New("already canceled"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/appointments/"+id.String()+"/complete", nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}
