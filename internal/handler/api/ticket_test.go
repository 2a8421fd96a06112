//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/handler/api"
	resdto "antriqu/internal/handler/dto/response"
	"antriqu/internal/pkg/errs"
	"antriqu/tests/common/builder"
	"antriqu/tests/common/httptest"
	"antriqu/tests/common/testutil"
	usecasemock "antriqu/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockQueue *usecasemock.MockQueueFacade
	handler   *api.TicketHandler
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueue = usecasemock.NewMockQueueFacade(s.mockCtrl)
	s.handler = api.NewTicketHandler(s.mockQueue)

	s.router.POST("/tickets", s.handler.Create)
	s.router.GET("/tickets", s.handler.List)
	s.router.GET("/tickets/:id", s.handler.Get)
	s.router.POST("/tickets/:id/resolve", s.handler.Resolve)
	s.router.POST("/tickets/:id/skip", s.handler.Skip)
	s.router.POST("/tickets/:id/recall", s.handler.Recall)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

type testCaseTicket struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *TicketHandlerTestSuite) TestCreate() {
	url := "/tickets"
	b := builder.NewTicketBuilder()
	reqBody := b.BuildDTO()
	created := b.BuildDomain()

	s.Run("success: returns 201 with the issued number", func() {
		s.mockQueue.EXPECT().CreateTicket(gomock.Any(), "Ana", ticket.CategoryGeneral).Return(created, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("A-001", response.Number)
		s.Equal("Ana", response.Name)
		s.Equal("general", response.ServiceType)
		s.Equal("Umum", response.ServiceLabel)
		s.Equal("waiting", response.Status)
		s.Nil(response.Counter)
		s.Nil(response.CalledAt)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseTicket{
			{name: "name boundary OK (100 chars)", mutate: testutil.Field("name", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
			{name: "name boundary NG (101 chars)", mutate: testutil.Field("name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
			{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: serviceType", mutate: testutil.Field("serviceType", nil), expectCode: http.StatusBadRequest},
			{name: "empty name", mutate: testutil.Field("name", ""), expectCode: http.StatusBadRequest},
			{name: "unknown serviceType", mutate: testutil.Field("serviceType", "lounge"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockQueue.EXPECT().CreateTicket(gomock.Any(), requestMap["name"], ticket.CategoryGeneral).Return(created, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 400 when the queue rejects the holder name", func() {
		s.mockQueue.EXPECT().CreateTicket(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ticket.ErrEmptyHolderName)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("name", "   ")), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Create ticket failed")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueue.EXPECT().CreateTicket(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.New("boom"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *TicketHandlerTestSuite) TestGet() {
	t := builder.NewTicketBuilder().CallingAt(2, time.Minute).BuildDomain()

	s.Run("success", func() {
		s.mockQueue.EXPECT().Get(gomock.Any(), t.ID()).Return(t, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/"+t.ID().String(), nil, "")

		var response resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(t.ID().String(), response.ID)
		s.Equal("calling", response.Status)
		s.Require().NotNil(response.Counter)
		s.Equal(2, *response.Counter)
		s.Require().NotNil(response.CalledAt)
		s.True(builder.BaseTime.Add(time.Minute).Equal(*response.CalledAt))
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("unknown id", func() {
		s.mockQueue.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, ticket.ErrNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
	})
}

func (s *TicketHandlerTestSuite) TestList() {
	tickets := []*ticket.Ticket{
		builder.NewTicketBuilder().BuildDomain(),
		builder.NewTicketBuilder().WithNumber("B-001").WithCategory(ticket.CategoryFinance).BuildDomain(),
	}
	s.mockQueue.EXPECT().Tickets(gomock.Any()).Return(tickets)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets", nil, "")

	var response []resdto.TicketResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.Equal("B-001", response[1].Number)
	s.Equal("Keuangan", response[1].ServiceLabel)
}

func (s *TicketHandlerTestSuite) TestTransitions() {
	id := uuid.New()
	called := builder.NewTicketBuilder().With(func(b *builder.TicketBuilder) { b.ID = id }).CallingAt(1, time.Minute)

	tests := []struct {
		name   string
		path   string
		expect func() *gomock.Call
		code   int
		status string
	}{
		{
			name:   "resolve",
			path:   "/resolve",
			expect: func() *gomock.Call { return s.mockQueue.EXPECT().Resolve(gomock.Any(), id) },
			code:   http.StatusOK,
			status: "completed",
		},
		{
			name:   "skip",
			path:   "/skip",
			expect: func() *gomock.Call { return s.mockQueue.EXPECT().Skip(gomock.Any(), id) },
			code:   http.StatusOK,
			status: "skipped",
		},
		{
			name:   "recall",
			path:   "/recall",
			expect: func() *gomock.Call { return s.mockQueue.EXPECT().Recall(gomock.Any(), id) },
			code:   http.StatusOK,
			status: "calling",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name+" success", func() {
			result := *called
			if tt.status != "calling" {
				result.Finished(ticket.Status(tt.status))
			}
			tt.expect().Return(result.BuildDomain(), nil)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tickets/"+id.String()+tt.path, nil, "")

			var response resdto.TicketResponse
			httptest.AssertSuccessResponse(s.T(), rec, tt.code, &response)
			s.Equal(tt.status, response.Status)
		})

		s.Run(tt.name+" conflict", func() {
			tt.expect().Return(nil, errs.Mark(errs.New("cannot"), ticket.ErrInvalidTransition))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tickets/"+id.String()+tt.path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
		})

		s.Run(tt.name+" not found", func() {
			tt.expect().Return(nil, ticket.ErrNotFound)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tickets/"+id.String()+tt.path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
		})
	}
}
