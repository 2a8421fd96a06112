//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/handler/api"
	resdto "antriqu/internal/handler/dto/response"
	"antriqu/internal/pkg/errs"
	"antriqu/internal/usecase"
	"antriqu/tests/common/builder"
	"antriqu/tests/common/httptest"
	usecasemock "antriqu/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QueueHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockQueue *usecasemock.MockQueueFacade
	handler   *api.QueueHandler
}

func (s *QueueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueue = usecasemock.NewMockQueueFacade(s.mockCtrl)
	s.handler = api.NewQueueHandler(s.mockQueue)

	s.router.GET("/queue/waiting", s.handler.Waiting)
	s.router.GET("/queue/current", s.handler.Current)
	s.router.GET("/queue/estimate", s.handler.Estimate)
	s.router.POST("/counters/:counter/call-next", s.handler.CallNext)
}

func (s *QueueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQueueHandlerSuite(t *testing.T) {
	suite.Run(t, new(QueueHandlerTestSuite))
}

func (s *QueueHandlerTestSuite) TestCallNext() {
	s.Run("success: completes and calls", func() {
		completed := builder.NewTicketBuilder().CallingAt(1, time.Minute).Finished(ticket.StatusCompleted).BuildDomain()
		called := builder.NewTicketBuilder().WithNumber("B-001").WithCategory(ticket.CategoryFinance).CallingAt(1, 5*time.Minute).BuildDomain()
		s.mockQueue.EXPECT().CallNext(gomock.Any(), 1).Return(&usecase.CallNextResult{Completed: completed, Called: called}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/counters/1/call-next", nil, "")

		var response resdto.CallNextResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.QueueEmpty)
		s.Require().NotNil(response.Completed)
		s.Equal("completed", response.Completed.Status)
		s.Require().NotNil(response.Called)
		s.Equal("B-001", response.Called.Number)
	})

	s.Run("success: empty queue", func() {
		s.mockQueue.EXPECT().CallNext(gomock.Any(), 2).Return(&usecase.CallNextResult{QueueEmpty: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/counters/2/call-next", nil, "")

		var response resdto.CallNextResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.QueueEmpty)
		s.Nil(response.Called)
		s.Nil(response.Completed)
	})

	s.Run("error: counter is not a number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/counters/one/call-next", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid counter")
	})

	s.Run("error: counter out of range", func() {
		err := errs.Mark(errs.Wrap(errs.ErrCounterOutOfRange, "counter 9 of 4"), ticket.ErrInvalidInput)
		s.mockQueue.EXPECT().CallNext(gomock.Any(), 9).Return(nil, err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/counters/9/call-next", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Call next failed")
	})
}

func (s *QueueHandlerTestSuite) TestCurrent() {
	s.Run("nothing calling shows the placeholder", func() {
		s.mockQueue.EXPECT().CurrentlyCalling(gomock.Any()).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/current", nil, "")

		var response resdto.CurrentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("---", response.Number)
		s.Nil(response.Ticket)
	})

	s.Run("calling ticket", func() {
		s.mockQueue.EXPECT().CurrentlyCalling(gomock.Any()).Return(builder.NewTicketBuilder().CallingAt(3, time.Minute).BuildDomain())
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/current", nil, "")

		var response resdto.CurrentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("A-001", response.Number)
		s.Require().NotNil(response.Ticket)
		s.Equal(3, *response.Ticket.Counter)
	})
}

func (s *QueueHandlerTestSuite) TestWaiting() {
	s.Run("empty list is an empty array", func() {
		s.mockQueue.EXPECT().WaitingQueue(gomock.Any()).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/waiting", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"count":0,"tickets":[]}`, rec.Body.String())
	})

	s.Run("waiting tickets in order", func() {
		s.mockQueue.EXPECT().WaitingQueue(gomock.Any()).Return([]*ticket.Ticket{
			builder.NewTicketBuilder().WithNumber("C-001").BuildDomain(),
			builder.NewTicketBuilder().WithNumber("A-003").BuildDomain(),
		})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/waiting", nil, "")

		var response resdto.WaitingQueueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
		s.Equal("C-001", response.Tickets[0].Number)
		s.Equal("A-003", response.Tickets[1].Number)
	})
}

func (s *QueueHandlerTestSuite) TestEstimate() {
	s.mockQueue.EXPECT().EstimatedWait(gomock.Any()).Return(usecase.WaitEstimate{Waiting: 4, Minutes: 12})
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/estimate", nil, "")

	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	s.JSONEq(`{"waiting":4,"minutes":12}`, rec.Body.String())
}
