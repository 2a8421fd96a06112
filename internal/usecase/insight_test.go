//go:build unit

package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/pkg/errs"
	"antriqu/internal/usecase"
	"antriqu/tests/common/builder"
	usecasemock "antriqu/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InsightUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	queue    *usecasemock.MockQueueFacade
	advisor  *usecasemock.MockAdvisoryProducer
	greeter  *usecasemock.MockGreetingProducer
	useCase  usecase.InsightUseCase
	tickets  []*ticket.Ticket
}

func (s *InsightUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.queue = usecasemock.NewMockQueueFacade(s.mockCtrl)
	s.advisor = usecasemock.NewMockAdvisoryProducer(s.mockCtrl)
	s.greeter = usecasemock.NewMockGreetingProducer(s.mockCtrl)
	s.useCase = usecase.NewInsightUseCase(s.queue, s.advisor, s.greeter, slog.New(slog.DiscardHandler))
	s.tickets = []*ticket.Ticket{
		builder.NewTicketBuilder().BuildDomain(),
		builder.NewTicketBuilder().WithNumber("A-002").CallingAt(1, time.Minute).BuildDomain(),
	}
}

func (s *InsightUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInsightUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(InsightUseCaseTestSuite))
}

func (s *InsightUseCaseTestSuite) TestInsight() {
	valid := usecase.Insight{Summary: "Antrian stabil.", Recommendation: "Buka loket 3.", ExpectedTraffic: usecase.TrafficHigh}

	s.Run("returns the producer's insight", func() {
		s.queue.EXPECT().Tickets(gomock.Any()).Return(s.tickets)
		s.advisor.EXPECT().Advise(gomock.Any(), s.tickets).Return(valid, nil)

		s.Equal(valid, s.useCase.Insight(s.ctx))
	})

	tests := []struct {
		name    string
		insight usecase.Insight
		err     error
	}{
		{name: "producer error", err: errs.ErrCollaboratorFailed},
		{name: "schema mismatch", err: errs.ErrSchemaMismatch},
		{name: "missing summary", insight: usecase.Insight{Recommendation: "x", ExpectedTraffic: usecase.TrafficLow}},
		{name: "blank recommendation", insight: usecase.Insight{Summary: "x", Recommendation: "  ", ExpectedTraffic: usecase.TrafficLow}},
		{name: "unknown traffic", insight: usecase.Insight{Summary: "x", Recommendation: "y", ExpectedTraffic: "Extreme"}},
	}
	for _, tt := range tests {
		s.Run("falls back on "+tt.name, func() {
			s.queue.EXPECT().Tickets(gomock.Any()).Return(s.tickets)
			s.advisor.EXPECT().Advise(gomock.Any(), gomock.Any()).Return(tt.insight, tt.err)

			s.Equal(usecase.FallbackInsight, s.useCase.Insight(s.ctx))
		})
	}
}

func (s *InsightUseCaseTestSuite) TestGreeting() {
	tests := []struct {
		name     string
		greeting string
		err      error
		want     string
	}{
		{name: "trimmed producer text", greeting: "  Selamat pagi!\n", want: "Selamat pagi!"},
		{name: "producer error", err: errs.ErrCollaboratorFailed, want: usecase.FallbackGreeting},
		{name: "empty text", greeting: " ", want: usecase.FallbackGreeting},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.greeter.EXPECT().Greet(gomock.Any()).Return(tt.greeting, tt.err)
			s.Equal(tt.want, s.useCase.Greeting(s.ctx))
		})
	}
}

func (s *InsightUseCaseTestSuite) TestOverview() {
	stats := ticket.Summarize(s.tickets, time.UTC)
	wait := usecase.WaitEstimate{Waiting: 1, Minutes: 5}

	s.queue.EXPECT().Tickets(gomock.Any()).Return(s.tickets)
	s.queue.EXPECT().Stats(gomock.Any()).Return(stats)
	s.queue.EXPECT().EstimatedWait(gomock.Any()).Return(wait)
	s.advisor.EXPECT().Advise(gomock.Any(), gomock.Any()).Return(usecase.Insight{}, errs.ErrCollaboratorFailed)
	s.greeter.EXPECT().Greet(gomock.Any()).Return("Halo", nil)

	overview := s.useCase.Overview(s.ctx)

	s.Equal(usecase.FallbackInsight, overview.Insight)
	s.Equal("Halo", overview.Greeting)
	s.Equal(stats, overview.Stats)
	s.Equal(wait, overview.Wait)
}
