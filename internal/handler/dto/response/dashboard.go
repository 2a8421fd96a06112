package response

import (
	"antriqu/internal/domain/ticket"
	"antriqu/internal/usecase"

	"github.com/jinzhu/copier"
)

type CategoryStatResponse struct {
	Category  string `json:"category"`
	Label     string `json:"label"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

type StatusStatResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type HourStatResponse struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type StatsResponse struct {
	Total           int                    `json:"total"`
	Waiting         int                    `json:"waiting"`
	Calling         int                    `json:"calling"`
	Completed       int                    `json:"completed"`
	Skipped         int                    `json:"skipped"`
	CompletionRate  int                    `json:"completionRate"`
	ByCategory      []CategoryStatResponse `json:"byCategory"`
	StatusBreakdown []StatusStatResponse   `json:"statusBreakdown"`
	HourlyTrend     []HourStatResponse     `json:"hourlyTrend"`
}

func FromStats(s ticket.Stats) (*StatsResponse, error) {
	res := &StatsResponse{}
	if err := copier.Copy(res, &s); err != nil {
		return nil, err
	}
	// keep empty lists as [] in JSON
	if res.StatusBreakdown == nil {
		res.StatusBreakdown = []StatusStatResponse{}
	}
	return res, nil
}

type InsightResponse struct {
	Summary         string `json:"summary"`
	Recommendation  string `json:"recommendation"`
	ExpectedTraffic string `json:"expectedTraffic"`
}

func FromInsight(i usecase.Insight) *InsightResponse {
	return &InsightResponse{
		Summary:         i.Summary,
		Recommendation:  i.Recommendation,
		ExpectedTraffic: string(i.ExpectedTraffic),
	}
}

type GreetingResponse struct {
	Greeting string `json:"greeting"`
}

type OverviewResponse struct {
	Insight  *InsightResponse  `json:"insight"`
	Greeting string            `json:"greeting"`
	Stats    *StatsResponse    `json:"stats"`
	Estimate *EstimateResponse `json:"estimate"`
}

func FromOverview(o usecase.Overview) (*OverviewResponse, error) {
	stats, err := FromStats(o.Stats)
	if err != nil {
		return nil, err
	}
	return &OverviewResponse{
		Insight:  FromInsight(o.Insight),
		Greeting: o.Greeting,
		Stats:    stats,
		Estimate: FromEstimate(o.Wait),
	}, nil
}
