package api

import (
	"net/http"

	resdto "antriqu/internal/handler/dto/response"
	"antriqu/internal/handler/httperr"
	"antriqu/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	queue   usecase.QueueFacade
	insight usecase.InsightUseCase
}

func NewDashboardHandler(queue usecase.QueueFacade, insight usecase.InsightUseCase) *DashboardHandler {
	return &DashboardHandler{queue: queue, insight: insight}
}

// @Summary Dashboard statistics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Failure 401 {object} httperr.Response
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	res, err := resdto.FromStats(h.queue.Stats(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build statistics", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Queue insight
// @Description Short operational advice. Always answers, with a fixed text when the model is unavailable
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.InsightResponse
// @Failure 401 {object} httperr.Response
// @Router /dashboard/insight [get]
func (h *DashboardHandler) Insight(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromInsight(h.insight.Insight(c.Request.Context())))
}

// @Summary Dashboard overview
// @Description Statistics, wait estimate, insight and greeting in one call
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OverviewResponse
// @Failure 401 {object} httperr.Response
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	res, err := resdto.FromOverview(h.insight.Overview(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build overview", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Greeting
// @Description A short line for customers who are waiting
// @Tags queue
// @Produce json
// @Success 200 {object} resdto.GreetingResponse
// @Router /greeting [get]
func (h *DashboardHandler) Greeting(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.GreetingResponse{Greeting: h.insight.Greeting(c.Request.Context())})
}
