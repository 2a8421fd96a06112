package api

import (
	"net/http"
	"strconv"

	resdto "antriqu/internal/handler/dto/response"
	"antriqu/internal/handler/httperr"
	"antriqu/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	queue usecase.QueueFacade
}

func NewQueueHandler(queue usecase.QueueFacade) *QueueHandler {
	return &QueueHandler{queue: queue}
}

// @Summary Waiting queue
// @Description Waiting tickets of every category, oldest first
// @Tags queue
// @Produce json
// @Success 200 {object} resdto.WaitingQueueResponse
// @Router /queue/waiting [get]
func (h *QueueHandler) Waiting(c *gin.Context) {
	waiting := h.queue.WaitingQueue(c.Request.Context())
	c.JSON(http.StatusOK, resdto.WaitingQueueResponse{
		Count:   len(waiting),
		Tickets: resdto.FromTickets(waiting),
	})
}

// @Summary Currently calling
// @Description The most recently called ticket across all counters
// @Tags queue
// @Produce json
// @Success 200 {object} resdto.CurrentResponse
// @Router /queue/current [get]
func (h *QueueHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCurrent(h.queue.CurrentlyCalling(c.Request.Context())))
}

// @Summary Estimated wait
// @Tags queue
// @Produce json
// @Success 200 {object} resdto.EstimateResponse
// @Router /queue/estimate [get]
func (h *QueueHandler) Estimate(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromEstimate(h.queue.EstimatedWait(c.Request.Context())))
}

// @Summary Call next ticket
// @Description Complete the counter's current ticket and call the oldest waiting one
// @Tags counters
// @Produce json
// @Security BearerAuth
// @Param counter path int true "Counter number"
// @Success 200 {object} resdto.CallNextResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /counters/{counter}/call-next [post]
func (h *QueueHandler) CallNext(c *gin.Context) {
	counter, err := strconv.Atoi(c.Param("counter"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid counter", nil)
		return
	}
	result, err := h.queue.CallNext(c.Request.Context(), counter)
	if err != nil {
		abortWithQueueError(c, err, "Call next failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCallNext(result))
}
