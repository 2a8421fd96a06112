package api

import (
	"net/http"

	reqdto "antriqu/internal/handler/dto/request"
	resdto "antriqu/internal/handler/dto/response"
	"antriqu/internal/handler/httperr"
	"antriqu/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	queue usecase.QueueFacade
}

func NewTicketHandler(queue usecase.QueueFacade) *TicketHandler {
	return &TicketHandler{queue: queue}
}

// @Summary Take a ticket
// @Description Register a walk-in customer and issue the next number for the chosen service
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTicketRequest true "Create ticket request"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var req reqdto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	name, category, err := req.ToDomain()
	if err != nil {
		abortWithQueueError(c, err, "Invalid service type")
		return
	}
	t, err := h.queue.CreateTicket(c.Request.Context(), name, category)
	if err != nil {
		abortWithQueueError(c, err, "Create ticket failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTicket(t))
}

// @Summary Get ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := parseTicketID(c)
	if !ok {
		return
	}
	t, err := h.queue.Get(c.Request.Context(), id)
	if err != nil {
		abortWithQueueError(c, err, "Get ticket failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicket(t))
}

// @Summary List tickets
// @Description Every ticket issued since the last reset, in issue order
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TicketResponse
// @Failure 401 {object} httperr.Response
// @Router /tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromTickets(h.queue.Tickets(c.Request.Context())))
}

// @Summary Resolve ticket
// @Description Mark a called ticket as served
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tickets/{id}/resolve [post]
func (h *TicketHandler) Resolve(c *gin.Context) {
	id, ok := parseTicketID(c)
	if !ok {
		return
	}
	t, err := h.queue.Resolve(c.Request.Context(), id)
	if err != nil {
		abortWithQueueError(c, err, "Resolve failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicket(t))
}

// @Summary Skip ticket
// @Description Mark a called ticket as absent
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tickets/{id}/skip [post]
func (h *TicketHandler) Skip(c *gin.Context) {
	id, ok := parseTicketID(c)
	if !ok {
		return
	}
	t, err := h.queue.Skip(c.Request.Context(), id)
	if err != nil {
		abortWithQueueError(c, err, "Skip failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicket(t))
}

// @Summary Recall ticket
// @Description Announce a called ticket again without changing it
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tickets/{id}/recall [post]
func (h *TicketHandler) Recall(c *gin.Context) {
	id, ok := parseTicketID(c)
	if !ok {
		return
	}
	t, err := h.queue.Recall(c.Request.Context(), id)
	if err != nil {
		abortWithQueueError(c, err, "Recall failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicket(t))
}

func parseTicketID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
