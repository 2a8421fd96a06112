package api

import (
	"log/slog"
	"net/http"

	reqdto "antriqu/internal/handler/dto/request"
	"antriqu/internal/handler/httperr"
	"antriqu/internal/handler/middleware"
	"antriqu/internal/pkg/errs"
	"antriqu/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	queue usecase.QueueFacade
}

func NewAdminHandler(queue usecase.QueueFacade) *AdminHandler {
	return &AdminHandler{queue: queue}
}

// @Summary Reset queue
// @Description Delete every ticket and restart numbering. Requires {"confirm":"RESET"}
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ResetRequest true "Reset confirmation"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	var req reqdto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrResetNotConfirmed, "Reset must be confirmed", nil)
		return
	}
	if !req.Confirmed() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrResetNotConfirmed, "Reset must be confirmed", nil)
		return
	}

	if err := h.queue.Reset(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reset failed, queue left unchanged", nil)
		return
	}

	staffID, _ := middleware.GetStaffID(c)
	slog.Warn("Queue reset by staff", "staff_id", staffID.String())
	c.Status(http.StatusNoContent)
}
