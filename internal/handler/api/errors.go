package api

import (
	"net/http"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/handler/httperr"
	"antriqu/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithQueueError maps queue errors onto HTTP statuses.
func abortWithQueueError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, ticket.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, err.Error())
	case errs.Is(err, ticket.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
	case errs.Is(err, ticket.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
