package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfare/fareledger/internal/domain"
)

// fail maps the core's typed failures onto HTTP statuses.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEntity):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidClass),
		errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
