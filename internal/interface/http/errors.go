package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charterforge/charter-forge/internal/application"
	"github.com/charterforge/charter-forge/pkg/response"
)

// fail maps service errors to HTTP statuses. Presentation retries by simply
// re-invoking the endpoint; nothing here retries automatically.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, "invalid email or password", nil)
	case errors.Is(err, application.ErrNotAuthenticated):
		response.Fail(c, http.StatusUnauthorized, "no authenticated user", nil)
	case errors.Is(err, application.ErrProfileNotFound):
		response.Fail(c, http.StatusNotFound, "profile not found", nil)
	case errors.Is(err, application.ErrPillarNotFound):
		response.Fail(c, http.StatusNotFound, "pillar not found", nil)
	case errors.Is(err, application.ErrParticipantNotFound):
		response.Fail(c, http.StatusNotFound, "participant not found", nil)
	case errors.Is(err, application.ErrPersistence):
		response.Fail(c, http.StatusInternalServerError, "storage failure", nil)
	default:
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
	}
}
