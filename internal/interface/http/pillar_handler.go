package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charterforge/charter-forge/internal/application"
	"github.com/charterforge/charter-forge/pkg/response"
	"github.com/charterforge/charter-forge/pkg/validation"
)

type PillarHandler struct {
	Svc    *application.PillarService
	Logger *logrus.Logger
}

func NewPillarHandler(svc *application.PillarService, logger *logrus.Logger) *PillarHandler {
	return &PillarHandler{Svc: svc, Logger: logger}
}

type updateResponseRequest struct {
	Response string `json:"response"`
}

// List GET /api/pillars — the caller's pillars with answers merged in.
func (h *PillarHandler) List(c *gin.Context) {
	pillars, err := h.Svc.UserPillars(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, pillars, "pillars")
}

// Get GET /api/pillars/:id — static pillar definition.
func (h *PillarHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid pillar id", nil)
		return
	}
	p, err := h.Svc.PillarByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, p, "pillar")
}

// UpdateResponse PUT /api/pillars/:id/questions/:qid
// An empty response is a valid write: it marks the question unanswered.
func (h *PillarHandler) UpdateResponse(c *gin.Context) {
	pillarID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid pillar id", nil)
		return
	}
	questionID, err := strconv.Atoi(c.Param("qid"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid question id", nil)
		return
	}
	var req updateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.UpdateResponse(c.Request.Context(), c.GetString("userID"), pillarID, questionID, req.Response); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"saved": true}, "response saved")
}
