package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charterforge/charter-forge/internal/application"
	"github.com/charterforge/charter-forge/pkg/response"
	"github.com/charterforge/charter-forge/pkg/validation"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

type addNoteRequest struct {
	Note string `json:"note" binding:"required,min=1"`
}

// Participants GET /api/admin/participants
func (h *AdminHandler) Participants(c *gin.Context) {
	list, err := h.Svc.Participants(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, list, "participants")
}

// Participant GET /api/admin/participants/:id
func (h *AdminHandler) Participant(c *gin.Context) {
	detail, err := h.Svc.Participant(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, detail, "participant")
}

// AddNote POST /api/admin/participants/:id/notes
func (h *AdminHandler) AddNote(c *gin.Context) {
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	note, err := h.Svc.AddNote(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Note)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, note, "note added")
}
