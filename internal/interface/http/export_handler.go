package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charterforge/charter-forge/internal/application"
	"github.com/charterforge/charter-forge/pkg/response"
)

type ExportHandler struct {
	Svc    *application.ExportService
	Logger *logrus.Logger
}

func NewExportHandler(svc *application.ExportService, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{Svc: svc, Logger: logger}
}

// PDF POST /api/export/pdf
func (h *ExportHandler) PDF(c *gin.Context) {
	res, err := h.Svc.ExportPDF(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, res, "export started")
}

// Word POST /api/export/word
func (h *ExportHandler) Word(c *gin.Context) {
	res, err := h.Svc.ExportWord(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, res, "export started")
}
