package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ExportResult reports a simulated document export.
type ExportResult struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
}

// ExportService fabricates export results. No document is rendered; a real
// pipeline would template the profile and responses into PDF/DOCX here.
type ExportService struct {
	Logger  *logrus.Logger
	Latency time.Duration
}

func NewExportService(logger *logrus.Logger, latency time.Duration) *ExportService {
	return &ExportService{Logger: logger, Latency: latency}
}

func (s *ExportService) ExportPDF(ctx context.Context, userID string) (ExportResult, error) {
	return s.export(ctx, userID, "pdf")
}

func (s *ExportService) ExportWord(ctx context.Context, userID string) (ExportResult, error) {
	return s.export(ctx, userID, "docx")
}

func (s *ExportService) export(ctx context.Context, userID, ext string) (ExportResult, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return ExportResult{}, err
	}
	filename := fmt.Sprintf("family-business-charter-%d.%s", time.Now().UnixMilli(), ext)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_id":  userID,
			"filename": filename,
		}).Info("charter export simulated")
	}
	return ExportResult{Success: true, Filename: filename}, nil
}
