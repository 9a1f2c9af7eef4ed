package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/speechcoach/intro-scorer/errors"
	"github.com/speechcoach/intro-scorer/internal/adapter/dto/score"
	"github.com/speechcoach/intro-scorer/internal/usecase/scoring"
)

// ScoreController handles transcript scoring requests
type ScoreController struct {
	svc    scoring.Service
	logger *zap.Logger
}

// NewScoreController creates a new score controller
func NewScoreController(svc scoring.Service, logger *zap.Logger) *ScoreController {
	return &ScoreController{
		svc:    svc,
		logger: logger,
	}
}

// ScoreTranscript scores a spoken self-introduction transcript and returns
// the per-category breakdown plus the total score.
func (sc *ScoreController) ScoreTranscript(c echo.Context) error {
	var req score.ScoreRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(sc.logger, c, errors.ErrInvalidPayload())
	}

	if err := c.Validate(&req); err != nil {
		return HandleError(sc.logger, c, errors.ErrValidationFailed(err))
	}

	if strings.TrimSpace(req.Transcript) == "" {
		return HandleError(sc.logger, c, errors.ErrMissingTranscript())
	}

	report, err := sc.svc.ScoreIntroduction(c.Request().Context(), req.Transcript, req.Duration)
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrScoringFailed(err))
	}

	return HandleSuccess(sc.logger, c, report)
}
