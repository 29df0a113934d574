package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/errors"
	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/usecase/meeting"
)

// MeetingController handles the media upload and processing endpoint
type MeetingController struct {
	svc    *meeting.Service
	logger *zap.Logger
}

// NewMeetingController creates a new meeting controller
func NewMeetingController(svc *meeting.Service, logger *zap.Logger) *MeetingController {
	return &MeetingController{svc: svc, logger: logger}
}

// ProcessVideo accepts a multipart media upload and runs the full
// transcription and analysis pipeline, returning the assembled result.
func (mc *MeetingController) ProcessVideo(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrMissingMediaFile())
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	mc.logger.Info("received media upload",
		zap.String("filename", file.Filename),
		zap.Int64("size", file.Size),
	)

	result, err := mc.svc.ProcessMeeting(
		c.Request().Context(),
		file.Filename,
		src,
		file.Size,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		return HandleError(mc.logger, c, err)
	}

	return c.JSON(http.StatusOK, result)
}
