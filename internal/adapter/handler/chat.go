package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/errors"
	dto "github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/adapter/dto/meeting"
	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/usecase/meeting"
	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/pkg/validator"
)

// ChatController handles follow-up questions about a processed meeting
type ChatController struct {
	svc       *meeting.Service
	validator *validator.CustomValidator
	logger    *zap.Logger
}

// NewChatController creates a new chat controller
func NewChatController(svc *meeting.Service, v *validator.CustomValidator, logger *zap.Logger) *ChatController {
	return &ChatController{svc: svc, validator: v, logger: logger}
}

// Chat answers a question against the caller-supplied meeting context.
func (cc *ChatController) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(cc.logger, c, errors.ErrInvalidPayload())
	}
	if err := cc.validator.Validate(&req); err != nil {
		return HandleError(cc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	answer, err := cc.svc.Answer(c.Request().Context(), req.Question, req.Context)
	if err != nil {
		return HandleError(cc.logger, c, errors.ErrChatFailed(err))
	}

	return c.JSON(http.StatusOK, dto.ChatResponse{Answer: answer})
}
