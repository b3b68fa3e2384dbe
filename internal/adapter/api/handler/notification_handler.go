package handler

import (
	"github.com/labstack/echo/v4"

	"taacheck/internal/usecase"
	"taacheck/pkg/response"
)

type NotificationHandler struct {
	acceptanceUseCase *usecase.AcceptanceUseCase
}

func NewNotificationHandler(acceptanceUseCase *usecase.AcceptanceUseCase) *NotificationHandler {
	return &NotificationHandler{
		acceptanceUseCase: acceptanceUseCase,
	}
}

type acceptanceRequest struct {
	Name          string `json:"name" validate:"required"`
	TaaCheckID    string `json:"taacheck_id" validate:"required"`
	Role          string `json:"role" validate:"required"`
	BusinessPhone string `json:"business_phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	ReceiverID    string `json:"receiver_id" validate:"required"`
}

func (h *NotificationHandler) SubmitAcceptance(c echo.Context) error {
	var req acceptanceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	acceptance, err := h.acceptanceUseCase.SubmitAcceptance(c.Request().Context(), uid, usecase.AcceptanceInput{
		Name:          req.Name,
		TaaCheckID:    req.TaaCheckID,
		Role:          req.Role,
		BusinessPhone: req.BusinessPhone,
		Email:         req.Email,
		ReceiverID:    req.ReceiverID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, acceptance)
}

// List returns pending notifications; fetching them also clears the
// caller's new-notification flag, like opening the notifications screen did.
func (h *NotificationHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	notifications, err := h.acceptanceUseCase.ListNotifications(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notifications)
}

func (h *NotificationHandler) Accept(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.acceptanceUseCase.Accept(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "accepted"})
}

func (h *NotificationHandler) Decline(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.acceptanceUseCase.Decline(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "declined"})
}
