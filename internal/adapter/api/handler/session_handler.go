package handler

import (
	"github.com/labstack/echo/v4"

	"taacheck/internal/usecase"
	"taacheck/pkg/response"
)

type SessionHandler struct {
	sessionUseCase *usecase.SessionUseCase
}

func NewSessionHandler(sessionUseCase *usecase.SessionUseCase) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
	}
}

type routeRequest struct {
	OnboardingCompleted bool   `json:"onboarding_completed"`
	IdToken             string `json:"id_token"`
}

// Route resolves the client's cold-start destination. It never fails: any
// problem along the way degrades to the signup destination.
func (h *SessionHandler) Route(c echo.Context) error {
	var req routeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	destination := h.sessionUseCase.Route(c.Request().Context(), req.OnboardingCompleted, req.IdToken)

	return response.Success(c, map[string]string{
		"destination": destination,
	})
}
