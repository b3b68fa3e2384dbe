package handler

import (
	"github.com/labstack/echo/v4"

	"taacheck/internal/usecase"
	"taacheck/pkg/response"
	"taacheck/pkg/utils"
)

type ProviderHandler struct {
	providerUseCase   *usecase.ProviderUseCase
	acceptanceUseCase *usecase.AcceptanceUseCase
}

func NewProviderHandler(providerUseCase *usecase.ProviderUseCase, acceptanceUseCase *usecase.AcceptanceUseCase) *ProviderHandler {
	return &ProviderHandler{
		providerUseCase:   providerUseCase,
		acceptanceUseCase: acceptanceUseCase,
	}
}

type providerRequestRequest struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Contact     string `json:"contact" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (h *ProviderHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	providers, total, err := h.providerUseCase.List(
		c.Request().Context(),
		c.QueryParam("profession"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"items": providers,
		"total": total,
	})
}

func (h *ProviderHandler) Get(c echo.Context) error {
	provider, err := h.providerUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}

func (h *ProviderHandler) Request(c echo.Context) error {
	var req providerRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	request, err := h.acceptanceUseCase.RequestProvider(c.Request().Context(), uid, c.Param("id"), usecase.ProviderRequestInput{
		Name:        req.Name,
		Location:    req.Location,
		Contact:     req.Contact,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}
