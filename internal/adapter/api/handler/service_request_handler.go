package handler

import (
	"github.com/labstack/echo/v4"

	"taacheck/internal/usecase"
	"taacheck/pkg/response"
)

type ServiceRequestHandler struct {
	serviceRequestUseCase *usecase.ServiceRequestUseCase
}

func NewServiceRequestHandler(serviceRequestUseCase *usecase.ServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		serviceRequestUseCase: serviceRequestUseCase,
	}
}

type serviceRequestRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	LocationTag string `json:"location_tag" validate:"required"`
}

// List serves the open request feed. The optional region query param applies
// the county filter; leaving it empty returns the whole feed, which is also
// how the client resets an active filter.
func (h *ServiceRequestHandler) List(c echo.Context) error {
	requests, err := h.serviceRequestUseCase.List(c.Request().Context(), c.QueryParam("region"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

func (h *ServiceRequestHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	requests, err := h.serviceRequestUseCase.ListMine(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

func (h *ServiceRequestHandler) Get(c echo.Context) error {
	request, err := h.serviceRequestUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *ServiceRequestHandler) Create(c echo.Context) error {
	var req serviceRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	request, err := h.serviceRequestUseCase.Create(c.Request().Context(), uid, usecase.ServiceRequestInput{
		Title:       req.Title,
		Description: req.Description,
		LocationTag: req.LocationTag,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *ServiceRequestHandler) Update(c echo.Context) error {
	var req serviceRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	request, err := h.serviceRequestUseCase.Update(c.Request().Context(), uid, c.Param("id"), usecase.ServiceRequestInput{
		Title:       req.Title,
		Description: req.Description,
		LocationTag: req.LocationTag,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *ServiceRequestHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.serviceRequestUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
