package handler

import (
	"github.com/labstack/echo/v4"

	"taacheck/internal/usecase"
	"taacheck/pkg/errors"
	"taacheck/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber string `json:"phone_number"`
	County      string `json:"county"`
	Gender      string `json:"gender"`
	Profession  string `json:"profession"`
	Experience  string `json:"experience"`
	Bio         string `json:"bio" validate:"omitempty,max=500"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		County:      req.County,
		Gender:      req.Gender,
		Profession:  req.Profession,
		Experience:  req.Experience,
		Bio:         req.Bio,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) SwitchRole(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.SwitchRole(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) ListMessages(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.userUseCase.ListMessages(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *UserHandler) UploadAvatar(c echo.Context) error {
	uid := c.Get("uid").(string)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("image file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("failed to read image file", err))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	user, err := h.userUseCase.UploadAvatar(c.Request().Context(), uid, file, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
