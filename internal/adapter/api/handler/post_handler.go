package handler

import (
	"github.com/labstack/echo/v4"

	"taacheck/internal/usecase"
	"taacheck/pkg/response"
)

type PostHandler struct {
	postUseCase *usecase.PostUseCase
}

func NewPostHandler(postUseCase *usecase.PostUseCase) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
	}
}

type postRequest struct {
	Title       string `json:"title" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (h *PostHandler) ListFeed(c echo.Context) error {
	posts, err := h.postUseCase.ListFeed(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, posts)
}

func (h *PostHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	posts, err := h.postUseCase.ListByAuthor(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, posts)
}

func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	post, err := h.postUseCase.Create(c.Request().Context(), uid, usecase.PostInput{
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *PostHandler) Update(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	post, err := h.postUseCase.Update(c.Request().Context(), uid, c.Param("id"), usecase.PostInput{
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *PostHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.postUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *PostHandler) ToggleLike(c echo.Context) error {
	uid := c.Get("uid").(string)

	result, err := h.postUseCase.ToggleLike(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
