package handler

import (
	"github.com/labstack/echo/v4"

	"subleasehub/internal/usecase"
	"subleasehub/pkg/response"
	"subleasehub/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListUsers(
		c.Request().Context(),
		c.QueryParam("userId"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}

func (h *UserHandler) GetMe(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) SaveListing(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.SaveListing(c.Request().Context(), userID, c.Param("listingId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UnsaveListing(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.UnsaveListing(c.Request().Context(), userID, c.Param("listingId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) ListSavedListings(c echo.Context) error {
	userID := c.Get("uid").(string)

	listings, err := h.userUseCase.ListSavedListings(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}
