package handler

import (
	"github.com/labstack/echo/v4"

	"subleasehub/internal/usecase"
	"subleasehub/pkg/response"
	"subleasehub/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createListingRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	Address         string   `json:"address" validate:"required"`
	Rent            float64  `json:"rent" validate:"required,gt=0"`
	SecurityDeposit *float64 `json:"security_deposit"`
	StartDate       string   `json:"start_date" validate:"required"`
	EndDate         string   `json:"end_date" validate:"required"`
	Capacity        int      `json:"capacity" validate:"required,gt=0"`
	Website         string   `json:"website"`
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	input, err := h.toInput(req)
	if err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.CreateListing(c.Request().Context(), ownerID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	from, err := parseOptionalDate("from", c.QueryParam("from"))
	if err != nil {
		return response.Error(c, err)
	}
	to, err := parseOptionalDate("to", c.QueryParam("to"))
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListListings(
		c.Request().Context(),
		c.QueryParam("listingId"),
		c.QueryParam("ownerId"),
		from,
		to,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	input, err := h.toInput(req)
	if err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.UpdateListing(c.Request().Context(), c.Param("id"), actorID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	actorID := c.Get("uid").(string)

	if err := h.listingUseCase.DeleteListing(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing deleted successfully",
	})
}

func (h *ListingHandler) toInput(req createListingRequest) (usecase.CreateListingInput, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return usecase.CreateListingInput{}, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return usecase.CreateListingInput{}, err
	}

	return usecase.CreateListingInput{
		Title:           req.Title,
		Description:     req.Description,
		Address:         req.Address,
		Rent:            req.Rent,
		SecurityDeposit: req.SecurityDeposit,
		StartDate:       start,
		EndDate:         end,
		Capacity:        req.Capacity,
		Website:         req.Website,
	}, nil
}
