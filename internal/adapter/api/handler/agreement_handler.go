package handler

import (
	"github.com/labstack/echo/v4"

	"subleasehub/internal/usecase"
	"subleasehub/pkg/errors"
	"subleasehub/pkg/response"
	"subleasehub/pkg/utils"
)

type AgreementHandler struct {
	agreementUseCase *usecase.AgreementUseCase
}

func NewAgreementHandler(agreementUseCase *usecase.AgreementUseCase) *AgreementHandler {
	return &AgreementHandler{
		agreementUseCase: agreementUseCase,
	}
}

type createAgreementRequest struct {
	StartDate       string   `json:"start_date" validate:"required"`
	EndDate         string   `json:"end_date" validate:"required"`
	TenantID        string   `json:"tenant_id" validate:"required"`
	OwnerID         string   `json:"owner_id" validate:"required"`
	NumPeople       int      `json:"num_people" validate:"required,gt=0"`
	PayTerm         string   `json:"pay_term" validate:"omitempty,oneof=monthly weekly one_time"`
	Rent            *float64 `json:"rent"`
	SecurityDeposit *float64 `json:"security_deposit"`
}

func (h *AgreementHandler) CheckAvailability(c echo.Context) error {
	startParam := c.QueryParam("start")
	endParam := c.QueryParam("end")
	if startParam == "" || endParam == "" {
		return response.Error(c, errors.BadRequest("start and end query parameters are required", nil))
	}

	start, err := parseDate("start", startParam)
	if err != nil {
		return response.Error(c, err)
	}
	end, err := parseDate("end", endParam)
	if err != nil {
		return response.Error(c, err)
	}

	available, err := h.agreementUseCase.CheckAvailability(c.Request().Context(), c.Param("id"), start, end)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{
		"available": available,
	})
}

func (h *AgreementHandler) CreateAgreement(c echo.Context) error {
	var req createAgreementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return response.Error(c, err)
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return response.Error(c, err)
	}

	agreement, err := h.agreementUseCase.CreateAgreement(
		c.Request().Context(),
		c.Param("id"),
		usecase.CreateAgreementInput{
			StartDate:       start,
			EndDate:         end,
			TenantID:        req.TenantID,
			OwnerID:         req.OwnerID,
			NumPeople:       req.NumPeople,
			PayTerm:         req.PayTerm,
			Rent:            req.Rent,
			SecurityDeposit: req.SecurityDeposit,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, agreement)
}

func (h *AgreementHandler) Sign(c echo.Context) error {
	userID := c.Get("uid").(string)

	agreement, err := h.agreementUseCase.Sign(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"agreement":    agreement,
		"fully_signed": agreement.FullySigned(),
	})
}

func (h *AgreementHandler) GetAgreement(c echo.Context) error {
	agreement, err := h.agreementUseCase.GetAgreement(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"agreement":    agreement,
		"fully_signed": agreement.FullySigned(),
	})
}

func (h *AgreementHandler) ListAgreements(c echo.Context) error {
	from, err := parseOptionalDate("from", c.QueryParam("from"))
	if err != nil {
		return response.Error(c, err)
	}
	to, err := parseOptionalDate("to", c.QueryParam("to"))
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)

	agreements, total, err := h.agreementUseCase.ListAgreements(
		c.Request().Context(),
		c.QueryParam("agreementId"),
		c.QueryParam("ownerId"),
		c.QueryParam("tenantId"),
		c.QueryParam("listingId"),
		from,
		to,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, agreements, total, pagination.Page, pagination.PageSize)
}

func (h *AgreementHandler) DeleteAgreement(c echo.Context) error {
	if err := h.agreementUseCase.DeleteAgreement(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Agreement deleted successfully",
	})
}
