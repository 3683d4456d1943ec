package handler

import (
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"subleasehub/internal/usecase"
	"subleasehub/pkg/response"
)

type ContractHandler struct {
	contractUseCase *usecase.ContractUseCase
}

func NewContractHandler(contractUseCase *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{
		contractUseCase: contractUseCase,
	}
}

// DownloadContract renders the agreement into a pdf and streams it.
func (h *ContractHandler) DownloadContract(c echo.Context) error {
	pdfPath, err := h.contractUseCase.RenderContract(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	defer os.RemoveAll(filepath.Dir(pdfPath))

	return c.Attachment(pdfPath, "sublease-agreement.pdf")
}
