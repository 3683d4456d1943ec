package handler

import (
	"github.com/labstack/echo/v4"

	"subleasehub/internal/usecase"
	"subleasehub/pkg/errors"
	"subleasehub/pkg/response"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
	}
}

func (h *FileHandler) UploadProfileImage(c echo.Context) error {
	userID := c.Get("uid").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("file is required", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	meta, err := h.fileUseCase.UploadProfileImage(
		c.Request().Context(),
		userID,
		src,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, meta)
}

func (h *FileHandler) UploadListingImage(c echo.Context) error {
	actorID := c.Get("uid").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("file is required", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	meta, err := h.fileUseCase.UploadListingImage(
		c.Request().Context(),
		c.Param("id"),
		actorID,
		src,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, meta)
}

func (h *FileHandler) ListListingImages(c echo.Context) error {
	files, err := h.fileUseCase.ListListingImages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, files)
}
