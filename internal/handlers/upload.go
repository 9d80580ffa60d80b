// internal/handlers/upload.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shop-admin/internal/services"
	"github.com/javajoker/shop-admin/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /api/uploads?kind=logos|images
func (h *UploadHandler) Upload(c *gin.Context) {
	options, err := h.storageService.GetUploadOptions(c.DefaultQuery("kind", services.UploadKindImages))
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file uploaded", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read upload", nil)
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	result, err := h.storageService.UploadFile(file, header, options)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) || errors.Is(err, services.ErrFileType) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		logrus.WithError(err).Error("Upload failed")
		utils.InternalErrorResponse(c, "Failed to store upload")
		return
	}

	utils.CreatedResponse(c, result)
}
