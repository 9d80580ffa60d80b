// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shop-admin/internal/services"
	"github.com/javajoker/shop-admin/internal/utils"
)

// respondError maps service errors onto status codes. fallback is the
// message sent for unexpected failures; their details are only logged.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		if details := utils.GetValidationErrors(err); len(details) > 0 {
			utils.ValidationErrorResponse(c, "Invalid input", details)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidID):
		utils.BadRequestResponse(c, "Invalid product ID", nil)
	case errors.Is(err, services.ErrShopNotFound):
		utils.NotFoundResponse(c, "Shop not found")
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, "Product not found")
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error(fallback)
		_ = c.Error(err)
		utils.InternalErrorResponse(c, fallback)
	}
}
