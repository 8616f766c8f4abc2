package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-invoice-service/internal/httpresp"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/setting"
	"github.com/fekuna/omnipos-invoice-service/internal/setting/dto"
	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	uc     setting.UseCase
	logger logger.ZapLogger
}

func NewSettingHandler(uc setting.UseCase, log logger.ZapLogger) *SettingHandler {
	return &SettingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SettingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/settings")
	g.GET("", h.GetSettings)
	g.PUT("", h.UpdateSettings)
	g.GET("/options", h.GetOptions)
	g.POST("/product-images", h.SetProductImages)
}

func (h *SettingHandler) GetSettings(c *gin.Context) {
	s, err := h.uc.GetSettings(c.Request.Context())
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var input dto.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpresp.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	s, err := h.uc.UpdateSettings(c.Request.Context(), &input)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully", "settings": s})
}

func (h *SettingHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.Options())
}

func (h *SettingHandler) SetProductImages(c *gin.Context) {
	var input dto.ProductImagesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpresp.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.uc.SetProductImagesEnabled(c.Request.Context(), input.Enabled); err != nil {
		httpresp.Error(c, h.logger, err, "Failed to update product image setting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_images_enabled": input.Enabled})
}
