package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	settingdto "github.com/fiberdesk/fiberdesk/internal/application/setting/dto"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

type settingService interface {
	Get(ctx context.Context) (*settingdto.SettingsResponse, error)
	Update(ctx context.Context, req settingdto.UpdateSettingsRequest) (*settingdto.SettingsResponse, error)
	Import(ctx context.Context, payload map[string]json.RawMessage) (*settingdto.ImportResponse, error)
	Export(ctx context.Context) (*settingdto.ExportDocument, error)
	TestNotifications(ctx context.Context) (*settingdto.TestNotificationResponse, error)
}

type SettingHandler struct {
	service settingService
	logger  logger.Interface
}

func NewSettingHandler(service settingService, log logger.Interface) *SettingHandler {
	return &SettingHandler{service: service, logger: log}
}

// GetSettings returns the settings record, creating it with defaults on first use
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} settingdto.SettingsResponse
// @Router /settings [get]
func (h *SettingHandler) GetSettings(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Update settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body settingdto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} settingdto.SettingsResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /settings [put]
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req settingdto.UpdateSettingsRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// ExportSettings returns the sectioned snapshot as JSON, or as YAML with ?format=yaml.
// @Summary Export settings
// @Tags Settings
// @Produce json
// @Param format query string false "json (default) or yaml"
// @Success 200 {object} settingdto.ExportDocument
// @Router /settings/export [get]
func (h *SettingHandler) ExportSettings(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "yaml" {
		utils.AbortWithError(c, errors.NewValidationError(fmt.Sprintf("unsupported export format %q", format)))
		return
	}

	doc, err := h.service.Export(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	if format == "json" {
		utils.SuccessResponse(c, http.StatusOK, doc)
		return
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		h.logger.Errorw("failed to encode settings export", "error", err)
		utils.AbortWithError(c, errors.NewInternalError("failed to encode settings export"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="settings-%s.yaml"`, biztime.Today()))
	c.Data(http.StatusOK, constants.ContentTypeYAML, out)
}

// ImportSettings accepts a flat or sectioned settings document.
// @Summary Import settings
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} settingdto.ImportResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /settings/import [post]
func (h *SettingHandler) ImportSettings(c *gin.Context) {
	var payload map[string]json.RawMessage
	if err := utils.BindJSON(c, &payload); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.Import(c.Request.Context(), payload)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *SettingHandler) TestNotifications(c *gin.Context) {
	result, err := h.service.TestNotifications(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
