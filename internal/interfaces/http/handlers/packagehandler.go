package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	packagedto "github.com/fiberdesk/fiberdesk/internal/application/packages/dto"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

type PackageHandler struct {
	service packageService
	logger  logger.Interface
}

func NewPackageHandler(service packageService, log logger.Interface) *PackageHandler {
	return &PackageHandler{service: service, logger: log}
}

// ListPackages lists service packages
// @Summary List packages
// @Tags Services
// @Produce json
// @Param is_active query bool false "Only active or inactive packages"
// @Success 200 {array} packagedto.PackageResponse
// @Router /services/packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	var q packagedto.ListPackagesQuery
	if err := utils.BindQuery(c, &q); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), q.Filter(), q.ToPage())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Get package
// @Tags Services
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} packagedto.PackageResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /services/packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "package")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Create package
// @Tags Services
// @Accept json
// @Produce json
// @Param package body packagedto.CreatePackageRequest true "Package"
// @Success 201 {object} packagedto.PackageResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /services/packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req packagedto.CreatePackageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create package", "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "package")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var req packagedto.UpdatePackageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update package", "package_id", id, "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeletePackage removes a package no customer or subscription references
// @Summary Delete package
// @Tags Services
// @Param id path int true "Package ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 409 {object} utils.ErrorBody
// @Router /services/packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "package")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	deleted(c, "Package")
}
