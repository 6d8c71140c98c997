package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	networkdto "github.com/fiberdesk/fiberdesk/internal/application/network/dto"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

// NetworkHandler serves the OLT, ODC and ODP endpoints under /infrastructure.
type NetworkHandler struct {
	service networkService
	logger  logger.Interface
}

func NewNetworkHandler(service networkService, log logger.Interface) *NetworkHandler {
	return &NetworkHandler{service: service, logger: log}
}

func (h *NetworkHandler) bindList(c *gin.Context) (networkdto.ListQuery, bool) {
	var q networkdto.ListQuery
	if err := utils.BindQuery(c, &q); err != nil {
		utils.AbortWithError(c, err)
		return q, false
	}
	return q, true
}

// ListOLTs lists OLTs
// @Summary List OLTs
// @Tags Infrastructure
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (1-1000)"
// @Param search query string false "Name or location substring"
// @Param status query string false "active, inactive or maintenance"
// @Success 200 {array} networkdto.OLTResponse
// @Router /infrastructure/olts [get]
func (h *NetworkHandler) ListOLTs(c *gin.Context) {
	q, ok := h.bindList(c)
	if !ok {
		return
	}

	result, err := h.service.ListOLTs(c.Request.Context(), q.Filter(nil), q.ToPage())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Get OLT
// @Tags Infrastructure
// @Produce json
// @Param id path int true "OLT ID"
// @Success 200 {object} networkdto.OLTResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /infrastructure/olts/{id} [get]
func (h *NetworkHandler) GetOLT(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "OLT")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.GetOLT(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Create OLT
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param olt body networkdto.CreateOLTRequest true "OLT"
// @Success 201 {object} networkdto.OLTResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /infrastructure/olts [post]
func (h *NetworkHandler) CreateOLT(c *gin.Context) {
	var req networkdto.CreateOLTRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create OLT", "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.CreateOLT(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

// @Summary Update OLT
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param id path int true "OLT ID"
// @Param olt body networkdto.UpdateOLTRequest true "Fields to change"
// @Success 200 {object} networkdto.OLTResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /infrastructure/olts/{id} [put]
func (h *NetworkHandler) UpdateOLT(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "OLT")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var req networkdto.UpdateOLTRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update OLT", "olt_id", id, "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.UpdateOLT(c.Request.Context(), id, req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Delete OLT
// @Tags Infrastructure
// @Produce json
// @Param id path int true "OLT ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /infrastructure/olts/{id} [delete]
func (h *NetworkHandler) DeleteOLT(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "OLT")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	if err := h.service.DeleteOLT(c.Request.Context(), id); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	deleted(c, "OLT")
}

// ListOLTODCs lists the ODCs fed by one OLT.
func (h *NetworkHandler) ListOLTODCs(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "OLT")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.ListOLTODCs(c.Request.Context(), id, page)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary List ODCs
// @Tags Infrastructure
// @Produce json
// @Param olt_id query int false "Parent OLT ID"
// @Success 200 {array} networkdto.ODCResponse
// @Router /infrastructure/odcs [get]
func (h *NetworkHandler) ListODCs(c *gin.Context) {
	q, ok := h.bindList(c)
	if !ok {
		return
	}

	result, err := h.service.ListODCs(c.Request.Context(), q.Filter(q.OLTID), q.ToPage())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *NetworkHandler) GetODC(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ODC")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.GetODC(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Create ODC
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param odc body networkdto.CreateODCRequest true "ODC"
// @Success 201 {object} networkdto.ODCResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /infrastructure/odcs [post]
func (h *NetworkHandler) CreateODC(c *gin.Context) {
	var req networkdto.CreateODCRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ODC", "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.CreateODC(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *NetworkHandler) UpdateODC(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ODC")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var req networkdto.UpdateODCRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ODC", "odc_id", id, "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.UpdateODC(c.Request.Context(), id, req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *NetworkHandler) DeleteODC(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ODC")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	if err := h.service.DeleteODC(c.Request.Context(), id); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	deleted(c, "ODC")
}

func (h *NetworkHandler) ListODCODPs(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ODC")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.ListODCODPs(c.Request.Context(), id, page)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary List ODPs
// @Tags Infrastructure
// @Produce json
// @Param odc_id query int false "Parent ODC ID"
// @Success 200 {array} networkdto.ODPResponse
// @Router /infrastructure/odps [get]
func (h *NetworkHandler) ListODPs(c *gin.Context) {
	q, ok := h.bindList(c)
	if !ok {
		return
	}

	result, err := h.service.ListODPs(c.Request.Context(), q.Filter(q.ODCID), q.ToPage())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *NetworkHandler) GetODP(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ODP")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.GetODP(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *NetworkHandler) CreateODP(c *gin.Context) {
	var req networkdto.CreateODPRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ODP", "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.CreateODP(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *NetworkHandler) UpdateODP(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ODP")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var req networkdto.UpdateODPRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ODP", "odp_id", id, "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.UpdateODP(c.Request.Context(), id, req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *NetworkHandler) DeleteODP(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ODP")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	if err := h.service.DeleteODP(c.Request.Context(), id); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	deleted(c, "ODP")
}

// ListODPCustomers lists the customers attached to one ODP.
func (h *NetworkHandler) ListODPCustomers(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ODP")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.ListODPCustomers(c.Request.Context(), id, page)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// Hierarchy returns every OLT with its ODC and ODP subtree.
// @Summary Network hierarchy
// @Tags Infrastructure
// @Produce json
// @Success 200 {object} networkdto.HierarchyResponse
// @Router /infrastructure/hierarchy [get]
func (h *NetworkHandler) Hierarchy(c *gin.Context) {
	result, err := h.service.Hierarchy(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// Map returns geolocated nodes and customers.
// @Summary Network map
// @Tags Infrastructure
// @Produce json
// @Success 200 {object} networkdto.MapResponse
// @Router /infrastructure/map [get]
func (h *NetworkHandler) Map(c *gin.Context) {
	result, err := h.service.Map(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
