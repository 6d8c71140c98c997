package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	customerdto "github.com/fiberdesk/fiberdesk/internal/application/customer/dto"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

type CustomerHandler struct {
	service customerService
	logger  logger.Interface
}

func NewCustomerHandler(service customerService, log logger.Interface) *CustomerHandler {
	return &CustomerHandler{service: service, logger: log}
}

// ListCustomers returns customers matching the optional filters
// @Summary List customers
// @Tags Customers
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (1-1000)"
// @Param search query string false "Name, email, phone or customer id substring"
// @Param status query string false "active, inactive, suspended or pending"
// @Param odp_id query int false "ODP ID"
// @Param package_id query int false "Package ID"
// @Success 200 {array} customerdto.CustomerResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var q customerdto.ListCustomersQuery
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

// CreateCustomer registers a new customer
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body customerdto.CreateCustomerRequest true "Customer"
// @Success 201 {object} customerdto.CustomerResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customerdto.CreateCustomerRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
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

func (h *CustomerHandler) StatusSummary(c *gin.Context) {
	result, err := h.service.StatusSummary(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *CustomerHandler) ActiveCount(c *gin.Context) {
	result, err := h.service.ActiveCount(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetByCustomerID looks a customer up by the business identifier.
func (h *CustomerHandler) GetByCustomerID(c *gin.Context) {
	result, err := h.service.GetByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *CustomerHandler) ListByPackage(c *gin.Context) {
	packageID, err := utils.ParseIDParam(c, "package_id", "package")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.ListByPackage(c.Request.Context(), packageID, page)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *CustomerHandler) ListByODP(c *gin.Context) {
	odpID, err := utils.ParseIDParam(c, "odp_id", "ODP")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.ListByODP(c.Request.Context(), odpID, page)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// ExportCustomers streams the filtered customer list as an xlsx workbook
// @Summary Export customers
// @Tags Customers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "active, inactive, suspended or pending"
// @Success 200 {file} file
// @Router /customers/export [get]
func (h *CustomerHandler) ExportCustomers(c *gin.Context) {
	var q customerdto.ListCustomersQuery
	if err := utils.BindQuery(c, &q); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.service.Export(c.Request.Context(), q.Filter(), &buf); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("customers-%s.xlsx", biztime.Today())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, buf.Bytes())
}

// ImportCustomers creates customers from an uploaded xlsx workbook
// @Summary Import customers
// @Tags Customers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook"
// @Success 200 {object} customerdto.ImportResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /customers/import [post]
func (h *CustomerHandler) ImportCustomers(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.AbortWithError(c, errors.NewValidationError("file is required"))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "filename", header.Filename, "error", err)
		utils.AbortWithError(c, errors.NewValidationError("uploaded file could not be read"))
		return
	}
	defer file.Close()

	result, err := h.service.Import(c.Request.Context(), file)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	h.logger.Infow("customers imported", "filename", header.Filename, "imported", result.Imported, "failed", len(result.Failed))
	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetCustomer returns one customer by numeric id
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} customerdto.CustomerResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "customer")
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

// UpdateCustomer applies a partial update
// @Summary Update customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param customer body customerdto.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} customerdto.CustomerResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var req customerdto.UpdateCustomerRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update customer", "customer_id", id, "error", err)
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

// DeleteCustomer removes a customer without subscriptions or payments
// @Summary Delete customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	deleted(c, "Customer")
}
