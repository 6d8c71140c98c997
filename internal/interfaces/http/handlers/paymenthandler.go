package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	paymentdto "github.com/fiberdesk/fiberdesk/internal/application/payment/dto"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

type PaymentHandler struct {
	payments paymentService
	billing  billingService
	logger   logger.Interface
}

func NewPaymentHandler(payments paymentService, billing billingService, log logger.Interface) *PaymentHandler {
	return &PaymentHandler{payments: payments, billing: billing, logger: log}
}

// @Summary List payments
// @Tags Services
// @Produce json
// @Param customer_id query int false "Customer ID"
// @Param subscription_id query int false "Subscription ID"
// @Param status query string false "pending, paid, overdue or cancelled"
// @Success 200 {array} paymentdto.PaymentResponse
// @Router /services/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var q paymentdto.ListPaymentsQuery
	if err := utils.BindQuery(c, &q); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.payments.List(c.Request.Context(), q.Filter(), q.ToPage())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListOverdue returns overdue payments whose due date has passed.
func (h *PaymentHandler) ListOverdue(c *gin.Context) {
	result, err := h.billing.Overdue(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// Summary aggregates payments per status within an optional date window
// @Summary Payment summary
// @Tags Services
// @Produce json
// @Param start_date query string false "YYYY-MM-DD, inclusive"
// @Param end_date query string false "YYYY-MM-DD, inclusive"
// @Success 200 {object} paymentdto.SummaryResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /services/payments/summary [get]
func (h *PaymentHandler) Summary(c *gin.Context) {
	var q paymentdto.SummaryQuery
	if err := utils.BindQuery(c, &q); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.billing.Summary(c.Request.Context(), q)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// Generate creates the pending payments for one billing month
// @Summary Generate monthly billing
// @Tags Services
// @Accept json
// @Produce json
// @Param period body paymentdto.GenerateRequest true "Billing month"
// @Success 200 {object} paymentdto.GenerateResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /services/payments/generate [post]
func (h *PaymentHandler) Generate(c *gin.Context) {
	var req paymentdto.GenerateRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.billing.Generate(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *PaymentHandler) MarkOverdue(c *gin.Context) {
	result, err := h.billing.MarkOverdue(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "payment")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.payments.Get(c.Request.Context(), id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Create payment
// @Tags Services
// @Accept json
// @Produce json
// @Param payment body paymentdto.CreatePaymentRequest true "Payment"
// @Success 201 {object} paymentdto.PaymentResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /services/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req paymentdto.CreatePaymentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create payment", "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.payments.Create(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "payment")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var req paymentdto.UpdatePaymentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update payment", "payment_id", id, "error", err)
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.payments.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "payment")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	if err := h.payments.Delete(c.Request.Context(), id); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	deleted(c, "Payment")
}

// Pay settles a pending or overdue payment. The body is optional.
// @Summary Settle payment
// @Tags Services
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param settlement body paymentdto.PayRequest false "Settlement details"
// @Success 200 {object} paymentdto.PaymentResponse
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /services/payments/{id}/pay [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "payment")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var req paymentdto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		utils.AbortWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.billing.Pay(c.Request.Context(), id, req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
