package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subdto "github.com/fiberdesk/fiberdesk/internal/application/subscription/dto"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

type SubscriptionHandler struct {
	service subscriptionService
	logger  logger.Interface
}

func NewSubscriptionHandler(service subscriptionService, log logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{service: service, logger: log}
}

// @Summary List subscriptions
// @Tags Services
// @Produce json
// @Param customer_id query int false "Customer ID"
// @Param status query string false "active, inactive, suspended or expired"
// @Success 200 {array} subdto.SubscriptionResponse
// @Router /services/subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	var q subdto.ListSubscriptionsQuery
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

// ListActive returns every active subscription without paging.
func (h *SubscriptionHandler) ListActive(c *gin.Context) {
	result, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListExpiring returns active subscriptions ending within days_ahead days
// @Summary Expiring subscriptions
// @Tags Services
// @Produce json
// @Param days_ahead query int false "Window in days (default 7)"
// @Success 200 {array} subdto.SubscriptionResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /services/subscriptions/expiring [get]
func (h *SubscriptionHandler) ListExpiring(c *gin.Context) {
	var q subdto.ExpiringQuery
	if err := utils.BindQuery(c, &q); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	result, err := h.service.ListExpiring(c.Request.Context(), q.Days())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
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

// @Summary Create subscription
// @Tags Services
// @Accept json
// @Produce json
// @Param subscription body subdto.CreateSubscriptionRequest true "Subscription"
// @Success 201 {object} subdto.SubscriptionResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /services/subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req subdto.CreateSubscriptionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
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

func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var req subdto.UpdateSubscriptionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update subscription", "subscription_id", id, "error", err)
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

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	deleted(c, "Subscription")
}
