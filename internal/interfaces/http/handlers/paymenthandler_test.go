package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentdto "github.com/fiberdesk/fiberdesk/internal/application/payment/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers/testutil"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

type mockPaymentService struct {
	err error

	gotFilter  payment.Filter
	gotPage    query.Page
	gotID      uint
	gotCreate  paymentdto.CreatePaymentRequest
	gotPay     paymentdto.PayRequest
	gotSummary paymentdto.SummaryQuery
	gotPeriod  paymentdto.GenerateRequest
	payCalled  bool
}

func (m *mockPaymentService) List(ctx context.Context, filter payment.Filter, page query.Page) ([]*paymentdto.PaymentResponse, error) {
	m.gotFilter, m.gotPage = filter, page
	return []*paymentdto.PaymentResponse{}, m.err
}

func (m *mockPaymentService) Get(ctx context.Context, id uint) (*paymentdto.PaymentResponse, error) {
	m.gotID = id
	return &paymentdto.PaymentResponse{ID: id}, m.err
}

func (m *mockPaymentService) Create(ctx context.Context, req paymentdto.CreatePaymentRequest) (*paymentdto.PaymentResponse, error) {
	m.gotCreate = req
	return &paymentdto.PaymentResponse{ID: 1, Status: "pending"}, m.err
}

func (m *mockPaymentService) Update(ctx context.Context, id uint, req paymentdto.UpdatePaymentRequest) (*paymentdto.PaymentResponse, error) {
	m.gotID = id
	return &paymentdto.PaymentResponse{ID: id}, m.err
}

func (m *mockPaymentService) Delete(ctx context.Context, id uint) error {
	m.gotID = id
	return m.err
}

func (m *mockPaymentService) Overdue(ctx context.Context) ([]*paymentdto.PaymentResponse, error) {
	return []*paymentdto.PaymentResponse{{ID: 4, Status: "overdue"}}, m.err
}

func (m *mockPaymentService) Summary(ctx context.Context, q paymentdto.SummaryQuery) (*paymentdto.SummaryResponse, error) {
	m.gotSummary = q
	return &paymentdto.SummaryResponse{StatusBreakdown: []*paymentdto.StatusTotalResponse{}}, m.err
}

func (m *mockPaymentService) Pay(ctx context.Context, id uint, req paymentdto.PayRequest) (*paymentdto.PaymentResponse, error) {
	m.payCalled, m.gotID, m.gotPay = true, id, req
	return &paymentdto.PaymentResponse{ID: id, Status: "paid"}, m.err
}

func (m *mockPaymentService) Generate(ctx context.Context, req paymentdto.GenerateRequest) (*paymentdto.GenerateResponse, error) {
	m.gotPeriod = req
	return &paymentdto.GenerateResponse{Created: 2, Skipped: 1}, m.err
}

func (m *mockPaymentService) MarkOverdue(ctx context.Context) (*paymentdto.MarkOverdueResponse, error) {
	return &paymentdto.MarkOverdueResponse{Updated: 3}, m.err
}

func setupPaymentRoutes(svc *mockPaymentService) *gin.Engine {
	h := NewPaymentHandler(svc, svc, testutil.NewMockLogger())
	r := testutil.NewEngine()
	r.GET("/services/payments", h.ListPayments)
	r.POST("/services/payments", h.CreatePayment)
	r.GET("/services/payments/overdue", h.ListOverdue)
	r.GET("/services/payments/summary", h.Summary)
	r.POST("/services/payments/generate", h.Generate)
	r.POST("/services/payments/mark-overdue", h.MarkOverdue)
	r.GET("/services/payments/:id", h.GetPayment)
	r.PUT("/services/payments/:id", h.UpdatePayment)
	r.DELETE("/services/payments/:id", h.DeletePayment)
	r.POST("/services/payments/:id/pay", h.Pay)
	return r
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	svc := &mockPaymentService{}
	w := testutil.Do(setupPaymentRoutes(svc), http.MethodGet, "/services/payments?customer_id=2&status=overdue&limit=20", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotFilter.CustomerID)
	assert.Equal(t, uint(2), *svc.gotFilter.CustomerID)
	require.NotNil(t, svc.gotFilter.Status)
	assert.Equal(t, payment.StatusOverdue, *svc.gotFilter.Status)
	assert.Equal(t, 20, svc.gotPage.Limit)
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	body := map[string]interface{}{
		"customer_id":     1,
		"subscription_id": 2,
		"amount":          150000,
		"payment_date":    "2024-05-01",
		"due_date":        "2024-05-20",
	}

	t.Run("created", func(t *testing.T) {
		svc := &mockPaymentService{}
		w := testutil.Do(setupPaymentRoutes(svc), http.MethodPost, "/services/payments", body)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, svc.gotCreate.DueDate)
		assert.Equal(t, "2024-05-20", svc.gotCreate.DueDate.String())
	})

	t.Run("subscription of another customer", func(t *testing.T) {
		svc := &mockPaymentService{err: errors.NewValidationError("Subscription does not belong to customer")}
		w := testutil.Do(setupPaymentRoutes(svc), http.MethodPost, "/services/payments", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Subscription does not belong to customer", testutil.ParseError(w).Detail)
	})

	t.Run("unknown status", func(t *testing.T) {
		invalid := map[string]interface{}{}
		for k, v := range body {
			invalid[k] = v
		}
		invalid["status"] = "refunded"

		w := testutil.Do(setupPaymentRoutes(&mockPaymentService{}), http.MethodPost, "/services/payments", invalid)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentHandler_Summary(t *testing.T) {
	t.Run("window bound", func(t *testing.T) {
		svc := &mockPaymentService{}
		w := testutil.Do(setupPaymentRoutes(svc), http.MethodGet, "/services/payments/summary?start_date=2024-01-01&end_date=2024-01-31", nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotSummary.StartDate)
		require.NotNil(t, svc.gotSummary.EndDate)
		assert.Equal(t, "2024-01-01", svc.gotSummary.StartDate.String())
		assert.Equal(t, "2024-01-31", svc.gotSummary.EndDate.String())
	})

	t.Run("open window", func(t *testing.T) {
		svc := &mockPaymentService{}
		w := testutil.Do(setupPaymentRoutes(svc), http.MethodGet, "/services/payments/summary", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, svc.gotSummary.StartDate)
		assert.Nil(t, svc.gotSummary.EndDate)
	})

	t.Run("malformed date", func(t *testing.T) {
		w := testutil.Do(setupPaymentRoutes(&mockPaymentService{}), http.MethodGet, "/services/payments/summary?start_date=yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentHandler_Pay(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		svc := &mockPaymentService{}
		w := testutil.Do(setupPaymentRoutes(svc), http.MethodPost, "/services/payments/7/pay", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, svc.payCalled)
		assert.Equal(t, uint(7), svc.gotID)
		assert.Nil(t, svc.gotPay.PaymentMethod)
	})

	t.Run("with settlement details", func(t *testing.T) {
		svc := &mockPaymentService{}
		w := testutil.Do(setupPaymentRoutes(svc), http.MethodPost, "/services/payments/7/pay",
			map[string]interface{}{"payment_method": "transfer", "payment_date": "2024-05-03"})

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotPay.PaymentMethod)
		assert.Equal(t, "transfer", *svc.gotPay.PaymentMethod)
		require.NotNil(t, svc.gotPay.PaymentDate)
		assert.Equal(t, "2024-05-03", svc.gotPay.PaymentDate.String())
	})

	t.Run("already settled", func(t *testing.T) {
		svc := &mockPaymentService{err: errors.NewConflictError("Payment is already paid")}
		w := testutil.Do(setupPaymentRoutes(svc), http.MethodPost, "/services/payments/7/pay", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &mockPaymentService{}
		w := testutil.Do(setupPaymentRoutes(svc), http.MethodPost, "/services/payments/7/pay", "{")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, svc.payCalled)
	})
}

func TestPaymentHandler_Billing(t *testing.T) {
	t.Run("generate", func(t *testing.T) {
		svc := &mockPaymentService{}
		w := testutil.Do(setupPaymentRoutes(svc), http.MethodPost, "/services/payments/generate", map[string]int{"month": 5, "year": 2024})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, svc.gotPeriod.Month)
		assert.Equal(t, 2024, svc.gotPeriod.Year)
		assert.JSONEq(t, `{"created":2,"skipped":1}`, w.Body.String())
	})

	t.Run("generate month out of range", func(t *testing.T) {
		w := testutil.Do(setupPaymentRoutes(&mockPaymentService{}), http.MethodPost, "/services/payments/generate", map[string]int{"month": 13, "year": 2024})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("mark overdue", func(t *testing.T) {
		w := testutil.Do(setupPaymentRoutes(&mockPaymentService{}), http.MethodPost, "/services/payments/mark-overdue", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"updated":3}`, w.Body.String())
	})

	t.Run("overdue listing", func(t *testing.T) {
		w := testutil.Do(setupPaymentRoutes(&mockPaymentService{}), http.MethodGet, "/services/payments/overdue", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body []paymentdto.PaymentResponse
		require.NoError(t, testutil.ParseResponse(w, &body))
		require.Len(t, body, 1)
		assert.Equal(t, "overdue", body[0].Status)
	})
}

func TestPaymentHandler_DeletePayment(t *testing.T) {
	w := testutil.Do(setupPaymentRoutes(&mockPaymentService{}), http.MethodDelete, "/services/payments/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Payment deleted successfully"}`, w.Body.String())
}
