package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerdto "github.com/fiberdesk/fiberdesk/internal/application/customer/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers/testutil"
	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

// =====================================================================
// Mock service
// =====================================================================

type mockCustomerService struct {
	list     []*customerdto.CustomerResponse
	single   *customerdto.CustomerResponse
	summary  map[string]int64
	imported *customerdto.ImportResponse
	err      error

	gotFilter customer.Filter
	gotPage   query.Page
	gotID     uint
	gotCode   string
	gotCreate customerdto.CreateCustomerRequest
	gotUpdate customerdto.UpdateCustomerRequest
	gotUpload []byte
}

func (m *mockCustomerService) List(ctx context.Context, filter customer.Filter, page query.Page) ([]*customerdto.CustomerResponse, error) {
	m.gotFilter, m.gotPage = filter, page
	return m.list, m.err
}

func (m *mockCustomerService) Get(ctx context.Context, id uint) (*customerdto.CustomerResponse, error) {
	m.gotID = id
	return m.single, m.err
}

func (m *mockCustomerService) GetByCustomerID(ctx context.Context, code string) (*customerdto.CustomerResponse, error) {
	m.gotCode = code
	return m.single, m.err
}

func (m *mockCustomerService) Create(ctx context.Context, req customerdto.CreateCustomerRequest) (*customerdto.CustomerResponse, error) {
	m.gotCreate = req
	return m.single, m.err
}

func (m *mockCustomerService) Update(ctx context.Context, id uint, req customerdto.UpdateCustomerRequest) (*customerdto.CustomerResponse, error) {
	m.gotID, m.gotUpdate = id, req
	return m.single, m.err
}

func (m *mockCustomerService) Delete(ctx context.Context, id uint) error {
	m.gotID = id
	return m.err
}

func (m *mockCustomerService) StatusSummary(ctx context.Context) (map[string]int64, error) {
	return m.summary, m.err
}

func (m *mockCustomerService) ActiveCount(ctx context.Context) (*customerdto.CountResponse, error) {
	return &customerdto.CountResponse{Count: 3}, m.err
}

func (m *mockCustomerService) ListByPackage(ctx context.Context, packageID uint, page query.Page) ([]*customerdto.CustomerResponse, error) {
	m.gotID, m.gotPage = packageID, page
	return m.list, m.err
}

func (m *mockCustomerService) ListByODP(ctx context.Context, odpID uint, page query.Page) ([]*customerdto.CustomerResponse, error) {
	m.gotID, m.gotPage = odpID, page
	return m.list, m.err
}

func (m *mockCustomerService) Export(ctx context.Context, filter customer.Filter, w io.Writer) error {
	m.gotFilter = filter
	if m.err != nil {
		return m.err
	}
	_, err := w.Write([]byte("PK-workbook"))
	return err
}

func (m *mockCustomerService) Import(ctx context.Context, r io.Reader) (*customerdto.ImportResponse, error) {
	m.gotUpload, _ = io.ReadAll(r)
	return m.imported, m.err
}

func setupCustomerRoutes(svc *mockCustomerService) *gin.Engine {
	h := NewCustomerHandler(svc, testutil.NewMockLogger())
	r := testutil.NewEngine()
	r.GET("/customers", h.ListCustomers)
	r.POST("/customers", h.CreateCustomer)
	r.GET("/customers/stats/status-summary", h.StatusSummary)
	r.GET("/customers/stats/active-count", h.ActiveCount)
	r.GET("/customers/export", h.ExportCustomers)
	r.POST("/customers/import", h.ImportCustomers)
	r.GET("/customers/by-customer-id/:customer_id", h.GetByCustomerID)
	r.GET("/customers/by-package/:package_id", h.ListByPackage)
	r.GET("/customers/by-odp/:odp_id", h.ListByODP)
	r.GET("/customers/:id", h.GetCustomer)
	r.PUT("/customers/:id", h.UpdateCustomer)
	r.DELETE("/customers/:id", h.DeleteCustomer)
	return r
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	t.Run("defaults and filters", func(t *testing.T) {
		svc := &mockCustomerService{list: []*customerdto.CustomerResponse{{ID: 1, CustomerID: "C-1"}}}
		w := testutil.Do(setupCustomerRoutes(svc), http.MethodGet, "/customers?status=active&search=ann&odp_id=4", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, query.Page{Skip: 0, Limit: 100}, svc.gotPage)
		require.NotNil(t, svc.gotFilter.Status)
		assert.Equal(t, customer.StatusActive, *svc.gotFilter.Status)
		assert.Equal(t, "ann", svc.gotFilter.Search)
		require.NotNil(t, svc.gotFilter.ODPID)
		assert.Equal(t, uint(4), *svc.gotFilter.ODPID)

		var body []customerdto.CustomerResponse
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Len(t, body, 1)
	})

	invalid := []struct {
		name  string
		query string
	}{
		{"limit above maximum", "?limit=1001"},
		{"limit zero", "?limit=0"},
		{"negative skip", "?skip=-1"},
		{"unknown status", "?status=gone"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(setupCustomerRoutes(&mockCustomerService{}), http.MethodGet, "/customers"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "validation_error", testutil.ParseError(w).Type)
		})
	}
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	valid := map[string]interface{}{
		"customer_id":       "C-100",
		"name":              "Ann",
		"email":             "ann@example.com",
		"phone":             "0812",
		"address":           "Main St 1",
		"monthly_fee":       150000,
		"registration_date": "2024-03-01",
	}

	t.Run("created", func(t *testing.T) {
		svc := &mockCustomerService{single: &customerdto.CustomerResponse{ID: 9, CustomerID: "C-100"}}
		w := testutil.Do(setupCustomerRoutes(svc), http.MethodPost, "/customers", valid)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "C-100", svc.gotCreate.CustomerID)
		require.NotNil(t, svc.gotCreate.RegistrationDate)
		assert.Equal(t, "2024-03-01", svc.gotCreate.RegistrationDate.String())
	})

	t.Run("missing email", func(t *testing.T) {
		body := map[string]interface{}{}
		for k, v := range valid {
			body[k] = v
		}
		delete(body, "email")

		svc := &mockCustomerService{}
		w := testutil.Do(setupCustomerRoutes(svc), http.MethodPost, "/customers", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.gotCreate.CustomerID)
	})

	t.Run("malformed date", func(t *testing.T) {
		body := map[string]interface{}{}
		for k, v := range valid {
			body[k] = v
		}
		body["registration_date"] = "01/03/2024"

		w := testutil.Do(setupCustomerRoutes(&mockCustomerService{}), http.MethodPost, "/customers", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := &mockCustomerService{err: errors.NewConflictError("Customer ID or email already registered")}
		w := testutil.Do(setupCustomerRoutes(svc), http.MethodPost, "/customers", valid)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Customer ID or email already registered", testutil.ParseError(w).Detail)
	})
}

func TestCustomerHandler_StaticPathsResolveBeforeID(t *testing.T) {
	svc := &mockCustomerService{summary: map[string]int64{"active": 2}}
	r := setupCustomerRoutes(svc)

	w := testutil.Do(r, http.MethodGet, "/customers/stats/status-summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary map[string]int64
	require.NoError(t, testutil.ParseResponse(w, &summary))
	assert.Equal(t, int64(2), summary["active"])

	w = testutil.Do(r, http.MethodGet, "/customers/stats/active-count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":3}`, w.Body.String())
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockCustomerService{single: &customerdto.CustomerResponse{ID: 5}}
		w := testutil.Do(setupCustomerRoutes(svc), http.MethodGet, "/customers/5", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(5), svc.gotID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockCustomerService{err: errors.NewNotFoundError("Customer not found")}
		w := testutil.Do(setupCustomerRoutes(svc), http.MethodGet, "/customers/5", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Customer not found", testutil.ParseError(w).Detail)
	})

	t.Run("non numeric id", func(t *testing.T) {
		w := testutil.Do(setupCustomerRoutes(&mockCustomerService{}), http.MethodGet, "/customers/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("by business id", func(t *testing.T) {
		svc := &mockCustomerService{single: &customerdto.CustomerResponse{ID: 5, CustomerID: "C-7"}}
		w := testutil.Do(setupCustomerRoutes(svc), http.MethodGet, "/customers/by-customer-id/C-7", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "C-7", svc.gotCode)
	})
}

func TestCustomerHandler_UpdateCustomer(t *testing.T) {
	svc := &mockCustomerService{single: &customerdto.CustomerResponse{ID: 5}}
	w := testutil.Do(setupCustomerRoutes(svc), http.MethodPut, "/customers/5", `{"name":"Renamed","odp_id":null}`)

	require.Equal(t, http.StatusOK, w.Code)
	changes := svc.gotUpdate.Changes()
	assert.Equal(t, "Renamed", changes["name"])
	v, ok := changes["odp_id"]
	assert.True(t, ok)
	assert.Nil(t, v)
	_, touched := changes["email"]
	assert.False(t, touched)
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		w := testutil.Do(setupCustomerRoutes(&mockCustomerService{}), http.MethodDelete, "/customers/3", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Customer deleted successfully"}`, w.Body.String())
	})

	t.Run("has dependents", func(t *testing.T) {
		svc := &mockCustomerService{err: errors.NewConflictError("Cannot delete customer: 1 subscription(s) and 0 payment(s) still attached")}
		w := testutil.Do(setupCustomerRoutes(svc), http.MethodDelete, "/customers/3", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCustomerHandler_ListByParent(t *testing.T) {
	svc := &mockCustomerService{list: []*customerdto.CustomerResponse{}}
	r := setupCustomerRoutes(svc)

	w := testutil.Do(r, http.MethodGet, "/customers/by-package/2?limit=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), svc.gotID)
	assert.Equal(t, 10, svc.gotPage.Limit)

	w = testutil.Do(r, http.MethodGet, "/customers/by-odp/8", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(8), svc.gotID)
}

func TestCustomerHandler_ExportCustomers(t *testing.T) {
	svc := &mockCustomerService{}
	w := testutil.Do(setupCustomerRoutes(svc), http.MethodGet, "/customers/export?status=pending", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.ContentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.Equal(t, "PK-workbook", w.Body.String())
	require.NotNil(t, svc.gotFilter.Status)
	assert.Equal(t, customer.StatusPending, *svc.gotFilter.Status)
}

func TestCustomerHandler_ImportCustomers(t *testing.T) {
	t.Run("uploaded workbook", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "customers.xlsx")
		require.NoError(t, err)
		_, _ = part.Write([]byte("workbook-bytes"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/customers/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		svc := &mockCustomerService{imported: &customerdto.ImportResponse{
			Imported: 2,
			Failed:   []customerdto.ImportFailure{{Row: 4, Error: "email is required"}},
		}}
		w := testutil.DoRequest(setupCustomerRoutes(svc), req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []byte("workbook-bytes"), svc.gotUpload)
		assert.JSONEq(t, `{"imported":2,"failed":[{"row":4,"error":"email is required"}]}`, w.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		w := testutil.Do(setupCustomerRoutes(&mockCustomerService{}), http.MethodPost, "/customers/import", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "file is required", testutil.ParseError(w).Detail)
	})
}
