package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerdto "github.com/fiberdesk/fiberdesk/internal/application/customer/dto"
	networkdto "github.com/fiberdesk/fiberdesk/internal/application/network/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers/testutil"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

type mockNetworkService struct {
	err error

	gotFilter    network.Filter
	gotPage      query.Page
	gotID        uint
	gotCreateOLT networkdto.CreateOLTRequest
	gotUpdateODP networkdto.UpdateODPRequest
}

func (m *mockNetworkService) ListOLTs(ctx context.Context, filter network.Filter, page query.Page) ([]*networkdto.OLTResponse, error) {
	m.gotFilter, m.gotPage = filter, page
	return []*networkdto.OLTResponse{{ID: 1, Name: "OLT-1"}}, m.err
}

func (m *mockNetworkService) GetOLT(ctx context.Context, id uint) (*networkdto.OLTResponse, error) {
	m.gotID = id
	return &networkdto.OLTResponse{ID: id}, m.err
}

func (m *mockNetworkService) CreateOLT(ctx context.Context, req networkdto.CreateOLTRequest) (*networkdto.OLTResponse, error) {
	m.gotCreateOLT = req
	return &networkdto.OLTResponse{ID: 1, Name: req.Name}, m.err
}

func (m *mockNetworkService) UpdateOLT(ctx context.Context, id uint, req networkdto.UpdateOLTRequest) (*networkdto.OLTResponse, error) {
	m.gotID = id
	return &networkdto.OLTResponse{ID: id}, m.err
}

func (m *mockNetworkService) DeleteOLT(ctx context.Context, id uint) error {
	m.gotID = id
	return m.err
}

func (m *mockNetworkService) ListOLTODCs(ctx context.Context, id uint, page query.Page) ([]*networkdto.ODCResponse, error) {
	m.gotID, m.gotPage = id, page
	return []*networkdto.ODCResponse{}, m.err
}

func (m *mockNetworkService) ListODCs(ctx context.Context, filter network.Filter, page query.Page) ([]*networkdto.ODCResponse, error) {
	m.gotFilter, m.gotPage = filter, page
	return []*networkdto.ODCResponse{}, m.err
}

func (m *mockNetworkService) GetODC(ctx context.Context, id uint) (*networkdto.ODCResponse, error) {
	m.gotID = id
	return &networkdto.ODCResponse{ID: id}, m.err
}

func (m *mockNetworkService) CreateODC(ctx context.Context, req networkdto.CreateODCRequest) (*networkdto.ODCResponse, error) {
	return &networkdto.ODCResponse{ID: 1}, m.err
}

func (m *mockNetworkService) UpdateODC(ctx context.Context, id uint, req networkdto.UpdateODCRequest) (*networkdto.ODCResponse, error) {
	m.gotID = id
	return &networkdto.ODCResponse{ID: id}, m.err
}

func (m *mockNetworkService) DeleteODC(ctx context.Context, id uint) error {
	m.gotID = id
	return m.err
}

func (m *mockNetworkService) ListODCODPs(ctx context.Context, id uint, page query.Page) ([]*networkdto.ODPResponse, error) {
	m.gotID, m.gotPage = id, page
	return []*networkdto.ODPResponse{}, m.err
}

func (m *mockNetworkService) ListODPs(ctx context.Context, filter network.Filter, page query.Page) ([]*networkdto.ODPResponse, error) {
	m.gotFilter, m.gotPage = filter, page
	return []*networkdto.ODPResponse{}, m.err
}

func (m *mockNetworkService) GetODP(ctx context.Context, id uint) (*networkdto.ODPResponse, error) {
	m.gotID = id
	return &networkdto.ODPResponse{ID: id}, m.err
}

func (m *mockNetworkService) CreateODP(ctx context.Context, req networkdto.CreateODPRequest) (*networkdto.ODPResponse, error) {
	return &networkdto.ODPResponse{ID: 1}, m.err
}

func (m *mockNetworkService) UpdateODP(ctx context.Context, id uint, req networkdto.UpdateODPRequest) (*networkdto.ODPResponse, error) {
	m.gotID, m.gotUpdateODP = id, req
	return &networkdto.ODPResponse{ID: id}, m.err
}

func (m *mockNetworkService) DeleteODP(ctx context.Context, id uint) error {
	m.gotID = id
	return m.err
}

func (m *mockNetworkService) ListODPCustomers(ctx context.Context, id uint, page query.Page) ([]*customerdto.CustomerResponse, error) {
	m.gotID, m.gotPage = id, page
	return []*customerdto.CustomerResponse{}, m.err
}

func (m *mockNetworkService) Hierarchy(ctx context.Context) (*networkdto.HierarchyResponse, error) {
	return &networkdto.HierarchyResponse{}, m.err
}

func (m *mockNetworkService) Map(ctx context.Context) (*networkdto.MapResponse, error) {
	return &networkdto.MapResponse{}, m.err
}

func setupNetworkRoutes(svc *mockNetworkService) *gin.Engine {
	h := NewNetworkHandler(svc, testutil.NewMockLogger())
	r := testutil.NewEngine()
	r.GET("/infrastructure/olts", h.ListOLTs)
	r.POST("/infrastructure/olts", h.CreateOLT)
	r.GET("/infrastructure/olts/:id", h.GetOLT)
	r.DELETE("/infrastructure/olts/:id", h.DeleteOLT)
	r.GET("/infrastructure/olts/:id/odcs", h.ListOLTODCs)
	r.GET("/infrastructure/odcs", h.ListODCs)
	r.GET("/infrastructure/odps", h.ListODPs)
	r.PUT("/infrastructure/odps/:id", h.UpdateODP)
	r.GET("/infrastructure/odps/:id/customers", h.ListODPCustomers)
	r.GET("/infrastructure/hierarchy", h.Hierarchy)
	r.GET("/infrastructure/map", h.Map)
	return r
}

func TestNetworkHandler_ListFilters(t *testing.T) {
	t.Run("olts ignore parent filters", func(t *testing.T) {
		svc := &mockNetworkService{}
		w := testutil.Do(setupNetworkRoutes(svc), http.MethodGet, "/infrastructure/olts?status=maintenance&skip=5", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, svc.gotFilter.ParentID)
		require.NotNil(t, svc.gotFilter.Status)
		assert.Equal(t, network.StatusMaintenance, *svc.gotFilter.Status)
		assert.Equal(t, query.Page{Skip: 5, Limit: 100}, svc.gotPage)
	})

	t.Run("odcs by olt", func(t *testing.T) {
		svc := &mockNetworkService{}
		w := testutil.Do(setupNetworkRoutes(svc), http.MethodGet, "/infrastructure/odcs?olt_id=3", nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotFilter.ParentID)
		assert.Equal(t, uint(3), *svc.gotFilter.ParentID)
	})

	t.Run("odps by odc", func(t *testing.T) {
		svc := &mockNetworkService{}
		w := testutil.Do(setupNetworkRoutes(svc), http.MethodGet, "/infrastructure/odps?odc_id=6&search=north", nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotFilter.ParentID)
		assert.Equal(t, uint(6), *svc.gotFilter.ParentID)
		assert.Equal(t, "north", svc.gotFilter.Search)
	})

	t.Run("invalid status", func(t *testing.T) {
		w := testutil.Do(setupNetworkRoutes(&mockNetworkService{}), http.MethodGet, "/infrastructure/olts?status=broken", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNetworkHandler_CreateOLT(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &mockNetworkService{}
		w := testutil.Do(setupNetworkRoutes(svc), http.MethodPost, "/infrastructure/olts",
			map[string]interface{}{"name": "OLT-1", "location": "HQ", "total_ports": 16})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "OLT-1", svc.gotCreateOLT.Name)
		require.NotNil(t, svc.gotCreateOLT.TotalPorts)
		assert.Equal(t, 16, *svc.gotCreateOLT.TotalPorts)
	})

	t.Run("ports over capacity", func(t *testing.T) {
		svc := &mockNetworkService{err: errors.NewValidationError("used_ports cannot exceed total_ports")}
		w := testutil.Do(setupNetworkRoutes(svc), http.MethodPost, "/infrastructure/olts",
			map[string]interface{}{"name": "OLT-1", "location": "HQ", "total_ports": 4, "used_ports": 8})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "used_ports cannot exceed total_ports", testutil.ParseError(w).Detail)
	})

	t.Run("missing total ports", func(t *testing.T) {
		w := testutil.Do(setupNetworkRoutes(&mockNetworkService{}), http.MethodPost, "/infrastructure/olts",
			map[string]interface{}{"name": "OLT-1", "location": "HQ"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNetworkHandler_GetAndDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		svc := &mockNetworkService{err: errors.NewNotFoundError("OLT not found")}
		w := testutil.Do(setupNetworkRoutes(svc), http.MethodGet, "/infrastructure/olts/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, uint(42), svc.gotID)
	})

	t.Run("delete with children", func(t *testing.T) {
		svc := &mockNetworkService{err: errors.NewConflictError("Cannot delete OLT: 2 ODC(s) still attached")}
		w := testutil.Do(setupNetworkRoutes(svc), http.MethodDelete, "/infrastructure/olts/1", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict", testutil.ParseError(w).Type)
	})

	t.Run("delete", func(t *testing.T) {
		w := testutil.Do(setupNetworkRoutes(&mockNetworkService{}), http.MethodDelete, "/infrastructure/olts/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"OLT deleted successfully"}`, w.Body.String())
	})
}

func TestNetworkHandler_UpdateODP_ClearsCoordinates(t *testing.T) {
	svc := &mockNetworkService{}
	w := testutil.Do(setupNetworkRoutes(svc), http.MethodPut, "/infrastructure/odps/4", `{"latitude":null}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), svc.gotID)
	changes := svc.gotUpdateODP.Changes()
	assert.True(t, changes.Has("latitude"))
	assert.Nil(t, changes["latitude"])
	assert.False(t, changes.Has("longitude"))
}

func TestNetworkHandler_Children(t *testing.T) {
	svc := &mockNetworkService{}
	r := setupNetworkRoutes(svc)

	w := testutil.Do(r, http.MethodGet, "/infrastructure/olts/2/odcs?limit=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), svc.gotID)
	assert.Equal(t, 5, svc.gotPage.Limit)

	w = testutil.Do(r, http.MethodGet, "/infrastructure/odps/9/customers", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), svc.gotID)
}

func TestNetworkHandler_Topology(t *testing.T) {
	r := setupNetworkRoutes(&mockNetworkService{})

	assert.Equal(t, http.StatusOK, testutil.Do(r, http.MethodGet, "/infrastructure/hierarchy", nil).Code)
	assert.Equal(t, http.StatusOK, testutil.Do(r, http.MethodGet, "/infrastructure/map", nil).Code)

	failing := setupNetworkRoutes(&mockNetworkService{err: errors.NewInternalError("failed to load network")})
	assert.Equal(t, http.StatusInternalServerError, testutil.Do(failing, http.MethodGet, "/infrastructure/map", nil).Code)
}
