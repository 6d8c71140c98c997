package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashboarddto "github.com/fiberdesk/fiberdesk/internal/application/dashboard/dto"
	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers/testutil"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
)

type mockGetDashboardStatsUC struct {
	result *dashboarddto.StatsResponse
	err    error
}

func (m *mockGetDashboardStatsUC) Execute(ctx context.Context) (*dashboarddto.StatsResponse, error) {
	return m.result, m.err
}

type stubPinger struct{ err error }

func (p stubPinger) ping(ctx context.Context) error { return p.err }

func TestDashboardHandler_GetStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockGetDashboardStatsUC{result: &dashboarddto.StatsResponse{
			Customers: dashboarddto.CustomersSection{Total: 4, ByStatus: map[string]int64{"active": 4}},
			Packages:  dashboarddto.PackagesSection{Total: 2, Active: 1},
		}}
		r := testutil.NewEngine()
		r.GET("/dashboard/stats", NewDashboardHandler(uc, testutil.NewMockLogger()).GetStats)

		w := testutil.Do(r, http.MethodGet, "/dashboard/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body dashboarddto.StatsResponse
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, int64(4), body.Customers.Total)
		assert.Equal(t, int64(1), body.Packages.Active)
	})

	t.Run("storage failure", func(t *testing.T) {
		uc := &mockGetDashboardStatsUC{err: errors.NewInternalError("failed to count customers")}
		r := testutil.NewEngine()
		r.GET("/dashboard/stats", NewDashboardHandler(uc, testutil.NewMockLogger()).GetStats)

		w := testutil.Do(r, http.MethodGet, "/dashboard/stats", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"healthy", nil, http.StatusOK, `{"status":"healthy","database":"connected"}`},
		{"database down", errors.NewInternalError("ping failed"), http.StatusServiceUnavailable, `{"status":"unhealthy","database":"unreachable"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testutil.NewEngine()
			r.GET("/health", NewHealthHandler(stubPinger{err: tt.err}.ping, testutil.NewMockLogger()).Health)

			w := testutil.Do(r, http.MethodGet, "/health", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
