package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWrite(t *testing.T) {
	before := testutil.ToFloat64(entityWrites.WithLabelValues("customer", "create"))
	RecordWrite("customer", "create")
	assert.Equal(t, before+1, testutil.ToFloat64(entityWrites.WithLabelValues("customer", "create")))
}

func TestRequestStarted(t *testing.T) {
	done := RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(httpInFlight))

	done(http.MethodGet, "/customers", http.StatusOK)
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
	assert.Equal(t, float64(1), testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/customers", "200")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordPaymentsGenerated(2)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fiberdesk_billing_payments_generated_total")
}
