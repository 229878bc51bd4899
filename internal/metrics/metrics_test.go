package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordManifest(t *testing.T) {
	okBefore := testutil.ToFloat64(ManifestsTotal.WithLabelValues(ResultOK))
	missBefore := testutil.ToFloat64(ManifestsTotal.WithLabelValues(ResultDeviceNotFound))

	RecordManifest(ResultOK, 3)
	RecordManifest(ResultDeviceNotFound, 0)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ManifestsTotal.WithLabelValues(ResultOK)))
	assert.Equal(t, missBefore+1, testutil.ToFloat64(ManifestsTotal.WithLabelValues(ResultDeviceNotFound)))
}

func TestRecordImpression(t *testing.T) {
	before := testutil.ToFloat64(ImpressionsTotal.WithLabelValues(ResultCreativeNotFound))
	RecordImpression(ResultCreativeNotFound)
	assert.Equal(t, before+1, testutil.ToFloat64(ImpressionsTotal.WithLabelValues(ResultCreativeNotFound)))
}

func TestRecordHTTPRequest(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/analytics", "200")
	before := testutil.ToFloat64(c)
	RecordHTTPRequest(http.MethodGet, "/api/analytics", http.StatusOK, 12*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
