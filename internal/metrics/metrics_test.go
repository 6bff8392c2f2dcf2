package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("POST", "/api/calculate", 200, 5*time.Millisecond)
	m.SplitComputed("fair")
	m.OCRRequest("ok")
	m.ReceiptParsed(3)

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("POST", "/api/calculate", "200")); got != 1 {
		t.Errorf("requests_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.splitsTotal.WithLabelValues("fair")); got != 1 {
		t.Errorf("splits_total{policy=fair} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ocrRequests.WithLabelValues("ok")); got != 1 {
		t.Errorf("ocr_requests_total{outcome=ok} = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) != 5 {
		t.Errorf("registry holds %d metric families, want 5", len(families))
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Error("second New() on the same registry did not panic")
		}
	}()
	New(reg)
}
