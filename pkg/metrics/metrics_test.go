package metrics_test

import (
	"io"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/quirkhelper/sidecar/pkg/metrics"
)

var _ = Describe("Metrics", func() {
	It("allows several independent instances", func() {
		Expect(func() {
			metrics.New()
			metrics.New()
		}).NotTo(Panic())
	})

	It("counts requests and suggestions", func() {
		m := metrics.New()
		m.ObserveRequest("/suggest", "POST", 200, 10*time.Millisecond)
		m.ObserveRequest("/suggest", "POST", 200, 20*time.Millisecond)
		m.ObserveSuggestion("fallback")

		requests, err := testutil.GatherAndCount(m.Registry(), "sidecar_http_requests_total")
		Expect(err).NotTo(HaveOccurred())
		Expect(requests).To(Equal(1))

		suggestions, err := testutil.GatherAndCount(m.Registry(), "sidecar_suggestions_total")
		Expect(err).NotTo(HaveOccurred())
		Expect(suggestions).To(Equal(1))
	})

	It("serves the text exposition format", func() {
		m := metrics.New()
		m.ObserveSuggestion("llm")

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

		body, _ := io.ReadAll(rec.Body)
		Expect(rec.Code).To(Equal(200))
		Expect(string(body)).To(ContainSubstring(`sidecar_suggestions_total{source="llm"} 1`))
	})
})
