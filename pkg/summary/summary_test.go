package summary_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quirkhelper/sidecar/pkg/payload"
	"github.com/quirkhelper/sidecar/pkg/summary"
)

var _ = Describe("FromPayload", func() {
	It("reads nested funnel and kpi objects", func() {
		s := summary.FromPayload(payload.Decode([]byte(`{
			"dealer": {"name": "Quirk Chevrolet"},
			"page": "Dealer Dashboard",
			"dateRange": {"start": "10/01/2026", "end": "10/31/2026"},
			"url": "https://vinconnect.example/dashboard",
			"salesFunnel": {"leads": 40, "contacted": 31, "apptsSet": 12, "apptsShown": 8, "sold": 5},
			"kpis": {"unanswered": 3, "openVisits": 2, "buyingSignals": 9, "pendingDeals": 4}
		}`)))

		Expect(s.Store).To(Equal("Quirk Chevrolet"))
		Expect(s.Title).To(Equal("Dealer Dashboard"))
		Expect(s.DateRange).To(Equal("10/01/2026 – 10/31/2026"))
		Expect(s.Funnel).To(Equal(summary.Funnel{Leads: 40, Contacted: 31, ApptsSet: 12, ApptsShown: 8, Sold: 5}))
		Expect(s.KPIs).To(Equal(summary.KPIs{Unanswered: 3, OpenVisits: 2, BuyingSignals: 9, PendingDeals: 4}))
	})

	It("reads the flat fields sent by the page scraper", func() {
		s := summary.FromPayload(payload.Decode([]byte(`{
			"store": "Quirk Helper", "title": "VinConnect", "dateRange": "10/01 – 10/31",
			"customers": 22, "contacted": "18", "apptsSet": 6, "apptsShown": 4, "sold": 2,
			"unanswered": 1, "openVisits": 0, "buyingSignals": 5, "pendingDeals": 3
		}`)))

		Expect(s.DateRange).To(Equal("10/01 – 10/31"))
		Expect(s.Funnel).To(Equal(summary.Funnel{Leads: 22, Contacted: 18, ApptsSet: 6, ApptsShown: 4, Sold: 2}))
		Expect(s.KPIs.BuyingSignals).To(Equal(5))
	})

	It("defaults every count to zero when numeric fields are missing or malformed", func() {
		s := summary.FromPayload(payload.Decode([]byte(`{"salesFunnel": "oops", "kpis": {"unanswered": "n/a"}, "sold": null}`)))

		Expect(s.Funnel).To(Equal(summary.Funnel{}))
		Expect(s.KPIs).To(Equal(summary.KPIs{}))
	})

	It("collapses whitespace runs inside text fields", func() {
		s := summary.FromPayload(payload.Decode([]byte(`{"store":" Quirk \t Chevy ","title":"a\n\nb","dateRange":"10/01\n–\n10/31"}`)))
		Expect(s.Store).To(Equal("Quirk Chevy"))
		Expect(s.Title).To(Equal("a b"))
		Expect(s.DateRange).To(Equal("10/01 – 10/31"))
	})

	It("handles a date range with only one bound", func() {
		s := summary.FromPayload(payload.Decode([]byte(`{"dateRange": {"start": "10/01"}}`)))

		Expect(s.DateRange).To(Equal("from 10/01"))
	})
})

var _ = Describe("Render", func() {
	It("renders the inline variant with the Dashboard default header", func() {
		out := summary.FromPayload(payload.Payload{}).Inline()

		Expect(out).To(Equal("Dashboard | Leads 0, Contacted 0, Appts set 0, Appts shown 0, Sold 0 | " +
			"Unanswered 0, Open visits 0, Buying signals 0, Pending deals 0"))
	})

	It("renders the block variant with the Vinconnect default header", func() {
		out := summary.FromPayload(payload.Payload{"url": "https://x"}).Block()

		lines := strings.Split(out, "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(Equal("Vinconnect"))
		Expect(lines[3]).To(Equal("URL: https://x"))
	})

	It("composes the header from store, title and date range", func() {
		s := summary.Summary{Store: "Quirk", Title: "Dealer Dashboard", DateRange: "Oct"}

		Expect(s.Header("Dashboard")).To(Equal("Quirk — Dealer Dashboard for Oct"))
	})

	It("does not repeat a title equal to the store", func() {
		s := summary.Summary{Store: "Quirk", Title: "quirk"}

		Expect(s.Header("Dashboard")).To(Equal("Quirk"))
	})

	It("uses the title after the default header when no store is known", func() {
		s := summary.Summary{Title: "Sales"}

		Expect(s.Header("Dashboard")).To(Equal("Dashboard — Sales"))
	})

	It("omits the url segment instead of leaving a placeholder", func() {
		out := summary.Summary{}.Inline()

		Expect(out).NotTo(ContainSubstring("URL"))
		Expect(out).NotTo(ContainSubstring(" |  | "))
		Expect(out).NotTo(HaveSuffix(" | "))
	})
})

var _ = Describe("Join", func() {
	It("drops empty and whitespace-only segments", func() {
		Expect(summary.Join(" | ", "a", "", "  ", "b", "\n")).To(Equal("a | b"))
	})

	It("keeps multi-line titles from producing empty block lines", func() {
		out := summary.FromPayload(payload.Decode([]byte(`{"title":"a\n\nb"}`))).Block()
		Expect(out).NotTo(ContainSubstring("\n\n"))
		Expect(out).To(HavePrefix("Vinconnect — a b\nLeads 0,"))
	})

	It("never produces consecutive separators", func() {
		for _, segs := range [][]string{{"", ""}, {"a", "", "", "b"}, {"", "a"}, {"a", ""}} {
			out := summary.Join(" | ", segs...)
			Expect(out).NotTo(ContainSubstring(" |  | "))
			Expect(out).NotTo(HavePrefix(" | "))
			Expect(out).NotTo(HaveSuffix(" | "))
		}
	})
})
