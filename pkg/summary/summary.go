// Package summary renders dashboard payloads into short plain-text summaries.
package summary

import (
	"fmt"
	"strings"

	"github.com/quirkhelper/sidecar/pkg/payload"
)

const (
	// InlineSeparator joins segments for single-line summaries.
	InlineSeparator = " | "

	// BlockSeparator joins segments for multi-line summaries.
	BlockSeparator = "\n"

	// InlineDefaultHeader is used by the inline variant when no store is known.
	InlineDefaultHeader = "Dashboard"

	// BlockDefaultHeader is used by the block variant when no store is known.
	BlockDefaultHeader = "Vinconnect"
)

// Funnel holds the sales funnel counts.
type Funnel struct {
	Leads      int
	Contacted  int
	ApptsSet   int
	ApptsShown int
	Sold       int
}

// KPIs holds the dashboard key performance tiles.
type KPIs struct {
	Unanswered    int
	OpenVisits    int
	BuyingSignals int
	PendingDeals  int
}

// Summary is the normalized view of a dashboard payload.
type Summary struct {
	Store     string
	Title     string
	DateRange string
	URL       string
	Funnel    Funnel
	KPIs      KPIs
}

// FromPayload normalizes p. Nested fields (salesFunnel.*, kpis.*) win over the
// flat fields sent by the page scraper.
func FromPayload(p payload.Payload) Summary {
	return Summary{
		Store:     collapse(p.FirstString(path("store"), path("dealer", "name"), path("dealer", "store"))),
		Title:     collapse(p.FirstString(path("title"), path("page"))),
		DateRange: collapse(dateRange(p)),
		URL:       collapse(p.FirstString(path("url"))),
		Funnel: Funnel{
			Leads:      p.FirstInt(path("salesFunnel", "leads"), path("salesFunnel", "customers"), path("leads"), path("customers")),
			Contacted:  p.FirstInt(path("salesFunnel", "contacted"), path("contacted")),
			ApptsSet:   p.FirstInt(path("salesFunnel", "apptsSet"), path("salesFunnel", "appointmentsSet"), path("apptsSet")),
			ApptsShown: p.FirstInt(path("salesFunnel", "apptsShown"), path("salesFunnel", "appointmentsShown"), path("apptsShown")),
			Sold:       p.FirstInt(path("salesFunnel", "sold"), path("sold")),
		},
		KPIs: KPIs{
			Unanswered:    p.FirstInt(path("kpis", "unanswered"), path("kpis", "unansweredComms"), path("unanswered")),
			OpenVisits:    p.FirstInt(path("kpis", "openVisits"), path("openVisits")),
			BuyingSignals: p.FirstInt(path("kpis", "buyingSignals"), path("buyingSignals")),
			PendingDeals:  p.FirstInt(path("kpis", "pendingDeals"), path("pendingDeals")),
		},
	}
}

func path(keys ...string) []string { return keys }

// collapse folds runs of whitespace, newlines included, into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dateRange accepts either a preformatted string or a {start, end} object.
func dateRange(p payload.Payload) string {
	if s := strings.TrimSpace(p.String("dateRange")); s != "" {
		return s
	}
	r := p.Object("dateRange")
	start := strings.TrimSpace(r.String("start"))
	end := strings.TrimSpace(r.String("end"))
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return "from " + start
	case end != "":
		return "through " + end
	}
	return ""
}

// Header renders "<store> — <title> for <date range>", using defaultHeader
// when the store is unknown.
func (s Summary) Header(defaultHeader string) string {
	name := s.Store
	if name == "" {
		name = defaultHeader
	}
	header := name
	if s.Title != "" && !strings.EqualFold(s.Title, name) {
		header += " — " + s.Title
	}
	if s.DateRange != "" {
		header += " for " + s.DateRange
	}
	return header
}

// FunnelLine renders the sales funnel counts.
func (s Summary) FunnelLine() string {
	f := s.Funnel
	return fmt.Sprintf("Leads %d, Contacted %d, Appts set %d, Appts shown %d, Sold %d",
		f.Leads, f.Contacted, f.ApptsSet, f.ApptsShown, f.Sold)
}

// KPILine renders the KPI tiles.
func (s Summary) KPILine() string {
	k := s.KPIs
	return fmt.Sprintf("Unanswered %d, Open visits %d, Buying signals %d, Pending deals %d",
		k.Unanswered, k.OpenVisits, k.BuyingSignals, k.PendingDeals)
}

// URLLine renders the source URL, or "" when unknown.
func (s Summary) URLLine() string {
	if s.URL == "" {
		return ""
	}
	return "URL: " + s.URL
}

// Render joins the non-empty segments with sep.
func (s Summary) Render(sep, defaultHeader string) string {
	return Join(sep, s.Header(defaultHeader), s.FunnelLine(), s.KPILine(), s.URLLine())
}

// Inline renders the single-line " | " variant.
func (s Summary) Inline() string {
	return s.Render(InlineSeparator, InlineDefaultHeader)
}

// Block renders the multi-line variant.
func (s Summary) Block() string {
	return s.Render(BlockSeparator, BlockDefaultHeader)
}

// Join trims each segment and joins the non-empty ones with sep.
func Join(sep string, segments ...string) string {
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg = strings.TrimSpace(seg); seg != "" {
			kept = append(kept, seg)
		}
	}
	return strings.Join(kept, sep)
}
