// Package dashboard ingests dealer dashboard snapshots posted by the browser extension.
package dashboard

import "github.com/quirkhelper/sidecar/pkg/payload"

// Payload is a dealer dashboard snapshot. Counts are pointers because tiles the
// scraper could not read arrive as null.
type Payload struct {
	Timestamp     string                     `json:"timestamp"`
	Page          string                     `json:"page"`
	URL           string                     `json:"url"`
	Dealer        map[string]*string         `json:"dealer,omitempty"`
	DateRange     map[string]*string         `json:"dateRange,omitempty"`
	SalesFunnel   map[string]*int            `json:"salesFunnel,omitempty"`
	KPIs          map[string]*int            `json:"kpis,omitempty"`
	DailyActivity map[string]map[string]*int `json:"dailyActivity,omitempty"`
	Appointments  []map[string]any           `json:"appointments,omitempty"`
	ResponseTimes map[string]*int            `json:"responseTimes,omitempty"`
	User          *string                    `json:"user,omitempty"`
}

// FromPayload builds a snapshot from a loosely typed body. Values of the wrong
// type are coerced (counts to integers, labels to text) and nulls stay nil.
func FromPayload(p payload.Payload) *Payload {
	snapshot := &Payload{
		Timestamp:     p.String("timestamp"),
		Page:          p.String("page"),
		URL:           p.String("url"),
		Dealer:        texts(p.Object("dealer")),
		DateRange:     texts(p.Object("dateRange")),
		SalesFunnel:   counts(p.Object("salesFunnel")),
		KPIs:          counts(p.Object("kpis")),
		ResponseTimes: counts(p.Object("responseTimes")),
	}

	if days := p.Object("dailyActivity"); len(days) > 0 {
		snapshot.DailyActivity = make(map[string]map[string]*int, len(days))
		for day := range days {
			snapshot.DailyActivity[day] = counts(days.Object(day))
		}
	}

	raw, _ := p.Lookup("appointments")
	items, _ := raw.([]any)
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			snapshot.Appointments = append(snapshot.Appointments, obj)
		}
	}

	if v, ok := p.Lookup("user"); ok && v != nil {
		user := payload.AsString(v)
		snapshot.User = &user
	}
	return snapshot
}

func counts(obj payload.Payload) map[string]*int {
	if len(obj) == 0 {
		return nil
	}
	out := make(map[string]*int, len(obj))
	for k, v := range obj {
		if v == nil {
			out[k] = nil
			continue
		}
		n := payload.AsInt(v)
		out[k] = &n
	}
	return out
}

func texts(obj payload.Payload) map[string]*string {
	if len(obj) == 0 {
		return nil
	}
	out := make(map[string]*string, len(obj))
	for k, v := range obj {
		if v == nil {
			out[k] = nil
			continue
		}
		s := payload.AsString(v)
		out[k] = &s
	}
	return out
}

// Total sums the non-null values of counts.
func Total(counts map[string]*int) int {
	total := 0
	for _, v := range counts {
		if v != nil {
			total += *v
		}
	}
	return total
}
