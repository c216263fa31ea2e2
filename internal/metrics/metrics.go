package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"nutrisearch/internal/models"
)

// noFood labels outcomes that did not match a table entry.
const noFood = "none"

var (
	lookupDesc = prometheus.NewDesc(
		"nutrisearch_lookups_total",
		"Total food lookup count by outcome",
		[]string{"food", "outcome"},
		nil,
	)
)

type countKey struct {
	food    string
	outcome string
}

// Counts is an in-memory tally of lookup outcomes.
type Counts struct {
	mu sync.Mutex
	m  map[countKey]int64
}

// NewCounts returns an empty tally.
func NewCounts() *Counts {
	return &Counts{m: make(map[countKey]int64)}
}

// Increment adds one to the food/outcome pair.
func (c *Counts) Increment(food, outcome string) {
	if food == "" {
		food = noFood
	}
	c.mu.Lock()
	c.m[countKey{food, outcome}]++
	c.mu.Unlock()
}

// Snapshot returns all counts ordered by food then outcome.
func (c *Counts) Snapshot() []models.LookupCount {
	c.mu.Lock()
	out := make([]models.LookupCount, 0, len(c.m))
	for k, n := range c.m {
		out = append(out, models.LookupCount{Food: k.food, Outcome: k.outcome, Count: n})
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Food != out[j].Food {
			return out[i].Food < out[j].Food
		}
		return out[i].Outcome < out[j].Outcome
	})
	return out
}

// LookupCollector is a custom Prometheus collector that reads lookup counts
// on each scrape.
type LookupCollector struct {
	counts *Counts
}

// NewLookupCollector creates a collector over counts.
func NewLookupCollector(counts *Counts) *LookupCollector {
	return &LookupCollector{counts: counts}
}

// Describe sends the metric descriptor to the channel.
func (c *LookupCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- lookupDesc
}

// Collect emits every food/outcome pair as a counter.
func (c *LookupCollector) Collect(ch chan<- prometheus.Metric) {
	for _, l := range c.counts.Snapshot() {
		ch <- prometheus.MustNewConstMetric(
			lookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Food,
			l.Outcome,
		)
	}
}

var (
	recorder     *Counts
	recorderOnce sync.Once
)

// Init registers the lookup collector and the active widget gauge with the
// default registry. activeWidgets may be nil. Must be called once at startup.
func Init(activeWidgets func() float64) {
	recorderOnce.Do(func() {
		recorder = NewCounts()
		prometheus.MustRegister(NewLookupCollector(recorder))
		if activeWidgets != nil {
			prometheus.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "nutrisearch_active_widgets",
				Help: "Number of lookup widgets held for live sessions",
			}, activeWidgets))
		}
	})
}

// RecordLookup records a lookup outcome. No-op before Init.
func RecordLookup(food, outcome string) {
	if recorder == nil {
		return
	}
	recorder.Increment(food, outcome)
}
