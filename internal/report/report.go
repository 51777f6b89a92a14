// Package report derives the dashboard statistics from a completed fetch run.
package report

import (
	"errors"
	"math"
	"sort"

	"github.com/EduCatCode/104-test/internal/models"
	"github.com/EduCatCode/104-test/internal/utils"
)

const (
	// DefaultBins is the salary histogram bin count used when Options.Bins is unset
	DefaultBins = 20
	// DefaultTopSkills is how many skills the ranking keeps when Options.TopSkills is unset
	DefaultTopSkills = 20
)

// ErrNoData is returned when there is nothing to summarize
var ErrNoData = errors.New("no listings to report on")

// Options tunes the histogram and the skill ranking
type Options struct {
	Bins      int
	TopSkills int
}

// Count is one labelled frequency
type Count struct {
	Label string
	Count int
}

// Bin is one histogram bucket covering [Low, High). The last bin includes High.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Report holds the figures shown on the dashboard
type Report struct {
	Total           int
	WithSalary      int
	AverageSalary   *float64
	TopRegion       string
	Regions         []Count
	SalaryHistogram []Bin
	TopSkills       []Count
}

// Build summarizes listings. Listings without a salary estimate are left out of
// the salary figures rather than counted as zero.
func Build(listings []models.Listing, opts Options) (*Report, error) {
	if len(listings) == 0 {
		return nil, ErrNoData
	}
	if opts.Bins <= 0 {
		opts.Bins = DefaultBins
	}
	if opts.TopSkills <= 0 {
		opts.TopSkills = DefaultTopSkills
	}

	var salaries []float64
	regions := newCounter()
	skills := newCounter()

	for _, l := range listings {
		regions.add(l.RegionCode)
		for _, token := range utils.SplitSkills(l.SkillsText) {
			skills.add(token)
		}
		if l.HasSalary() {
			salaries = append(salaries, *l.SalaryEstimate)
		}
	}

	r := &Report{
		Total:           len(listings),
		WithSalary:      len(salaries),
		Regions:         regions.ranked(),
		SalaryHistogram: Histogram(salaries, opts.Bins),
		TopSkills:       skills.top(opts.TopSkills),
	}
	if len(r.Regions) > 0 {
		r.TopRegion = r.Regions[0].Label
	}
	if len(salaries) > 0 {
		avg := mean(salaries)
		r.AverageSalary = &avg
	}
	return r, nil
}

// Histogram spreads values over bins equal-width buckets between their min and max
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	low, high := values[0], values[0]
	for _, v := range values[1:] {
		low = math.Min(low, v)
		high = math.Max(high, v)
	}

	if low == high {
		return []Bin{{Low: low, High: high, Count: len(values)}}
	}

	width := (high - low) / float64(bins)
	hist := make([]Bin, bins)
	for i := range hist {
		hist[i].Low = low + float64(i)*width
		hist[i].High = low + float64(i+1)*width
	}
	hist[bins-1].High = high

	for _, v := range values {
		idx := int((v - low) / width)
		if idx >= bins {
			idx = bins - 1
		}
		hist[idx].Count++
	}
	return hist
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// counter counts labels and remembers when each was first seen so ties keep
// source order
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

func (c *counter) ranked() []Count {
	out := make([]Count, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, Count{Label: label, Count: c.counts[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func (c *counter) top(n int) []Count {
	ranked := c.ranked()
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
