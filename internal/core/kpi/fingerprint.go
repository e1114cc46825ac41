package kpi

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"campaign-kpi/internal/core/domain"
)

// Fingerprint hashes every campaign field the engine reads together with the
// engine's benchmark overrides, so two campaigns share a fingerprint only
// when they yield the same metrics. When the result depends on the current
// date (recorded data without an end date) today's date is part of the hash.
func (e *Engine) Fingerprint(c *domain.Campaign) string {
	return fingerprint(c, e.now(), e.benchmarks.Digest())
}

func fingerprint(c *domain.Campaign, now time.Time, benchmarks string) string {
	d := xxhash.New()
	write := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.WriteString("\x1f")
	}
	float := func(v float64) { write(strconv.FormatFloat(v, 'g', -1, 64)) }
	integer := func(v int64) { write(strconv.FormatInt(v, 10)) }

	write(c.Platform)
	write(c.Objective)
	write(c.Target)
	float(c.Budget)
	write(truncateDay(c.StartDate).Format(dateLayout))
	if c.EndDate != nil {
		write(truncateDay(*c.EndDate).Format(dateLayout))
	} else {
		write("-")
	}
	float(c.ActualSpend)
	integer(c.Impressions)
	integer(c.Clicks)
	integer(c.Conversions)
	float(c.Revenue)
	write(benchmarks)
	if c.EndDate == nil && c.HasActualData() {
		write(truncateDay(now.UTC()).Format(dateLayout))
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
