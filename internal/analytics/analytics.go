// Package analytics keeps local usage statistics: how often formatted text
// was copied for each platform, how many characters, and on which days.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blacktop/postfmt/internal/postfmt"
	"github.com/blacktop/postfmt/internal/store"
)

const (
	// Key is the store key the analytics document is saved under.
	Key = "postfmt.analytics"

	dateLayout    = "2006-01-02"
	recentDays    = 30
	noActivityYet = "No data yet"
)

// PlatformStats aggregates copies for one platform.
type PlatformStats struct {
	Copies          int `json:"copies"`
	TotalCharacters int `json:"totalCharacters"`
}

// Data is the persisted analytics document.
type Data struct {
	TotalFormattedCount int                                `json:"totalFormattedCount"`
	PlatformStats       map[postfmt.Platform]PlatformStats `json:"platformStats"`
	DailyStats          map[string]int                     `json:"dailyStats"`
	LastUpdated         time.Time                          `json:"lastUpdated"`
}

// PlatformUsage is one row of the summary's per-platform breakdown.
type PlatformUsage struct {
	Platform      postfmt.Platform `json:"platform" yaml:"platform"`
	Copies        int              `json:"copies" yaml:"copies"`
	Percentage    int              `json:"percentage" yaml:"percentage"`
	AvgCharacters int              `json:"avgCharacters" yaml:"avgCharacters"`
}

// DailyActivity is one day of the summary's activity list.
type DailyActivity struct {
	Date      string `json:"date" yaml:"date"`
	Copies    int    `json:"copies" yaml:"copies"`
	DayOfWeek string `json:"dayOfWeek" yaml:"dayOfWeek"`
}

// Summary is a read-only digest of Data.
type Summary struct {
	TotalFormattedCount int             `json:"totalFormattedCount" yaml:"totalFormattedCount"`
	PlatformUsage       []PlatformUsage `json:"platformUsage" yaml:"platformUsage"`
	DailyActivity       []DailyActivity `json:"dailyActivity" yaml:"dailyActivity"`
	MostActiveDay       string          `json:"mostActiveDay" yaml:"mostActiveDay"`
	TotalCharacters     int             `json:"totalCharacters" yaml:"totalCharacters"`
}

// Tracker records and summarises usage through a store.KV.
type Tracker struct {
	kv  store.KV
	now func() time.Time
}

// Option customises a Tracker.
type Option func(*Tracker)

// WithClock overrides the tracker's time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker returns a tracker persisting to kv.
func NewTracker(kv store.KV, opts ...Option) *Tracker {
	t := &Tracker{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func defaults(now time.Time) Data {
	d := Data{
		PlatformStats: make(map[postfmt.Platform]PlatformStats, len(postfmt.Platforms())),
		DailyStats:    make(map[string]int),
		LastUpdated:   now,
	}
	for _, p := range postfmt.Platforms() {
		d.PlatformStats[p] = PlatformStats{}
	}
	return d
}

// Load returns the stored analytics merged over defaults. Missing or
// unreadable documents yield defaults.
func (t *Tracker) Load(ctx context.Context) (Data, error) {
	data := defaults(t.now())

	raw, ok, err := t.kv.Get(ctx, Key)
	if err != nil {
		return data, fmt.Errorf("load analytics: %w", err)
	}
	if !ok {
		return data, nil
	}

	var saved Data
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return data, nil
	}

	data.TotalFormattedCount = saved.TotalFormattedCount
	for p, s := range saved.PlatformStats {
		data.PlatformStats[p] = s
	}
	for day, n := range saved.DailyStats {
		data.DailyStats[day] = n
	}
	if !saved.LastUpdated.IsZero() {
		data.LastUpdated = saved.LastUpdated
	}
	return data, nil
}

func (t *Tracker) save(ctx context.Context, data Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode analytics: %w", err)
	}
	if err := t.kv.Set(ctx, Key, string(raw)); err != nil {
		return fmt.Errorf("save analytics: %w", err)
	}
	return nil
}

// RecordCopy counts one copy of charCount characters for platform.
func (t *Tracker) RecordCopy(ctx context.Context, platform postfmt.Platform, charCount int) error {
	data, err := t.Load(ctx)
	if err != nil {
		return err
	}

	now := t.now()
	today := now.UTC().Format(dateLayout)

	stats := data.PlatformStats[platform]
	stats.Copies++
	stats.TotalCharacters += charCount
	data.PlatformStats[platform] = stats
	data.TotalFormattedCount++
	data.DailyStats[today]++
	data.LastUpdated = now

	return t.save(ctx, data)
}

// Clear resets all analytics.
func (t *Tracker) Clear(ctx context.Context) error {
	return t.save(ctx, defaults(t.now()))
}

// Summary digests the stored analytics.
func (t *Tracker) Summary(ctx context.Context) (Summary, error) {
	data, err := t.Load(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(data), nil
}

// Summarize digests data without touching the store.
func Summarize(data Data) Summary {
	summary := Summary{
		TotalFormattedCount: data.TotalFormattedCount,
		MostActiveDay:       noActivityYet,
	}

	order := make(map[postfmt.Platform]int)
	for i, p := range postfmt.Platforms() {
		order[p] = i
	}

	for p, s := range data.PlatformStats {
		usage := PlatformUsage{Platform: p, Copies: s.Copies}
		if data.TotalFormattedCount > 0 {
			usage.Percentage = roundDiv(s.Copies*100, data.TotalFormattedCount)
		}
		if s.Copies > 0 {
			usage.AvgCharacters = roundDiv(s.TotalCharacters, s.Copies)
		}
		summary.PlatformUsage = append(summary.PlatformUsage, usage)
		summary.TotalCharacters += s.TotalCharacters
	}
	sort.Slice(summary.PlatformUsage, func(i, j int) bool {
		a, b := summary.PlatformUsage[i], summary.PlatformUsage[j]
		if a.Copies != b.Copies {
			return a.Copies > b.Copies
		}
		oa, aok := order[a.Platform]
		ob, bok := order[b.Platform]
		if aok != bok {
			return aok
		}
		if oa != ob {
			return oa < ob
		}
		return a.Platform < b.Platform
	})

	for day, copies := range data.DailyStats {
		activity := DailyActivity{Date: day, Copies: copies}
		if parsed, err := time.Parse(dateLayout, day); err == nil {
			activity.DayOfWeek = parsed.Weekday().String()
		}
		summary.DailyActivity = append(summary.DailyActivity, activity)
	}
	sort.Slice(summary.DailyActivity, func(i, j int) bool {
		return summary.DailyActivity[i].Date > summary.DailyActivity[j].Date
	})
	if len(summary.DailyActivity) > recentDays {
		summary.DailyActivity = summary.DailyActivity[:recentDays]
	}

	if len(summary.DailyActivity) > 0 {
		busiest := summary.DailyActivity[0]
		for _, day := range summary.DailyActivity[1:] {
			if day.Copies > busiest.Copies {
				busiest = day
			}
		}
		summary.MostActiveDay = fmt.Sprintf("%s (%d copies)", busiest.Date, busiest.Copies)
	}

	return summary
}

func roundDiv(num, den int) int {
	return int(math.Round(float64(num) / float64(den)))
}
