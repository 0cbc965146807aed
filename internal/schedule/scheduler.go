// Package schedule decides when a reminder may be sent with respect to the
// user's preferred contact hours.
//
// By default all hour arithmetic happens in UTC and the stored timezone is
// ignored. WithZoneAware switches to the user's IANA zone; unknown zones fall
// back to UTC.
package schedule

import (
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

// DefaultTolerance is how far from its scheduled time a reminder may still go out.
const DefaultTolerance = time.Hour

// Scheduler computes send times inside contact windows.
type Scheduler struct {
	zoneAware bool
	tolerance time.Duration
	now       func() time.Time

	zones sync.Map // timezone name -> *time.Location
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithZoneAware makes window checks use the user's timezone instead of UTC.
func WithZoneAware(enabled bool) Option {
	return func(s *Scheduler) { s.zoneAware = enabled }
}

// WithTolerance overrides DefaultTolerance. Non-positive values are ignored.
func WithTolerance(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.tolerance = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New creates a Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Now returns the scheduler's current time in UTC.
func (s *Scheduler) Now() time.Time {
	return s.now().UTC()
}

// HourInWindow reports whether hour falls inside [start, end). A window with
// end < start wraps around midnight and then includes end itself.
func HourInWindow(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour < end
	}

	return hour >= start || hour <= end
}

// InWindow reports whether t falls inside the contact window.
func (s *Scheduler) InWindow(t time.Time, w model.ContactWindow) bool {
	return HourInWindow(t.In(s.location(w)).Hour(), w.StartHour, w.EndHour)
}

// NextAvailableTime returns ref if it is inside the window, otherwise the start
// of the window on the following day.
func (s *Scheduler) NextAvailableTime(ref time.Time, w model.ContactWindow) time.Time {
	if s.InWindow(ref, w) {
		return ref
	}

	loc := s.location(w)
	local := ref.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, w.StartHour, 0, 0, 0, loc)

	return next.UTC()
}

// CalculateSchedule projects the send time of every automatic tier for a lending.
// Tier offsets are counted from the end of the grace period.
func (s *Scheduler) CalculateSchedule(lending model.Lending, prefs model.Preferences, graceDays int) []model.ScheduledReminder {
	base := lending.ExpectedReturnDate.UTC().AddDate(0, 0, graceDays)

	out := make([]model.ScheduledReminder, 0, len(model.AutomaticTiers))
	for _, tier := range model.AutomaticTiers {
		offset, _ := prefs.Escalation.Offset(tier)
		target := base.AddDate(0, 0, offset)

		out = append(out, model.ScheduledReminder{
			Tier:   tier,
			SendAt: s.NextAvailableTime(target, prefs.ContactWindow),
		})
	}

	return out
}

// ShouldSendNow reports whether a reminder scheduled at scheduledAt may be sent right now.
func (s *Scheduler) ShouldSendNow(prefs model.Preferences, scheduledAt time.Time, alreadySent bool) bool {
	if !prefs.Enabled || alreadySent {
		return false
	}

	now := s.Now()
	if !s.InWindow(now, prefs.ContactWindow) {
		return false
	}

	diff := now.Sub(scheduledAt)
	if diff < 0 {
		diff = -diff
	}

	return diff <= s.tolerance
}

func (s *Scheduler) location(w model.ContactWindow) *time.Location {
	if !s.zoneAware || w.Timezone == "" || w.Timezone == "UTC" {
		return time.UTC
	}

	if loc, ok := s.zones.Load(w.Timezone); ok {
		return loc.(*time.Location)
	}

	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("timezone", w.Timezone).Msg("unknown timezone, using UTC")
		loc = time.UTC
	}
	s.zones.Store(w.Timezone, loc)

	return loc
}
