// Package metrics exposes Prometheus collectors for reminder processing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

var (
	remindersSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_sent_total",
			Help: "Reminders recorded as sent, by tier",
		},
		[]string{"tier"},
	)
	remindersSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_skipped_total",
			Help: "Lendings skipped by a gate, by reason",
		},
		[]string{"reason"},
	)
	channelSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_channel_sends_total",
			Help: "Channel delivery attempts, by channel and outcome",
		},
		[]string{"channel", "success"},
	)
	runErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_run_item_errors_total",
			Help: "Per-lending pipeline errors collected in run reports",
		},
		[]string{"mode"},
	)
	runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reminder_run_duration_seconds",
			Help:    "Duration of reminder runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)
)

func init() {
	prometheus.MustRegister(remindersSent, remindersSkipped, channelSends, runErrors, runDuration)
}

// Skip reasons.
const (
	SkipGrace         = "grace"
	SkipAlreadySent   = "already_sent"
	SkipOutsideWindow = "outside_window"
	SkipLeaseHeld     = "lease_held"
)

// ChannelSend counts one delivery attempt.
func ChannelSend(ch model.Channel, success bool) {
	channelSends.WithLabelValues(string(ch), strconv.FormatBool(success)).Inc()
}

// ReminderSent counts a reminder recorded as sent.
func ReminderSent(t model.Tier) {
	remindersSent.WithLabelValues(t.String()).Inc()
}

// Skipped counts a lending short-circuited by a gate.
func Skipped(reason string) {
	remindersSkipped.WithLabelValues(reason).Inc()
}

// RunFinished observes a completed run.
func RunFinished(mode string, report model.RunReport, started time.Time) {
	runDuration.WithLabelValues(mode).Observe(time.Since(started).Seconds())
	runErrors.WithLabelValues(mode).Add(float64(len(report.Errors)))
}
