// Package metrics holds the Prometheus collectors of the attendance service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MarksTotal counts recorded day marks by category.
	MarksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_marks_total",
		Help: "Total number of attendance day marks recorded",
	}, []string{"category"})

	// ClearsTotal counts removed day marks.
	ClearsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendance_clears_total",
		Help: "Total number of attendance day marks removed",
	})

	// ReportsTotal counts generated compliance reports by belt band.
	ReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_reports_total",
		Help: "Total number of compliance reports generated",
	}, []string{"band"})

	// BeltScore observes the belt score of every generated report.
	BeltScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "attendance_belt_score",
		Help:    "Distribution of computed belt scores",
		Buckets: []float64{20, 40, 50, 60, 80, 100},
	})

	// RemindersTotal counts reminder posts by outcome.
	RemindersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_reminders_total",
		Help: "Total number of daily reminders posted",
	}, []string{"result"})
)
