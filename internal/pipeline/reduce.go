package pipeline

import (
	"github.com/montanaflynn/stats"

	"habitlens/domain/student"
)

// numeric extracts one numeric field from a record
type numeric func(student.Record) float64

func examScore(r student.Record) float64 { return r.ExamScore }
func studyHours(r student.Record) float64 { return r.StudyHoursPerDay }
func attendance(r student.Record) float64 { return r.AttendancePercentage }
func sleepHours(r student.Record) float64 { return r.SleepHours }
func stressLevel(r student.Record) float64 { return r.StressLevel }

// present collects the non-missing values of field over view
func present(view []student.Record, field numeric) stats.Float64Data {
	values := make(stats.Float64Data, 0, len(view))
	for _, r := range view {
		if v := field(r); student.Has(v) {
			values = append(values, v)
		}
	}
	return values
}

// mean returns the arithmetic mean of the non-missing values, or nil
func mean(view []student.Record, field numeric) *float64 {
	values := present(view, field)
	if len(values) == 0 {
		return nil
	}
	m, err := stats.Mean(values)
	if err != nil {
		return nil
	}
	return &m
}

// round1 rounds half away from zero to one decimal place
func round1(v float64) float64 {
	r, err := stats.Round(v, 1)
	if err != nil {
		return v
	}
	return r
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round1(*v)
	return &r
}
