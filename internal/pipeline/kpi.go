package pipeline

import (
	"habitlens/domain/student"
)

// DropoutDenominator selects which rows the dropout rate is divided by
type DropoutDenominator int

const (
	// OverKnown divides by rows whose dropout_risk is recorded
	OverKnown DropoutDenominator = iota
	// OverAll divides by every row in the view, counting unknowns as "not Yes"
	OverAll
)

// KPIOptions configures Summarize
type KPIOptions struct {
	Denominator DropoutDenominator
}

// Summarize reduces a view to the four headline numbers. Averages of an
// empty view are nil rather than zero.
func Summarize(view []student.Record, opts KPIOptions) student.KPISummary {
	return student.KPISummary{
		AvgExamScore:  roundPtr(mean(view, examScore)),
		AvgStudyHours: roundPtr(mean(view, studyHours)),
		AvgAttendance: roundPtr(mean(view, attendance)),
		DropoutRate:   dropoutRate(view, opts.Denominator),
	}
}

func dropoutRate(view []student.Record, denominator DropoutDenominator) float64 {
	var yes, known int
	for _, r := range view {
		if r.DropoutRisk == "" {
			continue
		}
		known++
		if r.DropoutRisk == student.DropoutYes {
			yes++
		}
	}

	total := known
	if denominator == OverAll {
		total = len(view)
	}
	if total == 0 {
		return 0
	}
	return round1(float64(yes) / float64(total) * 100)
}
