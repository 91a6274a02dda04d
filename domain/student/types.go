package student

import (
	"math"
)

// MaxRows is the row cap applied when a dataset is built
const MaxRows = 100

// Column names expected in the source file
const (
	ColGender           = "gender"
	ColMajor            = "major"
	ColSemester         = "semester"
	ColStudyHours       = "study_hours_per_day"
	ColAttendance       = "attendance_percentage"
	ColExamScore        = "exam_score"
	ColDropoutRisk      = "dropout_risk"
	ColParentalSupport  = "parental_support_level"
	ColSleepHours       = "sleep_hours"
	ColStressLevel      = "stress_level"
	ColAttendanceBucket = "attendance_bucket"
)

// RequiredColumns lists every column the loader must find in the header row
var RequiredColumns = []string{
	ColGender,
	ColMajor,
	ColSemester,
	ColStudyHours,
	ColAttendance,
	ColExamScore,
	ColDropoutRisk,
	ColParentalSupport,
	ColSleepHours,
	ColStressLevel,
}

// DropoutYes is the dropout_risk value counted as at-risk
const DropoutYes = "Yes"

// Record is one student row. Missing categorical values are empty strings,
// missing numeric values are NaN; use Has to test a numeric field.
type Record struct {
	Gender               string  `json:"gender"`
	Major                string  `json:"major"`
	Semester             string  `json:"semester"`
	StudyHoursPerDay     float64 `json:"study_hours_per_day"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	ExamScore            float64 `json:"exam_score"`
	DropoutRisk          string  `json:"dropout_risk"`
	ParentalSupportLevel string  `json:"parental_support_level"`
	SleepHours           float64 `json:"sleep_hours"`
	StressLevel          float64 `json:"stress_level"`

	// AttendanceBucket is derived by NewDataset and cannot be set by callers
	attendanceBucket AttendanceBucket
}

// AttendanceBucket returns the derived bucket, or "" when attendance has no bucket
func (r Record) AttendanceBucket() AttendanceBucket {
	return r.attendanceBucket
}

// Missing is the marker stored in numeric fields without a value
func Missing() float64 {
	return math.NaN()
}

// Has reports whether a numeric field carries a value
func Has(v float64) bool {
	return !math.IsNaN(v)
}
