package pipeline

import (
	"habitlens/domain/student"
)

func rec(gender, major, semester string, study, attendance, exam float64, dropout, support string, sleep, stress float64) student.Record {
	return student.Record{
		Gender:               gender,
		Major:                major,
		Semester:             semester,
		StudyHoursPerDay:     study,
		AttendancePercentage: attendance,
		ExamScore:            exam,
		DropoutRisk:          dropout,
		ParentalSupportLevel: support,
		SleepHours:           sleep,
		StressLevel:          stress,
	}
}

// sampleDataset is five students covering every bucket, three genders and
// one unknown dropout risk
func sampleDataset() *student.Dataset {
	return student.NewDataset([]student.Record{
		rec("F", "CS", "1", 2, 65, 60, "No", "Low", 6, 8),
		rec("M", "CS", "2", 4, 80, 70, "Yes", "High", 7, 5),
		rec("F", "Arts", "1", 6, 90, 80, "No", "Medium", 8, 3),
		rec("M", "Arts", "2", 8, 98, 90, "No", "High", 5, 7),
		rec("Other", "CS", "1", 3, 72, 65, "", "Low", 9, 2),
	})
}

func ptr(s string) *string {
	return &s
}
