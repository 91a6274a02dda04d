package pipeline

import (
	"github.com/montanaflynn/stats"

	"habitlens/domain/student"
)

// category extracts one categorical field from a record
type category func(student.Record) string

func gender(r student.Record) string { return r.Gender }
func parentalSupport(r student.Record) string { return r.ParentalSupportLevel }
func attendanceBucket(r student.Record) string { return string(r.AttendanceBucket()) }

// GenderMix counts students per gender for the donut chart
func GenderMix(view []student.Record) student.Distribution {
	colors := newPalette()
	counts := make(map[string]int)
	total := 0
	for _, r := range view {
		if r.Gender == "" {
			continue
		}
		colors.colorOf(r.Gender)
		counts[r.Gender]++
		total++
	}

	shares := make([]student.Share, 0, len(colors.order))
	for _, key := range colors.order {
		proportion := float64(counts[key]) / float64(total)
		shares = append(shares, student.Share{
			Key:        key,
			Count:      counts[key],
			Proportion: proportion,
			Percent:    round1(proportion * 100),
			Color:      colors.colorOf(key),
		})
	}

	return student.Distribution{Field: student.ColGender, Total: total, Shares: shares}
}

// AttendanceVsScore averages exam scores per attendance bucket, in bucket order
func AttendanceVsScore(view []student.Record) student.GroupedMeans {
	order := make([]string, len(student.BucketOrder))
	for i, b := range student.BucketOrder {
		order[i] = string(b)
	}
	return groupMeans(view, student.ColAttendanceBucket, attendanceBucket, order)
}

// SupportVsScore averages exam scores per parental support level
func SupportVsScore(view []student.Record) student.GroupedMeans {
	return groupMeans(view, student.ColParentalSupport, parentalSupport, nil)
}

// StudyVsScore plots study hours against exam score, one series and trend per gender
func StudyVsScore(view []student.Record) student.ScatterSeries {
	return categoricalScatter(view, student.ColStudyHours, studyHours, student.ColGender, gender)
}

// SleepVsScore plots sleep hours against exam score, shaded by stress level
func SleepVsScore(view []student.Record) student.ScatterSeries {
	return continuousScatter(view, student.ColSleepHours, sleepHours, student.ColStressLevel, stressLevel)
}

// StressVsScore plots stress level against exam score, shaded by sleep hours
func StressVsScore(view []student.Record) student.ScatterSeries {
	return continuousScatter(view, student.ColStressLevel, stressLevel, student.ColSleepHours, sleepHours)
}

// DropoutVsScore summarises the exam score distribution per dropout risk value
func DropoutVsScore(view []student.Record) student.BoxSeries {
	colors := newPalette()
	scores := make(map[string]stats.Float64Data)
	for _, r := range view {
		if r.DropoutRisk == "" || !student.Has(r.ExamScore) {
			continue
		}
		colors.colorOf(r.DropoutRisk)
		scores[r.DropoutRisk] = append(scores[r.DropoutRisk], r.ExamScore)
	}

	boxes := make([]student.Box, 0, len(colors.order))
	for _, key := range colors.order {
		box := summarizeBox(scores[key])
		box.Key = key
		box.Color = colors.colorOf(key)
		boxes = append(boxes, box)
	}

	return student.BoxSeries{GroupBy: student.ColDropoutRisk, Measure: student.ColExamScore, Boxes: boxes}
}

// groupMeans averages exam scores per key, rounded to one decimal. Groups
// follow order when given, otherwise first appearance; records without a key
// are skipped and empty groups never appear.
func groupMeans(view []student.Record, groupBy string, key category, order []string) student.GroupedMeans {
	members := make(map[string][]student.Record)
	var seen []string
	for _, r := range view {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := members[k]; !ok {
			seen = append(seen, k)
		}
		members[k] = append(members[k], r)
	}
	if order == nil {
		order = seen
	}

	groups := make([]student.GroupMean, 0, len(members))
	for _, k := range order {
		rows, ok := members[k]
		if !ok {
			continue
		}
		groups = append(groups, student.GroupMean{
			Key:   k,
			Count: len(rows),
			Mean:  roundPtr(mean(rows, examScore)),
		})
	}

	return student.GroupedMeans{GroupBy: groupBy, Measure: student.ColExamScore, Groups: groups}
}

func categoricalScatter(view []student.Record, xField string, x numeric, colorField string, color category) student.ScatterSeries {
	colors := newPalette()
	points := make([]student.Point, 0, len(view))
	byGroup := make(map[string][]student.Point)
	for _, r := range view {
		xv, yv, g := x(r), r.ExamScore, color(r)
		if !student.Has(xv) || !student.Has(yv) || g == "" {
			continue
		}
		colors.colorOf(g)
		p := student.Point{X: xv, Y: yv, Group: g}
		points = append(points, p)
		byGroup[g] = append(byGroup[g], p)
	}

	groups := make([]student.ColorGroup, 0, len(colors.order))
	for _, g := range colors.order {
		groups = append(groups, student.ColorGroup{
			Key:   g,
			Color: colors.colorOf(g),
			Count: len(byGroup[g]),
			Trend: fitPoints(byGroup[g]),
		})
	}

	return student.ScatterSeries{
		XField:  xField,
		YField:  student.ColExamScore,
		ColorBy: colorField,
		Points:  points,
		Groups:  groups,
	}
}

func continuousScatter(view []student.Record, xField string, x numeric, colorField string, shade numeric) student.ScatterSeries {
	scale := &student.ColorScale{
		Field:  colorField,
		Colors: append([]string(nil), ContinuousScale...),
	}
	points := make([]student.Point, 0, len(view))
	for _, r := range view {
		xv, yv := x(r), r.ExamScore
		if !student.Has(xv) || !student.Has(yv) {
			continue
		}
		p := student.Point{X: xv, Y: yv}
		if s := shade(r); student.Has(s) {
			p.Shade = &s
			if scale.Min == nil || s < *scale.Min {
				scale.Min = &s
			}
			if scale.Max == nil || s > *scale.Max {
				scale.Max = &s
			}
		}
		points = append(points, p)
	}

	return student.ScatterSeries{
		XField:  xField,
		YField:  student.ColExamScore,
		ColorBy: colorField,
		Points:  points,
		Scale:   scale,
		Trend:   fitPoints(points),
	}
}

// summarizeBox computes the five-number summary of a non-empty sample.
// Quartiles are medians of the lower and upper halves, excluding the middle
// value for odd sizes.
func summarizeBox(values stats.Float64Data) student.Box {
	box := student.Box{Count: len(values)}
	box.Min, _ = stats.Min(values)
	box.Max, _ = stats.Max(values)
	box.Median, _ = stats.Median(values)
	if len(values) == 1 {
		box.Q1, box.Q3 = box.Median, box.Median
		return box
	}
	q, err := stats.Quartile(values)
	if err != nil {
		box.Q1, box.Q3 = box.Median, box.Median
		return box
	}
	box.Q1, box.Q3 = q.Q1, q.Q3
	return box
}
