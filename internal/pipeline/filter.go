package pipeline

import (
	"habitlens/domain/student"
)

// Filter returns the records of ds that satisfy every set constraint of
// criteria, in dataset order. An empty result is a valid view.
func Filter(ds *student.Dataset, criteria student.FilterCriteria) []student.Record {
	view := make([]student.Record, 0, ds.Len())
	ds.Each(func(r student.Record) {
		if criteria.Matches(r) {
			view = append(view, r)
		}
	})
	return view
}
