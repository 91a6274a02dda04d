package pipeline

import (
	"golang.org/x/sync/errgroup"

	"habitlens/domain/student"
)

// Options configures a Pipeline
type Options struct {
	KPI KPIOptions
	// Parallel runs the chart builders concurrently. The result is identical
	// to a sequential run because every builder only reads the shared view.
	Parallel bool
}

// Pipeline turns filter criteria into a complete Dashboard over one dataset
type Pipeline struct {
	dataset *student.Dataset
	opts    Options
}

// New creates a pipeline over an already loaded dataset
func New(ds *student.Dataset, opts Options) *Pipeline {
	return &Pipeline{dataset: ds, opts: opts}
}

// Dataset returns the dataset the pipeline reads
func (p *Pipeline) Dataset() *student.Dataset {
	return p.dataset
}

// Run filters the dataset once and derives the KPI row and every chart from
// that single view. The returned value is complete; nothing is updated in
// place.
func (p *Pipeline) Run(criteria student.FilterCriteria) student.Dashboard {
	view := Filter(p.dataset, criteria)

	d := student.Dashboard{
		Criteria: criteria,
		Rows:     len(view),
		KPIs:     Summarize(view, p.opts.KPI),
	}

	builders := []func(){
		func() { d.GenderMix = GenderMix(view) },
		func() { d.Attendance = AttendanceVsScore(view) },
		func() { d.Study = StudyVsScore(view) },
		func() { d.Support = SupportVsScore(view) },
		func() { d.Sleep = SleepVsScore(view) },
		func() { d.Dropout = DropoutVsScore(view) },
		func() { d.Stress = StressVsScore(view) },
	}

	if !p.opts.Parallel {
		for _, build := range builders {
			build()
		}
		return d
	}

	var g errgroup.Group
	for _, build := range builders {
		g.Go(func() error {
			build()
			return nil
		})
	}
	_ = g.Wait()
	return d
}
