package student

// KPISummary is the headline card row. Averages are nil when the view has no
// value to average; DropoutRate is 0 when no dropout risk is known.
type KPISummary struct {
	AvgExamScore  *float64 `json:"avg_exam_score"`
	AvgStudyHours *float64 `json:"avg_study_hours"`
	AvgAttendance *float64 `json:"avg_attendance"`
	DropoutRate   float64  `json:"dropout_rate"`
}

// Share is one slice of a categorical distribution
type Share struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
	Percent    float64 `json:"percent"`
	Color      string  `json:"color"`
}

// Distribution is a pie/donut dataset
type Distribution struct {
	Field  string  `json:"field"`
	Total  int     `json:"total"`
	Shares []Share `json:"shares"`
}

// GroupMean is one bar: the mean exam score of a group. Count is the number
// of members; Mean is nil when none of them has a score.
type GroupMean struct {
	Key   string   `json:"key"`
	Count int      `json:"count"`
	Mean  *float64 `json:"mean"`
}

// GroupedMeans is a bar-chart dataset of group means
type GroupedMeans struct {
	GroupBy string      `json:"group_by"`
	Measure string      `json:"measure"`
	Groups  []GroupMean `json:"groups"`
}

// Point is one scatter marker. Group is set for categorical colouring,
// Shade for continuous colouring (nil when the colour field is missing).
type Point struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Group string   `json:"group,omitempty"`
	Shade *float64 `json:"shade,omitempty"`
}

// Trend is an ordinary least squares line y = Intercept + Slope*x
// fitted over N points spanning [XMin, XMax]. RSquared is nil when y has no
// variance.
type Trend struct {
	Slope     float64  `json:"slope"`
	Intercept float64  `json:"intercept"`
	RSquared  *float64 `json:"r_squared"`
	N         int      `json:"n"`
	XMin      float64  `json:"x_min"`
	XMax      float64  `json:"x_max"`
}

// At evaluates the trend line at x
func (t Trend) At(x float64) float64 {
	return t.Intercept + t.Slope*x
}

// ColorGroup carries the colour and trend of one categorical series.
// Trend is nil when the group has fewer than two usable points.
type ColorGroup struct {
	Key   string `json:"key"`
	Color string `json:"color"`
	Count int    `json:"count"`
	Trend *Trend `json:"trend"`
}

// ColorScale describes a continuous colour axis. Min and Max are nil when no
// point carries a colour value.
type ColorScale struct {
	Field  string   `json:"field"`
	Colors []string `json:"colors"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}

// ScatterSeries is a scatter dataset with overlaid trend lines. Exactly one
// of Groups (categorical colour, one trend per group) or Scale (continuous
// colour, one Trend over all points) is set.
type ScatterSeries struct {
	XField  string       `json:"x_field"`
	YField  string       `json:"y_field"`
	ColorBy string       `json:"color_by"`
	Points  []Point      `json:"points"`
	Groups  []ColorGroup `json:"groups,omitempty"`
	Scale   *ColorScale  `json:"scale,omitempty"`
	Trend   *Trend       `json:"trend"`
}

// Box is the five-number summary of one group
type Box struct {
	Key    string  `json:"key"`
	Color  string  `json:"color"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// BoxSeries is a box-plot dataset
type BoxSeries struct {
	GroupBy string `json:"group_by"`
	Measure string `json:"measure"`
	Boxes   []Box  `json:"boxes"`
}

// Dashboard is the complete result of one filter change: the KPI row and all
// seven chart datasets computed from the same filtered view
type Dashboard struct {
	Criteria   FilterCriteria `json:"criteria"`
	Rows       int            `json:"rows"`
	KPIs       KPISummary     `json:"kpis"`
	GenderMix  Distribution   `json:"gender_mix"`
	Attendance GroupedMeans   `json:"attendance_vs_score"`
	Study      ScatterSeries  `json:"study_vs_score"`
	Support    GroupedMeans   `json:"support_vs_score"`
	Sleep      ScatterSeries  `json:"sleep_vs_score"`
	Dropout    BoxSeries      `json:"dropout_vs_score"`
	Stress     ScatterSeries  `json:"stress_vs_score"`
}
