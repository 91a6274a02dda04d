package student

// Dataset is the immutable, capped collection of records loaded at startup.
// It is only built through NewDataset and never written afterwards, so it can
// be shared by any number of readers.
type Dataset struct {
	records []Record
	options FilterOptions
}

// FilterOptions holds the distinct values offered by each filter control,
// in the order they first appear in the dataset
type FilterOptions struct {
	Genders   []string `json:"genders"`
	Majors    []string `json:"majors"`
	Semesters []string `json:"semesters"`
}

// NewDataset copies at most MaxRows records, derives each attendance bucket
// and computes the filter options.
func NewDataset(records []Record) *Dataset {
	n := len(records)
	if n > MaxRows {
		n = MaxRows
	}

	rows := make([]Record, n)
	copy(rows, records[:n])
	for i := range rows {
		rows[i].attendanceBucket, _ = BucketFor(rows[i].AttendancePercentage)
	}

	return &Dataset{
		records: rows,
		options: FilterOptions{
			Genders:   distinct(rows, func(r Record) string { return r.Gender }),
			Majors:    distinct(rows, func(r Record) string { return r.Major }),
			Semesters: distinct(rows, func(r Record) string { return r.Semester }),
		},
	}
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the records in load order
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Each calls fn for every record in load order without copying the slice
func (d *Dataset) Each(fn func(Record)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Options returns the filter options discovered at construction
func (d *Dataset) Options() FilterOptions {
	return FilterOptions{
		Genders:   append([]string(nil), d.options.Genders...),
		Majors:    append([]string(nil), d.options.Majors...),
		Semesters: append([]string(nil), d.options.Semesters...),
	}
}

func distinct(rows []Record, key func(Record) string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, r := range rows {
		v := key(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
