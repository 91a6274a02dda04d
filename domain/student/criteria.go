package student

// FilterCriteria holds the optional equality constraints. A nil or empty
// value leaves that field unconstrained.
type FilterCriteria struct {
	Gender   *string `json:"gender,omitempty"`
	Major    *string `json:"major,omitempty"`
	Semester *string `json:"semester,omitempty"`
}

// NewFilterCriteria builds criteria from raw control values, treating ""
// as a cleared control
func NewFilterCriteria(gender, major, semester string) FilterCriteria {
	return FilterCriteria{
		Gender:   optional(gender),
		Major:    optional(major),
		Semester: optional(semester),
	}
}

// Matches reports whether r satisfies every set constraint
func (c FilterCriteria) Matches(r Record) bool {
	return matches(c.Gender, r.Gender) &&
		matches(c.Major, r.Major) &&
		matches(c.Semester, r.Semester)
}

// IsUnconstrained reports whether no field is constrained
func (c FilterCriteria) IsUnconstrained() bool {
	return optional(deref(c.Gender)) == nil &&
		optional(deref(c.Major)) == nil &&
		optional(deref(c.Semester)) == nil
}

func matches(want *string, got string) bool {
	if want == nil || *want == "" {
		return true
	}
	return *want == got
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
