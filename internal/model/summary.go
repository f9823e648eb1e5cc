package model

// RunSummary collects the results of one batch check against a registry.
// Results and Missing keep the order in which identifiers were checked.
type RunSummary struct {
	Registry Registry      `json:"registry"`
	Results  []CheckResult `json:"results"`
	Missing  []string      `json:"missing"`
}

// NewRunSummary returns an empty summary for registry.
func NewRunSummary(registry Registry) *RunSummary {
	return &RunSummary{
		Registry: registry,
		Results:  make([]CheckResult, 0),
		Missing:  make([]string, 0),
	}
}

// Add records a result. Identifiers that were not found are appended to Missing.
func (s *RunSummary) Add(result CheckResult) {
	s.Results = append(s.Results, result)
	if !result.Found() {
		s.Missing = append(s.Missing, result.Identifier)
	}
}

// Total returns the number of identifiers checked.
func (s *RunSummary) Total() int {
	return len(s.Results)
}

// MissingCount returns the number of identifiers that did not resolve.
func (s *RunSummary) MissingCount() int {
	return len(s.Missing)
}

// FoundCount returns the number of identifiers that resolved.
func (s *RunSummary) FoundCount() int {
	return s.Total() - s.MissingCount()
}

// Passed reports whether every checked identifier resolved.
func (s *RunSummary) Passed() bool {
	return len(s.Missing) == 0
}

// Verdict aggregates the summaries of every check that ran.
type Verdict struct {
	Summaries []*RunSummary `json:"summaries"`
}

// NewVerdict returns an empty verdict.
func NewVerdict() *Verdict {
	return &Verdict{Summaries: make([]*RunSummary, 0, len(Registries))}
}

// Add appends a finished summary.
func (v *Verdict) Add(summary *RunSummary) {
	v.Summaries = append(v.Summaries, summary)
}

// Passed reports whether no enabled check found a missing identifier.
// A verdict with no summaries passes.
func (v *Verdict) Passed() bool {
	for _, s := range v.Summaries {
		if !s.Passed() {
			return false
		}
	}
	return true
}

// MissingCount returns the number of missing identifiers across all checks.
func (v *Verdict) MissingCount() int {
	var n int
	for _, s := range v.Summaries {
		n += s.MissingCount()
	}
	return n
}
