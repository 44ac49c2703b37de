package model

// Result is the top-level group of suites with global counters.
type Result struct {
	suites []*Suite

	success      int
	failure      int
	errored      int
	unclassified int

	lastSuiteID int
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{}
}

// AddSuite adds the counters of s to the global ones and stores a snapshot
// of s with the next suite id, which is returned. Later changes to s do not
// reach the Result.
func (r *Result) AddSuite(s *Suite) int {
	r.success += s.passed
	r.failure += s.failed
	r.errored += s.errored
	r.unclassified += s.unclassified

	snapshot := s.clone()
	r.lastSuiteID++
	snapshot.id = r.lastSuiteID
	r.suites = append(r.suites, snapshot)

	return snapshot.id
}

// Suites returns deep copies of the stored suites in insertion order.
func (r *Result) Suites() []*Suite {
	out := make([]*Suite, len(r.suites))
	for i, s := range r.suites {
		out[i] = s.clone()
	}

	return out
}

// Len returns the number of suites.
func (r *Result) Len() int { return len(r.suites) }

// SuccessCount returns the number of successful cases across all suites.
func (r *Result) SuccessCount() int { return r.success }

// FailureCount returns the number of failed cases across all suites.
func (r *Result) FailureCount() int { return r.failure }

// ErrorCount returns the number of errored cases across all suites.
func (r *Result) ErrorCount() int { return r.errored }

// UnclassifiedCount returns the number of unknown-status cases.
func (r *Result) UnclassifiedCount() int { return r.unclassified }

// Total returns success+failure+error.
func (r *Result) Total() int {
	return r.success + r.failure + r.errored
}
