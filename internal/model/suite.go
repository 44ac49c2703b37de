package model

// Suite is an ordered group of cases with aggregate counters.
//
// Counters are only changed by AddCase, so they always match the contents:
// Passed()+Failed()+Errored()+Unclassified() == Len().
type Suite struct {
	name        string
	description string
	cases       []Case

	passed       int
	failed       int
	errored      int
	unclassified int

	id         int
	lastCaseID int
}

// NewSuite returns an empty suite with the given name.
func NewSuite(name string) *Suite {
	return &Suite{name: name}
}

// Name returns the suite name.
func (s *Suite) Name() string { return s.name }

// Description returns the suite description.
func (s *Suite) Description() string { return s.description }

// SetDescription sets the display text of the suite.
func (s *Suite) SetDescription(description string) {
	s.description = description
}

// DisplayName returns the description, or the name when it is empty.
func (s *Suite) DisplayName() string {
	if s.description == "" {
		return s.name
	}

	return s.description
}

// ID returns the identifier assigned by the owning Result, or 0.
func (s *Suite) ID() int { return s.id }

// AddCase counts c, stores a copy of it with the next case id and returns
// that copy.
func (s *Suite) AddCase(c Case) Case {
	switch c.Status {
	case StatusSuccess:
		s.passed++
	case StatusFailure:
		s.failed++
	case StatusError:
		s.errored++
	default:
		s.unclassified++
	}

	s.lastCaseID++
	c.ID = s.lastCaseID
	s.cases = append(s.cases, c)

	return c
}

// Cases returns a copy of the cases in insertion order.
func (s *Suite) Cases() []Case {
	out := make([]Case, len(s.cases))
	copy(out, s.cases)

	return out
}

// Len returns the number of cases.
func (s *Suite) Len() int { return len(s.cases) }

// Passed returns the number of successful cases.
func (s *Suite) Passed() int { return s.passed }

// Failed returns the number of failed cases.
func (s *Suite) Failed() int { return s.failed }

// Errored returns the number of errored cases.
func (s *Suite) Errored() int { return s.errored }

// Unclassified returns the number of cases with StatusUnknown.
func (s *Suite) Unclassified() int { return s.unclassified }

// Total returns passed+failed+errored.
func (s *Suite) Total() int {
	return s.passed + s.failed + s.errored
}

// clone returns a deep copy that shares no memory with s.
func (s *Suite) clone() *Suite {
	cp := *s
	cp.cases = s.Cases()

	return &cp
}
