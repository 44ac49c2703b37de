package model

// Case is the recorded outcome of a single test.
//
// A Case is built by the caller and copied by value when it is added to a
// Suite; the Suite writes ID on its copy.
type Case struct {
	Name        string
	Status      Status
	Description string
	Detail      string
	ID          int
}

// NewCase returns an unclassified case with the given name.
func NewCase(name string) Case {
	return Case{Name: name, Status: StatusUnknown}
}

// SetStatus sets the classification of the case.
func (c *Case) SetStatus(status Status) {
	c.Status = status
}

// SetDescription sets the display text of the case.
func (c *Case) SetDescription(description string) {
	c.Description = description
}

// SetDetail sets the diagnostic text (stack trace, output) of the case.
func (c *Case) SetDetail(detail string) {
	c.Detail = detail
}

// DisplayName returns the description, or the name when it is empty.
func (c Case) DisplayName() string {
	if c.Description == "" {
		return c.Name
	}

	return c.Description
}
