package render

// The view types below are the only values handed to templates. Every text
// field is a markup value, so unescaped strings cannot reach the output.

type documentView struct {
	Title      markup
	Generator  markup
	Stylesheet markup
	Heading    markup
	Report     markup
	Ending     markup
	Chart      markup
}

type attributeView struct {
	Name  markup
	Value markup
}

type headingView struct {
	Title       markup
	Description markup
	Attributes  []attributeView
}

type labelView struct {
	ShowSummary markup
	ShowFailed  markup
	ShowAll     markup
	ColumnName  markup
	ColumnTotal markup
	ColumnPass  markup
	ColumnFail  markup
	ColumnError markup
	ColumnView  markup
	TotalRow    markup
	Detail      markup
}

type caseView struct {
	Tag    string
	Class  string
	Text   markup
	Status markup
	Detail markup
}

type suiteView struct {
	Class string
	Text  markup
	Total int
	Pass  int
	Fail  int
	Error int
	RefID string
	Rows  int
	Cases []caseView
}

type reportView struct {
	Labels labelView
	Suites []suiteView
	Total  int
	Pass   int
	Fail   int
	Error  int
}

type chartView struct {
	Title     markup
	Pass      int
	Fail      int
	Error     int
	PassName  markup
	FailName  markup
	ErrorName markup
}
