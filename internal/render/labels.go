package render

import (
	"golang.org/x/text/language"
	m "testreport.dev/pkg/testreport/internal/model"
)

// Labels holds the human-readable strings placed in a report.
type Labels struct {
	StartTime string
	Duration  string
	Status    string
	RunID     string

	Passed       string
	Failed       string
	Errored      string
	Unclassified string

	CaseSuccess string
	CaseFailure string
	CaseError   string
	CaseUnknown string

	ShowSummary string
	ShowFailed  string
	ShowAll     string

	ColumnName  string
	ColumnTotal string
	ColumnPass  string
	ColumnFail  string
	ColumnError string
	ColumnView  string
	TotalRow    string
	Detail      string

	ChartTitle string
}

// English is the default label set.
var English = Labels{
	StartTime: "Start Time",
	Duration:  "Duration",
	Status:    "Status",
	RunID:     "Run ID",

	Passed:       "passed",
	Failed:       "failed",
	Errored:      "errored",
	Unclassified: "unclassified",

	CaseSuccess: "pass",
	CaseFailure: "fail",
	CaseError:   "error",
	CaseUnknown: "unknown",

	ShowSummary: "Summary",
	ShowFailed:  "Failed",
	ShowAll:     "All",

	ColumnName:  "Test Suite/Test Case",
	ColumnTotal: "Count",
	ColumnPass:  "Pass",
	ColumnFail:  "Fail",
	ColumnError: "Error",
	ColumnView:  "View",
	TotalRow:    "Total",
	Detail:      "Detail",

	ChartTitle: "Test Execution",
}

// Chinese is the simplified Chinese label set.
var Chinese = Labels{
	StartTime: "开始时间",
	Duration:  "运行时长",
	Status:    "状态",
	RunID:     "运行编号",

	Passed:       "通过",
	Failed:       "失败",
	Errored:      "错误",
	Unclassified: "未分类",

	CaseSuccess: "通过",
	CaseFailure: "失败",
	CaseError:   "错误",
	CaseUnknown: "未知",

	ShowSummary: "总结",
	ShowFailed:  "失败",
	ShowAll:     "全部",

	ColumnName:  "测试套件/测试用例",
	ColumnTotal: "总数",
	ColumnPass:  "通过",
	ColumnFail:  "失败",
	ColumnError: "错误",
	ColumnView:  "查看",
	TotalRow:    "总计",
	Detail:      "详情",

	ChartTitle: "测试执行情况",
}

var (
	supportedLanguages = []language.Tag{language.English, language.Chinese}
	supportedLabels    = []Labels{English, Chinese}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

// LabelsFor returns the label set that best matches a BCP 47 language tag
// such as "en", "zh-CN" or "zh-Hans". Unknown tags fall back to English.
func LabelsFor(lang string) Labels {
	_, index, confidence := languageMatcher.Match(language.Make(lang))
	if confidence == language.No {
		return English
	}

	return supportedLabels[index]
}

// CaseStatus returns the label shown next to a case with the given status.
func (l Labels) CaseStatus(status m.Status) string {
	switch status {
	case m.StatusSuccess:
		return l.CaseSuccess
	case m.StatusFailure:
		return l.CaseFailure
	case m.StatusError:
		return l.CaseError
	default:
		return l.CaseUnknown
	}
}
