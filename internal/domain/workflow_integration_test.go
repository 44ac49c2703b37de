package domain_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testreport.dev/pkg/testreport/internal/adapter"
	"testreport.dev/pkg/testreport/internal/controller"
	"testreport.dev/pkg/testreport/internal/domain"
	m "testreport.dev/pkg/testreport/internal/model"
)

// These tests run the real adapters against the sample inputs under
// examples/ instead of embedding result files in strings.

var examplesDir = filepath.Join("..", "..", "examples")

func newLocalWorkflow(t *testing.T) (domain.Workflow, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	fsAdapter := adapter.NewLocalReportFSAdapter()
	wf := domain.NewWorkflow(
		adapter.NewLocalInputResolver(),
		adapter.NewLocalResultLoader(fsAdapter),
		adapter.NewLocalReportEmitter(fsAdapter, ""),
		controller.NewSimpleUI(cmd),
		domain.WithRunID(func() string { return "example-run" }),
	)

	return wf, &out
}

func TestWorkflow_Render_Examples(t *testing.T) {
	wf, out := newLocalWorkflow(t)
	output := filepath.Join(t.TempDir(), "site", "index.html")

	err := wf.Render(context.Background(), domain.RenderArgs{
		LoadArgs: domain.LoadArgs{Patterns: []string{examplesDir}, Parallel: 3},
		Output:   m.Path(output),
		Title:    "Examples",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	document := string(data)

	order := []string{"Expression parser", "lexer", "example.com/calc", "api/client", "api/auth"}
	last := -1

	for _, name := range order {
		index := strings.Index(document, name)
		require.NotEqual(t, -1, index, name)
		assert.Greater(t, index, last, "%s out of order", name)
		last = index
	}

	assert.Contains(t, document, "passed 7 failed 3 errored 1 unclassified 2")
	assert.Contains(t, document, "2024-03-01 09:29:58")
	assert.Contains(t, document, "1m47s")
	assert.Contains(t, document, "example-run")
	assert.Contains(t, document, "want &lt;ident&gt;, got &lt;illegal &amp; unknown&gt;")
	assert.NotContains(t, document, "<illegal")

	for _, asset := range []string{"css/report.css", "js/chart.js"} {
		_, err := os.Stat(filepath.Join(filepath.Dir(output), asset))
		require.NoError(t, err, asset)
	}

	assert.Contains(t, out.String(), "Report written to "+output)
}

func TestWorkflow_Render_ExamplesExclude(t *testing.T) {
	wf, _ := newLocalWorkflow(t)
	output := filepath.Join(t.TempDir(), "report.html")

	err := wf.Render(context.Background(), domain.RenderArgs{
		LoadArgs: domain.LoadArgs{
			Patterns: []string{examplesDir},
			Exclude:  []string{"**/junit/**", "*.json"},
		},
		Output: m.Path(output),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Contains(t, string(data), "Expression parser")
	assert.NotContains(t, string(data), "api/client")
	assert.NotContains(t, string(data), "example.com/calc")
}

func TestWorkflow_Summary_Examples(t *testing.T) {
	wf, out := newLocalWorkflow(t)

	err := wf.Summary(context.Background(), domain.SummaryArgs{
		LoadArgs: domain.LoadArgs{Patterns: []string{filepath.Join(examplesDir, "junit", "*.xml")}},
		Title:    "JUnit only",
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "JUnit only")
	assert.Contains(t, text, "api/client")
	assert.Contains(t, text, "api/auth")
	assert.Contains(t, text, "TOTAL SUITES 2")
	assert.Contains(t, text, "Status: passed 2 failed 1 errored 1 unclassified 1")
}

func TestWorkflow_Render_ExamplesMissingInput(t *testing.T) {
	wf, _ := newLocalWorkflow(t)

	err := wf.Render(context.Background(), domain.RenderArgs{
		LoadArgs: domain.LoadArgs{Patterns: []string{filepath.Join(examplesDir, "nothing", "*.xml")}},
		Output:   m.Path(filepath.Join(t.TempDir(), "report.html")),
	})
	require.ErrorIs(t, err, adapter.ErrNoMatches)
}

func projectWithDecoys(t *testing.T) string {
	t.Helper()

	report, err := os.ReadFile(filepath.Join(examplesDir, "junit", "api.xml"))
	require.NoError(t, err)

	dir := t.TempDir()
	files := map[string]string{
		"target/surefire/api.xml": string(report),
		"pom.xml":                 "<project><modelVersion>4.0.0</modelVersion></project>",
		"package.json":            `{"name": "web", "private": true}`,
		"docker-compose.yml":      "services:\n  db:\n    image: postgres\n",
	}

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return dir
}

func TestWorkflow_Summary_DirectoryScanSkipsNonReports(t *testing.T) {
	wf, out := newLocalWorkflow(t)
	dir := projectWithDecoys(t)

	err := wf.Summary(context.Background(), domain.SummaryArgs{
		LoadArgs: domain.LoadArgs{Patterns: []string{dir}},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "api/client")
	assert.Contains(t, text, "TOTAL SUITES 2")
	assert.Contains(t, text, "Status: passed 2 failed 1 errored 1 unclassified 1")
}

func TestWorkflow_Render_GlobSkipsNonReports(t *testing.T) {
	wf, _ := newLocalWorkflow(t)
	dir := projectWithDecoys(t)
	output := filepath.Join(t.TempDir(), "report.html")

	err := wf.Render(context.Background(), domain.RenderArgs{
		LoadArgs: domain.LoadArgs{Patterns: []string{filepath.Join(dir, "**", "*.xml")}},
		Output:   m.Path(output),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api/auth")
}

func TestWorkflow_Render_NamedNonReportIsAnError(t *testing.T) {
	wf, _ := newLocalWorkflow(t)
	dir := projectWithDecoys(t)

	err := wf.Render(context.Background(), domain.RenderArgs{
		LoadArgs: domain.LoadArgs{Patterns: []string{filepath.Join(dir, "pom.xml")}},
		Output:   m.Path(filepath.Join(t.TempDir(), "report.html")),
	})
	require.ErrorIs(t, err, adapter.ErrNotReport)
	assert.Contains(t, err.Error(), "pom.xml")
}
