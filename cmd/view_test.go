package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testreport.dev/pkg/testreport/internal/domain"
)

func TestViewCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRootCmd(newViewCmd())

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Title == "Unit Test Report" &&
			len(args.Patterns) == 1 && args.Patterns[0] == "."
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestViewCmd_InputsArePassedThrough(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRootCmd(newViewCmd())

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return len(args.Patterns) == 2 && args.Patterns[0] == "a.xml" && args.Patterns[1] == "b.xml"
	})).Return(nil)

	cmd.SetArgs([]string{"view", "a.xml", "b.xml"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestViewCmd_PropagatesError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRootCmd(newViewCmd())

	viewErr := errors.New("load inputs: broken")
	mockWorkflow.On("View", mock.Anything, mock.Anything).Return(viewErr)

	cmd.SetArgs([]string{"view", "broken.xml"})
	err := cmd.Execute()
	require.ErrorIs(t, err, viewErr)
}
