package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "testreport", configBaseName)
	assert.Equal(t, "testreport.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "load.parallel", loadParallelKey)
	assert.Equal(t, "inputs.exclude", excludeConfigKey)
	assert.Equal(t, "report.title", reportTitleKey)
	assert.Equal(t, "report.lang", reportLangKey)
	assert.Equal(t, "assets.dir", assetsDirKey)
	assert.Equal(t, "report.html", defaultOutput)
	assert.Equal(t, "Unit Test Report", defaultTitle)
	assert.Equal(t, 4, defaultParallel)
	assert.Equal(t, "TESTREPORT", envPrefix)
	assert.Equal(t, ".testreport.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}
