package config

import (
	"testing"

	"habitlens/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("DATA_SHEET", "")
	t.Setenv("DROPOUT_DENOMINATOR", "")
	t.Setenv("PARALLEL_BUILDERS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8050", cfg.Server.Port)
	assert.Equal(t, "enhanced_student_habits_performance_dataset.csv", cfg.Data.File)
	assert.Equal(t, "Sheet1", cfg.Data.Sheet)
	assert.Equal(t, DropoutOverKnown, cfg.Analytics.DropoutDenominator)
	assert.False(t, cfg.Analytics.ParallelBuilders)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_FILE", "/data/students.xlsx")
	t.Setenv("DATA_SHEET", "Students")
	t.Setenv("DROPOUT_DENOMINATOR", "ALL")
	t.Setenv("PARALLEL_BUILDERS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/data/students.xlsx", cfg.Data.File)
	assert.Equal(t, "Students", cfg.Data.Sheet)
	assert.Equal(t, DropoutOverAll, cfg.Analytics.DropoutDenominator)
	assert.True(t, cfg.Analytics.ParallelBuilders)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric port", "PORT", "http"},
		{"unknown denominator", "DROPOUT_DENOMINATOR", "rows"},
		{"unknown log level", "LOG_LEVEL", "TRACE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("DROPOUT_DENOMINATOR", "")
			t.Setenv("LOG_LEVEL", "")
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
