// Test Type: Unit Test
// Description: Tests for the logging package - logger setup and component loggers

package logging_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/NexushasTaken/mdot/pkg/logging"
)

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("verbosity %d: global level = %s, want %s", tt.verbosity, got, tt.want)
		}
	}
}

func TestGetLogger(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	logging.SetupLogger(0)

	logger := logging.GetLogger("resolver")
	// Must not panic and must be usable
	logger.Debug().Str("key", "value").Msg("component logger works")
}
