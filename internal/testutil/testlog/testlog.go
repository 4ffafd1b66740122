package testlog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/danmuck/vdfctl/internal/logging"
)

// Start returns a debug logger that writes through t.Log, so output only
// shows for failing or verbose tests.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	log := logging.Tests(zerolog.NewTestWriter(t))
	log.Info().Str("test", t.Name()).Msg("start")
	return log
}
