package suite

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Output collects everything written to the console.
	Output *bytes.Buffer
	// Logs collects the JSON log records at debug level.
	Logs *bytes.Buffer

	Console *console.Console
}

// New - returns a suite whose console answers each prompt with the next of lines.
// Once lines run out the console reports closed input.
func New(t *testing.T, lines ...string) *Suite {
	t.Helper()

	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}

	output := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		t.Helper()

		if t.Failed() {
			t.Logf("console output:\n%s", output.String())
		}
	})

	return &Suite{
		T:       t,
		Logger:  logger,
		Output:  output,
		Logs:    logs,
		Console: console.New(strings.NewReader(input), output),
	}
}

// Count - returns how many times text occurs in the console output.
func (that *Suite) Count(text string) int {
	return strings.Count(that.Output.String(), text)
}
