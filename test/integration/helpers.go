package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danieljhkim/pushswap/internal/engine"
	"github.com/danieljhkim/pushswap/internal/logging"
	"github.com/danieljhkim/pushswap/internal/stack"
)

// setupTestEngine returns an engine whose diagnostics are captured at the
// given level.
func setupTestEngine(t *testing.T, level string) (*engine.Engine, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	log, err := logging.New(level, &logs)
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	eng, err := engine.NewDefault(log)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	return eng, &logs
}

// listing renders ops the way the solver prints them, one per line.
func listing(ops []stack.Op) string {
	var b strings.Builder
	for _, op := range ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
