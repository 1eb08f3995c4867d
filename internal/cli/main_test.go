package cli

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// Cursor blink commands outlive the driver's timeout and exit on their own.
		goleak.IgnoreAnyFunction("github.com/alexanderramin/fittrack/internal/teatest.execCmdWithTimeout.func1"),
	)
}
