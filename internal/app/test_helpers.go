package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/checkoutfields/internal/registry"
	"github.com/specialistvlad/checkoutfields/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. Results are
// written to the returned output buffer and logs, at debug level, to the
// log buffer.
func SetupAppTest(t *testing.T, cfg *Config, modules ...registry.Module) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, cfg, modules...)

	t.Cleanup(func() {
		if os.Getenv("CHECKOUTFIELDS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
