package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the environment variable value, skipping the test
// when it is not set. Used to gate tests that talk to live services.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skipping", key)
	}
	return value
}
