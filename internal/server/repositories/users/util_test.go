package users

import (
	"testing"
	"time"
)

func testTime(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2025-01-02T03:04:05Z")
	if err != nil {
		t.Fatalf("time.Parse error: %v", err)
	}
	return ts
}
