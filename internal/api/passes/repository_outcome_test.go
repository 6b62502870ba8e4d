package passes

import (
	"errors"
	"strings"
	"testing"
)

func TestUpdatedResultState(t *testing.T) {
	if got := updatedResult(); got.State != 1 {
		t.Fatalf("updated result state = %d, want 1", got.State)
	}
}

func TestNotFoundResultState(t *testing.T) {
	got := notFoundResult(42)
	if got.State != 0 {
		t.Fatalf("not-found result state = %d, want 0", got.State)
	}
	if !strings.Contains(got.Message, "42") {
		t.Fatalf("not-found message %q does not name the id", got.Message)
	}
}

func TestStatusConflictResultNamesStatus(t *testing.T) {
	got := statusConflictResult("pending")
	if got.State != 0 {
		t.Fatalf("conflict result state = %d, want 0", got.State)
	}
	if !strings.Contains(got.Message, "pending") {
		t.Fatalf("conflict message %q does not name the blocking status", got.Message)
	}
}

func TestFailedResultCarriesDetail(t *testing.T) {
	got := failedResult(errors.New("connection reset"))
	if got.State != 0 {
		t.Fatalf("failed result state = %d, want 0", got.State)
	}
	if !strings.Contains(got.Message, "connection reset") {
		t.Fatalf("failure message %q lost the error detail", got.Message)
	}
}
