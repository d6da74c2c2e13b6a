package secrets

import (
	"errors"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := FetchToken(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("fresh store should report ErrNoToken, got %v", err)
	}

	if err := StoreToken("tok-abc123"); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, err := FetchToken()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != "tok-abc123" {
		t.Fatalf("fetch = %q, want tok-abc123", got)
	}

	if err := DeleteToken(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := FetchToken(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("after delete, want ErrNoToken, got %v", err)
	}
	// deleting twice is fine
	if err := DeleteToken(); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
