package config

import "testing"

func TestValidateExpiration(t *testing.T) {
	v := NewValidator()

	for _, valid := range []string{"1h", "12h", "24h", "72h"} {
		if err := v.Var(valid, "expiration"); err != nil {
			t.Fatalf("expected %q to be a valid expiration, got %v", valid, err)
		}
	}

	for _, invalid := range []string{"5h", "1d", "72", "1H", " 1h"} {
		if err := v.Var(invalid, "expiration"); err == nil {
			t.Fatalf("expected %q to be rejected", invalid)
		}
	}
}
