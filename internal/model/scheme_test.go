package model

import "testing"

// TestSchemeLabels tests algorithm names and parameter labels for each
// scheme variant.
func TestSchemeLabels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		scheme        Scheme
		wantAlgorithm string
		wantParam     string
	}{
		{"md5", FastDigest{Name: "MD5"}, "MD5", ""},
		{"sha1", FastDigest{Name: "SHA1"}, "SHA1", ""},
		{"sha256", FastDigest{Name: "SHA256"}, "SHA256", ""},
		{"pbkdf2", Iterated{Iterations: 10000}, "PBKDF2", "iters=10000"},
		{"bcrypt", AdaptiveCost{Cost: 12}, "bcrypt", "cost=12"},
		{"argon2", MemoryHard{MemoryKB: 1024}, "Argon2", "mem=1024KB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.scheme.Algorithm(); got != tc.wantAlgorithm {
				t.Errorf("Algorithm() = %q, expected %q", got, tc.wantAlgorithm)
			}
			if got := tc.scheme.ParamLabel(); got != tc.wantParam {
				t.Errorf("ParamLabel() = %q, expected %q", got, tc.wantParam)
			}
		})
	}
}

// TestDefaultSchemes tests the default configuration grid.
func TestDefaultSchemes(t *testing.T) {
	t.Parallel()

	schemes := DefaultSchemes()
	if len(schemes) != 12 {
		t.Fatalf("expected 12 scheme configurations, got %d", len(schemes))
	}

	// Three configurations per algorithm family, except the three
	// parameterless digests.
	counts := make(map[string]int)
	for _, s := range schemes {
		counts[s.Algorithm()]++
	}

	expected := map[string]int{
		"MD5": 1, "SHA1": 1, "SHA256": 1,
		"PBKDF2": 3, "bcrypt": 3, "Argon2": 3,
	}
	for algo, want := range expected {
		if counts[algo] != want {
			t.Errorf("algorithm %q has %d configurations, expected %d", algo, counts[algo], want)
		}
	}
}

// TestSummaryRowLabel tests the chart label composition.
func TestSummaryRowLabel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		row      SummaryRow
		expected string
	}{
		{"no param", SummaryRow{Algorithm: "MD5"}, "MD5"},
		{"with param", SummaryRow{Algorithm: "bcrypt", Param: "cost=12"}, "bcrypt cost=12"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.row.Label(); got != tc.expected {
				t.Errorf("Label() = %q, expected %q", got, tc.expected)
			}
		})
	}
}
