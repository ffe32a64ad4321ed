package probe

import (
	"testing"
	"time"
)

// TestTimeIt tests the mean/stddev computation on a controlled workload.
func TestTimeIt(t *testing.T) {
	t.Parallel()

	t.Run("positive mean for real work", func(t *testing.T) {
		t.Parallel()
		mean, stddev := TimeIt(func() { time.Sleep(time.Millisecond) }, 3)
		if mean < 1.0 {
			t.Errorf("mean = %g ms, expected at least 1ms for a 1ms sleep", mean)
		}
		if stddev < 0 {
			t.Errorf("stddev = %g, expected non-negative", stddev)
		}
	})

	t.Run("single repeat has zero stddev", func(t *testing.T) {
		t.Parallel()
		_, stddev := TimeIt(func() {}, 1)
		if stddev != 0 {
			t.Errorf("stddev = %g, expected 0 for a single sample", stddev)
		}
	})

	t.Run("zero repeats", func(t *testing.T) {
		t.Parallel()
		mean, stddev := TimeIt(func() { t.Error("fn must not be called") }, 0)
		if mean != 0 || stddev != 0 {
			t.Errorf("got mean %g stddev %g, expected zeros", mean, stddev)
		}
	})
}

// TestDefaultTargets tests the probed configuration list.
func TestDefaultTargets(t *testing.T) {
	t.Parallel()

	targets := DefaultTargets()
	if len(targets) != 7 {
		t.Fatalf("expected 7 targets, got %d", len(targets))
	}

	expected := []string{
		"MD5", "SHA1", "SHA256",
		"PBKDF2(1000)", "PBKDF2(50000)",
		"bcrypt(cost=12)", "Argon2(t=2,mem=1024KB)",
	}
	for i, name := range expected {
		if targets[i].Name != name {
			t.Errorf("targets[%d].Name = %q, expected %q", i, targets[i].Name, name)
		}
		if targets[i].Repeats <= 0 {
			t.Errorf("target %q has non-positive repeats", name)
		}
	}
}

// TestTargetRunFastDigest tests a real measurement of a cheap primitive.
func TestTargetRunFastDigest(t *testing.T) {
	t.Parallel()

	var target Target
	for _, tgt := range DefaultTargets() {
		if tgt.Name == "SHA256" {
			target = tgt
		}
	}
	m := target.Run()
	if m.Name != "SHA256" || m.Repeats != 20 {
		t.Errorf("unexpected measurement metadata: %+v", m)
	}
	if m.MeanMS < 0 {
		t.Errorf("mean = %g, expected non-negative", m.MeanMS)
	}
}

// TestDetect tests the capability probe's skip handling.
func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("all available without skips", func(t *testing.T) {
		t.Parallel()
		for _, c := range Detect(nil) {
			if !c.Available {
				t.Errorf("capability %q unexpectedly unavailable", c.Target.Name)
			}
			if c.Hint != "" {
				t.Errorf("available capability %q carries a hint: %q", c.Target.Name, c.Hint)
			}
		}
	})

	t.Run("skipped schemes are unavailable with hint", func(t *testing.T) {
		t.Parallel()
		caps := Detect(map[string]bool{"bcrypt": true, "pbkdf2": true})
		for _, c := range caps {
			key := SchemeKey(c.Target.Name)
			skipped := key == "bcrypt" || key == "pbkdf2"
			if c.Available == skipped {
				t.Errorf("capability %q: available = %v, expected %v", c.Target.Name, c.Available, !skipped)
			}
			if skipped && c.Hint == "" {
				t.Errorf("skipped capability %q has no hint", c.Target.Name)
			}
		}
	})
}

// TestSchemeKey tests name-to-key reduction.
func TestSchemeKey(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		expected string
	}{
		{"MD5", "md5"},
		{"SHA256", "sha256"},
		{"PBKDF2(50000)", "pbkdf2"},
		{"bcrypt(cost=12)", "bcrypt"},
		{"Argon2(t=2,mem=1024KB)", "argon2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := SchemeKey(tc.name); got != tc.expected {
				t.Errorf("SchemeKey(%q) = %q, expected %q", tc.name, got, tc.expected)
			}
		})
	}
}
