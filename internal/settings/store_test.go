package settings

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetIntDefault(t *testing.T) {
	s := openTestStore(t)

	got, err := s.GetInt("background-color", -2)
	if err != nil {
		t.Fatalf("GetInt: %v", err)
	}
	if got != -2 {
		t.Errorf("GetInt(unset) = %d, want -2", got)
	}
}

func TestPutGetInt(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutInt("snap-color", -16777216); err != nil {
		t.Fatalf("PutInt: %v", err)
	}
	got, err := s.GetInt("snap-color", -2)
	if err != nil {
		t.Fatalf("GetInt: %v", err)
	}
	if got != -16777216 {
		t.Errorf("GetInt = %d, want -16777216", got)
	}

	// Overwrite keeps a single row.
	if err := s.PutInt("snap-color", 7); err != nil {
		t.Fatalf("PutInt: %v", err)
	}
	entries, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(entries) != 1 || entries[0].Value != "7" {
		t.Errorf("All = %+v, want one row with value 7", entries)
	}
}

func TestPutIntWrapsTo32Bits(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutInt("text-color", 0xff000000); err != nil {
		t.Fatalf("PutInt: %v", err)
	}
	got, _ := s.GetInt("text-color", -2)
	if got != -16777216 {
		t.Errorf("GetInt = %d, want -16777216", got)
	}
}

func TestGetIntMalformed(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutString("mirror-right", "yes"); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	got, err := s.GetInt("mirror-right", 1)
	if err != nil {
		t.Fatalf("GetInt: %v", err)
	}
	if got != 1 {
		t.Errorf("GetInt(malformed) = %d, want default 1", got)
	}
}

func TestGetFloat(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.GetFloat("background-alpha"); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("GetFloat(unset) error = %v, want ErrSettingNotFound", err)
	}

	if err := s.PutFloat("background-alpha", 0.8); err != nil {
		t.Fatalf("PutFloat: %v", err)
	}
	got, err := s.GetFloat("background-alpha")
	if err != nil {
		t.Fatalf("GetFloat: %v", err)
	}
	if got != 0.8 {
		t.Errorf("GetFloat = %v, want 0.8", got)
	}

	if err := s.PutString("control-size-factor", "big"); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	if _, err := s.GetFloat("control-size-factor"); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("GetFloat(malformed) error = %v, want ErrSettingNotFound", err)
	}
}

func TestGetFloatRejectsNonFinite(t *testing.T) {
	s := openTestStore(t)

	for _, raw := range []string{"NaN", "Inf", "-Inf", "+inf", "1e400"} {
		if err := s.PutString("background-alpha", raw); err != nil {
			t.Fatalf("PutString: %v", err)
		}
		if v, err := s.GetFloat("background-alpha"); !errors.Is(err, ErrSettingNotFound) {
			t.Errorf("GetFloat(%q) = %v, %v; want ErrSettingNotFound", raw, v, err)
		}
	}
}

func TestAllOrdered(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"text-color", "background-alpha", "mirror-right"} {
		if err := s.PutInt(name, 1); err != nil {
			t.Fatalf("PutInt(%s): %v", name, err)
		}
	}
	entries, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	want := []string{"background-alpha", "mirror-right", "text-color"}
	if len(entries) != len(want) {
		t.Fatalf("All returned %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, e.Name, want[i])
		}
	}
}

// TestReopenKeepsValues opens the same file twice and checks that values
// persist and migrations are not re-applied.
func TestReopenKeepsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := s1.PutFloat("control-size-factor", 1.25); err != nil {
		t.Fatalf("PutFloat: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s2.Close()

	got, err := s2.GetFloat("control-size-factor")
	if err != nil {
		t.Fatalf("GetFloat: %v", err)
	}
	if got != 1.25 {
		t.Errorf("GetFloat = %v, want 1.25", got)
	}

	var count int
	if err := s2.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		t.Fatalf("counting migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("schema_version rows = %d, want 1", count)
	}
}
