package store

import (
	"path/filepath"
	"testing"
)

type fixture struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openBackends(t *testing.T) map[string]Store {
	t.Helper()

	js, err := NewJSONStore(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("open json store: %v", err)
	}
	sq, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}

	t.Cleanup(func() {
		_ = js.Close()
		_ = sq.Close()
	})
	return map[string]Store{"json": js, "sqlite": sq}
}

func TestRoundTrip(t *testing.T) {
	for name, st := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			in := []fixture{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
			if err := st.Save("things", in); err != nil {
				t.Fatalf("save: %v", err)
			}

			var out []fixture
			ok, err := st.Load("things", &out)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !ok {
				t.Fatalf("expected key to exist")
			}
			if len(out) != 2 || out[0].Name != "a" || out[1].Count != 2 {
				t.Fatalf("round trip mismatch: %+v", out)
			}
		})
	}
}

func TestLoadMissingKey(t *testing.T) {
	for name, st := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			var out int
			ok, err := st.Load("never_written", &out)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if ok {
				t.Fatalf("expected ok=false for a missing key")
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	for name, st := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Save("points", 50); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := st.Save("points", 130); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			var points int
			ok, err := st.Load("points", &points)
			if err != nil || !ok {
				t.Fatalf("load: ok=%v err=%v", ok, err)
			}
			if points != 130 {
				t.Fatalf("points=%d, want 130", points)
			}
		})
	}
}

func TestJSONStoreRejectsBadKeys(t *testing.T) {
	st, err := NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := st.Save("../escape", 1); err == nil {
		t.Fatalf("expected error for path-traversal key")
	}
	if _, err := st.Load("UPPER", new(int)); err == nil {
		t.Fatalf("expected error for invalid key")
	}
}

func TestOpenFactory(t *testing.T) {
	dir := t.TempDir()

	st, err := Open(BackendJSON, filepath.Join(dir, "state"))
	if err != nil {
		t.Fatalf("open json: %v", err)
	}
	if _, ok := st.(*JSONStore); !ok {
		t.Fatalf("backend=%T, want *JSONStore", st)
	}
	_ = st.Close()

	st, err = Open("", filepath.Join(dir, "state.db"))
	if err != nil {
		t.Fatalf("open default: %v", err)
	}
	if _, ok := st.(*SQLiteStore); !ok {
		t.Fatalf("backend=%T, want *SQLiteStore", st)
	}
	_ = st.Close()

	if _, err := Open("redis", "x"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
