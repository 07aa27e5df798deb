package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/tasklist/internal/store"
)

// exerciseBackend checks the contract every backend must honour
func exerciseBackend(t *testing.T, kv store.Storage) {
	t.Helper()

	if _, ok, err := kv.Get(store.DefaultKey); err != nil || ok {
		t.Fatalf("Expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(store.DefaultKey, `[{"id":1}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := kv.Get(store.DefaultKey)
	if err != nil || !ok || value != `[{"id":1}]` {
		t.Fatalf("Get after Set = (%q, %v, %v)", value, ok, err)
	}

	if err := kv.Set(store.DefaultKey, "[]"); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	value, _, _ = kv.Get(store.DefaultKey)
	if value != "[]" {
		t.Errorf("Expected overwritten value, got %q", value)
	}
}

func TestMemory(t *testing.T) {
	exerciseBackend(t, NewMemory())
}

func TestPreferences(t *testing.T) {
	app := test.NewApp()
	exerciseBackend(t, NewPreferences(app.Preferences()))
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = db.Close() }()

	if db.Path() != path {
		t.Errorf("Expected path %s, got %s", path, db.Path())
	}
	exerciseBackend(t, db)
}

func TestSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := db.Set(store.DefaultKey, "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = db.Close() }()

	value, ok, err := db.Get(store.DefaultKey)
	if err != nil || !ok || value != "[]" {
		t.Errorf("Expected persisted value, got (%q, %v, %v)", value, ok, err)
	}
}

func TestSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestOpen(t *testing.T) {
	app := test.NewApp()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"memory", Options{Backend: BackendMemory}, nil},
		{"sqlite", Options{Backend: BackendSQLite, Path: filepath.Join(t.TempDir(), "a.db")}, nil},
		{"default is sqlite", Options{Path: filepath.Join(t.TempDir(), "b.db")}, nil},
		{"preferences", Options{Backend: BackendPreferences, Preferences: app.Preferences()}, nil},
		{"preferences without app", Options{Backend: BackendPreferences}, ErrBackendUnavailable},
		{"unknown", Options{Backend: "redis"}, ErrUnknownBackend},
	}

	for _, tc := range tests {
		backend, err := Open(tc.opts)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if err := backend.Close(); err != nil {
			t.Errorf("%s: close: %v", tc.name, err)
		}
	}
}

func TestStoreRoundTripThroughSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = db.Close() }()

	st := store.New(db)
	task, _ := st.Add("Buy milk")
	st.Add("Walk the dog")
	st.Toggle(task.ID)

	reloaded := store.New(db)
	want, got := st.Tasks(), reloaded.Tasks()
	if len(want) != len(got) {
		t.Fatalf("Expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("Task %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}
