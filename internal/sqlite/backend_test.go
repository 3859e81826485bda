// Tests for the SQLite backend.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dukaforge/rolodex/pkg/types"
)

func attachedBackend(t *testing.T, dataDir string) *Backend {
	t.Helper()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	err := b.Attach(config)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	// Verify database file created
	dbPath := filepath.Join(tmpDir, dbFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("rolodex.db not created")
	}

	// Verify double attach fails
	err = b.Attach(config)
	if err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	b.Detach()
}

func TestBackend_AttachRejectsBadConfig(t *testing.T) {
	b := NewBackend()

	err := b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	if err != types.ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}

	err = b.Attach(types.Config{DataDir: t.TempDir()})
	if err != types.ErrBackendEmpty {
		t.Errorf("expected ErrBackendEmpty, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	b := attachedBackend(t, t.TempDir())

	err := b.Detach()
	if err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	err = b.Detach()
	if err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	_, err = b.Load()
	if err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached from Load, got %v", err)
	}
	err = b.Save(types.NewBook())
	if err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached from Save, got %v", err)
	}
}

func TestBackend_LoadEmpty(t *testing.T) {
	b := attachedBackend(t, t.TempDir())

	book, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("expected empty book, got %d contacts", book.Len())
	}
}

func TestBackend_SaveAssignsContactIDs(t *testing.T) {
	b := attachedBackend(t, t.TempDir())

	contact, err := types.NewContact("John")
	if err != nil {
		t.Fatalf("NewContact failed: %v", err)
	}
	book := types.NewBook()
	book.AddRecord(contact)

	if err := b.Save(book); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if contact.ContactID == "" {
		t.Error("expected ContactID to be assigned on save")
	}

	// Saving again must not reassign the ID.
	id := contact.ContactID
	if err := b.Save(book); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if contact.ContactID != id {
		t.Errorf("ContactID changed across saves: %s != %s", contact.ContactID, id)
	}
}

func TestBackend_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	book := types.NewBook()
	for _, tc := range []struct {
		name     string
		phones   []string
		birthday string
	}{
		{"John", []string{"1234567890", "0987654321"}, "15.06.1990"},
		{"Jane", []string{"5555555555"}, ""},
		{"NoPhones", nil, "01.01.2000"},
	} {
		c, err := types.NewContact(tc.name)
		if err != nil {
			t.Fatalf("NewContact failed: %v", err)
		}
		for _, p := range tc.phones {
			if err := c.AddPhone(p); err != nil {
				t.Fatalf("AddPhone failed: %v", err)
			}
		}
		if tc.birthday != "" {
			if err := c.SetBirthday(tc.birthday); err != nil {
				t.Fatalf("SetBirthday failed: %v", err)
			}
		}
		book.AddRecord(c)
	}

	b := attachedBackend(t, tmpDir)
	if err := b.Save(book); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	b.Detach()

	// A fresh backend reads back from the JSONL snapshots.
	b2 := attachedBackend(t, tmpDir)
	loaded, err := b2.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got, want := loaded.Len(), book.Len(); got != want {
		t.Fatalf("loaded %d contacts, want %d", got, want)
	}
	wantNames := book.Names()
	gotNames := loaded.Names()
	for i := range wantNames {
		if gotNames[i] != wantNames[i] {
			t.Errorf("name order mismatch at %d: got %s, want %s", i, gotNames[i], wantNames[i])
		}
	}
	for _, name := range wantNames {
		want, _ := book.Find(name)
		got, err := loaded.Find(name)
		if err != nil {
			t.Fatalf("Find %s failed: %v", name, err)
		}
		if got.ContactID != want.ContactID {
			t.Errorf("%s: ContactID got %s, want %s", name, got.ContactID, want.ContactID)
		}
		if got.Birthday != want.Birthday {
			t.Errorf("%s: Birthday got %q, want %q", name, got.Birthday, want.Birthday)
		}
		if len(got.Phones) != len(want.Phones) {
			t.Fatalf("%s: got %d phones, want %d", name, len(got.Phones), len(want.Phones))
		}
		for i := range want.Phones {
			if got.Phones[i] != want.Phones[i] {
				t.Errorf("%s: phone %d got %s, want %s", name, i, got.Phones[i], want.Phones[i])
			}
		}
	}
}

func TestBackend_DeletePersists(t *testing.T) {
	tmpDir := t.TempDir()

	book := types.NewBook()
	for _, name := range []string{"John", "Jane"} {
		c, _ := types.NewContact(name)
		book.AddRecord(c)
	}

	b := attachedBackend(t, tmpDir)
	if err := b.Save(book); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := book.Delete("John"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := b.Save(book); err != nil {
		t.Fatalf("Save after delete failed: %v", err)
	}
	b.Detach()

	b2 := attachedBackend(t, tmpDir)
	loaded, err := b2.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("expected 1 contact after delete, got %d", loaded.Len())
	}
	if _, err := loaded.Find("John"); err == nil {
		t.Error("deleted contact still present")
	}
}

func TestBackend_CorruptSnapshotIsNoData(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "contacts.jsonl")
	if err := os.WriteFile(path, []byte("this is not json\n{{{\n"), 0o644); err != nil {
		t.Fatalf("writing corrupt snapshot: %v", err)
	}

	b := attachedBackend(t, tmpDir)
	book, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("expected empty book from corrupt snapshot, got %d contacts", book.Len())
	}
}

func TestBackend_MalformedLinesSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	snapshot := `{"contact_id":"id-1","name":"John","position":0,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}
not json at all
{"contact_id":"id-2","name":"Jane","birthday":"15.06.1990","position":1,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}
`
	path := filepath.Join(tmpDir, "contacts.jsonl")
	if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	b := attachedBackend(t, tmpDir)
	book, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if book.Len() != 2 {
		t.Fatalf("expected 2 contacts, got %d", book.Len())
	}
	jane, err := book.Find("Jane")
	if err != nil {
		t.Fatalf("Find Jane failed: %v", err)
	}
	if jane.Birthday != "15.06.1990" {
		t.Errorf("Jane birthday got %q, want 15.06.1990", jane.Birthday)
	}
}
