package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/rolodex/pkg/types"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "rolodex.db"

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using SQLite as the query engine
// and JSONL snapshot files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates the
// data directory if needed, recreates the SQLite database with a fresh
// schema, and transactionally loads the JSONL snapshots.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database is a rebuildable cache of the JSONL snapshots; start
	// from a fresh schema on every attach.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("executing schema: %w", err)
		}
	}

	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("loading snapshots: %w", err)
	}

	b.db = db
	b.config = config
	b.config.DataDir = dataDir
	b.attached = true
	return nil
}

// Detach releases backend resources. Idempotent: multiple calls succeed.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// Load hydrates the contact book from SQLite in position order.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Load() (*types.Book, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT contact_id, name, birthday, created_at, updated_at FROM contacts ORDER BY position ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	book := types.NewBook()
	for rows.Next() {
		contact, err := hydrateContact(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating contact: %w", err)
		}
		book.AddRecord(contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}

	for _, contact := range book.Contacts() {
		if err := b.hydratePhones(contact); err != nil {
			return nil, fmt.Errorf("hydrating phones for %s: %w", contact.Name, err)
		}
	}

	return book, nil
}

// Save persists the full contact book, replacing prior state, and rewrites
// the JSONL snapshots atomically. Contacts without a ContactID are assigned
// a UUID v7. Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Save(book *types.Book) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if book == nil {
		return types.ErrInvalidData
	}

	contacts := book.Contacts()
	for _, contact := range contacts {
		if contact.ContactID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("generating UUID v7: %w", err)
			}
			contact.ContactID = id.String()
		}
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Full replace: the book is the unit of persistence.
	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("clearing phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}

	for position, contact := range contacts {
		_, err := tx.Exec(
			"INSERT INTO contacts (contact_id, name, birthday, position, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			contact.ContactID,
			contact.Name,
			contact.Birthday,
			position,
			contact.CreatedAt.UTC().Format(time.RFC3339),
			contact.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting contact %s: %w", contact.Name, err)
		}
		for ordinal, number := range contact.Phones {
			_, err := tx.Exec(
				"INSERT INTO phones (contact_id, number, ordinal) VALUES (?, ?, ?)",
				contact.ContactID, number, ordinal,
			)
			if err != nil {
				return fmt.Errorf("inserting phone for %s: %w", contact.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}

	if err := b.persistContactsJSONL(); err != nil {
		return fmt.Errorf("persisting contacts.jsonl: %w", err)
	}
	if err := b.persistPhonesJSONL(); err != nil {
		return fmt.Errorf("persisting phones.jsonl: %w", err)
	}

	return nil
}

// hydratePhones loads phone rows into the contact in ordinal order.
func (b *Backend) hydratePhones(contact *types.Contact) error {
	rows, err := b.db.Query(
		"SELECT number FROM phones WHERE contact_id = ? ORDER BY ordinal ASC",
		contact.ContactID,
	)
	if err != nil {
		return fmt.Errorf("querying phones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return fmt.Errorf("scanning phone: %w", err)
		}
		contact.Phones = append(contact.Phones, number)
	}
	return rows.Err()
}

// hydrateContact converts a row from sql.Rows into a *types.Contact.
func hydrateContact(rows *sql.Rows) (*types.Contact, error) {
	var c types.Contact
	var birthday sql.NullString
	var createdAt, updatedAt string
	if err := rows.Scan(&c.ContactID, &c.Name, &birthday, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.Birthday = birthday.String

	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}
