// JSONL snapshot persistence for contacts and phones.
package sqlite

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// contactJSONLRecord matches the JSONL format for contacts.
type contactJSONLRecord struct {
	ContactID string `json:"contact_id"`
	Name      string `json:"name"`
	Birthday  string `json:"birthday,omitempty"`
	Position  int    `json:"position"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// phoneJSONLRecord matches the JSONL format for phones.
type phoneJSONLRecord struct {
	ContactID string `json:"contact_id"`
	Number    string `json:"number"`
	Ordinal   int    `json:"ordinal"`
}

// persistContactsJSONL reads all contacts from SQLite and writes them to
// contacts.jsonl using the atomic write pattern.
func (b *Backend) persistContactsJSONL() error {
	rows, err := b.db.Query(
		"SELECT contact_id, name, COALESCE(birthday, ''), position, created_at, updated_at FROM contacts ORDER BY position ASC",
	)
	if err != nil {
		return fmt.Errorf("querying contacts for JSONL: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec contactJSONLRecord
		if err := rows.Scan(&rec.ContactID, &rec.Name, &rec.Birthday, &rec.Position, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return fmt.Errorf("scanning contact for JSONL: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling contact for JSONL: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating contacts for JSONL: %w", err)
	}

	return writeJSONL(filepath.Join(b.config.DataDir, "contacts.jsonl"), records)
}

// persistPhonesJSONL reads all phone rows from SQLite and writes them to
// phones.jsonl using the atomic write pattern.
func (b *Backend) persistPhonesJSONL() error {
	rows, err := b.db.Query(
		"SELECT contact_id, number, ordinal FROM phones ORDER BY contact_id, ordinal ASC",
	)
	if err != nil {
		return fmt.Errorf("querying phones for JSONL: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec phoneJSONLRecord
		if err := rows.Scan(&rec.ContactID, &rec.Number, &rec.Ordinal); err != nil {
			return fmt.Errorf("scanning phone for JSONL: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling phone for JSONL: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating phones for JSONL: %w", err)
	}

	return writeJSONL(filepath.Join(b.config.DataDir, "phones.jsonl"), records)
}
