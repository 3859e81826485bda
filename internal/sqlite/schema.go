// Package sqlite implements the SQLite storage backend for Rolodex.
// SQLite is the query engine; JSONL snapshot files in the data directory
// are the source of truth, reloaded on every attach.
package sqlite

// Schema DDL. The database file is recreated on attach and rehydrated from
// the JSONL snapshots, so no migrations are needed.
const (
	createContacts = `CREATE TABLE contacts (
    contact_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    birthday TEXT,
    position INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createPhones = `CREATE TABLE phones (
    contact_id TEXT NOT NULL,
    number TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    PRIMARY KEY (contact_id, number),
    FOREIGN KEY (contact_id) REFERENCES contacts(contact_id)
);`
)

// schemaDDL lists the statements executed on attach, in dependency order.
var schemaDDL = []string{
	createContacts,
	createPhones,
}
