// Shared helpers for rolodex CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dukaforge/rolodex/internal/sqlite"
	"github.com/dukaforge/rolodex/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// withBook attaches the backend, loads the book, runs fn, and saves the
// book afterwards when mutate is set. One-shot commands are built on this.
func withBook(mutate bool, fn func(book *types.Book) error) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	book, err := backend.Load()
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}

	if err := fn(book); err != nil {
		return err
	}

	if mutate {
		if err := backend.Save(book); err != nil {
			return fmt.Errorf("save contacts: %w", err)
		}
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(output))
	return nil
}
