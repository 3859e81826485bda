// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize rolodex storage",
	Long: `Init creates the configuration directory with a default config.yaml
and initializes the data directory with an empty contact book.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		book, err := backend.Load()
		if err != nil {
			return fmt.Errorf("load contacts: %w", err)
		}
		if err := backend.Save(book); err != nil {
			return fmt.Errorf("save contacts: %w", err)
		}

		fmt.Println("Rolodex initialized successfully")
		return nil
	},
}
