// Shell command runs the interactive command loop.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the interactive assistant shell",
	Long: `Shell starts the interactive command loop. Commands:

  hello                                greeting
  add <name> <phone>                   add a contact or a phone
  change <name> <old> <new>            replace a phone number
  phone <name>                         show a contact's phones
  all                                  list all contacts
  birthdays                            birthdays in the next 7 days
  add-birthday <name> <DD.MM.YYYY>     set a birthday
  show-birthday <name>                 show a birthday
  remove-phone <name> <phone>          remove a phone number
  delete <name>                        delete a contact
  close | exit                         save and quit`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	book, err := backend.Load()
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}

	return shell.New(book, backend, os.Stdin, os.Stdout).Run()
}
