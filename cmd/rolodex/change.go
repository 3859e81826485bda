// Change command replaces one of a contact's phone numbers.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var changeCmd = &cobra.Command{
	Use:   "change <name> <old-phone> <new-phone>",
	Short: "Replace a contact's phone number",
	Long: `Change replaces an existing phone number with a new one, keeping its
position in the contact's phone list.

Example:
  rolodex change John 1234567890 0987654321`,
	Args: cobra.ExactArgs(3),
	RunE: runChange,
}

func runChange(cmd *cobra.Command, args []string) error {
	name, oldNumber, newNumber := args[0], args[1], args[2]

	return withBook(true, func(book *types.Book) error {
		contact, err := book.Find(name)
		if err != nil {
			return err
		}
		if err := contact.EditPhone(oldNumber, newNumber); err != nil {
			return err
		}

		fmt.Println("Contact updated.")
		return nil
	})
}
