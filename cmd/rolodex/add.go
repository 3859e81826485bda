// Add command creates a contact or adds a phone to an existing one.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <phone>",
	Short: "Add a contact or a phone number",
	Long: `Add creates a contact with the given 10-digit phone number, or adds
the number to an existing contact. Adding a number the contact already has
is a no-op.

Example:
  rolodex add John 1234567890`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, number := args[0], args[1]

	// Validate the phone before creating a record so a bad number does
	// not leave an empty contact behind.
	if _, err := types.ParsePhone(number); err != nil {
		return err
	}

	return withBook(true, func(book *types.Book) error {
		contact, err := book.Find(name)
		if err != nil {
			if !errors.Is(err, types.ErrContactNotFound) {
				return err
			}
			contact, err = types.NewContact(name)
			if err != nil {
				return err
			}
		}
		if err := contact.AddPhone(number); err != nil {
			return err
		}
		book.AddRecord(contact)

		fmt.Println("Contact added.")
		return nil
	})
}
