// Remove-phone command removes one of a contact's phone numbers.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var removePhoneCmd = &cobra.Command{
	Use:   "remove-phone <name> <phone>",
	Short: "Remove a contact's phone number",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemovePhone,
}

func runRemovePhone(cmd *cobra.Command, args []string) error {
	name, number := args[0], args[1]

	return withBook(true, func(book *types.Book) error {
		contact, err := book.Find(name)
		if err != nil {
			return err
		}
		if err := contact.RemovePhone(number); err != nil {
			return err
		}

		fmt.Println("Phone removed.")
		return nil
	})
}
