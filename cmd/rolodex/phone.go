// Phone command shows a contact's phone numbers.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var phoneCmd = &cobra.Command{
	Use:   "phone <name>",
	Short: "Show a contact's phone numbers",
	Long: `Phone prints the phone numbers stored for a contact.

Example:
  rolodex phone John
  rolodex phone John --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPhone,
}

func runPhone(cmd *cobra.Command, args []string) error {
	return withBook(false, func(book *types.Book) error {
		contact, err := book.Find(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(contact.Phones)
		}
		fmt.Printf("Phones: %s\n", contact.PhonesInfo())
		return nil
	})
}
