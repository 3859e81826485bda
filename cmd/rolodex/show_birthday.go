// Show-birthday command prints a contact's birthday.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var showBirthdayCmd = &cobra.Command{
	Use:   "show-birthday <name>",
	Short: "Show a contact's birthday",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowBirthday,
}

func runShowBirthday(cmd *cobra.Command, args []string) error {
	return withBook(false, func(book *types.Book) error {
		contact, err := book.Find(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]string{
				"name":     contact.Name,
				"birthday": contact.Birthday,
			})
		}
		fmt.Println(contact.BirthdayInfo())
		return nil
	})
}
