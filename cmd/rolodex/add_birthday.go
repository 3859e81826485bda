// Add-birthday command sets a contact's birthday.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var addBirthdayCmd = &cobra.Command{
	Use:   "add-birthday <name> <DD.MM.YYYY>",
	Short: "Set a contact's birthday",
	Long: `Add-birthday sets the birthday of an existing contact, overwriting
any previous value.

Example:
  rolodex add-birthday John 15.06.1990`,
	Args: cobra.ExactArgs(2),
	RunE: runAddBirthday,
}

func runAddBirthday(cmd *cobra.Command, args []string) error {
	name, date := args[0], args[1]

	return withBook(true, func(book *types.Book) error {
		contact, err := book.Find(name)
		if err != nil {
			return err
		}
		if err := contact.SetBirthday(date); err != nil {
			return err
		}

		fmt.Println("Contact updated.")
		return nil
	})
}
