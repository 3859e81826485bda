// Delete command removes a contact from the book.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	return withBook(true, func(book *types.Book) error {
		if err := book.Delete(args[0]); err != nil {
			return err
		}

		fmt.Println("Contact deleted.")
		return nil
	})
}
