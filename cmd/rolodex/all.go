// All command lists every contact.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "List all contacts",
	Long: `All prints every contact with its phone numbers and birthday.

Example:
  rolodex all
  rolodex all --json`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func runAll(cmd *cobra.Command, args []string) error {
	return withBook(false, func(book *types.Book) error {
		if flagJSON {
			return printJSON(book.Contacts())
		}

		if book.Len() == 0 {
			fmt.Println("There are no contacts.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPHONES\tBIRTHDAY")
		for _, contact := range book.Contacts() {
			birthday := contact.Birthday
			if birthday == "" {
				birthday = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", contact.Name, contact.PhonesInfo(), birthday)
		}
		return w.Flush()
	})
}
