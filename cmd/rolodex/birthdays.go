// Birthdays command shows who to congratulate in the next week.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Show upcoming birthdays",
	Long: `Birthdays lists contacts whose birthday falls within the next 7 days,
with weekend birthdays shifted to the following Monday.

Example:
  rolodex birthdays
  rolodex birthdays --json`,
	Args: cobra.NoArgs,
	RunE: runBirthdays,
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	return withBook(false, func(book *types.Book) error {
		greetings := book.UpcomingBirthdays(time.Now())

		if flagJSON {
			return printJSON(greetings)
		}
		for _, g := range greetings {
			fmt.Printf("Name: %s, Birthday: %s\n", g.Name, g.CongratulationDate)
		}
		return nil
	})
}
