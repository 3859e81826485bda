// Package shell implements the interactive command loop for Rolodex.
// Input lines are whitespace-tokenized into a command name and positional
// arguments, dispatched to the matching handler, and the store is saved
// after every mutating command. Errors are reported as one-line messages
// at the command boundary; the loop always continues.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Shell runs the interactive command loop over a contact book.
type Shell struct {
	book  *types.Book
	store types.Store
	in    io.Reader
	out   io.Writer

	// now is the clock for the birthdays query, overridable in tests.
	now func() time.Time
}

// New creates a shell over the given book and store, reading commands from
// in and writing replies to out.
func New(book *types.Book, store types.Store, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		book:  book,
		store: store,
		in:    in,
		out:   out,
		now:   time.Now,
	}
}

// Run reads commands until close/exit or EOF. The book is saved on exit.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "Enter a command: ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			s.save()
			break
		}
		if s.Dispatch(scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

// Parse splits an input line into a lowercased command name and its
// positional arguments. An empty line yields an empty command.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Dispatch executes a single command line and reports whether the loop
// should terminate. All handler errors are printed here and never escape.
func (s *Shell) Dispatch(line string) (quit bool) {
	command, args := Parse(line)

	var err error
	mutating := false

	switch command {
	case "":
		return false

	case "hello":
		fmt.Fprintln(s.out, "How can I help you?")

	case "add":
		err = s.handleAdd(args)
		mutating = true

	case "change":
		err = s.handleChange(args)
		mutating = true

	case "phone":
		err = s.handlePhone(args)

	case "all":
		s.handleAll()

	case "birthdays":
		s.handleBirthdays()

	case "add-birthday":
		err = s.handleAddBirthday(args)
		mutating = true

	case "show-birthday":
		err = s.handleShowBirthday(args)

	case "remove-phone":
		err = s.handleRemovePhone(args)
		mutating = true

	case "delete":
		err = s.handleDelete(args)
		mutating = true

	case "close", "exit":
		s.save()
		fmt.Fprintln(s.out, "Good bye!")
		return true

	default:
		fmt.Fprintln(s.out, "Invalid command.")
	}

	if err != nil {
		fmt.Fprintf(s.out, "[ERROR] %v\n", err)
		return false
	}
	if mutating {
		s.save()
	}
	return false
}

// save persists the book, reporting failure without stopping the loop.
func (s *Shell) save() {
	if err := s.store.Save(s.book); err != nil {
		fmt.Fprintf(s.out, "[ERROR] saving contacts: %v\n", err)
	}
}

// requireArgs checks the positional argument count.
func requireArgs(args []string, expected int) error {
	if len(args) != expected {
		return fmt.Errorf("expected %d arguments, got %d: %w", expected, len(args), types.ErrArgumentCount)
	}
	return nil
}

func (s *Shell) handleAdd(args []string) error {
	if err := requireArgs(args, 2); err != nil {
		return err
	}
	name, number := args[0], args[1]

	// Validate the phone before creating a record so a bad number does
	// not leave an empty contact behind.
	if _, err := types.ParsePhone(number); err != nil {
		return err
	}

	contact, err := s.book.Find(name)
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
	s.book.AddRecord(contact)

	fmt.Fprintln(s.out, "Contact added.")
	return nil
}

func (s *Shell) handleChange(args []string) error {
	if err := requireArgs(args, 3); err != nil {
		return err
	}
	name, oldNumber, newNumber := args[0], args[1], args[2]

	contact, err := s.book.Find(name)
	if err != nil {
		return err
	}
	if err := contact.EditPhone(oldNumber, newNumber); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Contact updated.")
	return nil
}

func (s *Shell) handlePhone(args []string) error {
	if err := requireArgs(args, 1); err != nil {
		return err
	}
	contact, err := s.book.Find(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Phones: %s\n", contact.PhonesInfo())
	return nil
}

func (s *Shell) handleAll() {
	if s.book.Len() == 0 {
		fmt.Fprintln(s.out, "There are no contacts.")
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPHONES\tBIRTHDAY")
	for _, contact := range s.book.Contacts() {
		birthday := contact.Birthday
		if birthday == "" {
			birthday = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", contact.Name, contact.PhonesInfo(), birthday)
	}
	w.Flush()
}

func (s *Shell) handleBirthdays() {
	for _, g := range s.book.UpcomingBirthdays(s.now()) {
		fmt.Fprintf(s.out, "Name: %s, Birthday: %s\n", g.Name, g.CongratulationDate)
	}
}

func (s *Shell) handleAddBirthday(args []string) error {
	if err := requireArgs(args, 2); err != nil {
		return err
	}
	name, date := args[0], args[1]

	contact, err := s.book.Find(name)
	if err != nil {
		return err
	}
	if err := contact.SetBirthday(date); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Contact updated.")
	return nil
}

func (s *Shell) handleShowBirthday(args []string) error {
	if err := requireArgs(args, 1); err != nil {
		return err
	}
	contact, err := s.book.Find(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, contact.BirthdayInfo())
	return nil
}

func (s *Shell) handleRemovePhone(args []string) error {
	if err := requireArgs(args, 2); err != nil {
		return err
	}
	contact, err := s.book.Find(args[0])
	if err != nil {
		return err
	}
	if err := contact.RemovePhone(args[1]); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Phone removed.")
	return nil
}

func (s *Shell) handleDelete(args []string) error {
	if err := requireArgs(args, 1); err != nil {
		return err
	}
	if err := s.book.Delete(args[0]); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Contact deleted.")
	return nil
}
