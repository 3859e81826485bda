package types

import (
	"fmt"
	"time"
)

// UpcomingWindowDays is the lookahead window for the birthday query,
// inclusive of today.
const UpcomingWindowDays = 7

// Book is an insertion-ordered mapping from contact name to contact record.
type Book struct {
	order   []string
	records map[string]*Contact
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{
		records: make(map[string]*Contact),
	}
}

// AddRecord inserts or replaces a contact keyed by its name. A replaced
// contact keeps its original position in the book.
func (b *Book) AddRecord(contact *Contact) {
	if _, ok := b.records[contact.Name]; !ok {
		b.order = append(b.order, contact.Name)
	}
	b.records[contact.Name] = contact
}

// Find returns the contact with the given name.
// Returns ErrContactNotFound if absent.
func (b *Book) Find(name string) (*Contact, error) {
	contact, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("contact %q: %w", name, ErrContactNotFound)
	}
	return contact, nil
}

// Delete removes the contact with the given name.
// Returns ErrContactNotFound if absent.
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("contact %q: %w", name, ErrContactNotFound)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Names returns the contact names in insertion order.
func (b *Book) Names() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}

// Contacts returns the contact records in insertion order.
func (b *Book) Contacts() []*Contact {
	contacts := make([]*Contact, 0, len(b.order))
	for _, name := range b.order {
		contacts = append(contacts, b.records[name])
	}
	return contacts
}

// Len returns the number of contacts in the book.
func (b *Book) Len() int {
	return len(b.order)
}

// UpcomingBirthdays returns a greeting for every contact whose birthday
// occurs within the next UpcomingWindowDays days, inclusive of today.
// Occurrences falling on Saturday or Sunday have their congratulation date
// shifted forward to the following Monday. Results follow book insertion
// order.
//
// The occurrence is always placed in today's year: birthdays that would
// roll into January are not matched when today is in late December.
func (b *Book) UpcomingBirthdays(today time.Time) []Greeting {
	greetings := []Greeting{}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	for _, contact := range b.Contacts() {
		if contact.Birthday == "" {
			continue
		}
		born, err := time.Parse(BirthdayLayout, contact.Birthday)
		if err != nil {
			continue
		}

		occurrence := time.Date(day.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		delta := int(occurrence.Sub(day).Hours() / 24)
		if delta < 0 || delta > UpcomingWindowDays {
			continue
		}

		congratulation := occurrence
		switch occurrence.Weekday() {
		case time.Saturday:
			congratulation = occurrence.AddDate(0, 0, 2)
		case time.Sunday:
			congratulation = occurrence.AddDate(0, 0, 1)
		}

		greetings = append(greetings, Greeting{
			Name:               contact.Name,
			CongratulationDate: congratulation.Format(BirthdayLayout),
		})
	}
	return greetings
}
