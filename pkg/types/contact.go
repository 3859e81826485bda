package types

import (
	"fmt"
	"strings"
	"time"
)

// Contact represents a single contact record. The name is the book key and
// is immutable after creation. Phones hold validated 10-digit numbers in
// insertion order with no duplicates. Birthday is a canonical DD.MM.YYYY
// string, empty when unset.
type Contact struct {
	ContactID string    `json:"contact_id"` // UUID v7, assigned by the store on first save.
	Name      string    `json:"name"`
	Phones    []string  `json:"phones"`
	Birthday  string    `json:"birthday,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContact creates a contact with the given name and no phones.
// Returns ErrRequiredField if the name is empty or whitespace-only.
func NewContact(name string) (*Contact, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Contact{
		Name:      n,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AddPhone validates the number and appends it to the contact's phones.
// Adding a number that is already present is a no-op, not an error.
func (c *Contact) AddPhone(number string) error {
	phone, err := ParsePhone(number)
	if err != nil {
		return err
	}
	if c.phoneIndex(phone) >= 0 {
		return nil
	}
	c.Phones = append(c.Phones, phone)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// EditPhone replaces an existing number with a new one, preserving its
// position in the list. Returns ErrPhoneNotFound if old is absent; the
// phone list is left unchanged on any error. If the new number is already
// present elsewhere in the list, the old entry is removed instead so the
// no-duplicates invariant holds.
func (c *Contact) EditPhone(old, new string) error {
	idx := c.phoneIndex(old)
	if idx < 0 {
		return fmt.Errorf("phone %q: %w", old, ErrPhoneNotFound)
	}
	phone, err := ParsePhone(new)
	if err != nil {
		return err
	}
	if other := c.phoneIndex(phone); other >= 0 && other != idx {
		c.Phones = append(c.Phones[:idx], c.Phones[idx+1:]...)
	} else {
		c.Phones[idx] = phone
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// RemovePhone removes a number from the contact's phones.
// Returns ErrPhoneNotFound if the number is absent.
func (c *Contact) RemovePhone(number string) error {
	idx := c.phoneIndex(number)
	if idx < 0 {
		return fmt.Errorf("phone %q: %w", number, ErrPhoneNotFound)
	}
	c.Phones = append(c.Phones[:idx], c.Phones[idx+1:]...)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// FindPhone returns the stored number equal to the given one.
// Returns ErrPhoneNotFound if absent.
func (c *Contact) FindPhone(number string) (string, error) {
	idx := c.phoneIndex(number)
	if idx < 0 {
		return "", fmt.Errorf("phone %q: %w", number, ErrPhoneNotFound)
	}
	return c.Phones[idx], nil
}

// SetBirthday validates the date and overwrites any existing birthday.
func (c *Contact) SetBirthday(date string) error {
	birthday, err := ParseBirthday(date)
	if err != nil {
		return err
	}
	c.Birthday = birthday
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// PhonesInfo returns the phones as a comma-separated list for display.
func (c *Contact) PhonesInfo() string {
	return strings.Join(c.Phones, ", ")
}

// BirthdayInfo returns a one-line birthday summary, with "N/A" when the
// birthday is unset.
func (c *Contact) BirthdayInfo() string {
	birthday := c.Birthday
	if birthday == "" {
		birthday = "N/A"
	}
	return fmt.Sprintf("%s was born in %s", c.Name, birthday)
}

// String renders the contact as a one-line summary.
func (c *Contact) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s", c.Name, strings.Join(c.Phones, "; "))
}

// phoneIndex returns the position of number in Phones, or -1 if absent.
func (c *Contact) phoneIndex(number string) int {
	for i, p := range c.Phones {
		if p == number {
			return i
		}
	}
	return -1
}
