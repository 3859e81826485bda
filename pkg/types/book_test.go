package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustContact(t *testing.T, name string, phones ...string) *Contact {
	t.Helper()
	c, err := NewContact(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, c.AddPhone(p))
	}
	return c
}

func TestBookAddRecordAndFind(t *testing.T) {
	b := NewBook()
	b.AddRecord(mustContact(t, "John", "1234567890"))

	got, err := b.Find("John")
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name)

	_, err = b.Find("Jane")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestBookAddRecordReplaceKeepsPosition(t *testing.T) {
	b := NewBook()
	b.AddRecord(mustContact(t, "John"))
	b.AddRecord(mustContact(t, "Jane"))

	// Replacing John must not move him to the end.
	b.AddRecord(mustContact(t, "John", "1234567890"))

	assert.Equal(t, []string{"John", "Jane"}, b.Names())
	assert.Equal(t, 2, b.Len())
}

func TestBookDelete(t *testing.T) {
	b := NewBook()
	b.AddRecord(mustContact(t, "John"))
	b.AddRecord(mustContact(t, "Jane"))

	err := b.Delete("John")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane"}, b.Names())

	err = b.Delete("John")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestBookContactsOrder(t *testing.T) {
	b := NewBook()
	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		b.AddRecord(mustContact(t, name))
	}

	var names []string
	for _, c := range b.Contacts() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Charlie", "Alice", "Bob"}, names)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func withBirthday(t *testing.T, name, birthday string) *Contact {
	t.Helper()
	c := mustContact(t, name)
	require.NoError(t, c.SetBirthday(birthday))
	return c
}

func TestUpcomingBirthdays(t *testing.T) {
	// 10.06.2024 is a Monday.
	today := date(2024, time.June, 10)

	tests := []struct {
		name     string
		birthday string
		want     []Greeting
	}{
		{
			name:     "weekday occurrence keeps its own date",
			birthday: "12.06.1990",
			want:     []Greeting{{Name: "John", CongratulationDate: "12.06.2024"}},
		},
		{
			name:     "today is included",
			birthday: "10.06.1990",
			want:     []Greeting{{Name: "John", CongratulationDate: "10.06.2024"}},
		},
		{
			name:     "exactly seven days out on a weekday is included",
			birthday: "17.06.1990",
			want:     []Greeting{{Name: "John", CongratulationDate: "17.06.2024"}},
		},
		{
			name:     "saturday shifts to the following monday",
			birthday: "15.06.1990",
			want:     []Greeting{{Name: "John", CongratulationDate: "17.06.2024"}},
		},
		{
			name:     "sunday shifts to the following monday",
			birthday: "16.06.1990",
			want:     []Greeting{{Name: "John", CongratulationDate: "17.06.2024"}},
		},
		{
			name:     "eight days out is excluded",
			birthday: "18.06.1990",
			want:     []Greeting{},
		},
		{
			name:     "yesterday is excluded",
			birthday: "09.06.1990",
			want:     []Greeting{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBook()
			b.AddRecord(withBirthday(t, "John", tt.birthday))

			got := b.UpcomingBirthdays(today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpcomingBirthdaysWorkedExample(t *testing.T) {
	// today = 10.06.2024 (Monday); contact born 01.01.1990 has no June
	// birthday, a second born 15.06.1990 falls on Saturday 15.06.2024.
	today := date(2024, time.June, 10)

	b := NewBook()
	b.AddRecord(withBirthday(t, "Jane", "01.01.1990"))
	b.AddRecord(withBirthday(t, "John", "15.06.1990"))

	got := b.UpcomingBirthdays(today)
	assert.Equal(t, []Greeting{{Name: "John", CongratulationDate: "17.06.2024"}}, got)
}

func TestUpcomingBirthdaysSkipsContactsWithoutBirthday(t *testing.T) {
	today := date(2024, time.June, 10)

	b := NewBook()
	b.AddRecord(mustContact(t, "NoBirthday"))
	b.AddRecord(withBirthday(t, "John", "12.06.1990"))

	got := b.UpcomingBirthdays(today)
	require.Len(t, got, 1)
	assert.Equal(t, "John", got[0].Name)
}

func TestUpcomingBirthdaysInsertionOrder(t *testing.T) {
	today := date(2024, time.June, 10)

	b := NewBook()
	b.AddRecord(withBirthday(t, "Second", "13.06.1990"))
	b.AddRecord(withBirthday(t, "First", "11.06.1990"))

	got := b.UpcomingBirthdays(today)
	require.Len(t, got, 2)
	assert.Equal(t, "Second", got[0].Name)
	assert.Equal(t, "First", got[1].Name)
}

func TestUpcomingBirthdaysYearBoundary(t *testing.T) {
	// Known limitation: the occurrence is placed in today's year, so a
	// January 2nd birthday is not matched when today is December 28th.
	today := date(2024, time.December, 28)

	b := NewBook()
	b.AddRecord(withBirthday(t, "John", "02.01.1990"))

	got := b.UpcomingBirthdays(today)
	assert.Empty(t, got)
}

func TestUpcomingBirthdaysEmptyBook(t *testing.T) {
	b := NewBook()
	got := b.UpcomingBirthdays(date(2024, time.June, 10))
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
