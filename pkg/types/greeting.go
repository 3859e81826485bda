package types

// Greeting is an ephemeral result of the upcoming-birthday query. It is
// derived from the book and never persisted.
type Greeting struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"` // DD.MM.YYYY, weekend-shifted.
}
