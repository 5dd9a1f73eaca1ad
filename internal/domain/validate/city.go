package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Reason identifies which rule a rejected city query violated.
type Reason string

const (
	ReasonEmpty             Reason = "empty"
	ReasonTooShort          Reason = "too-short"
	ReasonTooLong           Reason = "too-long"
	ReasonInvalidCharacters Reason = "invalid-characters"
)

const (
	minCityLen = 2
	maxCityLen = 85
)

// cityPattern allows Latin letters with diacritics (Latin-1 Supplement
// and Latin Extended-A), spaces, hyphens and apostrophes. Digits and
// other punctuation are rejected.
var cityPattern = regexp.MustCompile(`^[a-zA-ZÀ-ÖØ-öø-ÿĀ-ſ\s'-]+$`)

// Result is the outcome of validating a raw city query. When Valid is
// true, City holds the trimmed name to pass downstream.
type Result struct {
	Valid  bool
	City   string
	Reason Reason
}

// reasonMessages are the user-facing texts paired with each rejection.
var reasonMessages = map[Reason]string{
	ReasonEmpty:             "Please enter a city name",
	ReasonTooShort:          "City name is too short",
	ReasonTooLong:           "City name is too long",
	ReasonInvalidCharacters: "City name contains invalid characters",
}

// Message returns the user-facing text for a rejected query.
func (r Result) Message() string {
	return reasonMessages[r.Reason]
}

// City validates a raw search input against the city-name rules. Rules
// are checked in fixed precedence: empty, too short, too long, invalid
// characters. Length bounds count runes, not bytes.
func City(raw string) Result {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return Result{Reason: ReasonEmpty}
	}
	if utf8.RuneCountInString(trimmed) < minCityLen {
		return Result{Reason: ReasonTooShort}
	}
	if utf8.RuneCountInString(trimmed) > maxCityLen {
		return Result{Reason: ReasonTooLong}
	}
	if !cityPattern.MatchString(trimmed) {
		return Result{Reason: ReasonInvalidCharacters}
	}

	return Result{Valid: true, City: trimmed}
}
