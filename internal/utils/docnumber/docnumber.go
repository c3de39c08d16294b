// Package docnumber formats and parses human-readable document numbers of the form
// PREFIX-YYYYMMDD-NNNN. It has no side effects; the sequence value comes from the caller.
package docnumber

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// MaxSequence is the largest sequence that fits the 4-digit component.
const MaxSequence = 9999

const dateLayout = "20060102"

var (
	prefixRe = regexp.MustCompile(`^[A-Z]{2,4}$`)
	numberRe = regexp.MustCompile(`^([A-Z]{2,4})-(\d{8})-(\d{4})$`)
)

var (
	// ErrInvalidPrefix is returned for prefixes that are not 2-4 upper-case letters.
	ErrInvalidPrefix = errors.New("document prefix must be 2-4 upper-case letters")
	// ErrSequenceOutOfRange is returned when seq is outside 1..MaxSequence.
	ErrSequenceOutOfRange = errors.New("document sequence out of range")
	// ErrMalformedNumber is returned by Parse for anything not matching PREFIX-YYYYMMDD-NNNN.
	ErrMalformedNumber = errors.New("malformed document number")
)

// Number is a parsed document number.
type Number struct {
	Prefix   string
	Date     time.Time // midnight UTC of the encoded day
	Sequence int
}

// String formats n back into its canonical form.
func (n Number) String() string {
	return fmt.Sprintf("%s-%s-%04d", n.Prefix, n.Date.Format(dateLayout), n.Sequence)
}

// ValidPrefix reports whether p can be used as a document prefix.
func ValidPrefix(p string) bool {
	return prefixRe.MatchString(p)
}

// Format builds the number for the given prefix, calendar day and sequence.
// Only the year, month and day of day are used, in day's own location.
func Format(prefix string, day time.Time, seq int64) (string, error) {
	if !ValidPrefix(prefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	if seq <= 0 || seq > MaxSequence {
		return "", fmt.Errorf("%w: %d", ErrSequenceOutOfRange, seq)
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, day.Format(dateLayout), seq), nil
}

// Parse splits a document number into its components.
// Unlike a lenient suffix scan it never guesses: anything off-pattern is ErrMalformedNumber.
func Parse(number string) (Number, error) {
	m := numberRe.FindStringSubmatch(number)
	if m == nil {
		return Number{}, fmt.Errorf("%w: %q", ErrMalformedNumber, number)
	}
	date, err := time.Parse(dateLayout, m[2])
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q: %v", ErrMalformedNumber, number, err)
	}
	seq, err := strconv.Atoi(m[3])
	if err != nil || seq == 0 {
		return Number{}, fmt.Errorf("%w: %q", ErrMalformedNumber, number)
	}
	return Number{Prefix: m[1], Date: date, Sequence: seq}, nil
}

// Day truncates t to its calendar date in loc, returned as midnight UTC of that date.
// This is the value stored in the sequence counter's date column.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
