package entry

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern is the address shape the parser recognizes: local part,
// "@", and a domain containing at least one dot. Deliverability beyond
// this syntactic check is out of scope.
const emailPattern = `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`

var (
	nameEmailRe = regexp.MustCompile(`^(.*?)\s*<(` + emailPattern + `)>$`)
	bareEmailRe = regexp.MustCompile(`^(` + emailPattern + `)$`)
)

// ParseError reports a single fragment that could not be parsed into an
// entry. One Parse call can yield several, one per bad fragment.
type ParseError struct {
	// Fragment is the sub-entry text as supplied, before quote stripping.
	Fragment string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no recognizable email address in %q", e.Fragment)
}

// Parse turns a free-form text fragment into structured entries. The input
// may contain multiple sub-entries separated by semicolons; a trailing
// semicolon is allowed. Each sub-entry is parsed independently, so one
// malformed fragment never blocks the others: Parse returns every entry it
// recognized together with one ParseError per fragment it did not.
//
// Recognized sub-entry forms:
//
//	user@domain.com
//	<user@domain.com>
//	Name Surname <user@domain.com>
//	"Name Surname" <user@domain.com>
func Parse(text string) ([]Entry, []*ParseError) {
	var (
		entries []Entry
		errs    []*ParseError
	)

	for _, fragment := range splitFragments(text) {
		e, err := parseFragment(fragment)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, errs
}

// splitFragments splits the input on semicolons that sit outside angle
// brackets, so an exotic local part like <a;b@example.com> survives.
// Empty fragments (doubled or trailing semicolons) are dropped.
func splitFragments(text string) []string {
	var (
		fragments []string
		current   strings.Builder
		inAngle   bool
	)

	for _, r := range text {
		switch r {
		case '<':
			inAngle = true
		case '>':
			inAngle = false
		}

		if r == ';' && !inAngle {
			if f := strings.TrimSpace(current.String()); f != "" {
				fragments = append(fragments, f)
			}
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if f := strings.TrimSpace(current.String()); f != "" {
		fragments = append(fragments, f)
	}
	return fragments
}

// parseFragment parses a single sub-entry. The returned entry carries the
// lowercased address as its key while FullEntry keeps the original casing.
func parseFragment(fragment string) (Entry, *ParseError) {
	text := strings.Trim(fragment, " '\"")

	if m := nameEmailRe.FindStringSubmatch(text); m != nil {
		name := strings.Trim(m[1], " '\"")
		email := m[2]
		parts := SplitName(name)
		return Entry{
			Email:       NormalizeEmail(email),
			Name:        name,
			FullEntry:   FormatOutlook(name, email),
			FirstName:   parts.First,
			MiddleNames: parts.Middle,
			LastName:    parts.Last,
		}, nil
	}

	if m := bareEmailRe.FindStringSubmatch(text); m != nil {
		email := m[1]
		return Entry{
			Email:     NormalizeEmail(email),
			FullEntry: FormatOutlook("", email),
		}, nil
	}

	return Entry{}, &ParseError{Fragment: fragment}
}
