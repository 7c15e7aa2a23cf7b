package entry

import (
	"fmt"
	"strings"
)

// Entry is one contact record: the normalized email address used as the
// database key, the display name as supplied, the canonical Outlook form,
// and the decomposed name parts.
type Entry struct {
	// Email is the lowercase-normalized address. It is the uniqueness key
	// across the whole database, not per batch.
	Email string `json:"email"`

	// Name is the display name with its original casing, empty for bare
	// addresses.
	Name string `json:"name"`

	// FullEntry is the canonical Outlook-compatible form: "Name <email>;"
	// when a name is present, "<email>;" otherwise. The email keeps its
	// original casing here.
	FullEntry string `json:"full_entry"`

	FirstName   string `json:"first_name"`
	MiddleNames string `json:"middle_names"`
	LastName    string `json:"last_name"`
}

// FormatOutlook reconstructs the canonical Outlook form for a name/address
// pair. The address is used verbatim; callers pass the original casing.
func FormatOutlook(name, email string) string {
	if name != "" {
		return fmt.Sprintf("%s <%s>;", name, email)
	}
	return fmt.Sprintf("<%s>;", email)
}

// NormalizeEmail lowercases and trims an address for storage and
// comparison. It normalizes only and does not validate format.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NameParts holds a display name decomposed by the whitespace-split
// heuristic: first token, interior tokens, last token.
type NameParts struct {
	First  string
	Middle string
	Last   string
}

// SplitName decomposes a display name into first, middle and last parts.
// A single token is a first name only; with two tokens the second becomes
// the last name; interior tokens of longer names are joined with single
// spaces into Middle. Surrounding quotes and whitespace are stripped first.
func SplitName(fullName string) NameParts {
	name := strings.Trim(fullName, " '\"")
	if name == "" {
		return NameParts{}
	}

	parts := strings.Fields(name)
	switch len(parts) {
	case 1:
		return NameParts{First: parts[0]}
	case 2:
		return NameParts{First: parts[0], Last: parts[1]}
	default:
		return NameParts{
			First:  parts[0],
			Middle: strings.Join(parts[1:len(parts)-1], " "),
			Last:   parts[len(parts)-1],
		}
	}
}
