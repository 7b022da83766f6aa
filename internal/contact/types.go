package contact

import "strings"

// Type groups contacts on the dashboard.
type Type string

const (
	TypeEmergency Type = "emergency"
	TypeMedical   Type = "medical"
	TypeFamily    Type = "family"
)

// ParseType trims and lowercases s before matching.
func ParseType(s string) (Type, bool) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeEmergency, TypeMedical, TypeFamily:
		return t, true
	}
	return "", false
}

// Contact is one entry of the caregiver's call list. Emergency contacts
// are dialed directly; the rest ask the caregiver to confirm first.
type Contact struct {
	Name                 string
	Number               string
	Type                 Type
	RequiresConfirmation bool
}

// DialURI returns the tel: link for the contact's number.
func (c Contact) DialURI() string {
	var b strings.Builder
	b.WriteString("tel:")
	for _, r := range c.Number {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Entry is a configured contact before validation.
type Entry struct {
	Name   string
	Number string
	Type   string
}

// DefaultEntries is the call list used when none is configured.
var DefaultEntries = []Entry{
	{Name: "Emergency Services", Number: "911", Type: string(TypeEmergency)},
	{Name: "Primary Doctor", Number: "(555) 123-4567", Type: string(TypeMedical)},
	{Name: "Family Member", Number: "(555) 987-6543", Type: string(TypeFamily)},
	{Name: "Pharmacy", Number: "(555) 456-7890", Type: string(TypeMedical)},
}
