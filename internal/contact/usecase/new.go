package usecase

import (
	"context"
	"strings"

	"caretask/internal/contact"
	"caretask/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	contacts []contact.Contact
}

// New builds the call list from entries, falling back to
// contact.DefaultEntries when entries is empty. Entries without a name or
// number, or with an unknown type, are skipped with a warning.
func New(l log.Logger, entries []contact.Entry) contact.UseCase {
	if len(entries) == 0 {
		entries = contact.DefaultEntries
	}

	ctx := context.Background()
	contacts := make([]contact.Contact, 0, len(entries))
	for _, e := range entries {
		name, number := strings.TrimSpace(e.Name), strings.TrimSpace(e.Number)
		typ, ok := contact.ParseType(e.Type)
		if name == "" || number == "" || !ok {
			l.Warnf(ctx, "uc.contact.New: skipping invalid contact %+v", e)
			continue
		}
		contacts = append(contacts, contact.Contact{
			Name:                 name,
			Number:               number,
			Type:                 typ,
			RequiresConfirmation: typ != contact.TypeEmergency,
		})
	}

	return &implUseCase{l: l, contacts: contacts}
}
