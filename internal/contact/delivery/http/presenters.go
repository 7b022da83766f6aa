package http

import "caretask/internal/contact"

type contactResp struct {
	Name                 string `json:"name"`
	Number               string `json:"number"`
	Type                 string `json:"type"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
	DialURI              string `json:"dial_uri"`
}

type listResp struct {
	Contacts []contactResp `json:"contacts"`
}

func (h *handler) newListResp(contacts []contact.Contact) listResp {
	out := make([]contactResp, len(contacts))
	for i, c := range contacts {
		out[i] = contactResp{
			Name:                 c.Name,
			Number:               c.Number,
			Type:                 string(c.Type),
			RequiresConfirmation: c.RequiresConfirmation,
			DialURI:              c.DialURI(),
		}
	}
	return listResp{Contacts: out}
}
