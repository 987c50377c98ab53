package domain

import (
	"fmt"
	"strings"
)

// Kind discriminates generated artifacts and stored projects.
type Kind string

const (
	KindSite       Kind = "site"
	KindContacts   Kind = "contacts"
	KindClientList Kind = "client_list"
	KindContract   Kind = "contract"
	KindApproach   Kind = "approach"
)

// Kinds lists every generator kind in menu order.
func Kinds() []Kind {
	return []Kind{KindSite, KindContacts, KindClientList, KindContract, KindApproach}
}

// ParseKind accepts the wire name of a kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Label is the short human label shown next to a project and matched by search.
func (k Kind) Label() string {
	switch k {
	case KindContract:
		return "Contrato"
	case KindClientList:
		return "Lista"
	case KindApproach:
		return "Abordagem"
	case KindContacts:
		return "Contatos"
	default:
		return "Site"
	}
}

// Persistable reports whether records of this kind live in the project store.
// Contact lists are kept in their own collection.
func (k Kind) Persistable() bool {
	switch k {
	case KindSite, KindClientList, KindContract, KindApproach:
		return true
	}
	return false
}

// Structured reports whether the kind produces records instead of free text.
func (k Kind) Structured() bool {
	return k == KindContacts || k == KindClientList
}
