// Package export renders generated artifacts for use outside the app:
// CSV files, a print-ready contract page and share links.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

const (
	ContactsFilename = "contatos_gerados.csv"
	ClientsFilename  = "clientes_encontrados.csv"
)

var (
	contactsHeader = []string{"Nome", "Cargo", "Empresa", "Email", "Instagram"}
	clientsHeader  = []string{"Empresa", "Nicho", "Localização", "Contato", "Email", "Instagram"}
)

// WriteContactsCSV writes contacts with a header row. Fields containing
// commas, quotes or newlines are quoted.
func WriteContactsCSV(w io.Writer, contacts []domain.Contact) error {
	rows := make([][]string, 0, len(contacts)+1)
	rows = append(rows, contactsHeader)
	for _, c := range contacts {
		rows = append(rows, []string{c.Name, c.Role, c.Company, c.Email, c.Instagram})
	}
	return writeAll(w, rows)
}

// WriteClientsCSV writes clients with a header row.
func WriteClientsCSV(w io.Writer, clients []domain.Client) error {
	rows := make([][]string, 0, len(clients)+1)
	rows = append(rows, clientsHeader)
	for _, c := range clients {
		rows = append(rows, []string{c.BusinessName, c.Niche, c.Location, c.ContactName, c.Email, c.Instagram})
	}
	return writeAll(w, rows)
}

// ContactsCSV is WriteContactsCSV into memory.
func ContactsCSV(contacts []domain.Contact) ([]byte, error) {
	var b bytes.Buffer
	err := WriteContactsCSV(&b, contacts)
	return b.Bytes(), err
}

// ClientsCSV is WriteClientsCSV into memory.
func ClientsCSV(clients []domain.Client) ([]byte, error) {
	var b bytes.Buffer
	err := WriteClientsCSV(&b, clients)
	return b.Bytes(), err
}

func writeAll(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
