package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/export"
)

func newContactsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Browse saved contact lists",
	}

	cmd.AddCommand(
		newContactsListsCmd(app),
		newContactsExportCmd(app),
	)

	return cmd
}

func newContactsListsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "List saved contact lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := app.ContactLists.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(lists) == 0 {
				fmt.Fprintln(out, "No contact lists saved.")
				return nil
			}

			rows := make([][]string, 0, len(lists))
			for _, l := range lists {
				rows = append(rows, []string{strconv.FormatInt(l.ID, 10), l.Date, l.Query, strconv.Itoa(len(l.Contacts))})
			}
			fmt.Fprint(out, renderTable([]string{"ID", "Data", "Busca", "Contatos"}, rows))
			return nil
		},
	}
}

func newContactsExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a saved contact list as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid list id %q", args[0])
			}
			lists, err := app.ContactLists.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, l := range lists {
				if l.ID == id {
					return writeOutput(cmd.OutOrStdout(), outPath, func(w io.Writer) error {
						return export.WriteContactsCSV(w, l.Contacts)
					})
				}
			}
			return fmt.Errorf("contact list %d not found", id)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}
