package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/export"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Browse and manage saved projects",
	}

	cmd.AddCommand(
		newProjectsListCmd(app),
		newProjectsShowCmd(app),
		newProjectsDeleteCmd(app),
		newProjectsExportCmd(app),
	)

	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved projects, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Projects.List(cmd.Context(), query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No projects found.")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, p := range items {
				rows = append(rows, []string{p.ID, p.Name, p.Kind().Label(), p.Date})
			}
			fmt.Fprint(out, renderTable([]string{"ID", "Nome", "Tipo", "Data"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by name, form fields or type")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleHeader.Render(p.Name))
			fmt.Fprintf(out, "  ID:   %s\n", p.ID)
			fmt.Fprintf(out, "  Tipo: %s\n", p.Kind().Label())
			fmt.Fprintf(out, "  Data: %s\n", p.Date)
			if p.Input != nil {
				fields := p.Input.Fields()
				keys := make([]string, 0, len(fields))
				for k := range fields {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "  %s %s\n", styleDim.Render(k+":"), fields[k])
				}
			}
			fmt.Fprintln(out)
			return printContent(out, p.Kind(), generators.Content{Text: p.Content.Text, Clients: p.Content.Clients}, false)
		},
	}
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete %s without --yes", args[0])
			}
			ok, err := app.Projects.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("project %s: %w", args[0], domain.ErrNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleOK.Render("Deleted"), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deletion")
	return cmd
}

func newProjectsExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a project: CSV for client lists, printable HTML otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), outPath, func(w io.Writer) error {
				if p.Kind() == domain.KindClientList {
					return export.WriteClientsCSV(w, p.Content.Clients)
				}
				return export.WritePrintDocument(w, p.Content.Text)
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

// writeOutput runs write against path, or against stdout when path is empty.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
