package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		fields []string
		name   string
		render bool
	)

	cmd := &cobra.Command{
		Use:   "generate KIND",
		Short: "Generate an artifact (site, contacts, client_list, contract, approach)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			values, err := parseFields(fields)
			if err != nil {
				return err
			}

			d, err := app.Generators.NewDraft("cli", kind, values)
			if err != nil {
				return err
			}
			v, err := d.Generate(cmd.Context())
			if err != nil {
				return err
			}

			if v.Result.Fallback {
				fmt.Fprintln(cmd.ErrOrStderr(), styleWarn.Render(v.Result.Warning))
			}
			if err := printContent(cmd.OutOrStdout(), kind, v.Result.Content, render); err != nil {
				return err
			}

			if !cmd.Flags().Changed("save") {
				return nil
			}
			d.Update(&name, nil)
			res, err := app.Saver.Save(cmd.Context(), d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case res.Project != nil:
				fmt.Fprintf(out, "%s %s (%s)\n", styleOK.Render("Saved project"), res.Project.Name, res.Project.ID)
			case res.ContactList != nil:
				fmt.Fprintf(out, "%s %d\n", styleOK.Render("Saved contact list"), res.ContactList.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "form field as key=value (repeatable)")
	cmd.Flags().StringVar(&name, "save", "", "save the result under NAME")
	cmd.Flags().BoolVar(&render, "render", false, "render markdown output for the terminal")

	return cmd
}

func parseFields(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid field %q, want key=value", p)
		}
		out[strings.TrimSpace(k)] = v
	}
	return out, nil
}

func printContent(w io.Writer, kind domain.Kind, c generators.Content, render bool) error {
	switch kind {
	case domain.KindContacts:
		_, err := fmt.Fprint(w, renderTable(contactHeaders, contactRows(c.Contacts)))
		return err
	case domain.KindClientList:
		_, err := fmt.Fprint(w, renderTable(clientHeaders, clientRows(c.Clients)))
		return err
	}

	text := c.Text
	if render {
		rendered, err := renderMarkdown(text)
		if err != nil {
			return err
		}
		text = rendered
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
