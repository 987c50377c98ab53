// Package cli implements promptctl, the command-line front end to the
// generators and the project store.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/repository"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/service"
)

// App holds the services CLI commands run against.
type App struct {
	Generators   *generators.Set
	Saver        *generators.Saver
	Projects     *service.ProjectService
	ContactLists *repository.ContactListRepository
}

// NewRootCmd creates the top-level "promptctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "promptctl",
		Short:         "Generate marketing artifacts and manage saved projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newProjectsCmd(app),
		newContactsCmd(app),
	)

	return root
}
