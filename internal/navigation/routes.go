// Package navigation is the route table of the application shell.
package navigation

import (
	"strings"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// Home is where unknown paths land.
const Home = "/"

// Route is one view of the shell.
type Route struct {
	Path    string      `json:"path"`
	Label   string      `json:"label"`
	Sidebar bool        `json:"sidebar"`
	Kind    domain.Kind `json:"kind,omitempty"` // generator served by the view
}

var routes = []Route{
	{Path: "/", Label: "Dashboard", Sidebar: true},
	{Path: "/create-site", Label: "Criar Site", Sidebar: true, Kind: domain.KindSite},
	{Path: "/my-projects", Label: "Meus Projetos", Sidebar: true},
	{Path: "/create-contracts", Label: "Criar Contratos", Sidebar: true, Kind: domain.KindContract},
	{Path: "/find-clients", Label: "Encontrar Clientes", Sidebar: true, Kind: domain.KindClientList},
	{Path: "/generate-approach", Label: "Gerar Abordagem", Sidebar: true, Kind: domain.KindApproach},
	{Path: "/academy", Label: "Academy AI", Sidebar: true},
	{Path: "/settings", Label: "Configurações", Sidebar: true},
	{Path: "/create-contacts", Label: "Criar Contatos", Kind: domain.KindContacts},
}

// Routes returns every known route.
func Routes() []Route {
	return append([]Route(nil), routes...)
}

// Sidebar returns the routes listed in the side menu, in menu order.
func Sidebar() []Route {
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		if r.Sidebar {
			out = append(out, r)
		}
	}
	return out
}

// Resolve maps path to its route; unknown paths resolve to Home.
// A trailing slash and a leading "#" (hash routing) are ignored.
func Resolve(path string) Route {
	p := strings.TrimPrefix(strings.TrimSpace(path), "#")
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	for _, r := range routes {
		if r.Path == p {
			return r
		}
	}
	return routes[0]
}

// EditRoute is the view that edits a saved project of kind.
func EditRoute(kind domain.Kind) string {
	switch kind {
	case domain.KindContract:
		return "/create-contracts"
	case domain.KindClientList:
		return "/find-clients"
	case domain.KindApproach:
		return "/generate-approach"
	default:
		return "/create-site"
	}
}
