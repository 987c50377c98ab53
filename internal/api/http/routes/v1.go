package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/prompt-pronto/prompt-pronto-backend/internal/api/http"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/api/http/middleware"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	generatorshttp "github.com/prompt-pronto/prompt-pronto-backend/internal/generators/http"
	projectshttp "github.com/prompt-pronto/prompt-pronto-backend/internal/projects/http"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/repository"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/service"
)

type V1Deps struct {
	AccessKey    string
	Projects     *service.ProjectService
	ContactLists *repository.ContactListRepository
	Generators   *generators.Set
	Drafts       *generators.Registry
	Saver        *generators.Saver
	Log          *zap.Logger
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(middleware.APIKeyMiddleware(dep.AccessKey))

	httpapi.RegisterNavigation(api)

	projectshttp.New(dep.Projects, dep.Drafts, dep.Log).Register(api.Group("/projects"))
	generatorshttp.New(dep.Generators, dep.Drafts, dep.Saver, dep.ContactLists, dep.Log).Register(api)
}
