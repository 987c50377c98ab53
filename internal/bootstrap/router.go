package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/prompt-pronto/prompt-pronto-backend/internal/api/http"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/api/http/middleware"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/api/http/routes"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	AccessKey   string
	Services    *Services
	Log         *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))
	r.Use(middleware.RequestIDMiddleware(dep.Log))

	svc := dep.Services
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, svc.Generation.Provider(), svc.Store)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(svc.Metrics.Handler()))

	routes.RegisterV1(r, routes.V1Deps{
		AccessKey:    dep.AccessKey,
		Projects:     svc.Projects,
		ContactLists: svc.ContactLists,
		Generators:   svc.Generators,
		Drafts:       svc.Drafts,
		Saver:        svc.Saver,
		Log:          dep.Log,
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-API-Key", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
