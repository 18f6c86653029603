package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kristian0808/arcade-frontdesk/internal/service/notes"
	"github.com/kristian0808/arcade-frontdesk/internal/service/product"
	"github.com/kristian0808/arcade-frontdesk/internal/service/roster"
	"github.com/kristian0808/arcade-frontdesk/internal/service/tabsession"
)

// Deps are the services the router exposes.
type Deps struct {
	Roster         *roster.Service
	Products       *product.Service
	Notes          *notes.Service
	Sessions       *tabsession.Manager
	Cache          *redis.Client
	AllowedOrigins []string
}

// buildRouter wires routes for the front-desk API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Cache))

	api := router.Group("/api")
	{
		api.GET("/pcs", listPCsHandler(deps.Roster))
		api.GET("/pcs/:name", getPCHandler(deps.Roster))

		api.GET("/members", listMembersHandler(deps.Roster))
		api.GET("/members/search", searchMembersHandler(deps.Roster))
		api.GET("/members/rankings", rankingsHandler(deps.Roster))
		api.GET("/members/:id", getMemberHandler(deps.Roster))

		api.GET("/products", searchProductsHandler(deps.Products))
		api.GET("/overview", overviewHandler(deps.Roster))

		api.GET("/notes", listNotesHandler(deps.Notes))
		api.POST("/notes", createNoteHandler(deps.Notes))
		api.PUT("/notes/:id/resolve", resolveNoteHandler(deps.Notes))

		sessions := api.Group("/sessions/:station")
		{
			sessions.GET("", sessionSnapshotHandler(deps.Sessions))
			sessions.DELETE("", sessionClearHandler(deps.Sessions))
			sessions.POST("/member", selectMemberHandler(deps.Sessions))
			sessions.POST("/pc", selectPCHandler(deps.Sessions, deps.Roster))
			sessions.POST("/tab", createTabHandler(deps.Sessions))
			sessions.POST("/tab/items", addItemHandler(deps.Sessions))
			sessions.PUT("/tab/items/:index", updateItemHandler(deps.Sessions))
			sessions.DELETE("/tab/items/:index", removeItemHandler(deps.Sessions))
			sessions.POST("/tab/close", closeTabHandler(deps.Sessions))
		}
	}

	return router
}
