// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard serves the interactive search surface: a keyword form,
// the result table, insight charts, and CSV/XLSX downloads. Every request
// runs a fresh search; the server keeps no per-user state.
package dashboard

import (
	"embed"
	"io/fs"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/template/html/v3"

	"github.com/pdiddy/patent-lens/internal/pipeline"
	"github.com/pdiddy/patent-lens/pkg/types"
)

//go:embed views
var viewsFS embed.FS

// Server wraps the Fiber app and its listen configuration.
type Server struct {
	App *fiber.App
	Cfg types.ServerConfig
}

// New creates the dashboard server with middleware and routes configured.
// The search client and insight settings are injected; handlers never reach
// for globals.
func New(cfg types.ServerConfig, client pipeline.Searcher, insightCfg types.InsightConfig) *Server {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		log.Fatalf("dashboard views: %v", err)
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			return c.Status(code).Render("error", fiber.Map{
				"Title":   "Error",
				"Message": message,
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	h := NewSearchHandler(client, insightCfg)
	app.Get("/", h.Index)
	app.Get("/search", h.Search)
	app.Get("/charts", h.Charts)
	app.Get("/export/csv", h.ExportCSV)
	app.Get("/export/xlsx", h.ExportXLSX)
	app.Get("/healthz", h.Health)

	return &Server{App: app, Cfg: cfg}
}

// Start listens on the configured address until Shutdown or a listen error.
func (s *Server) Start() error {
	log.Printf("Starting dashboard on %s", s.Cfg.Addr)
	return s.App.Listen(s.Cfg.Addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
