package ui

import (
	"embed"
	"html/template"
	"log"

	"github.com/gin-gonic/gin"

	"programas/app"
	"programas/domain/catalog"
)

//go:embed templates/*
var templateFS embed.FS

// Server is the web server for the program catalog UI.
type Server struct {
	router    *gin.Engine
	service   *app.CatalogService
	formatter *catalog.CurrencyFormatter
	templates *template.Template
}

// NewServer creates a new web server instance
func NewServer(service *app.CatalogService, formatter *catalog.CurrencyFormatter) *Server {
	return &Server{
		router:    gin.Default(),
		service:   service,
		formatter: formatter,
	}
}

// Initialize parses the embedded templates and registers all routes.
func (s *Server) Initialize() error {
	funcMap := template.FuncMap{
		"currency": s.formatter.FormatCurrency,
		"add":      func(a, b int) int { return a + b },
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return err
	}
	s.templates = templates
	s.router.SetHTMLTemplate(templates)

	s.router.Use(RequestID())

	s.router.GET("/", s.handleIndex())
	s.router.GET("/healthz", s.handleHealth())

	api := s.router.Group("/api")
	{
		api.GET("/programs", s.handlePrograms())
		api.GET("/stats", s.handleStats())
		api.GET("/facets", s.handleFacets())
	}

	return nil
}

// Start runs the HTTP server on the given address.
func (s *Server) Start(addr string) error {
	log.Printf("[Server] Listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
