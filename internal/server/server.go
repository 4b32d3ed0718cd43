// Package server serves the site over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mjoel54/klein-portfolio/internal/assets"
	"github.com/Mjoel54/klein-portfolio/internal/config"
	"github.com/Mjoel54/klein-portfolio/internal/pages"
	"github.com/Mjoel54/klein-portfolio/internal/projects"
	"github.com/Mjoel54/klein-portfolio/internal/render"
)

type handler struct {
	site     pages.Site
	renderer *render.Renderer
	registry *projects.Registry
}

// New builds the gin engine with every route of the site.
func New(cfg config.Config, reg *projects.Registry, r *render.Renderer) *gin.Engine {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), requestID(), pageViews(newVisitorHasher()))
	engine.SetHTMLTemplate(r.Templates())

	engine.StaticFS("/images", http.FS(assets.Images()))

	h := &handler{
		site:     pages.Site{Name: cfg.SiteName, URL: cfg.SiteURL},
		renderer: r,
		registry: reg,
	}

	engine.GET("/", h.about)
	engine.GET("/about", h.about)
	engine.GET("/projects", h.projects)

	api := engine.Group("/api")
	api.GET("/projects", h.listProjects)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.NoRoute(h.notFound)

	return engine
}

func (h *handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, render.PageAbout, pages.About(h.site, h.renderer))
}

func (h *handler) projects(c *gin.Context) {
	page, err := pages.Projects(h.site, h.renderer, h.registry)
	if err != nil {
		log.Printf("Error rendering projects page: %v", err)
		c.String(http.StatusInternalServerError, "Sorry, this page could not be rendered.")
		return
	}
	c.HTML(http.StatusOK, render.PageProjects, page)
}

func (h *handler) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.All())
}

func (h *handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, render.PageNotFound, pages.NotFound(h.site, c.Request.URL.Path))
}

// Run serves handler on cfg.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Serving %s on %s", cfg.SiteName, cfg.Addr())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listening on %s: %w", cfg.Addr(), err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
