package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"cozy-threads/internal/middleware"
	"cozy-threads/internal/service"
	"cozy-threads/internal/session"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data envelope every template receives: pending flash messages,
// the nav cart badge count and the page-specific payload.
type Page struct {
	Flashes   []session.Flash
	CartCount int
	Data      any
}

// Pages renders the server-side HTML views. It owns the template set and
// pulls flashes and the cart count out of the session on every render.
type Pages struct {
	tmpl     *template.Template
	sessions session.Store
	carts    service.CartService
	logger   zerolog.Logger
}

// NewPages parses the embedded templates and creates the page renderer.
func NewPages(sessions session.Store, carts service.CartService, logger zerolog.Logger) (*Pages, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Pages{
		tmpl:     tmpl,
		sessions: sessions,
		carts:    carts,
		logger:   logger.With().Str("handler", "pages").Logger(),
	}, nil
}

// Render executes the named template with the session's flashes and cart
// count wrapped around data. Template failures fall back to a plain 500.
func (p *Pages) Render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	ctx := r.Context()
	sid := middleware.SessionID(ctx)

	page := Page{Data: data}

	flashes, err := p.sessions.PopFlashes(ctx, sid)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to pop flashes")
	} else {
		page.Flashes = flashes
	}

	cart, err := p.carts.Get(ctx, sid)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to load cart for badge count")
	} else {
		page.CartCount = cart.Count()
	}

	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, page); err != nil {
		p.logger.Error().Err(err).Str("template", name).Msg("failed to execute template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		p.logger.Error().Err(err).Str("template", name).Msg("failed to write response")
	}
}

// Flash queues a one-shot message for the session's next page load.
func (p *Pages) Flash(r *http.Request, level, message string) {
	ctx := r.Context()
	sid := middleware.SessionID(ctx)
	if err := p.sessions.AddFlash(ctx, sid, session.Flash{Message: message, Level: level}); err != nil {
		p.logger.Error().Err(err).Msg("failed to add flash")
	}
}

// NotFound renders the 404 page.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.Render(w, r, http.StatusNotFound, "404.html", nil)
}

// ServerError renders the 500 page.
func (p *Pages) ServerError(w http.ResponseWriter, r *http.Request) {
	p.Render(w, r, http.StatusInternalServerError, "500.html", nil)
}
