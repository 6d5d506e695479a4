// Package web provides the HTTP server: the planner page and the JSON API.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"meal-planner/internal/app"
	"meal-planner/internal/auth"
	"meal-planner/internal/catalog"
	"meal-planner/internal/planner"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Options configure optional parts of the server.
type Options struct {
	// TokenSecret enables bearer-token auth on mutating API routes.
	TokenSecret string
	// Webhook, when set, is mounted at POST /webhook.
	Webhook http.Handler
}

// Server is the main HTTP server.
type Server struct {
	app       *app.App
	opts      Options
	router    chi.Router
	templates *template.Template
}

// New creates a new server.
func New(a *app.App, opts Options) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"weekRange": weekRange,
		"dict":      dict,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		app:       a,
		opts:      opts,
		templates: tmpl,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/", s.handleHome)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if s.opts.Webhook != nil {
		r.Post("/webhook", s.opts.Webhook.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/history", s.handleGetHistory)
		r.Get("/catalog", s.handleGetCatalog)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(s.opts.TokenSecret))
			r.Post("/plans", s.handleGeneratePlan)
			r.Post("/variations/{id}/select", s.handleSelectVariation)
			r.Delete("/history", s.handleClearHistory)
		})
	})

	s.router = r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// --- Page Handlers ---

type variationLink struct {
	ID       string
	Label    string
	Range    string
	Selected bool
}

type pageData struct {
	Current    *planner.WeeklyMealPlan
	Displayed  *planner.WeeklyMealPlan
	Variations []variationLink
	Previous   []planner.WeeklyMealPlan
	Catalog    *catalog.Catalog
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	history := s.app.GetHistory(r.Context()).Data
	data := pageData{
		Current:  history.CurrentWeek,
		Previous: history.PreviousWeeks,
		Catalog:  s.app.Catalog().Data,
	}
	if current := history.CurrentWeek; current != nil {
		data.Displayed = current.Displayed()
		data.Variations = variationLinks(current)
	}
	s.render(w, "layout.html", data)
}

// variationLinks lists the original plan followed by its variations. The
// list is empty when the week has no variations.
func variationLinks(current *planner.WeeklyMealPlan) []variationLink {
	if len(current.Variations) == 0 {
		return nil
	}
	displayedID := current.Displayed().ID
	links := []variationLink{{
		ID:       current.ID,
		Label:    "Original",
		Range:    weekRange(current.StartDate, current.EndDate),
		Selected: displayedID == current.ID,
	}}
	for i, v := range current.Variations {
		links = append(links, variationLink{
			ID:       v.ID,
			Label:    fmt.Sprintf("Var. %d", i+1),
			Range:    weekRange(v.StartDate, v.EndDate),
			Selected: displayedID == v.ID,
		})
	}
	return links
}

// --- API Handlers ---

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.app.GetHistory(r.Context()))
}

func (s *Server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.app.Catalog())
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.app.GenerateNewPlan(r.Context()))
}

func (s *Server) handleSelectVariation(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.app.SelectVariation(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.app.ClearHistory(r.Context()))
}

// --- Helpers ---

func writeResult[T any](w http.ResponseWriter, res app.Result[T]) {
	status := http.StatusOK
	switch {
	case res.Success:
	case res.IsNotFound():
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Render error", http.StatusInternalServerError)
	}
}

func weekRange(start, end string) string {
	formatted, err := planner.FormatWeekRange(start, end)
	if err != nil {
		return start + " - " + end
	}
	return formatted
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict needs key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
