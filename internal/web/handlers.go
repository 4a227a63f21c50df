package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ameara/reverie/internal/config"
	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
	"github.com/ameara/reverie/internal/session"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	controller *session.Controller
	cfg        *config.Config
	renderer   *Renderer
}

// HandleList handles GET /entries — list recent entries, newest first.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	kind := entry.Kind(r.URL.Query().Get("kind"))
	limit := parseIntParam(r, "limit", 0)

	result, err := h.controller.ListRecent(kind, limit)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	items := make([]entry.Summary, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToSummary()
	}

	h.renderer.renderPage(w, "list", ListPageData{
		PageData: PageData{
			Title:   "Entries",
			Version: h.renderer.version,
			Nav:     "entries",
		},
		Items: items,
		Kind:  kind,
		Total: result.Total,
	})
}

// HandleDetail handles GET /entries/{id} — view a single entry.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("entry ID is required"))
		return
	}

	e, err := h.controller.FetchEntry(id)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	data := DetailPageData{
		PageData: PageData{
			Title:   kindLabel(e.Kind),
			Version: h.renderer.version,
			Nav:     "entries",
		},
		Entry: e,
	}
	if e.Kind == entry.KindJournal {
		data.RenderedHTML = renderMarkdown(e.Content)
	}
	if e.Kind == entry.KindVoice {
		data.Duration = entry.FormatDuration(e.DurationSeconds)
	}

	h.renderer.renderPage(w, "detail", data)
}

// HandleDelete handles DELETE /entries/{id}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("entry ID is required"))
		return
	}

	result, err := h.controller.DeleteEntry(id)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, map[string]any{
			"removed": result.Removed,
			"id":      result.ID,
		})
		return
	}

	http.Redirect(w, r, "/entries", http.StatusFound)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
