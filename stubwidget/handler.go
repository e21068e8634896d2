package stubwidget

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/networkteam/pickupcheck/geo"
	"github.com/networkteam/pickupcheck/stubwidget/static"
)

// EntryPath is the route of the stub widget page, matching the real widget.
const EntryPath = "/v6/"

const maxSuggestions = 5

// Handler serves an imitation of the pickup point widget: the page, its script and a points API.
type Handler struct {
	opts handlerOptions
	mux  *http.ServeMux
}

// NewHandler creates a stub widget handler.
func NewHandler(opts ...HandlerOption) *Handler {
	o := defaultHandlerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Catalog == nil {
		o.Catalog = DefaultCatalog()
	}

	mux := http.NewServeMux()
	handler := &Handler{
		opts: o,
		mux:  mux,
	}

	mux.HandleFunc("GET /{$}", handler.root)
	mux.HandleFunc("GET /v6/{$}", handler.page)
	mux.HandleFunc("GET /v6/api/points", handler.getPoints)
	mux.HandleFunc("GET /v6/api/suggest", handler.getSuggestions)
	mux.Handle("GET /v6/static/", http.StripPrefix("/v6/static", http.FileServerFS(static.Assets)))

	return handler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, EntryPath, http.StatusFound)
}

// pageConfig is passed to the page script as the JSON script element widget-config.
type pageConfig struct {
	APIBase        string    `json:"apiBase"`
	FallbackText   string    `json:"fallbackText"`
	DefaultCenter  geo.Point `json:"defaultCenter"`
	ConsentDelayMs int64     `json:"consentDelayMs"`
}

type pageProps struct {
	Title  string
	Config pageConfig
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	templ.Handler(widgetPage(pageProps{
		Title: "Pickup point widget",
		Config: pageConfig{
			APIBase:        EntryPath + "api",
			FallbackText:   h.opts.FallbackText,
			DefaultCenter:  h.opts.DefaultCenter,
			ConsentDelayMs: h.opts.ConsentDelay.Milliseconds(),
		},
	})).ServeHTTP(w, r)
}

func (h *Handler) getPoints(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if h.opts.LoadDelay > 0 {
		select {
		case <-time.After(h.opts.LoadDelay):
		case <-r.Context().Done():
			return
		}
	}

	result := h.opts.Catalog.Search(q)
	h.opts.Logger.DebugContext(r.Context(), "Served points",
		slog.String("center", q.Center.String()),
		slog.String("text", q.Text),
		slog.Bool("zbox", q.ZBoxOnly),
		slog.Bool("wheelchair", q.WheelchairOnly),
		slog.Int("points", len(result.Points)),
		slog.Int("clusters", len(result.Clusters)),
	)

	writeJSON(w, result)
}

func (h *Handler) getSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.opts.Catalog.Suggest(r.URL.Query().Get("q"), maxSuggestions))
}

func (h *Handler) parseQuery(r *http.Request) (Query, error) {
	values := r.URL.Query()

	q := Query{
		Center:         h.opts.DefaultCenter,
		RadiusKm:       h.opts.RadiusKm,
		Text:           values.Get("q"),
		ZBoxOnly:       values.Get("zbox") == "1",
		WheelchairOnly: values.Get("wheelchair") == "1",
	}

	if values.Has("lat") || values.Has("lon") {
		lat, err := strconv.ParseFloat(values.Get("lat"), 64)
		if err != nil {
			return q, fmt.Errorf("invalid lat: %w", err)
		}
		lon, err := strconv.ParseFloat(values.Get("lon"), 64)
		if err != nil {
			return q, fmt.Errorf("invalid lon: %w", err)
		}
		q.Center = geo.Point{Latitude: lat, Longitude: lon}
		if err := q.Center.Validate(); err != nil {
			return q, err
		}
	}

	return q, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
