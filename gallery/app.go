package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lewtec/galeria/internal/domain"
	"github.com/lewtec/galeria/internal/store"
	"github.com/lewtec/galeria/internal/view"
)

// GalleryApp serves the gallery over HTTP. Every access to the store goes
// through mu, since the store itself is single threaded.
type GalleryApp struct {
	Config *Config
	Logger *zap.Logger
	Flash  *Flash

	mu    sync.Mutex
	store *store.Store

	translator *Translator
	templates  *TemplateManager
}

// NewGalleryApp wires an app around an already loaded store. The store
// should report its failures to flash.
func NewGalleryApp(config *Config, st *store.Store, flash *Flash, logger *zap.Logger) (*GalleryApp, error) {
	translator, err := NewTranslator()
	if err != nil {
		return nil, err
	}
	templates, err := newTemplates()
	if err != nil {
		return nil, err
	}
	return &GalleryApp{
		Config:     config,
		Logger:     logger,
		Flash:      flash,
		store:      st,
		translator: translator,
		templates:  templates,
	}, nil
}

// Open opens the configured slot, loads (or seeds) the gallery and builds
// the app. The closer releases the storage backend.
func Open(ctx context.Context, config *Config, logger *zap.Logger) (*GalleryApp, io.Closer, error) {
	slot, closer, err := OpenSlot(ctx, config.Storage, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("while opening storage: %w", err)
	}
	flash := NewFlash()
	st := store.New(slot,
		store.WithLogger(logger.Named("store")),
		store.WithNotifier(flash),
	)
	if config.SeedEnabled() {
		st.LoadOrSeed(ctx)
	} else {
		st.Load(ctx)
	}
	app, err := NewGalleryApp(config, st, flash, logger)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return app, closer, nil
}

// WithStore runs fn while holding the store lock
func (a *GalleryApp) WithStore(fn func(st *store.Store)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a.store)
}

func (a *GalleryApp) snapshot() ([]domain.Item, *domain.TagIndex) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Items(), a.store.Tags()
}

func (a *GalleryApp) GetHTTPHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(HTTPLogger(a.Logger.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(a.translator.Middleware)

	r.Get("/", a.indexHandler)
	r.Get("/help", a.helpHandler)
	r.Post("/upload", a.uploadHandler)
	r.Get("/items/{id}/delete", a.confirmDeleteHandler)
	r.Post("/items/{id}/delete", a.deleteHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/items", a.apiItemsHandler)
		r.Get("/tags", a.apiTagsHandler)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/favicon.svg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		io.WriteString(w, GetFavicon())
	})
	return r
}

func (a *GalleryApp) render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	data["Notices"] = a.Flash.Drain()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.RenderPage(r.Context(), w, page, data); err != nil {
		a.Logger.Error("while rendering page", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// redirectHome goes back to the gallery keeping the active filter
func redirectHome(w http.ResponseWriter, r *http.Request, tag string) {
	target := "/"
	if tag != "" {
		target += "?" + url.Values{"tag": {tag}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (a *GalleryApp) indexHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.FilterFromQuery(r.URL.Query().Get("tag"))
	items, tags := a.snapshot()
	a.render(w, r, "index.html", map[string]any{
		"Filter":  filter.Tag(),
		"Gallery": view.Render(items, filter),
		"TagBar":  view.RenderTagBar(items, tags, filter),
	})
}

func (a *GalleryApp) helpHandler(w http.ResponseWriter, r *http.Request) {
	description := a.Config.Meta.Description
	if description == "" {
		description = "# " + a.Config.Meta.Title + "\n\n(No description provided)"
	}
	a.render(w, r, "help.html", map[string]any{"Description": description})
}

func (a *GalleryApp) uploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.Upload.MaxBytes)
	data, err := ReadUpload(r, a.Config.Upload.MaxBytes)
	if err != nil {
		a.Logger.Info("upload rejected", zap.Error(err))
		a.Flash.Notify(uploadNotice(err))
		redirectHome(w, r, "")
		return
	}
	var item domain.Item
	a.WithStore(func(st *store.Store) {
		item = st.Add(r.Context(), data, r.FormValue("tags"))
	})
	a.Logger.Info("image uploaded", zap.Int64("id", item.ID), zap.Strings("tags", item.Tags))
	a.Flash.Notify(domain.NoticeAdded)
	redirectHome(w, r, "")
}

func itemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (a *GalleryApp) confirmDeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	tag := r.URL.Query().Get("tag")
	var item domain.Item
	var found bool
	a.WithStore(func(st *store.Store) {
		item, found = st.Get(id)
	})
	if !found {
		redirectHome(w, r, tag)
		return
	}
	a.render(w, r, "confirm.html", map[string]any{"Item": item, "Filter": tag})
}

func (a *GalleryApp) deleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	tag := r.FormValue("tag")
	if r.FormValue("confirm") != "yes" {
		a.Flash.Notify(domain.NoticeNotDeleted)
		redirectHome(w, r, tag)
		return
	}
	var removed bool
	a.WithStore(func(st *store.Store) {
		removed = st.Remove(r.Context(), id)
	})
	if removed {
		a.Logger.Info("image deleted", zap.Int64("id", id))
		a.Flash.Notify(domain.NoticeDeleted)
	}
	redirectHome(w, r, tag)
}

func writeJSON(w http.ResponseWriter, value any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(value)
}

func (a *GalleryApp) apiItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, _ := a.snapshot()
	if err := writeJSON(w, view.Render(items, domain.FilterFromQuery(r.URL.Query().Get("tag")))); err != nil {
		a.Logger.Warn("while writing items", zap.Error(err))
	}
}

func (a *GalleryApp) apiTagsHandler(w http.ResponseWriter, r *http.Request) {
	items, tags := a.snapshot()
	if err := writeJSON(w, view.RenderTagBar(items, tags, domain.FilterFromQuery(r.URL.Query().Get("tag")))); err != nil {
		a.Logger.Warn("while writing tags", zap.Error(err))
	}
}
