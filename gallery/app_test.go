package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lewtec/galeria/internal/domain"
	"github.com/lewtec/galeria/internal/repository"
	"github.com/lewtec/galeria/internal/store"
	"github.com/lewtec/galeria/internal/view"
)

func newTestApp(t *testing.T, seed bool) (*GalleryApp, http.Handler) {
	t.Helper()
	config := DefaultConfig()
	config.Storage.Backend = BackendMemory
	config.Seed = &seed
	config.Meta.Description = "# Heritage\n\nOld *places*.\n\n<script>alert(1)</script>\n"

	app, closer, err := Open(context.Background(), config, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { closer.Close() })
	return app, app.GetHTTPHandler()
}

func TestNewGalleryApp(t *testing.T) {
	st := store.New(repository.NewMemorySlot())
	app, err := NewGalleryApp(DefaultConfig(), st, NewFlash(), zap.NewNop())
	require.NoError(t, err)

	rec := do(app.GetHTTPHandler(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), view.EmptyMessage)
}

func do(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func items(app *GalleryApp) []domain.Item {
	var ret []domain.Item
	app.WithStore(func(st *store.Store) {
		ret = st.Items()
	})
	return ret
}

func deleteRequest(id int64, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/items/"+strconv.FormatInt(id, 10)+"/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestIndex(t *testing.T) {
	_, handler := newTestApp(t, true)

	t.Run("shows the seeded gallery and tag bar", func(t *testing.T) {
		rec := do(handler, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()

		assert.Contains(t, body, "All (4)")
		assert.Contains(t, body, "architecture (2)")
		assert.Contains(t, body, "landmark (1)")
		assert.Contains(t, body, `src="data:image/svg&#43;xml,`)
		assert.Equal(t, 4, strings.Count(body, `class="gallery-item"`))
	})

	t.Run("filters by tag", func(t *testing.T) {
		rec := do(handler, httptest.NewRequest(http.MethodGet, "/?tag=temple", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, strings.Count(rec.Body.String(), `class="gallery-item"`))
	})

	t.Run("unknown tag shows the placeholder", func(t *testing.T) {
		rec := do(handler, httptest.NewRequest(http.MethodGet, "/?tag=nonexistent", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), view.EmptyMessage)
	})

	t.Run("localizes from accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?tag=nonexistent", nil)
		req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
		rec := do(handler, req)
		assert.Contains(t, rec.Body.String(), "Nenhuma imagem encontrada")
	})
}

func TestUpload(t *testing.T) {
	t.Run("adds an image and notifies", func(t *testing.T) {
		app, handler := newTestApp(t, false)

		rec := do(handler, uploadRequest(t, "image/png", []byte{1, 2, 3}, "Temple, ANCIENT "))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		got := items(app)
		require.Len(t, got, 1)
		assert.Equal(t, "data:image/png;base64,AQID", got[0].Data)
		assert.Equal(t, []string{"temple", "ancient"}, got[0].Tags)
		assert.Equal(t, []string{domain.NoticeAdded}, app.Flash.Drain())
	})

	t.Run("rejects non images without touching the gallery", func(t *testing.T) {
		app, handler := newTestApp(t, false)

		rec := do(handler, uploadRequest(t, "text/plain", []byte("hello"), "a"))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		assert.Empty(t, items(app))
		assert.Equal(t, []string{domain.NoticeNotImage}, app.Flash.Drain())
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		app, handler := newTestApp(t, false)

		do(handler, uploadRequest(t, "", nil, "a"))

		assert.Empty(t, items(app))
		assert.Equal(t, []string{domain.NoticeNoFile}, app.Flash.Drain())
	})

	t.Run("rejects files over the size limit", func(t *testing.T) {
		app, handler := newTestApp(t, false)
		app.Config.Upload.MaxBytes = 64

		do(handler, uploadRequest(t, "image/png", make([]byte, 1024), "a"))

		assert.Empty(t, items(app))
		assert.Equal(t, []string{domain.NoticeReadFailed}, app.Flash.Drain())
	})

	t.Run("notices are shown once on the next page", func(t *testing.T) {
		_, handler := newTestApp(t, false)
		do(handler, uploadRequest(t, "text/plain", []byte("x"), ""))

		first := do(handler, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
		second := do(handler, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

		assert.Contains(t, first, "Please select a valid image file")
		assert.NotContains(t, second, "Please select a valid image file")
	})
}

func TestDelete(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		app, handler := newTestApp(t, true)
		target := items(app)[0]

		rec := do(handler, deleteRequest(target.ID, url.Values{}))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		assert.Len(t, items(app), 4)
		assert.Equal(t, []string{domain.NoticeNotDeleted}, app.Flash.Drain())
	})

	t.Run("confirmation page shows the item", func(t *testing.T) {
		app, handler := newTestApp(t, true)
		target := items(app)[1]

		rec := do(handler, httptest.NewRequest(http.MethodGet, "/items/"+strconv.FormatInt(target.ID, 10)+"/delete", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Are you sure you want to delete this image?")
		assert.Contains(t, rec.Body.String(), `name="confirm" value="yes"`)
	})

	t.Run("removes confirmed items and keeps the filter", func(t *testing.T) {
		app, handler := newTestApp(t, true)
		target := items(app)[3]

		rec := do(handler, deleteRequest(target.ID, url.Values{"confirm": {"yes"}, "tag": {"landmark"}}))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?tag=landmark", rec.Header().Get("Location"))

		assert.Len(t, items(app), 3)
		page := do(handler, httptest.NewRequest(http.MethodGet, "/?tag=landmark", nil)).Body.String()
		assert.Contains(t, page, view.EmptyMessage)
		assert.NotContains(t, page, "landmark (")
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		app, handler := newTestApp(t, true)

		rec := do(handler, deleteRequest(42, url.Values{"confirm": {"yes"}}))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Len(t, items(app), 4)
		assert.Empty(t, app.Flash.Drain())
	})

	t.Run("malformed ids are not found", func(t *testing.T) {
		_, handler := newTestApp(t, true)
		req := httptest.NewRequest(http.MethodPost, "/items/abc/delete", nil)
		assert.Equal(t, http.StatusNotFound, do(handler, req).Code)
	})
}

func TestAPI(t *testing.T) {
	_, handler := newTestApp(t, true)

	t.Run("items", func(t *testing.T) {
		rec := do(handler, httptest.NewRequest(http.MethodGet, "/api/items?tag=historical", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var g view.Gallery
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&g))
		assert.Len(t, g.Cards, 2)
	})

	t.Run("tags", func(t *testing.T) {
		rec := do(handler, httptest.NewRequest(http.MethodGet, "/api/tags?tag=temple", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var bar view.TagBar
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&bar))
		count, ok := bar.Count("architecture")
		assert.True(t, ok)
		assert.Equal(t, 2, count)
		assert.Equal(t, "temple", bar.Active().Tag)
	})
}

func TestHelp(t *testing.T) {
	_, handler := newTestApp(t, false)

	rec := do(handler, httptest.NewRequest(http.MethodGet, "/help", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "<h1>Heritage</h1>")
	assert.Contains(t, body, "<em>places</em>")
	assert.NotContains(t, body, "<script>alert(1)</script>")
}

func TestFlash(t *testing.T) {
	f := NewFlash()
	f.Notify("a")
	f.Notify("a")
	f.Notify("b")

	assert.Equal(t, []string{"a", "b"}, f.Drain())
	assert.Empty(t, f.Drain())
}

func TestSaveFailureIsNotified(t *testing.T) {
	slot := repository.NewMemorySlot()
	slot.FailWrites(errors.New("quota exceeded"))
	flash := NewFlash()
	st := store.New(slot, store.WithNotifier(flash))
	app, err := NewGalleryApp(DefaultConfig(), st, flash, zap.NewNop())
	require.NoError(t, err)

	do(app.GetHTTPHandler(), uploadRequest(t, "image/png", []byte{1}, "a"))

	assert.Len(t, items(app), 1, "in-memory state is kept")
	assert.Equal(t, []string{domain.NoticeSaveFailed, domain.NoticeAdded}, app.Flash.Drain())
}
