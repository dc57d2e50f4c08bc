package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navikit/coordpad/internal/config"
)

func newTestContext() *ServerContext {
	return NewServerContext(config.Default())
}

func TestHandleFormats(t *testing.T) {
	s := newTestContext()

	rec := httptest.NewRecorder()
	s.HandleFormats(rec, httptest.NewRequest(http.MethodGet, "/api/formats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Equal(t, s.Registry.Names(), names)
}

func TestHandleConvert(t *testing.T) {
	s := newTestContext()

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(body))
		s.HandleConvert(rec, req)
		return rec
	}

	t.Run("detects decimal degrees", func(t *testing.T) {
		rec := post(`{"text": "-27.1234567, 109.2345678"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ConvertResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Decimal Degrees", resp.Format)
		assert.Equal(t, -27.1234567, resp.Coordinate.Longitude)
		assert.Len(t, resp.Renderings, s.Registry.Len())
		assert.Equal(t, "Decimal Degrees", resp.Renderings[0].Name)
		assert.Equal(t, "-27.1234567, 109.2345678", resp.Renderings[0].Text)
	})

	t.Run("map links rendered from templates", func(t *testing.T) {
		rec := post(`{"text": "0.5, -0.5"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ConvertResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.MapLinks)
		assert.Contains(t, resp.MapLinks[0].URL, "mlat=-0.5000000")
		assert.Contains(t, resp.MapLinks[0].URL, "mlon=0.5000000")
	})

	t.Run("unrecognized input", func(t *testing.T) {
		rec := post(`{"text": "hello world"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("empty input", func(t *testing.T) {
		rec := post(`{"text": "  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := post(`{"text": `)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.HandleConvert(rec, httptest.NewRequest(http.MethodGet, "/api/convert", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandleIndex(t *testing.T) {
	s := newTestContext()

	t.Run("serves html with etag", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.NotEmpty(t, rec.Header().Get("ETag"))
	})

	t.Run("not modified on matching etag", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		etag := rec.Header().Get("ETag")

		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("If-None-Match", etag)
		s.HandleIndex(rec, req)

		assert.Equal(t, http.StatusNotModified, rec.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
