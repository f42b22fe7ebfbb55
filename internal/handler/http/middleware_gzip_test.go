// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGZip(t *testing.T) {
	const body = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08  public.db\n"

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "77")
		_, _ = io.WriteString(w, body)
	})

	tests := []struct {
		name           string
		acceptEncoding string
		rangeHeader    string
		wantGzipped    bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", wantGzipped: true},
		{name: "gzip among several", acceptEncoding: "deflate, gzip;q=1.0, br", wantGzipped: true},
		{name: "client does not accept gzip", acceptEncoding: ""},
		{name: "range request", acceptEncoding: "gzip", rangeHeader: "bytes=0-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.rangeHeader != "" {
				req.Header.Set("Range", tt.rangeHeader)
			}
			rec := httptest.NewRecorder()

			withGZip(okHandler).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			if !tt.wantGzipped {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, body, rec.Body.String())
				return
			}

			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			assert.Empty(t, rec.Header().Get("Content-Length"))
			assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")

			zr, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			got, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, body, string(got))
		})
	}
}

func TestGZip_BodilessStatus(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_PooledWritersDoNotLeak(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.URL.Query().Get("v"))
	}))

	for _, v := range []string{"first", "second", "third"} {
		req := httptest.NewRequest(http.MethodGet, "/?v="+v, nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		got, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, v, strings.TrimSpace(string(got)))
	}
}
