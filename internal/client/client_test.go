package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = io.WriteString(w, `{"status":"OK"}`)
	}))
	defer srv.Close()

	assert.True(t, New(srv.URL+"/api/").Healthy(context.Background()))
}

func TestHealthy_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	url := srv.URL
	assert.False(t, New(url+"/api").Healthy(context.Background()))

	srv.Close()
	assert.False(t, New(url+"/api").Healthy(context.Background()))
}

func TestThemePalette(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate-theme-palette", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ocean", body["theme"])

		_, _ = io.WriteString(w, `{"success":false,"colors":["#000000","#111111","#222222","#333333","#444444"],"theme":"ocean","error":"AI generation failed, showing random colors","fallback":true}`)
	}))
	defer srv.Close()

	res, err := New(srv.URL + "/api").ThemePalette(context.Background(), "ocean")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.False(t, res.Success)
	assert.Equal(t, "#444444", res.Colors[4])
}

func TestThemePalette_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":"Rate limit exceeded. Please try again later."}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL + "/api").ThemePalette(context.Background(), "ocean")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTooManyRequests, se.Code)
	assert.Equal(t, "Rate limit exceeded. Please try again later.", se.Message)
	assert.True(t, IsRateLimited(err))
}

func TestThemePalette_InvalidColors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"colors":["#000000","","","",""],"theme":"x"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL + "/api").ThemePalette(context.Background(), "x")
	assert.Error(t, err)
}

func TestThemePalette_WrongColorCount(t *testing.T) {
	for _, colors := range []string{
		`["#000000","#111111","#222222","#333333","#444444","#555555"]`,
		`["#000000","#111111","#222222","#333333"]`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"success":true,"colors":`+colors+`,"theme":"x"}`)
		}))

		_, err := New(srv.URL + "/api").ThemePalette(context.Background(), "x")
		assert.ErrorContains(t, err, "invalid colors", colors)
		srv.Close()
	}
}

func TestThemePalette_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	_, err := New(srv.URL+"/api", WithTimeout(50*time.Millisecond)).ThemePalette(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, IsRateLimited(err))
}

func TestCopy(t *testing.T) {
	if clipboard.Unsupported {
		assert.False(t, Copy("#FFFFFF"))
		return
	}

	orig := writeAll
	t.Cleanup(func() { writeAll = orig })

	var got string
	writeAll = func(s string) error { got = s; return nil }
	assert.True(t, Copy("#ABCDEF"))
	assert.Equal(t, "#ABCDEF", got)

	writeAll = func(string) error { return errors.New("denied") }
	assert.False(t, Copy("#ABCDEF"))
}
