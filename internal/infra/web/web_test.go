package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSuggestionClient_Suggest(t *testing.T) {
	srv := serve(t, http.StatusOK, "application/json",
		`{"userId": 1, "id": 1, "title": "delectus aut autem", "completed": false}`)

	title, err := NewSuggestionClient(srv.Client(), srv.URL).Suggest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "delectus aut autem", title)
}

func TestSuggestionClient_NonOK(t *testing.T) {
	srv := serve(t, http.StatusNotFound, "application/json", `{}`)

	_, err := NewSuggestionClient(srv.Client(), srv.URL).Suggest(context.Background())
	assert.ErrorIs(t, err, ErrNoSuggestion)
}

func TestSuggestionClient_EmptyTitle(t *testing.T) {
	srv := serve(t, http.StatusOK, "application/json", `{"title": "  "}`)

	_, err := NewSuggestionClient(srv.Client(), srv.URL).Suggest(context.Background())
	assert.ErrorIs(t, err, ErrNoSuggestion)
}

func TestSuggestionClient_InvalidJSON(t *testing.T) {
	srv := serve(t, http.StatusOK, "application/json", `not json`)

	_, err := NewSuggestionClient(srv.Client(), srv.URL).Suggest(context.Background())
	assert.Error(t, err)
}

func TestSuggestionClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(50 * time.Millisecond)
	_, err := NewSuggestionClient(client, srv.URL).Suggest(context.Background())
	assert.Error(t, err)
}

func TestScraper_Scrape(t *testing.T) {
	srv := serve(t, http.StatusOK, "text/html", `<!doctype html>
<html><body>
  <h1>Chores</h1>
  <ul>
    <li>  Wash dishes </li>
    <li><a href="#">Take out</a> <b>trash</b></li>
  </ul>
  <ol><li>Call mom</li></ol>
</body></html>`)

	items, err := NewScraper(srv.Client()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wash dishes", "Take outtrash", "Call mom"}, items)
}

func TestScraper_NoItems(t *testing.T) {
	srv := serve(t, http.StatusOK, "text/html", `<html><body><p>nothing here</p></body></html>`)

	items, err := NewScraper(srv.Client()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestScraper_ServerError(t *testing.T) {
	srv := serve(t, http.StatusInternalServerError, "text/html", `<li>ignored</li>`)

	_, err := NewScraper(srv.Client()).Scrape(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestScraper_InvalidURL(t *testing.T) {
	_, err := NewScraper(nil).Scrape(context.Background(), "://bad")
	assert.Error(t, err)
}

func TestListItems_Nested(t *testing.T) {
	items, err := ListItems(strings.NewReader(`<ul><li>Parent<ul><li>Child</li></ul></li></ul>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"ParentChild", "Child"}, items)
}
