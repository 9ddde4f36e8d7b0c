package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Файл unit-тестов клиента персонажей.
//
// Покрываем:
//  - передачу номера страницы query-параметром и разбор конверта;
//  - нормализацию page < 1 к первой странице;
//  - ошибку на неуспешный HTTP-статус;
//  - валидацию пустого базового URL.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const charactersPage1 = `{
  "info": {"count": 2, "pages": 1, "next": null, "prev": null},
  "results": [
    {"id": 1, "name": "Rick Sanchez", "status": "Alive", "species": "Human",
     "gender": "Male", "origin": {"name": "Earth (C-137)", "url": ""},
     "location": {"name": "Citadel of Ricks", "url": ""},
     "image": "", "episode": [], "url": "", "created": "2017-11-04T18:48:46.250Z"},
    {"id": 2, "name": "Morty Smith", "status": "Alive", "species": "Human",
     "gender": "Male", "origin": {"name": "unknown", "url": ""},
     "location": {"name": "Citadel of Ricks", "url": ""},
     "image": "", "episode": [], "url": "", "created": "2017-11-04T18:50:21.651Z"}
  ]
}`

func TestCharactersClient_Page(t *testing.T) {
	t.Parallel()

	var gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(charactersPage1))
	}))
	defer srv.Close()

	client, err := NewCharactersClient(srv.URL, time.Second, testLogger())
	require.NoError(t, err)

	page, err := client.Page(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, "1", gotPage)
	require.Equal(t, 2, page.Info.Count)
	require.False(t, page.Info.HasNext())
	require.Len(t, page.Results, 2)
	require.Equal(t, "Rick Sanchez", page.Results[0].Name)
	require.Equal(t, "Morty Smith", page.Results[1].Name)
}

func TestCharactersClient_NormalizesPageBelowOne(t *testing.T) {
	t.Parallel()

	var gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		_, _ = w.Write([]byte(`{"info":{"count":0,"pages":0,"next":null,"prev":null},"results":[]}`))
	}))
	defer srv.Close()

	client, err := NewCharactersClient(srv.URL, time.Second, testLogger())
	require.NoError(t, err)

	_, err = client.Page(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, "1", gotPage)
}

func TestCharactersClient_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewCharactersClient(srv.URL, time.Second, testLogger())
	require.NoError(t, err)

	_, err = client.Page(context.Background(), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 500")
}

func TestNewCharactersClient_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := NewCharactersClient("", time.Second, testLogger())
	require.Error(t, err)
}
