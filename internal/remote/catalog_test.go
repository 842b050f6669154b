package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"karaku/backend/internal/model"
	"karaku/backend/internal/remote"

	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, status int, body string) *remote.CharacterCatalog {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/character", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return remote.NewCharacterCatalog(server.Client(), server.URL+"/api/")
}

func TestFetchCharacters_FullFields(t *testing.T) {
	catalog := newCatalog(t, http.StatusOK, `{
		"info": {"count": 826, "pages": 42, "next": "https://rickandmortyapi.com/api/character?page=2", "prev": null},
		"results": [{"id":1,"name":"Rick","species":"Human","gender":"Male","origin":{"name":"Earth","url":""},"image":"u1"}]
	}`)

	page, err := catalog.FetchCharacters(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Character{{
		ID: 1, Name: "Rick", Species: "Human", Gender: "Male", OriginName: "Earth", ImageURL: "u1",
	}}, page.Results)
	require.Equal(t, 826, page.Info.Count)
	require.NotNil(t, page.Info.Next)
	require.Nil(t, page.Info.Prev)
}

func TestFetchCharacters_MissingFieldsGetDefaults(t *testing.T) {
	catalog := newCatalog(t, http.StatusOK, `{"results":[{"id":2,"species":"Human","gender":null}]}`)

	page, err := catalog.FetchCharacters(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Results, 1)

	c := page.Results[0]
	require.Equal(t, int64(2), c.ID)
	require.Equal(t, "Unknown", c.Name)
	require.Equal(t, "Human", c.Species)
	require.Equal(t, "Unknown", c.Gender)
	require.Equal(t, "Unknown", c.OriginName)
	require.Equal(t, "", c.ImageURL)
}

func TestFetchCharacters_MissingIDAndOriginName(t *testing.T) {
	catalog := newCatalog(t, http.StatusOK, `{"results":[{"name":"Mr. Meeseeks","origin":{"url":"x"}}]}`)

	page, err := catalog.FetchCharacters(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.MissingID, page.Results[0].ID)
	require.Equal(t, "Unknown", page.Results[0].OriginName)
}

func TestFetchCharacters_NoResults(t *testing.T) {
	catalog := newCatalog(t, http.StatusOK, `{"info":null}`)

	page, err := catalog.FetchCharacters(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page.Results)
	require.Empty(t, page.Results)
}

func TestFetchCharacters_DecodeFailure(t *testing.T) {
	catalog := newCatalog(t, http.StatusOK, `{"results": [`)

	_, err := catalog.FetchCharacters(context.Background())
	require.ErrorIs(t, err, remote.ErrDecode)
	require.NotErrorIs(t, err, remote.ErrNetwork)
}

func TestFetchCharacters_StatusFailure(t *testing.T) {
	catalog := newCatalog(t, http.StatusServiceUnavailable, `down`)

	_, err := catalog.FetchCharacters(context.Background())
	require.ErrorIs(t, err, remote.ErrNetwork)

	var statusErr *remote.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestFetchCharacters_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	catalog := remote.NewCharacterCatalog(http.DefaultClient, url)
	_, err := catalog.FetchCharacters(context.Background())
	require.ErrorIs(t, err, remote.ErrNetwork)
}
