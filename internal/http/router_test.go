package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"karaku/backend/internal/handler"
	transport "karaku/backend/internal/http"
	"karaku/backend/internal/remote"
	"karaku/backend/internal/repository"
	"karaku/backend/internal/repository/testutil"
	"karaku/backend/internal/service"
	"karaku/backend/internal/task"
)

const catalogBody = `{
	"info": {"count": 2, "pages": 1, "next": null, "prev": null},
	"results": [
		{"id": 1, "name": "Rick Sanchez", "species": "Human", "gender": "Male", "origin": {"name": "Earth (C-137)"}, "image": "https://example.test/1.jpeg"},
		{"id": 2, "name": "Morty Smith", "species": "Human", "gender": "Male", "origin": {"name": "unknown"}, "image": "https://example.test/2.jpeg"}
	]
}`

type stubTranslator struct {
	err error
}

func (s stubTranslator) Translate(ctx context.Context, text, to string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "[" + to + "] " + text, nil
}

type testApp struct {
	router      *echo.Echo
	coordinator *service.Coordinator
	catalogDown *atomic.Bool
	favorites   repository.CharacterRepository
}

func newTestApp(t *testing.T, translator remote.Translator) *testApp {
	t.Helper()

	down := &atomic.Bool{}
	catalogServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if down.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(catalogBody))
	}))
	t.Cleanup(catalogServer.Close)

	conn := testutil.NewTestDB(t)
	favorites := repository.NewCharacterRepository(conn)
	history := repository.NewTranslationRepository(conn)

	pool := task.NewPool(2)
	t.Cleanup(pool.Wait)

	catalog := remote.NewCharacterCatalog(catalogServer.Client(), catalogServer.URL)
	characters := service.NewCharacterService(favorites, catalog, pool)
	translations := service.NewTranslationService(history, translator)
	coord := service.NewCoordinator(characters, translations)
	require.NoError(t, coord.Activate(context.Background()))

	router := transport.NewRouter(
		handler.NewCharacterHandler(characters),
		handler.NewTranslationHandler(translations),
	)
	return &testApp{router: router, coordinator: coord, catalogDown: down, favorites: favorites}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type character struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Origin string `json:"origin"`
}

type characterList struct {
	Version    uint64      `json:"version"`
	Characters []character `json:"characters"`
}

type translation struct {
	ID             int64  `json:"id"`
	TextSource     string `json:"textSource"`
	TextTranslated string `json:"textTranslated"`
	Language       string `json:"language"`
	Country        string `json:"country"`
	Category       string `json:"category"`
}

func TestCharacters_List(t *testing.T) {
	app := newTestApp(t, stubTranslator{})

	rec := app.do(t, http.MethodGet, "/api/characters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	list := decode[characterList](t, rec)
	require.Equal(t, uint64(1), list.Version)
	require.Len(t, list.Characters, 2)
	require.Equal(t, "Rick Sanchez", list.Characters[0].Name)
	require.Equal(t, "Earth (C-137)", list.Characters[0].Origin)
}

func TestCharacters_FavoriteIsAcceptedAndListStaysStale(t *testing.T) {
	app := newTestApp(t, stubTranslator{})

	rec := app.do(t, http.MethodPost, "/api/characters/2/favorite", "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Eventually(t, func() bool {
		favorites, err := app.favorites.ListAll(context.Background())
		return err == nil && len(favorites) == 1
	}, time.Second, 5*time.Millisecond)

	rec = app.do(t, http.MethodGet, "/api/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	favorites := decode[[]character](t, rec)
	require.Equal(t, int64(2), favorites[0].ID)

	list := decode[characterList](t, app.do(t, http.MethodGet, "/api/characters", ""))
	require.Equal(t, uint64(1), list.Version)

	rec = app.do(t, http.MethodDelete, "/api/characters/2/favorite", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Eventually(t, func() bool {
		favorites, err := app.favorites.ListAll(context.Background())
		return err == nil && len(favorites) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestCharacters_FavoriteErrors(t *testing.T) {
	app := newTestApp(t, stubTranslator{})

	rec := app.do(t, http.MethodPost, "/api/characters/99/favorite", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "resource not found", decode[map[string]string](t, rec)["error"])

	rec = app.do(t, http.MethodPost, "/api/characters/abc/favorite", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid character id", decode[map[string]string](t, rec)["error"])
	require.Equal(t, http.StatusBadRequest, app.do(t, http.MethodDelete, "/api/characters/abc/favorite", "").Code)
}

func TestCharacters_RefreshFailureKeepsList(t *testing.T) {
	app := newTestApp(t, stubTranslator{})
	app.catalogDown.Store(true)

	rec := app.do(t, http.MethodPost, "/api/characters/refresh", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	list := decode[characterList](t, app.do(t, http.MethodGet, "/api/characters", ""))
	require.Len(t, list.Characters, 2)

	app.catalogDown.Store(false)
	rec = app.do(t, http.MethodPost, "/api/characters/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, uint64(2), decode[characterList](t, rec).Version)
}

func TestTranslate(t *testing.T) {
	app := newTestApp(t, stubTranslator{})

	rec := app.do(t, http.MethodPost, "/api/translate", `{"text":"hola","to":"fr"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[fr] hola", decode[map[string]string](t, rec)["text"])

	require.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/api/translate", `{"text":""}`).Code)
}

func TestTranslate_UpstreamErrors(t *testing.T) {
	cases := map[string]error{
		"network": &remote.StatusError{Service: "translator", StatusCode: 401},
		"decode":  remote.ErrDecode,
		"empty":   remote.ErrEmptyTranslation,
	}
	for name, upstream := range cases {
		t.Run(name, func(t *testing.T) {
			app := newTestApp(t, stubTranslator{err: upstream})
			rec := app.do(t, http.MethodPost, "/api/translate", `{"text":"hola"}`)
			require.Equal(t, http.StatusBadGateway, rec.Code)
		})
	}
}

func TestTranslations_Lifecycle(t *testing.T) {
	app := newTestApp(t, stubTranslator{})

	rec := app.do(t, http.MethodPost, "/api/translations", `{"textSource":"","textTranslated":"hello"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/translations", `{"textSource":"hola","textTranslated":"hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	saved := decode[[]translation](t, rec)
	require.Len(t, saved, 1)
	require.Equal(t, translation{
		ID: saved[0].ID, TextSource: "hola", TextTranslated: "hello",
		Language: "en", Country: "MX", Category: "Restaurants",
	}, saved[0])

	id := saved[0].ID
	path := "/api/translations/" + itoa(id)

	rec = app.do(t, http.MethodPut, path+"/category", `{"category":"School"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "School", decode[[]translation](t, rec)[0].Category)

	rec = app.do(t, http.MethodPut, path, `{"textSource":"hola","textTranslated":"hi","category":"Friends"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[[]translation](t, rec)[0]
	require.Equal(t, "hi", updated.TextTranslated)
	require.Equal(t, "Friends", updated.Category)

	listed := decode[[]translation](t, app.do(t, http.MethodGet, "/api/translations", ""))
	require.Equal(t, []translation{updated}, listed)

	require.Equal(t, http.StatusNoContent, app.do(t, http.MethodDelete, path, "").Code)
	require.Empty(t, decode[[]translation](t, app.do(t, http.MethodGet, "/api/translations", "")))

	require.Equal(t, http.StatusNotFound, app.do(t, http.MethodPut, path+"/category", `{"category":"Work"}`).Code)
	require.Equal(t, http.StatusBadRequest, app.do(t, http.MethodDelete, "/api/translations/x", "").Code)
}

func TestCategories(t *testing.T) {
	app := newTestApp(t, stubTranslator{})

	rec := app.do(t, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Categories []string `json:"categories"`
		Default    string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, []string{"Restaurant", "School", "Work", "Church", "Friends"}, body.Categories)
	require.Equal(t, "Restaurants", body.Default)
}

func TestTranslations_Stream(t *testing.T) {
	app := newTestApp(t, stubTranslator{})
	server := httptest.NewServer(app.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/translations/stream", nil)
	require.NoError(t, err)
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get(echo.HeaderContentType))

	events := bufio.NewReader(resp.Body)
	require.Empty(t, readEvent(t, events))

	saveResp, err := server.Client().Post(server.URL+"/api/translations", echo.MIMEApplicationJSON,
		strings.NewReader(`{"textSource":"gracias","textTranslated":"thanks"}`))
	require.NoError(t, err)
	saveResp.Body.Close()
	require.Equal(t, http.StatusCreated, saveResp.StatusCode)

	list := readEvent(t, events)
	require.Len(t, list, 1)
	require.Equal(t, "thanks", list[0].TextTranslated)
}

func readEvent(t *testing.T, r *bufio.Reader) []translation {
	t.Helper()
	var data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" && data != "" {
			break
		}
		if strings.HasPrefix(line, "event: ") {
			require.Equal(t, "event: translations", line)
		}
		if rest, ok := strings.CutPrefix(line, "data: "); ok {
			data = rest
		}
	}
	var list []translation
	require.NoError(t, json.Unmarshal([]byte(data), &list))
	return list
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
