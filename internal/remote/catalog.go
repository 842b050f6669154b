package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"karaku/backend/internal/config"
	"karaku/backend/internal/model"
)

const catalogService = "character catalog"

// CharacterCatalog reads the public Rick and Morty character catalog.
type CharacterCatalog struct {
	http *resty.Client
}

func NewCharacterCatalog(client *http.Client, baseURL string) *CharacterCatalog {
	return &CharacterCatalog{
		http: resty.NewWithClient(client).
			SetBaseURL(baseURL).
			SetHeader("User-Agent", config.UserAgent).
			SetHeader("Accept", "application/json"),
	}
}

// FetchCharacters issues one GET for the first catalog page. It never retries.
func (c *CharacterCatalog) FetchCharacters(ctx context.Context) (model.CharacterPage, error) {
	resp, err := c.http.R().SetContext(ctx).Get("character")
	if err != nil {
		return model.CharacterPage{}, networkError("fetch characters", err)
	}
	if !resp.IsSuccess() {
		return model.CharacterPage{}, &StatusError{Service: catalogService, StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return decodeCharacterPage(resp.Body())
}

// Every field is optional on the wire; absent values get model defaults.
type pagePayload struct {
	Info    *infoPayload       `json:"info"`
	Results []characterPayload `json:"results"`
}

type infoPayload struct {
	Count int     `json:"count"`
	Pages int     `json:"pages"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

type characterPayload struct {
	ID      *int64         `json:"id"`
	Name    *string        `json:"name"`
	Species *string        `json:"species"`
	Gender  *string        `json:"gender"`
	Origin  *originPayload `json:"origin"`
	Image   *string        `json:"image"`
}

type originPayload struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

func decodeCharacterPage(body []byte) (model.CharacterPage, error) {
	var payload pagePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.CharacterPage{}, decodeError("decode characters", err)
	}

	page := model.CharacterPage{Results: make([]model.Character, 0, len(payload.Results))}
	if payload.Info != nil {
		page.Info = model.PageInfo{
			Count: payload.Info.Count,
			Pages: payload.Info.Pages,
			Next:  payload.Info.Next,
			Prev:  payload.Info.Prev,
		}
	}
	for _, p := range payload.Results {
		page.Results = append(page.Results, p.toCharacter())
	}
	return page, nil
}

func (p characterPayload) toCharacter() model.Character {
	c := model.Character{
		ID:         model.MissingID,
		Name:       orDefault(p.Name, model.UnknownValue),
		Species:    orDefault(p.Species, model.UnknownValue),
		Gender:     orDefault(p.Gender, model.UnknownValue),
		OriginName: model.UnknownValue,
		ImageURL:   orDefault(p.Image, ""),
	}
	if p.ID != nil {
		c.ID = *p.ID
	}
	if p.Origin != nil {
		c.OriginName = orDefault(p.Origin.Name, model.UnknownValue)
	}
	return c
}

func orDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
