package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"karaku/backend/internal/model"
	"karaku/backend/internal/service"
)

type CharacterHandler struct {
	service service.CharacterService
}

type characterResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Gender  string `json:"gender"`
	Origin  string `json:"origin"`
	Image   string `json:"image"`
}

type characterListResponse struct {
	Version    uint64              `json:"version"`
	Characters []characterResponse `json:"characters"`
}

func NewCharacterHandler(service service.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: service}
}

func (h *CharacterHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/characters", h.List)
	g.POST("/characters/refresh", h.Refresh)
	g.POST("/characters/:id/favorite", h.Favorite)
	g.DELETE("/characters/:id/favorite", h.Unfavorite)
	g.GET("/favorites", h.Favorites)
}

// List returns the character list as of the last catalog fetch.
// @Summary List characters
// @Description Returns the last fetched catalog page. Favoriting does not change this list.
// @Tags characters
// @Produce json
// @Success 200 {object} characterListResponse
// @Router /characters [get]
func (h *CharacterHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.listResponse())
}

// Refresh fetches the catalog again.
// @Summary Refresh characters
// @Tags characters
// @Produce json
// @Success 200 {object} characterListResponse
// @Failure 502 {object} errorResponse
// @Router /characters/refresh [post]
func (h *CharacterHandler) Refresh(c echo.Context) error {
	if err := h.service.Load(c.Request().Context()); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, h.listResponse())
}

// Favorite stores a character from the current list as a favorite.
// @Summary Favorite a character
// @Description The write happens in the background; the response does not wait for it.
// @Tags characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 202 {object} acceptedResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /characters/{id}/favorite [post]
func (h *CharacterHandler) Favorite(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid character id")
	}
	tk := h.service.FavoriteByID(c.Request().Context(), id)
	if res, done := tk.Result(); done && errors.Is(res.Err, service.ErrNotFound) {
		return writeServiceError(c, res.Err)
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{Status: "accepted"})
}

// Unfavorite removes a character from the favorites.
// @Summary Unfavorite a character
// @Tags characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 202 {object} acceptedResponse
// @Failure 400 {object} errorResponse
// @Router /characters/{id}/favorite [delete]
func (h *CharacterHandler) Unfavorite(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid character id")
	}
	h.service.Unfavorite(c.Request().Context(), id)
	return c.JSON(http.StatusAccepted, acceptedResponse{Status: "accepted"})
}

// Favorites lists the stored favorites.
// @Summary List favorites
// @Tags characters
// @Produce json
// @Success 200 {array} characterResponse
// @Failure 500 {object} errorResponse
// @Router /favorites [get]
func (h *CharacterHandler) Favorites(c echo.Context) error {
	favorites, err := h.service.Favorites(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toCharacterResponses(favorites))
}

func (h *CharacterHandler) listResponse() characterListResponse {
	return characterListResponse{
		Version:    h.service.Version(),
		Characters: toCharacterResponses(h.service.Characters()),
	}
}

func toCharacterResponses(list []model.Character) []characterResponse {
	out := make([]characterResponse, len(list))
	for i, ch := range list {
		out[i] = characterResponse{
			ID:      ch.ID,
			Name:    ch.Name,
			Species: ch.Species,
			Gender:  ch.Gender,
			Origin:  ch.OriginName,
			Image:   ch.ImageURL,
		}
	}
	return out
}
