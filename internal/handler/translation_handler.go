package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"karaku/backend/internal/model"
	"karaku/backend/internal/service"
)

type TranslationHandler struct {
	service service.TranslationService
}

type translateRequest struct {
	Text string `json:"text"`
	To   string `json:"to"`
}

type translateResponse struct {
	Text string `json:"text"`
}

type saveTranslationRequest struct {
	TextSource     string `json:"textSource"`
	TextTranslated string `json:"textTranslated"`
	Category       string `json:"category"`
}

type updateTranslationRequest struct {
	TextSource     string `json:"textSource"`
	TextTranslated string `json:"textTranslated"`
	Language       string `json:"language"`
	Country        string `json:"country"`
	Category       string `json:"category"`
}

type updateCategoryRequest struct {
	Category string `json:"category"`
}

type translationResponse struct {
	ID             int64  `json:"id"`
	TextSource     string `json:"textSource"`
	TextTranslated string `json:"textTranslated"`
	Language       string `json:"language"`
	Country        string `json:"country"`
	Category       string `json:"category"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
	Default    string   `json:"default"`
}

func NewTranslationHandler(service service.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

func (h *TranslationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.GET("/translations", h.List)
	g.GET("/translations/stream", h.Stream)
	g.POST("/translations", h.Save)
	g.PUT("/translations/:id", h.Update)
	g.PUT("/translations/:id/category", h.UpdateCategory)
	g.DELETE("/translations/:id", h.Delete)
	g.GET("/categories", h.Categories)
}

// Translate translates text without saving it.
// @Summary Translate text
// @Tags translations
// @Accept json
// @Produce json
// @Param request body translateRequest true "Text and optional target language (default en)"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate [post]
func (h *TranslationHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	out, err := h.service.Translate(c.Request().Context(), req.Text, req.To)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateResponse{Text: out})
}

// List returns the translation history.
// @Summary List translations
// @Tags translations
// @Produce json
// @Success 200 {array} translationResponse
// @Router /translations [get]
func (h *TranslationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, toTranslationResponses(h.service.Translations()))
}

// Stream pushes the translation history on connect and after every change.
// @Summary Watch translations
// @Description Server-sent events; each "translations" event carries the full list.
// @Tags translations
// @Produce text/event-stream
// @Success 200 {array} translationResponse
// @Router /translations/stream [get]
func (h *TranslationHandler) Stream(c echo.Context) error {
	updates, cancel, err := h.service.Subscribe()
	if err != nil {
		return writeServiceError(c, err)
	}
	defer cancel()

	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Flush()

	ctx := c.Request().Context()
	for {
		select {
		case list, ok := <-updates:
			if !ok {
				return nil
			}
			data, err := json.Marshal(toTranslationResponses(list))
			if err != nil {
				return nil
			}
			if _, err := fmt.Fprintf(c.Response(), "event: translations\ndata: %s\n\n", data); err != nil {
				return nil
			}
			c.Response().Flush()
		case <-ctx.Done():
			return nil
		}
	}
}

// Save stores a translation in the history.
// @Summary Save a translation
// @Tags translations
// @Accept json
// @Produce json
// @Param request body saveTranslationRequest true "Translation to save"
// @Success 201 {array} translationResponse
// @Failure 400 {object} errorResponse
// @Router /translations [post]
func (h *TranslationHandler) Save(c echo.Context) error {
	var req saveTranslationRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	err := h.service.Save(c.Request().Context(), service.SaveTranslationInput{
		TextSource:     req.TextSource,
		TextTranslated: req.TextTranslated,
		Category:       req.Category,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toTranslationResponses(h.service.Translations()))
}

// Update overwrites a saved translation.
// @Summary Update a translation
// @Tags translations
// @Accept json
// @Produce json
// @Param id path int true "Translation ID"
// @Param request body updateTranslationRequest true "Full record"
// @Success 200 {array} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /translations/{id} [put]
func (h *TranslationHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid translation id")
	}
	var req updateTranslationRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	record := model.NewTranslation(req.TextSource, req.TextTranslated, req.Category)
	record.ID = id
	if req.Language != "" {
		record.Language = req.Language
	}
	if req.Country != "" {
		record.Country = req.Country
	}
	if err := h.service.Update(c.Request().Context(), record); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponses(h.service.Translations()))
}

// UpdateCategory relabels a saved translation.
// @Summary Update a translation's category
// @Tags translations
// @Accept json
// @Produce json
// @Param id path int true "Translation ID"
// @Param request body updateCategoryRequest true "New category"
// @Success 200 {array} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /translations/{id}/category [put]
func (h *TranslationHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid translation id")
	}
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if err := h.service.UpdateCategory(c.Request().Context(), id, req.Category); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponses(h.service.Translations()))
}

// Delete removes a saved translation.
// @Summary Delete a translation
// @Tags translations
// @Param id path int true "Translation ID"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Router /translations/{id} [delete]
func (h *TranslationHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid translation id")
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Categories lists the labels offered for a saved translation.
// @Summary List categories
// @Tags translations
// @Produce json
// @Success 200 {object} categoriesResponse
// @Router /categories [get]
func (h *TranslationHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{
		Categories: model.Categories,
		Default:    model.DefaultCategory,
	})
}

func toTranslationResponses(list []model.Translation) []translationResponse {
	out := make([]translationResponse, len(list))
	for i, t := range list {
		out[i] = translationResponse{
			ID:             t.ID,
			TextSource:     t.TextSource,
			TextTranslated: t.TextTranslated,
			Language:       t.Language,
			Country:        t.Country,
			Category:       t.Category,
		}
	}
	return out
}
