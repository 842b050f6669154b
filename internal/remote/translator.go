package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"karaku/backend/internal/config"
)

// DefaultTargetLanguage is used when Translate is called without a target.
const DefaultTargetLanguage = "en"

const translatorService = "translator"

// Translator turns text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, to string) (string, error)
}

type AzureConfig struct {
	BaseURL    string
	APIVersion string
	Key        string
	Region     string
}

// AzureTranslator calls the Azure Translator v3 REST API. Credentials are
// fixed at construction.
type AzureTranslator struct {
	http       *resty.Client
	apiVersion string
	limiter    *RateLimiter
}

func NewAzureTranslator(client *http.Client, cfg AzureConfig, limiter *RateLimiter) *AzureTranslator {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "3.0"
	}
	return &AzureTranslator{
		http: resty.NewWithClient(client).
			SetBaseURL(cfg.BaseURL).
			SetHeader("User-Agent", config.UserAgent).
			SetHeader("Content-Type", "application/json").
			SetHeader("Ocp-Apim-Subscription-Key", cfg.Key).
			SetHeader("Ocp-Apim-Subscription-Region", cfg.Region),
		apiVersion: cfg.APIVersion,
		limiter:    limiter,
	}
}

type textItem struct {
	Text string `json:"text"`
}

type translateResult struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// Translate sends text as a single-element batch and joins whatever the
// service returns with ", ".
func (t *AzureTranslator) Translate(ctx context.Context, text, to string) (string, error) {
	parts, err := t.TranslateBatch(ctx, []string{text}, to)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, ", "), nil
}

// TranslateBatch returns the first translation of every result item, in
// order. Items without a translation are skipped.
func (t *AzureTranslator) TranslateBatch(ctx context.Context, texts []string, to string) ([]string, error) {
	if to == "" {
		to = DefaultTargetLanguage
	}
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, networkError("translate", err)
	}

	body := make([]textItem, len(texts))
	for i, text := range texts {
		body[i] = textItem{Text: text}
	}

	resp, err := t.http.R().
		SetContext(ctx).
		SetQueryParam("api-version", t.apiVersion).
		SetQueryParam("to", to).
		SetBody(body).
		Post("translate")
	if err != nil {
		return nil, networkError("translate", err)
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Service: translatorService, StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var results []translateResult
	if err := json.Unmarshal(resp.Body(), &results); err != nil {
		return nil, decodeError("decode translation", err)
	}

	out := make([]string, 0, len(results))
	for _, r := range results {
		if len(r.Translations) == 0 {
			continue
		}
		out = append(out, r.Translations[0].Text)
	}
	if len(out) == 0 {
		return nil, ErrEmptyTranslation
	}
	return out, nil
}
