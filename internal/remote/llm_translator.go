package remote

import (
	"context"
	"fmt"
	"strings"

	"karaku/backend/internal/remote/ai"
)

const llmSystemPrompt = `You are a translation engine. Translate the user's message into the language with code %q. Reply with the translation only, no quotes or commentary.`

// LLMTranslator translates through a chat model instead of a dedicated
// translation API.
type LLMTranslator struct {
	provider ai.Provider
	limiter  *RateLimiter
}

func NewLLMTranslator(provider ai.Provider, limiter *RateLimiter) *LLMTranslator {
	return &LLMTranslator{provider: provider, limiter: limiter}
}

func (t *LLMTranslator) Translate(ctx context.Context, text, to string) (string, error) {
	if to == "" {
		to = DefaultTargetLanguage
	}
	if err := t.limiter.Wait(ctx); err != nil {
		return "", networkError("translate", err)
	}

	out, err := t.provider.Complete(ctx, fmt.Sprintf(llmSystemPrompt, to), text)
	if err != nil {
		return "", networkError(t.provider.Name()+" translate", err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyTranslation
	}
	return out, nil
}
