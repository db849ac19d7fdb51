package translate

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Compile-time check that OpenAITranslator implements Translator.
var _ Translator = (*OpenAITranslator)(nil)

// OpenAITranslator translates through a chat model and falls back to the
// phrase table when the API is unreachable or returns nothing usable. Like
// the phrase translator it never returns an error.
type OpenAITranslator struct {
	client   *openai.Client
	model    string
	fallback *PhraseTranslator
}

// NewOpenAITranslator builds a model-backed translator.
func NewOpenAITranslator(apiKey string) *OpenAITranslator {
	return &OpenAITranslator{
		client:   openai.NewClient(apiKey),
		model:    openai.GPT4oMini,
		fallback: NewPhraseTranslator(),
	}
}

const translateSystemPrompt = "You translate short safety alert announcements. " +
	"Reply with only the translated text. Keep numbers and units (°C, %, km/h) exactly as given."

func (t *OpenAITranslator) Translate(ctx context.Context, text, language string) (Result, error) {
	if strings.EqualFold(language, "English") {
		return Result{Text: text, Source: SourcePassthrough}, nil
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translateSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Translate into %s:\n\n%s", language, text)},
		},
	})
	if err != nil {
		log.Printf("[Translate] OpenAI translation to %s failed, using phrase table: %v", language, err)
		return t.fallback.Translate(ctx, text, language)
	}
	if len(resp.Choices) == 0 {
		return t.fallback.Translate(ctx, text, language)
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return t.fallback.Translate(ctx, text, language)
	}
	return Result{Text: out, Source: SourceLLM}, nil
}
