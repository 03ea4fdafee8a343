package ai

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"brainscan-bot/internal/domain/port"
)

// OpenAIGenerator отправляет промпт в OpenAI Responses API
type OpenAIGenerator struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewOpenAIGenerator создаёт клиента генерации текста
func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIGenerator{
		client: &client,
		model:  openai.ChatModelGPT4o,
	}
}

// Generate выполняет один запрос генерации, без повторных попыток
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: g.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
	})
	if err != nil {
		return "", err
	}

	return resp.OutputText(), nil
}

// Проверка реализации интерфейса
var _ port.TextGenerator = (*OpenAIGenerator)(nil)
