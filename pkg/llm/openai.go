package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGroqModel   = "llama3-8b-8192"
	GroqBaseURL        = "https://api.groq.com/openai/v1"
	maxCompletionToken = 8192
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
	name      string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return newOpenAICompatibleClient("openai", apiKey, "", model, DefaultOpenAIModel)
}

// NewGroqClient talks to Groq through its OpenAI-compatible endpoint.
func NewGroqClient(apiKey, model string) *OpenAIClient {
	return newOpenAICompatibleClient("groq", apiKey, GroqBaseURL, model, DefaultGroqModel)
}

// NewOpenAICompatibleClient targets any service that speaks the chat completions API.
func NewOpenAICompatibleClient(name, apiKey, baseURL, model string) *OpenAIClient {
	return newOpenAICompatibleClient(name, apiKey, baseURL, model, DefaultOpenAIModel)
}

func newOpenAICompatibleClient(name, apiKey, baseURL, model, defaultModel string) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// Retries are owned by the Gateway.
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModel(model),
		modelName: model,
		name:      name,
	}
}

func (c *OpenAIClient) Name() string {
	return c.name + "/" + c.modelName
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		MaxTokens: openai.Int(maxCompletionToken),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %s: %v", ErrRateLimited, c.name, err)
		}
		return "", fmt.Errorf("%s API error: %w", c.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", c.name)
	}

	return resp.Choices[0].Message.Content, nil
}
