package llm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/pourtrait/pourtrait-api/internal/engine"
	"github.com/pourtrait/pourtrait-api/internal/logger"
	"github.com/pourtrait/pourtrait-api/internal/models"
	"github.com/pourtrait/pourtrait-api/internal/observability"
)

const requestTimeout = 30 * time.Second

// Client performs remote recipe generation through the OpenAI chat
// completions API, with structured JSON output.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a remote generation client. The caller decides whether
// to construct one at all; an unconfigured API key means no client.
func NewClient(apiKey, model string) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client: &client,
		model:  model,
	}
}

// Generate asks the completion API for a recipe matching the context. Every
// failure path returns a RemoteGenerationError; the caller falls back to the
// deterministic engine and the request still succeeds.
func (c *Client) Generate(ctx context.Context, genCtx engine.Context) (models.RecipeBlueprint, error) {
	startTime := time.Now()
	prompt := BuildPrompt(genCtx)

	span := sentry.StartSpan(ctx, "openai.generate")
	span.SetTag("model", c.model)
	span.SetTag("generator_key", string(genCtx.Request.GeneratorKey))
	defer span.Finish()

	trace := observability.GetClient().StartTrace(ctx, "drink.remote_generate", map[string]interface{}{
		"generator_key": string(genCtx.Request.GeneratorKey),
		"zodiac":        genCtx.Zodiac.Sign,
	})
	defer trace.Finish()
	generation := trace.Generation("chat.completion", nil)
	generation.Model(c.model)
	generation.Input(prompt)
	defer generation.Finish()

	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "recipe_blueprint",
					Description: openai.String("A personalized cocktail recipe"),
					Schema:      RecipeOutputSchema(),
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		generation.SetLevel("ERROR")
		logger.Warn("Remote generation request failed", logger.Fields{
			"model": c.model,
			"error": err.Error(),
		})
		return models.RecipeBlueprint{}, &RemoteGenerationError{Stage: "request", Err: err}
	}

	if len(resp.Choices) == 0 {
		generation.SetLevel("ERROR")
		return models.RecipeBlueprint{}, &RemoteGenerationError{Stage: "response", Err: errNoChoices}
	}

	content := resp.Choices[0].Message.Content
	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		generation.SetLevel("ERROR")
		logger.Warn("Remote generation returned non-JSON content", logger.Fields{
			"model": c.model,
			"error": err.Error(),
		})
		return models.RecipeBlueprint{}, &RemoteGenerationError{Stage: "parse", Err: err}
	}

	blueprint := Normalize(raw, genCtx)

	generation.Output(content)
	generation.Usage(int(resp.Usage.PromptTokens), int(resp.Usage.CompletionTokens), int(resp.Usage.TotalTokens))
	logger.LogRemoteGeneration(c.model, time.Since(startTime), true, logger.Fields{
		"generator_key": string(genCtx.Request.GeneratorKey),
		"total_tokens":  resp.Usage.TotalTokens,
	})

	return blueprint, nil
}
