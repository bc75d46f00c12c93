package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"golang.org/x/time/rate"

	"github.com/shelfcheck/backend/internal/domain"
)

const (
	maxAttempts      = 3
	extractMaxTokens = 512
	compareMaxTokens = 1024
)

// ClientConfig holds configuration for the vision/comparison client
type ClientConfig struct {
	APIKey            string
	BaseURL           string
	ExtractModel      string
	CompareModel      string
	RequestsPerMinute int
	EnableDebugLogging bool
}

// Client talks to an OpenAI-compatible chat completion API (Groq in the
// reference deployment) for both the vision extraction and the per-field
// comparison. It is constructed explicitly and injected into the driver;
// there is no package-level client.
type Client struct {
	api          openai.Client
	extractModel shared.ChatModel
	compareModel shared.ChatModel
	rateLimiter  *rate.Limiter
	debug        bool
}

// NewClient creates a new LLM client against the configured base URL.
func NewClient(config ClientConfig) *Client {
	rpm := config.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	// rate.Limit is requests per second
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 5)

	return &Client{
		api: openai.NewClient(
			option.WithBaseURL(config.BaseURL),
			option.WithAPIKey(config.APIKey),
			// Retries are handled by complete so attempts count against our
			// own rate limiter, not the SDK's.
			option.WithMaxRetries(0),
		),
		extractModel: shared.ChatModel(config.ExtractModel),
		compareModel: shared.ChatModel(config.CompareModel),
		rateLimiter:  limiter,
		debug:        config.EnableDebugLogging,
	}
}

// SetDebug toggles request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// ExtractProductInfo sends a packaging photograph to the vision model and
// parses the returned key/value text into a canonical FieldSet.
func (c *Client) ExtractProductInfo(ctx context.Context, image []byte) (domain.FieldSet, error) {
	encoded := base64.StdEncoding.EncodeToString(image)
	dataURL := fmt.Sprintf("data:image/jpeg;base64,%s", encoded)

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(extractPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				}),
			}),
		},
		Model:       c.extractModel,
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(extractMaxTokens),
	}

	content, err := c.complete(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	fields := ParseExtractedFields(content)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields recognized in model output", domain.ErrExtractionFailed)
	}

	if c.debug {
		log.Printf("[VISION] Extracted %d fields", len(fields))
	}

	return fields, nil
}

// Compare asks the comparison model to judge the two field sets field by
// field and parses its free text into structured judgments. The model is
// only trusted to honor the three literal labels; anything else parses to
// an Unknown judgment.
func (c *Client) Compare(ctx context.Context, user, extracted domain.FieldSet) (domain.Comparison, error) {
	prompt := buildComparisonPrompt(user.Render(), extracted.Render())

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       c.compareModel,
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(compareMaxTokens),
	}

	content, err := c.complete(ctx, params)
	if err != nil {
		return domain.Comparison{}, fmt.Errorf("%w: %v", domain.ErrComparisonFailed, err)
	}

	return ParseComparison(content), nil
}

// complete executes one chat completion with rate limiting and retries.
// Transient failures back off linearly before giving up.
func (c *Client) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}

		completion, err := c.api.Chat.Completions.New(ctx, params)
		if err != nil {
			if c.debug {
				log.Printf("[VISION] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrVisionAPIFailure, err)
			if ctx.Err() != nil {
				return "", lastErr
			}
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		if len(completion.Choices) == 0 {
			lastErr = fmt.Errorf("%w: empty choices", domain.ErrVisionAPIFailure)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		return completion.Choices[0].Message.Content, nil
	}

	return "", lastErr
}
