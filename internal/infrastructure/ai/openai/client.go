// Package openai provides the generation service adapter backed by an
// OpenAI-compatible chat completion API. A local Ollama endpoint works
// unchanged through the same protocol.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
	"github.com/alchemorsel/discovery/internal/infrastructure/config"
	"github.com/alchemorsel/discovery/internal/ports/outbound"
)

// Client implements outbound.GenerationService against a chat completion
// endpoint.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	recipeCount int
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a generation client. Without an API key it falls back to
// a local Ollama endpoint.
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	baseURL := cfg.BaseURL
	model := cfg.Model
	if baseURL == "" {
		if apiKey == "" {
			logger.Info("no API key configured, using local Ollama for recipe generation")
			baseURL = "http://localhost:11434/v1"
			apiKey = "ollama" // dummy key, Ollama ignores it
			model = "llama3.2:3b"
		} else {
			baseURL = "https://api.openai.com/v1"
		}
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	recipeCount := cfg.RecipeCount
	if recipeCount <= 0 {
		recipeCount = 3
	}

	return &Client{
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		recipeCount: recipeCount,
		client:      &http.Client{Timeout: timeout},
		logger:      logger.Named("generation-client"),
	}
}

// Chat completion API structures
type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Message      message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Wire format the model is instructed to produce
type generatedBatch struct {
	Recipes []generatedRecipe `json:"recipes"`
}

type generatedRecipe struct {
	Title        string                `json:"title"`
	Cuisine      string                `json:"cuisine"`
	Difficulty   string                `json:"difficulty"`
	PrepTime     int                   `json:"prep_time_minutes"`
	CookTime     int                   `json:"cook_time_minutes"`
	Servings     int                   `json:"servings"`
	Ingredients  []generatedIngredient `json:"ingredients"`
	Steps        []string              `json:"steps"`
	DietaryNotes []string              `json:"dietary_notes"`
}

type generatedIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

// Generate requests a batch of recipes matching the constraints. Zero
// recipes with a nil error is a valid empty result; every transport or
// parse problem is returned as an error.
func (c *Client) Generate(ctx context.Context, req outbound.GenerateRequest) ([]recipe.Recipe, error) {
	systemPrompt := c.buildSystemPrompt(req)
	userPrompt := c.buildUserPrompt(req)

	response, err := c.callAPI(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return c.parseBatch(response)
}

// buildSystemPrompt creates the system prompt for recipe generation
func (c *Client) buildSystemPrompt(req outbound.GenerateRequest) string {
	var b strings.Builder
	b.WriteString(`You are an expert chef and recipe developer. Create practical, easy-to-follow recipes.

CRITICAL: You must respond with ONLY a valid JSON object in the exact format shown below. Do not include any explanatory text, markdown formatting, or other content outside the JSON.

Required JSON format:
{
  "recipes": [
    {
      "title": "Recipe Name",
      "cuisine": "italian",
      "difficulty": "easy|medium|hard|expert",
      "prep_time_minutes": 10,
      "cook_time_minutes": 15,
      "servings": 2,
      "ingredients": [
        {"name": "ingredient name", "amount": 1.5, "unit": "cup"}
      ],
      "steps": [
        "Step 1: Detailed instruction",
        "Step 2: Next step"
      ],
      "dietary_notes": ["vegetarian", "gluten_free"]
    }
  ]
}`)

	fmt.Fprintf(&b, "\n\nGenerate exactly %d recipes.", c.recipeCount)

	if len(req.DietaryTags) > 0 {
		tags := make([]string, len(req.DietaryTags))
		for i, t := range req.DietaryTags {
			tags[i] = string(t)
		}
		fmt.Fprintf(&b, "\nEvery recipe must satisfy ALL of these dietary restrictions: %s", strings.Join(tags, ", "))
	}
	if req.MaxTotalTime > 0 {
		fmt.Fprintf(&b, "\nPrep time plus cook time must not exceed %d minutes.", req.MaxTotalTime)
	}

	b.WriteString("\n\nRemember: Respond with ONLY valid JSON. No additional text or formatting.")
	return b.String()
}

// buildUserPrompt creates the user prompt for recipe generation
func (c *Client) buildUserPrompt(req outbound.GenerateRequest) string {
	var b strings.Builder
	b.WriteString("Create recipes with these constraints:")

	if !req.Cuisine.IsWildcard() {
		fmt.Fprintf(&b, "\nCuisine: %s", req.Cuisine)
	}
	if req.Difficulty != "" {
		fmt.Fprintf(&b, "\nDifficulty: %s", req.Difficulty)
	}
	if req.Servings > 0 {
		fmt.Fprintf(&b, "\nServings: %d", req.Servings)
	}
	if req.Persona != "" {
		fmt.Fprintf(&b, "\nCooking style: suited for a %s cook", req.Persona)
	}

	return b.String()
}

// callAPI makes the chat completion request
func (c *Client) callAPI(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	c.logger.Info("generation API call successful",
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
	)

	return chatResp.Choices[0].Message.Content, nil
}

// parseBatch extracts and maps the JSON batch from the model output. Models
// sometimes wrap the JSON in extra prose, so only the outermost brace pair
// is parsed.
func (c *Client) parseBatch(response string) ([]recipe.Recipe, error) {
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no valid JSON found in response")
	}

	var batch generatedBatch
	if err := json.Unmarshal([]byte(response[start:end+1]), &batch); err != nil {
		c.logger.Error("failed to parse generation response",
			zap.Error(err),
			zap.String("response", response[start:end+1]),
		)
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	recipes := make([]recipe.Recipe, 0, len(batch.Recipes))
	for _, g := range batch.Recipes {
		recipes = append(recipes, mapRecipe(g))
	}
	return recipes, nil
}

// mapRecipe converts a wire recipe to the domain type. The caller stamps the
// source and validates.
func mapRecipe(g generatedRecipe) recipe.Recipe {
	ingredients := make([]recipe.Ingredient, len(g.Ingredients))
	for i, ing := range g.Ingredients {
		ingredients[i] = recipe.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   recipe.MeasurementUnit(ing.Unit),
			Notes:  ing.Notes,
		}
	}

	tags := make([]recipe.DietaryTag, 0, len(g.DietaryNotes))
	for _, t := range g.DietaryNotes {
		tags = append(tags, recipe.DietaryTag(t))
	}

	servings := g.Servings
	if servings <= 0 {
		servings = 2
	}

	return recipe.Recipe{
		ID:           uuid.New(),
		Title:        g.Title,
		Cuisine:      recipe.CuisineType(strings.ToLower(g.Cuisine)),
		Difficulty:   recipe.DifficultyLevel(strings.ToLower(g.Difficulty)),
		PrepTime:     g.PrepTime,
		CookTime:     g.CookTime,
		Servings:     servings,
		Ingredients:  ingredients,
		Steps:        g.Steps,
		DietaryNotes: tags,
	}
}
