package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
	"github.com/alchemorsel/discovery/internal/infrastructure/config"
	"github.com/alchemorsel/discovery/internal/ports/outbound"
)

const sampleBatch = `{
  "recipes": [
    {
      "title": "Garlic Noodles",
      "cuisine": "Chinese",
      "difficulty": "Easy",
      "prep_time_minutes": 5,
      "cook_time_minutes": 10,
      "servings": 2,
      "ingredients": [
        {"name": "noodles", "amount": 200, "unit": "g"},
        {"name": "garlic", "amount": 3, "unit": "piece"}
      ],
      "steps": ["Boil the noodles.", "Toss with fried garlic."],
      "dietary_notes": ["vegetarian", "vegan"]
    }
  ]
}`

func testClient(t *testing.T, cfg config.AIConfig) *Client {
	t.Helper()
	if cfg.APIKey == "" {
		cfg.APIKey = "test-key"
	}
	return NewClient(cfg, zap.NewNop())
}

func TestParseBatch(t *testing.T) {
	c := testClient(t, config.AIConfig{})

	t.Run("plain JSON parses and normalizes enums", func(t *testing.T) {
		got, err := c.parseBatch(sampleBatch)

		require.NoError(t, err)
		require.Len(t, got, 1)
		r := got[0]
		assert.Equal(t, "Garlic Noodles", r.Title)
		assert.Equal(t, recipe.CuisineChinese, r.Cuisine)
		assert.Equal(t, recipe.DifficultyEasy, r.Difficulty)
		assert.Equal(t, 15, r.TotalTime())
		assert.Len(t, r.Ingredients, 2)
		assert.Equal(t, []recipe.DietaryTag{recipe.TagVegetarian, recipe.TagVegan}, r.DietaryNotes)
	})

	t.Run("JSON wrapped in prose is extracted", func(t *testing.T) {
		got, err := c.parseBatch("Here are your recipes:\n" + sampleBatch + "\nEnjoy!")

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("each parsed recipe gets a fresh id", func(t *testing.T) {
		first, err := c.parseBatch(sampleBatch)
		require.NoError(t, err)
		second, err := c.parseBatch(sampleBatch)
		require.NoError(t, err)

		assert.NotEqual(t, first[0].ID, second[0].ID)
	})

	t.Run("missing servings defaults", func(t *testing.T) {
		got, err := c.parseBatch(`{"recipes":[{"title":"Toast","servings":0}]}`)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Servings)
	})

	t.Run("response without JSON is an error", func(t *testing.T) {
		_, err := c.parseBatch("I cannot help with that.")

		assert.Error(t, err)
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		_, err := c.parseBatch(`{"recipes": [`)

		assert.Error(t, err)
	})
}

func TestBuildPrompts(t *testing.T) {
	c := testClient(t, config.AIConfig{RecipeCount: 3})

	t.Run("system prompt carries dietary and time constraints", func(t *testing.T) {
		prompt := c.buildSystemPrompt(outbound.GenerateRequest{
			DietaryTags:  []recipe.DietaryTag{recipe.TagVegan, recipe.TagNutFree},
			MaxTotalTime: 20,
		})

		assert.Contains(t, prompt, "exactly 3 recipes")
		assert.Contains(t, prompt, "vegan, nut_free")
		assert.Contains(t, prompt, "20 minutes")
	})

	t.Run("user prompt skips wildcard cuisine", func(t *testing.T) {
		prompt := c.buildUserPrompt(outbound.GenerateRequest{
			Cuisine:  recipe.CuisineAny,
			Servings: 2,
		})

		assert.NotContains(t, prompt, "Cuisine:")
		assert.Contains(t, prompt, "Servings: 2")
	})

	t.Run("user prompt carries persona", func(t *testing.T) {
		prompt := c.buildUserPrompt(outbound.GenerateRequest{Persona: "student"})

		assert.Contains(t, prompt, "student")
	})
}

func TestGenerate(t *testing.T) {
	t.Run("round-trips through a chat completion endpoint", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, "/chat/completions", r.URL.Path)

			var req chatCompletionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Messages, 2)

			resp := chatCompletionResponse{
				Choices: []choice{{Message: message{Role: "assistant", Content: sampleBatch}}},
			}
			json.NewEncoder(w).Encode(resp)
		}))
		defer srv.Close()

		c := testClient(t, config.AIConfig{BaseURL: srv.URL, Model: "test-model"})

		got, err := c.Generate(context.Background(), outbound.GenerateRequest{
			Cuisine:  recipe.CuisineChinese,
			Servings: 2,
		})

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Bearer test-key", gotAuth)
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := testClient(t, config.AIConfig{BaseURL: srv.URL})

		_, err := c.Generate(context.Background(), outbound.GenerateRequest{})

		assert.Error(t, err)
	})

	t.Run("empty choice list is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(chatCompletionResponse{})
		}))
		defer srv.Close()

		c := testClient(t, config.AIConfig{BaseURL: srv.URL})

		_, err := c.Generate(context.Background(), outbound.GenerateRequest{})

		assert.Error(t, err)
	})
}
