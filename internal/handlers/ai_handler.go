package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"brainstorm-api/internal/cache"

	"github.com/gin-gonic/gin"
)

// completionTTL bounds how long a completion is reused for identical
// prompts before the upstream model is asked again.
const completionTTL = 5 * time.Minute

// Generator produces text for a prompt.
type Generator interface {
	Generate(prompt string) (string, error)
}

// PromptRequest represents the AI proxy request payload
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// AIHandler proxies prompts to the text-generation endpoint, memoizing
// completions per prompt for a short TTL.
type AIHandler struct {
	generator   Generator
	completions *cache.TTLCache[string, string]
}

func NewAIHandler(generator Generator) *AIHandler {
	return &AIHandler{
		generator:   generator,
		completions: cache.NewTTLCache[string, string](),
	}
}

// Generate handles POST /api/ai
// Blank prompts are rejected before any cache lookup or external call.
func (h *AIHandler) Generate(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt cannot be empty"})
		return
	}

	if result, ok := h.completions.Get(req.Prompt); ok {
		c.JSON(http.StatusOK, gin.H{"result": result})
		return
	}

	result, err := h.generator.Generate(req.Prompt)
	if err != nil {
		log.Printf("generate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI generation failed"})
		return
	}

	h.completions.Set(req.Prompt, result, completionTTL)
	c.JSON(http.StatusOK, gin.H{"result": result})
}
