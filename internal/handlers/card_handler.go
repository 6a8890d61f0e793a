package handlers

import (
	"log"
	"net/http"
	"strconv"

	"brainstorm-api/internal/models"
	"brainstorm-api/internal/realtime"
	"brainstorm-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// CreateCardRequest represents the request payload for creating a card.
// No field is required: absent fields are stored as empty strings.
type CreateCardRequest struct {
	Text       string `json:"text"`
	ColumnName string `json:"columnName"`
}

// MoveCardRequest represents the request payload for moving a card.
// Any column name is accepted, including empty or never-seen ones.
type MoveCardRequest struct {
	ColumnName string `json:"columnName"`
}

// CardHandler serves the board-state API.
type CardHandler struct {
	cards repository.CardRepository
	hub   *realtime.Hub
}

func NewCardHandler(cards repository.CardRepository, hub *realtime.Hub) *CardHandler {
	return &CardHandler{cards: cards, hub: hub}
}

// List handles GET /api/cards
// Returns every card in store order; an empty board serializes as [].
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.cards.List()
	if err != nil {
		log.Printf("list cards: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cards"})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// Create handles POST /api/cards
// Inserts a card and echoes it back with the store-assigned id.
func (h *CardHandler) Create(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	card := models.Card{
		Text:       req.Text,
		ColumnName: req.ColumnName,
	}
	if err := h.cards.Create(&card); err != nil {
		log.Printf("create card: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	h.hub.Broadcast(realtime.Event{
		Type:       realtime.EventCardCreated,
		CardID:     card.ID,
		ColumnName: card.ColumnName,
	})

	c.JSON(http.StatusOK, card)
}

// Move handles PUT /api/cards/:id
// Reassigns a card's column. Moving an id that does not exist is a
// silent no-op: the response is a success acknowledgment either way.
func (h *CardHandler) Move(c *gin.Context) {
	id, ok := parseCardID(c)
	if !ok {
		return
	}

	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.cards.UpdateColumn(id, req.ColumnName); err != nil {
		log.Printf("move card %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move card"})
		return
	}

	h.hub.Broadcast(realtime.Event{
		Type:       realtime.EventCardMoved,
		CardID:     id,
		ColumnName: req.ColumnName,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /api/cards/:id
// Same no-existence-check contract as Move.
func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := parseCardID(c)
	if !ok {
		return
	}

	if err := h.cards.Delete(id); err != nil {
		log.Printf("delete card %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	h.hub.Broadcast(realtime.Event{
		Type:   realtime.EventCardDeleted,
		CardID: id,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseCardID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Card ID must be numeric"})
		return 0, false
	}
	return uint(id), true
}
