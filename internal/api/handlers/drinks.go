package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pourtrait/pourtrait-api/internal/engine"
	"github.com/pourtrait/pourtrait-api/internal/logger"
	"github.com/pourtrait/pourtrait-api/internal/metrics"
	"github.com/pourtrait/pourtrait-api/internal/models"
	"github.com/pourtrait/pourtrait-api/internal/store"
)

const (
	genericGenerateError = "unable to generate suggestion"
	voteAction           = "vote"
)

var sentryMetrics = metrics.NewSentryMetrics()

// RemoteGenerator is the remote-override seam. A nil generator means the
// override is unconfigured and every request uses the deterministic engine.
type RemoteGenerator interface {
	Generate(ctx context.Context, genCtx engine.Context) (models.RecipeBlueprint, error)
}

type DrinkHandler struct {
	store     store.DrinkStore
	remote    RemoteGenerator
	cwMetrics *metrics.Client
}

func NewDrinkHandler(st store.DrinkStore, remote RemoteGenerator, cwMetrics *metrics.Client) *DrinkHandler {
	return &DrinkHandler{
		store:     st,
		remote:    remote,
		cwMetrics: cwMetrics,
	}
}

// DrinkResponse is the StoredRecipe wire shape, with the bullet-joined
// columns expanded back into arrays.
type DrinkResponse struct {
	DrinkID        string    `json:"drink_id"`
	CreatedAt      time.Time `json:"created_at"`
	GeneratorKey   string    `json:"generator_key"`
	GeneratorLabel string    `json:"generator_label"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	BirthMonth     int       `json:"birth_month"`
	BirthDay       int       `json:"birth_day"`
	BirthYear      int       `json:"birth_year"`
	DrinkName      string    `json:"drink_name"`
	Reason         string    `json:"reason"`
	Ingredients    []string  `json:"ingredients"`
	Instructions   []string  `json:"instructions"`
	Compatibility  string    `json:"compatibility"`
	VoteCount      int       `json:"vote_count"`
}

func newDrinkResponse(d *models.GeneratedDrink) DrinkResponse {
	return DrinkResponse{
		DrinkID:        d.DrinkID,
		CreatedAt:      d.CreatedAt,
		GeneratorKey:   d.GeneratorKey,
		GeneratorLabel: d.GeneratorLabel,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		BirthMonth:     d.BirthMonth,
		BirthDay:       d.BirthDay,
		BirthYear:      d.BirthYear,
		DrinkName:      d.DrinkName,
		Reason:         d.Reason,
		Ingredients:    models.SplitBullets(d.Ingredients),
		Instructions:   models.SplitBullets(d.Instructions),
		Compatibility:  d.Compatibility,
		VoteCount:      d.VoteCount,
	}
}

// Generate validates the payload, builds a context, tries the remote
// override, falls back to the deterministic generator, persists, and returns
// the stored recipe.
func (h *DrinkHandler) Generate(c *gin.Context) {
	var payload engine.RequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	req, err := engine.NewGenerationRequest(payload)
	if err != nil {
		var ve *engine.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genCtx := engine.BuildContext(req)
	startTime := time.Now()

	var blueprint models.RecipeBlueprint
	remoteUsed := false
	if h.remote != nil {
		remoteBlueprint, remoteErr := h.remote.Generate(c.Request.Context(), genCtx)
		if remoteErr == nil {
			blueprint = remoteBlueprint
			remoteUsed = true
		} else {
			// Recovered locally; the request must still succeed.
			logger.Warn("Remote override failed, falling back to engine", logger.Fields{
				"request_id":    c.GetString("request_id"),
				"generator_key": string(req.GeneratorKey),
				"error":         remoteErr.Error(),
			})
		}
	}

	if !remoteUsed {
		generator, genErr := engine.ForKey(req.GeneratorKey)
		if genErr != nil {
			logger.Error("Generator dispatch failed", genErr, logger.WithContext(c))
			c.JSON(http.StatusInternalServerError, gin.H{"error": genericGenerateError})
			return
		}
		blueprint = generator.Build(genCtx)
	}

	drink := &models.GeneratedDrink{
		DrinkID:        uuid.New().String(),
		GeneratorKey:   string(req.GeneratorKey),
		GeneratorLabel: req.GeneratorKey.Label(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		BirthMonth:     req.BirthMonth,
		BirthDay:       req.BirthDay,
		BirthYear:      req.BirthYear,
	}
	drink.SetBlueprint(blueprint)

	if err := h.store.AppendDrink(drink); err != nil {
		// Without a durable id there is nothing to return.
		logger.Error("Failed to persist generated drink", err, logger.Fields{
			"request_id":    c.GetString("request_id"),
			"generator_key": string(req.GeneratorKey),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericGenerateError})
		return
	}

	if h.cwMetrics != nil {
		h.cwMetrics.RecordGeneration(string(req.GeneratorKey), remoteUsed)
	}
	sentryMetrics.RecordGeneration(c.Request.Context(), string(req.GeneratorKey), remoteUsed, time.Since(startTime))
	logger.Info("Drink generated", logger.Fields{
		"request_id":    c.GetString("request_id"),
		"drink_id":      drink.DrinkID,
		"generator_key": string(req.GeneratorKey),
		"remote":        remoteUsed,
		"duration_ms":   time.Since(startTime).Milliseconds(),
	})

	c.JSON(http.StatusCreated, newDrinkResponse(drink))
}

// List returns every persisted drink in insertion order.
func (h *DrinkHandler) List(c *gin.Context) {
	drinks, err := h.store.ListDrinks()
	if err != nil {
		logger.Error("Failed to list drinks", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list drinks"})
		return
	}

	out := make([]DrinkResponse, 0, len(drinks))
	for i := range drinks {
		out = append(out, newDrinkResponse(&drinks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Vote increments the vote counter for a drink and appends an audit row.
// Unknown ids get a 404 and mutate nothing.
func (h *DrinkHandler) Vote(c *gin.Context) {
	drinkID := c.Param("id")

	newCount, err := h.store.IncrementVote(drinkID)
	if errors.Is(err, store.ErrDrinkNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "drink not found"})
		return
	}
	if err != nil {
		logger.Error("Failed to register vote", err, logger.Fields{
			"request_id": c.GetString("request_id"),
			"drink_id":   drinkID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to register vote"})
		return
	}

	audit := &models.VoteAudit{
		DrinkID:       drinkID,
		PreviousVotes: newCount - 1,
		NewVotes:      newCount,
		Action:        voteAction,
	}
	if err := h.store.AppendVoteAudit(audit); err != nil {
		// The vote itself landed; an audit failure is logged, not surfaced.
		logger.Error("Failed to append vote audit", err, logger.Fields{
			"request_id": c.GetString("request_id"),
			"drink_id":   drinkID,
		})
	}

	if h.cwMetrics != nil {
		h.cwMetrics.RecordVote(drinkID)
	}

	c.JSON(http.StatusOK, gin.H{"drink_id": drinkID, "vote_count": newCount})
}
