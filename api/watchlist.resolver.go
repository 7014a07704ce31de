package api

import (
	"fmt"
	"time"
	"wealthsim/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type watchlistItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Symbol    string    `json:"symbol"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toWatchlistItemResponse(item model.WatchlistItem) watchlistItemResponse {
	return watchlistItemResponse{
		ID:        item.WatchlistItemID,
		Symbol:    item.Symbol,
		Note:      item.Note,
		CreatedAt: item.CreatedAt,
	}
}

func (m ApiHandler) listWatchlist(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	items, err := m.WatchlistRepository.List(tx, userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]watchlistItemResponse, len(items))
	for i, item := range items {
		out[i] = toWatchlistItemResponse(item)
	}
	c.JSON(200, gin.H{"items": out})
}

type addWatchlistItemRequest struct {
	Symbol string  `json:"symbol"`
	Note   *string `json:"note"`
}

func (m ApiHandler) addWatchlistItem(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody addWatchlistItemRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	item, err := m.WatchlistRepository.Add(tx, userID, requestBody.Symbol, requestBody.Note)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, toWatchlistItemResponse(*item))
}

func (m ApiHandler) removeWatchlistItem(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid watchlist item id: %w", err), c, 400)
		return
	}

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	if err := m.WatchlistRepository.Remove(tx, userID, itemID); err != nil {
		returnErrorJson(err, c)
		return
	}
	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"removed": itemID})
}
