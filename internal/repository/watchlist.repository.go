package repository

import (
	"database/sql"
	"fmt"
	"time"
	"wealthsim/internal/db/models/postgres/public/model"
	. "wealthsim/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type WatchlistRepository interface {
	Add(tx *sql.Tx, userID uuid.UUID, symbol string, note *string) (*model.WatchlistItem, error)
	Remove(tx *sql.Tx, userID, watchlistItemID uuid.UUID) error
	List(tx *sql.Tx, userID uuid.UUID) ([]model.WatchlistItem, error)
}

func NewWatchlistRepository() WatchlistRepository {
	return watchlistRepositoryHandler{}
}

type watchlistRepositoryHandler struct{}

func (h watchlistRepositoryHandler) Add(tx *sql.Tx, userID uuid.UUID, symbol string, note *string) (*model.WatchlistItem, error) {
	item := model.WatchlistItem{
		UserID:    userID,
		Symbol:    symbol,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}

	query := WatchlistItem.
		INSERT(WatchlistItem.MutableColumns).
		MODEL(item).
		RETURNING(WatchlistItem.AllColumns)

	out := model.WatchlistItem{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to add watchlist item: %w", err)
	}

	return &out, nil
}

func (h watchlistRepositoryHandler) Remove(tx *sql.Tx, userID, watchlistItemID uuid.UUID) error {
	query := WatchlistItem.
		DELETE().
		WHERE(
			AND(
				WatchlistItem.WatchlistItemID.EQ(UUID(watchlistItemID)),
				WatchlistItem.UserID.EQ(UUID(userID)),
			),
		)

	result, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("watchlist item %s not found", watchlistItemID)
	}

	return nil
}

func (h watchlistRepositoryHandler) List(tx *sql.Tx, userID uuid.UUID) ([]model.WatchlistItem, error) {
	query := WatchlistItem.
		SELECT(WatchlistItem.AllColumns).
		WHERE(WatchlistItem.UserID.EQ(UUID(userID))).
		ORDER_BY(WatchlistItem.CreatedAt.ASC())

	out := []model.WatchlistItem{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}

	return out, nil
}
