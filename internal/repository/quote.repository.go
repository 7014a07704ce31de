package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
	"wealthsim/internal/db/models/postgres/public/model"
	. "wealthsim/internal/db/models/postgres/public/table"
	"wealthsim/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type QuoteCache map[string][]domain.PricePoint

type QuoteRepository interface {
	Add(*sql.Tx, []model.QuoteHistory) error
	List(tx *sql.Tx, symbol string, start, end time.Time) ([]domain.PricePoint, error)
	LatestDate(tx *sql.Tx, symbol string) (*time.Time, error)
}

func NewQuoteRepository() QuoteRepository {
	return &quoteRepositoryHandler{
		Cache:     make(QuoteCache),
		ReadMutex: &sync.RWMutex{},
	}
}

type quoteRepositoryHandler struct {
	Cache     QuoteCache
	ReadMutex *sync.RWMutex
}

func (h *quoteRepositoryHandler) getFromCache(symbol string, start, end time.Time) []domain.PricePoint {
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	cached, ok := h.Cache[symbol]
	if !ok || len(cached) == 0 {
		return nil
	}
	// only serve the cache when it covers the requested range
	if cached[0].Date.After(start) || cached[len(cached)-1].Date.Before(end) {
		return nil
	}
	out := []domain.PricePoint{}
	for _, p := range cached {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (h *quoteRepositoryHandler) addToCache(symbol string, points []domain.PricePoint) {
	h.ReadMutex.Lock()
	h.Cache[symbol] = points
	h.ReadMutex.Unlock()
}

func (h *quoteRepositoryHandler) Add(tx *sql.Tx, quotes []model.QuoteHistory) error {
	if len(quotes) == 0 {
		return nil
	}

	query := QuoteHistory.
		INSERT(QuoteHistory.MutableColumns).
		MODELS(quotes).
		ON_CONFLICT(
			QuoteHistory.Symbol, QuoteHistory.Date,
		).DO_UPDATE(
		SET(
			QuoteHistory.Open.SET(QuoteHistory.EXCLUDED.Open),
			QuoteHistory.High.SET(QuoteHistory.EXCLUDED.High),
			QuoteHistory.Low.SET(QuoteHistory.EXCLUDED.Low),
			QuoteHistory.Close.SET(QuoteHistory.EXCLUDED.Close),
			QuoteHistory.AdjClose.SET(QuoteHistory.EXCLUDED.AdjClose),
			QuoteHistory.Volume.SET(QuoteHistory.EXCLUDED.Volume),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add quotes to db: %w", err)
	}

	h.ReadMutex.Lock()
	// writes invalidate the whole symbol, the next read repopulates
	for _, q := range quotes {
		delete(h.Cache, q.Symbol)
	}
	h.ReadMutex.Unlock()

	return nil
}

func (h *quoteRepositoryHandler) List(tx *sql.Tx, symbol string, start, end time.Time) ([]domain.PricePoint, error) {
	if cached := h.getFromCache(symbol, start, end); cached != nil {
		return cached, nil
	}

	query := QuoteHistory.
		SELECT(QuoteHistory.AllColumns).
		WHERE(
			AND(
				QuoteHistory.Symbol.EQ(String(symbol)),
				QuoteHistory.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(QuoteHistory.Date.ASC())

	result := []model.QuoteHistory{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes for %s: %w", symbol, err)
	}

	out := make([]domain.PricePoint, len(result))
	for i, q := range result {
		out[i] = domain.PricePoint{
			Date:     q.Date,
			Open:     q.Open,
			High:     q.High,
			Low:      q.Low,
			Close:    q.Close,
			AdjClose: q.AdjClose,
			Volume:   q.Volume,
		}
	}
	h.addToCache(symbol, out)

	return out, nil
}

func (h *quoteRepositoryHandler) LatestDate(tx *sql.Tx, symbol string) (*time.Time, error) {
	query := QuoteHistory.
		SELECT(QuoteHistory.Date).
		WHERE(QuoteHistory.Symbol.EQ(String(symbol))).
		ORDER_BY(QuoteHistory.Date.DESC()).
		LIMIT(1)

	result := model.QuoteHistory{}
	err := query.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to query latest quote date for %s: %w", symbol, err)
	}

	return &result.Date, nil
}
