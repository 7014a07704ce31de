package repository

import (
	"database/sql"
	"fmt"
	"time"
	"wealthsim/internal/db/models/postgres/public/model"
	. "wealthsim/internal/db/models/postgres/public/table"
	"wealthsim/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
)

type DividendRepository interface {
	Add(*sql.Tx, []model.Dividend) error
	List(tx *sql.Tx, symbol string, start, end time.Time) ([]domain.DividendEvent, error)
}

func NewDividendRepository() DividendRepository {
	return dividendRepositoryHandler{}
}

type dividendRepositoryHandler struct{}

func (h dividendRepositoryHandler) Add(tx *sql.Tx, dividends []model.Dividend) error {
	if len(dividends) == 0 {
		return nil
	}

	query := Dividend.
		INSERT(Dividend.MutableColumns).
		MODELS(dividends).
		ON_CONFLICT(
			Dividend.Symbol, Dividend.ExDate,
		).DO_UPDATE(
		SET(
			Dividend.Amount.SET(Dividend.EXCLUDED.Amount),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add dividends to db: %w", err)
	}

	return nil
}

func (h dividendRepositoryHandler) List(tx *sql.Tx, symbol string, start, end time.Time) ([]domain.DividendEvent, error) {
	query := Dividend.
		SELECT(Dividend.AllColumns).
		WHERE(
			AND(
				Dividend.Symbol.EQ(String(symbol)),
				Dividend.ExDate.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(Dividend.ExDate.ASC())

	result := []model.Dividend{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list dividends for %s: %w", symbol, err)
	}

	out := make([]domain.DividendEvent, len(result))
	for i, d := range result {
		out[i] = domain.DividendEvent{
			Date:   d.ExDate,
			Amount: d.Amount,
		}
	}

	return out, nil
}
