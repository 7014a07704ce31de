package internal

import (
	"database/sql"
	"fmt"
	"os"
	"time"
	"wealthsim/internal/db/models/postgres/public/model"
	"wealthsim/internal/repository"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// IngestDividends loads a dividend csv (columns: symbol, exDate, amount)
// and upserts the rows. Most distribution calendars are published as
// spreadsheets, so csv is the ingest format rather than an API pull.
func IngestDividends(
	tx *sql.Tx,
	path string,
	dividendRepository repository.DividendRepository,
) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dividend csv: %w", err)
	}
	defer f.Close()

	type row struct {
		Symbol string `csv:"symbol"`
		ExDate string `csv:"exDate"`
		Amount string `csv:"amount"`
	}
	rows := []row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("failed to parse dividend csv: %w", err)
	}

	models := []model.Dividend{}
	for _, r := range rows {
		exDate, err := time.Parse(time.DateOnly, r.ExDate)
		if err != nil {
			return fmt.Errorf("failed to parse dividend date %q: %w", r.ExDate, err)
		}
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return fmt.Errorf("failed to parse dividend amount %q: %w", r.Amount, err)
		}
		if !amount.IsPositive() {
			return fmt.Errorf("dividend for %s on %s has non-positive amount", r.Symbol, r.ExDate)
		}
		models = append(models, model.Dividend{
			Symbol: r.Symbol,
			ExDate: exDate,
			Amount: amount.InexactFloat64(),
		})
	}

	err = dividendRepository.Add(tx, models)
	if err != nil {
		return err
	}

	return nil
}
