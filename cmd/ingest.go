package cmd

import (
	"context"
	"fmt"
	"time"
	"wealthsim/internal"
	"wealthsim/internal/repository"

	"github.com/spf13/cobra"
)

var (
	ingestSymbol       string
	ingestFrom         string
	ingestDividendsCsv string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch and store quotes for a symbol, or load a dividend csv",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ingestSymbol == "" && ingestDividendsCsv == "" {
			return fmt.Errorf("nothing to do: pass --symbol and/or --dividends")
		}

		handler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(handler)

		tx, err := handler.Db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if ingestSymbol != "" {
			from := time.Now().UTC().AddDate(-20, 0, 0)
			if ingestFrom != "" {
				from, err = time.Parse(time.DateOnly, ingestFrom)
				if err != nil {
					return fmt.Errorf("failed to parse --from: %w", err)
				}
			}
			if err := handler.HistoryService.Sync(context.Background(), tx, ingestSymbol, from); err != nil {
				return err
			}
		}

		if ingestDividendsCsv != "" {
			if err := internal.IngestDividends(tx, ingestDividendsCsv, repository.NewDividendRepository()); err != nil {
				return err
			}
		}

		return tx.Commit()
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestSymbol, "symbol", "", "symbol to fetch quotes for")
	ingestCmd.Flags().StringVar(&ingestFrom, "from", "", "earliest quote date to fetch (YYYY-MM-DD), default 20 years back")
	ingestCmd.Flags().StringVar(&ingestDividendsCsv, "dividends", "", "path to a dividend csv (symbol, exDate, amount)")
}
