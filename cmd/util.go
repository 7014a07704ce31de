package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"wealthsim/api"
	"wealthsim/internal/repository"
	"wealthsim/internal/service"
	"wealthsim/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	quoteRepository := repository.NewQuoteRepository()
	dividendRepository := repository.NewDividendRepository()
	watchlistRepository := repository.NewWatchlistRepository()
	historyService := service.NewHistoryService(quoteRepository, dividendRepository)

	return &api.ApiHandler{
		Db:                  dbConn,
		HistoryService:      historyService,
		WatchlistRepository: watchlistRepository,
		GptRepository:       gptRepository,
		JwtSecret:           secrets.Jwt,
	}, nil
}
