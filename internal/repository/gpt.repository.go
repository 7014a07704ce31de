package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	ConstructMarketAnalysis(ctx context.Context, prompt string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const systemPrompt = `
You are a financial analyst assistant for a long-term passive investing dashboard. The user follows a periodic-contribution buy-and-hold strategy on broad index ETFs. You will receive a summary of a simulation run - historical backtest metrics or Monte Carlo projection bands - plus recent price statistics for the underlying asset.

Write a short plain-language analysis of the results. Cover:
- what the headline metrics (CAGR, max drawdown, sharpe ratio, percentile bands) say about the plan
- how the contribution schedule interacted with the price path
- one or two caveats about extrapolating the results forward

Do not give personalized financial advice, recommend specific trades, or predict prices. Keep the response under 300 words.
`

func (h gptRepositoryHandler) ConstructMarketAnalysis(ctx context.Context, prompt string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send gpt request: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt response contained no choices")
	}

	return res.Choices[0].Message.Content, nil
}
