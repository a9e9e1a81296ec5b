package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"skylift/internal/ai"
	"skylift/internal/config"
	"skylift/internal/modules/chat"
	"skylift/internal/modules/lookup"
)

// Interactive console loop against the real Gemini provider and lookup
// process. Conversation state lives in memory; no Redis or Postgres needed.
func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	logger := zap.NewNop()
	gateway := lookup.NewProcessGateway(cfg.Lookup, logger)
	engine := chat.NewEngine(provider, gateway, nil, logger, time.Second)

	conv := chat.NewConversation("demo")
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Skylift demo. Describe your trip (e.g. \"glasgow to chennai, sep25 to oct2, 2 people\"). Ctrl-D to quit.")
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}

		result := engine.SubmitUserMessage(ctx, conv, text)
		fmt.Printf("Skylift: %s\n", result.Reply)

		if result.SearchResults != nil {
			fmt.Printf("(%d offers", result.SearchResults.TotalResults)
			if result.GoogleFlightsURL != "" {
				fmt.Printf(", %s", result.GoogleFlightsURL)
			}
			fmt.Println(")")
		}
	}
}
