package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulkeeper/pulkeeper/internal/ai"
	"github.com/pulkeeper/pulkeeper/internal/config"
	"github.com/pulkeeper/pulkeeper/internal/domain"
	"github.com/pulkeeper/pulkeeper/internal/logger"
	"github.com/pulkeeper/pulkeeper/internal/numword"
	"github.com/pulkeeper/pulkeeper/internal/resolver"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "resolve":
		runResolve(log)
	case "normalize":
		runNormalize(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("PulKeeper CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  pulkeeper <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  resolve    Resolve a free-text message into a transaction")
	fmt.Println("  normalize  Extract an amount from text without resolving")
	fmt.Println("  help       Show this help message")
	fmt.Println("\nRun 'pulkeeper <command> -h' for more information on a command.")
}

// offlineAnalyzer stands in for the AI client when -no-ai is set. Every call
// fails soft, which forces the resolver onto its local fallbacks.
type offlineAnalyzer struct{}

func (offlineAnalyzer) Analyze(ctx context.Context, text string) (domain.ParsedTransaction, error) {
	return domain.ParsedTransaction{}, domain.ErrAIUnavailable
}

func runResolve(log zerolog.Logger) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	noAI := fs.Bool("no-ai", false, "resolve locally without calling the AI service")
	fs.Parse(os.Args[2:])

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		log.Fatal().Msg("Error: message text is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	var analyzer resolver.Analyzer = offlineAnalyzer{}
	if !*noAI {
		analyzer = ai.NewClient(ai.Config{
			Endpoint:    cfg.AI.Endpoint,
			APIKey:      cfg.AI.APIKey,
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			Timeout:     time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
			Attempts:    uint(cfg.AI.Attempts),
		}, log)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	tx, err := resolver.New(analyzer, log).Resolve(ctx, text)
	if err != nil {
		log.Fatal().Err(err).Msg("Resolution failed")
	}

	direction := "expense"
	if tx.IsIncome {
		direction = "income"
	}

	fmt.Printf("Title:     %s\n", tx.Title)
	fmt.Printf("Amount:    %d\n", tx.Amount)
	fmt.Printf("Category:  %s\n", tx.Category)
	fmt.Printf("Direction: %s\n", direction)
	fmt.Printf("Date:      %s\n", tx.Date)
}

func runNormalize(log zerolog.Logger) {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	fs.Parse(os.Args[2:])

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		log.Fatal().Msg("Error: text is required")
	}

	amount, ok := numword.Normalize(text)
	if !ok {
		fmt.Println("No amount found.")
		os.Exit(1)
	}

	fmt.Println(amount)
}
