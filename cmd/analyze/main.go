package main

// Analyze one ticker from the command line:
//   go run ./cmd/analyze -ticker TSLA
//   go run ./cmd/analyze -ticker AAPL -question "How healthy is the balance sheet?"

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"stonkie-backend/internal/bootstrap"
	"stonkie-backend/internal/shared/config"
	"stonkie-backend/internal/shared/telemetry"
)

func main() {
	ticker := flag.String("ticker", "", "stock ticker symbol, e.g. TSLA")
	question := flag.String("question", "", "optional question to focus the analysis")
	flag.Parse()

	os.Exit(run(context.Background(), *ticker, *question, os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, ticker, question string, in io.Reader, out, errOut io.Writer) int {
	cfg := config.Load()
	telemetry.Init(cfg.Env)
	defer telemetry.Sync()

	if strings.TrimSpace(ticker) == "" {
		fmt.Fprint(out, "Enter stock ticker symbol to analyze (e.g., TSLA, AAPL): ")
		line, _ := bufio.NewReader(in).ReadString('\n')
		ticker = strings.TrimSpace(line)
	}
	if ticker == "" {
		fmt.Fprintln(errOut, "ticker is required")
		return 2
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "bootstrap error: %v\n", err)
		return 1
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	fmt.Fprintf(out, "Analyzing financial statements for %s...\n", strings.ToUpper(ticker))
	res, err := app.AnalysisService.Analyze(ctx, ticker, question)
	if err != nil {
		fmt.Fprintf(errOut, "Error during analysis: %v\n", err)
		return 1
	}
	if !res.Succeeded {
		fmt.Fprintf(errOut, "Analysis failed: %s\n", res.Error)
		return 1
	}

	fmt.Fprintf(out, "\n=== Financial Analysis ===\n\n%s\n", res.Text)
	if res.ArtifactKey != "" {
		fmt.Fprintf(out, "\nAnalysis saved to %s\n", res.ArtifactKey)
	}
	return 0
}
