package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/olympus/internal/smoke"
	"github.com/okian/olympus/pkg/logger"
)

const (
	defaultWorkers  = 2 // multiplier for runtime.NumCPU()
	defaultRunLimit = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", smoke.DefaultBaseURL, "Base URL of the service")
		workers = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent page fetches")
		timeout = flag.Duration("timeout", smoke.DefaultTimeout, "HTTP request timeout")
		format  = flag.String("log-format", "text", "Log format: text or json")
		verbose = flag.Bool("verbose", false, "Log every checked page")
	)
	flag.Parse()

	if err := logger.Init(logger.WithFormat(*format)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunLimit)
	defer cancel()

	_, err := smoke.Run(ctx, &smoke.Config{
		BaseURL: *baseURL,
		Workers: *workers,
		Timeout: *timeout,
		Verbose: *verbose,
	})
	if err != nil {
		os.Stderr.WriteString("smoke check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
