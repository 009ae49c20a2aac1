// Command task lists the tasks stored in the todo API for the API key in
// task.ini.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/yukikurage/todo-api/internal/client"
	"github.com/yukikurage/todo-api/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	host       string
	page       int
	verbose    bool
	timeout    time.Duration
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("task", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", client.DefaultCredentialsPath, "INI file holding the apikey (and optional host)")
	fs.StringVar(&opts.host, "host", "", "API base URL (default from config, then "+client.DefaultHost+")")
	fs.IntVarP(&opts.page, "page", "p", 0, "zero-based page to list")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	fs.DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.page < 0 {
		return nil, fmt.Errorf("--page must be zero or greater, got %d", opts.page)
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	level := "info"
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(stderr, level, "text")
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	creds, err := client.LoadCredentials(opts.configPath)
	if err != nil {
		logger.Error("failed to read credentials", slog.Any("error", err))
		return 1
	}

	host := creds.Host
	if opts.host != "" {
		host = opts.host
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	api := client.NewHTTPClient(host, creds.APIKey, &http.Client{}, logger)
	page, err := api.List(ctx, opts.page)
	if err != nil {
		logger.Error("failed to list tasks", slog.Any("error", err))
		return 1
	}

	logger.Info("retrieved tasks",
		slog.Int("count", len(page.Items)),
		slog.Int("page", page.PageIndex),
		slog.Int64("total", page.TotalCount),
	)

	if err := client.NewPrinter(stdout).PrintTasks(page); err != nil {
		logger.Error("failed to print tasks", slog.Any("error", err))
		return 1
	}
	return 0
}
