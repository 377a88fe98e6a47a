package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"scrapesage"
	"scrapesage/fs"
	"scrapesage/gemini"
	scrapeslog "scrapesage/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services may be preset for end-to-end testing. When nil, Run wires
	// the real file store and Gemini scraper.
	Store   scrapesage.StateStore
	Scraper scrapesage.Scraper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the interpreter with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scrapesage"),
		kong.Description("Interactive grounded-search interpreter scoped to your preferred sites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Store == nil {
		path := cli.State
		if path == "" {
			path = defaultStatePath()
		}
		m.Store = scrapeslog.NewStateStore(fs.NewStateStore(path), logger)
	}

	if m.Scraper == nil {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		scraper := gemini.NewScraper(client, cli.Model)
		scraper.SetLogger(func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		})
		m.Scraper = scrapeslog.NewScraper(scraper, logger)
	}

	state, err := m.Store.Load(ctx)
	if err != nil {
		// Malformed state is not fatal: log it and start from defaults.
		logger.Error("starting with default state", "error", scrapesage.ErrorMessage(err))
		state = scrapesage.NewSessionState()
	}

	repl := &REPL{
		Dispatcher: &Dispatcher{
			State:   state,
			Store:   m.Store,
			Scraper: &spinnerScraper{next: m.Scraper, w: stderr},
		},
		Stdin:  stdin,
		Stdout: stdout,
	}
	return repl.Run(ctx)
}

// defaultStatePath returns the state file location: SCRAPESAGE_STATE if
// set, otherwise ~/.scrapesage/state.json, falling back to the working
// directory when the home directory is unavailable.
func defaultStatePath() string {
	if path := os.Getenv("SCRAPESAGE_STATE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "scrapesage.json"
	}
	return filepath.Join(home, ".scrapesage", "state.json")
}
