package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/html2ans"
	"github.com/fwojciec/html2ans/sqlite"
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
	// Config file path. Set before calling Run().
	ConfigPath string

	// Database path. Overrides the config file when set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Injected services for end-to-end testing. The database is opened
	// when nil.
	StoryService html2ans.StoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		DBPath:     os.Getenv("HTML2ANS_DB"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set HTML2ANS_CONFIG to use a different config file\n")
		return err
	}

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("html2ans"),
		kong.Description("Convert HTML documents into ANS content elements."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'html2ans --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Only storage commands open the database
	if needsStorage(cmd, cli) {
		stories := m.StoryService
		if stories == nil {
			path := m.DBPath
			if path == "" {
				path = cfg.DB
			}
			if path == "" {
				path = defaultDBPath()
			}

			m.DB = sqlite.NewDB(path)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set HTML2ANS_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", path, err)
			}
			defer m.Close()

			stories = sqlite.NewStoryService(m.DB)
		}
		deps.Stories = stories
	}

	return kongCtx.Run(deps)
}

func needsStorage(cmd string, cli *CLI) bool {
	switch cmd {
	case "list", "show", "delete":
		return true
	case "convert":
		return cli.Convert.Save
	}
	return false
}
