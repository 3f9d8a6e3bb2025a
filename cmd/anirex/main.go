package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"anirex/internal/apiclient"
	"anirex/internal/config"
	"anirex/internal/identity"
	"anirex/internal/loader"
	"anirex/internal/logging"
	"anirex/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	config.LoadEnvFiles()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "anirex",
		Usage: "browse, search and review anime",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Value: "http://localhost:8080", Usage: "anirex API base URL", EnvVars: []string{"ANIREX_API_URL"}},
			&cli.StringFlag{Name: "email", Usage: "sign in with this e-mail on start", EnvVars: []string{"ANIREX_EMAIL"}},
			&cli.StringFlag{Name: "password", Usage: "password for --email", EnvVars: []string{"ANIREX_PASSWORD"}},
			&cli.StringFlag{Name: "log-level", Value: "warn", EnvVars: []string{"LOG_LEVEL"}},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			{
				Name:   "tui",
				Usage:  "open the interactive browser",
				Flags:  []cli.Flag{&cli.IntFlag{Name: "threshold", Value: loader.DefaultThreshold, Usage: "rows from the end that trigger the next page"}},
				Action: runTUI,
			},
			{
				Name:      "browse",
				Usage:     "print a category feed",
				ArgsUsage: "[trending|popular|upcoming|all_time]",
				Flags:     []cli.Flag{&cli.IntFlag{Name: "pages", Value: 1, Usage: "pages to fetch"}},
				Action:    runBrowse,
			},
			{
				Name:      "search",
				Usage:     "search the catalog",
				ArgsUsage: "[text]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "genre", Usage: "genre name, e.g. Action"},
					&cli.Float64Flag{Name: "min-score", Usage: "minimum score, 0 to 10"},
					&cli.IntFlag{Name: "year", Usage: "release year"},
					&cli.IntFlag{Name: "pages", Value: 1, Usage: "pages to fetch"},
				},
				Action: runSearch,
			},
			{
				Name:  "register",
				Usage: "create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "display name"},
				},
				Action: runRegister,
			},
		},
	}
}

func newClient(c *cli.Context) (*apiclient.Client, *identity.Cell) {
	logger := logging.New(logging.Config{Level: c.String("log-level"), Format: "text", Output: os.Stderr})
	c.Context = logger.WithContext(c.Context)

	cell := identity.NewCell()
	return apiclient.New(c.String("api"), cell), cell
}

// session builds the API client and signs in when credentials are given.
func session(c *cli.Context) (*apiclient.Client, *identity.Cell, error) {
	client, cell := newClient(c)
	if email := c.String("email"); email != "" {
		u, err := client.Login(c.Context, email, c.String("password"), false)
		if err != nil {
			return nil, nil, fmt.Errorf("sign in: %w", err)
		}
		zerolog.Ctx(c.Context).Debug().Str("user_id", u.ID).Msg("signed in")
	}
	return client, cell, nil
}

func runTUI(c *cli.Context) error {
	client, cell, err := session(c)
	if err != nil {
		return err
	}
	threshold := c.Int("threshold")
	if threshold <= 0 {
		threshold = loader.DefaultThreshold
	}

	app := ui.NewApp(c.Context, client, cell, ui.Config{Threshold: threshold, FetchTimeout: loader.DefaultFetchTimeout})
	defer app.Close()
	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(c.Context)).Run()
	return err
}

func runRegister(c *cli.Context) error {
	client, _ := newClient(c)
	email, password := c.String("email"), c.String("password")
	if email == "" || password == "" {
		return cli.Exit("register needs --email and --password", 2)
	}
	u, err := client.Register(c.Context, email, password, c.String("name"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "registered %s\n", u.Email)
	return nil
}
