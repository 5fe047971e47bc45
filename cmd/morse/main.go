package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/DaanHessen/morse-tui/internal/morse"
	"github.com/DaanHessen/morse-tui/internal/ui"
	"github.com/DaanHessen/morse-tui/internal/util"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	settings, err := util.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := createCliApp(settings)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupSignalHandling(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()
}

func createCliApp(settings util.Config) *cli.App {
	return &cli.App{
		Name:    "morse",
		Usage:   "Translate text to Morse code and back",
		Version: version,
		Commands: []*cli.Command{
			createTranslateCommand("encode", "Encode plain text to Morse", settings),
			createTranslateCommand("decode", "Decode a Morse string to text", settings),
			{
				Name:  "chart",
				Usage: "Print the Morse reference chart",
				Action: func(c *cli.Context) error {
					renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
					if err != nil {
						fmt.Fprint(c.App.Writer, morse.Chart())
						return nil
					}
					out, err := renderer.Render(morse.Chart())
					if err != nil {
						out = morse.Chart()
					}
					fmt.Fprint(c.App.Writer, out)
					return nil
				},
			},
			{
				Name:  "tui",
				Usage: "Open the interactive translator",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "theme", Value: settings.Theme, Usage: "color theme: catppuccin|dracula|gruvbox"},
				},
				Action: func(c *cli.Context) error {
					settings.Theme = c.String("theme")
					return ui.Run(c.Context, settings, version)
				},
			},
		},
	}
}

func createTranslateCommand(name, usage string, settings util.Config) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[input]",
		Flags:     codecFlags(settings),
		Action: func(c *cli.Context) error {
			cfg, err := codecFromFlags(c)
			if err != nil {
				return err
			}
			input, err := readInput(c)
			if err != nil {
				return err
			}
			tr := morse.NewTranslator()
			var out string
			if name == "encode" {
				out, err = tr.Encode(input, cfg)
			} else {
				out, err = tr.Decode(input, cfg)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, out)
			return nil
		},
	}
}

func codecFlags(settings util.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "unknown", Aliases: []string{"u"}, Value: settings.Policy, Usage: "unknown-symbol policy: error|ignore|replace"},
		&cli.StringFlag{Name: "replacement", Aliases: []string{"r"}, Value: settings.Replacement, Usage: "placeholder used under the replace policy"},
		&cli.BoolFlag{Name: "preserve-case", Value: settings.PreserveCase, Usage: "skip the uppercase fold before encoding"},
		&cli.StringFlag{Name: "letter-delim", Aliases: []string{"l"}, Value: settings.LetterDelim, Usage: "delimiter between tokens within a word"},
		&cli.StringFlag{Name: "word-delim", Aliases: []string{"w"}, Value: settings.WordDelim, Usage: "delimiter between encoded words"},
	}
}

func codecFromFlags(c *cli.Context) (morse.Config, error) {
	policy := morse.UnknownPolicy(c.String("unknown"))
	if !policy.Valid() {
		return morse.Config{}, fmt.Errorf("unknown policy %q (want error|ignore|replace)", policy)
	}
	return morse.DefaultConfig(
		morse.WithPolicy(policy),
		morse.WithReplacement(c.String("replacement")),
		morse.WithPreserveCase(c.Bool("preserve-case")),
		morse.WithLetterDelimiter(c.String("letter-delim")),
		morse.WithWordDelimiter(c.String("word-delim")),
	), nil
}

// readInput takes the joined command arguments, or stdin when none are given.
func readInput(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
