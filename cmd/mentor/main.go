package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joboneact/mentor/pkg/assistant"
	"github.com/joboneact/mentor/pkg/engine"
)

type options struct {
	configPath string
	envPath    string
}

// addCommonFlags registers the flags shared by every subcommand.
func addCommonFlags(fs *flag.FlagSet) *options {
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "path to YAML configuration file (default: environment variables)")
	fs.StringVar(&opts.envPath, "env", ".env", "path to .env file (ignored if absent)")
	return opts
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "explain":
			fs := flag.NewFlagSet("explain", flag.ExitOnError)
			fs.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: mentor explain [flags] <topic>\n\nAsk for an explanation of a programming concept.\n\nFlags:\n")
				fs.PrintDefaults()
			}
			opts := addCommonFlags(fs)
			_ = fs.Parse(os.Args[2:])

			topic := strings.TrimSpace(strings.Join(fs.Args(), " "))
			if topic == "" {
				fs.Usage()
				os.Exit(2)
			}

			exitOn(runTask(*opts, func(ctx context.Context, a *assistant.Assistant) (string, error) {
				return a.Explain(ctx, topic)
			}))
			return

		case "debug":
			fs := flag.NewFlagSet("debug", flag.ExitOnError)
			fs.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: mentor debug [flags]\n\nAsk for help with failing code. Reads the code from -file, or from stdin\nwhen -file is not given.\n\nFlags:\n")
				fs.PrintDefaults()
			}
			opts := addCommonFlags(fs)
			file := fs.String("file", "", "path to the file containing the failing code")
			errText := fs.String("error", "", "compiler or runtime error text")
			_ = fs.Parse(os.Args[2:])

			code, err := readCode(*file)
			exitOn(err)

			exitOn(runTask(*opts, func(ctx context.Context, a *assistant.Assistant) (string, error) {
				return a.DebugCode(ctx, code, *errText)
			}))
			return

		case "generate":
			fs := flag.NewFlagSet("generate", flag.ExitOnError)
			fs.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: mentor generate [flags] <description>\n\nAsk for code matching a description.\n\nFlags:\n")
				fs.PrintDefaults()
			}
			opts := addCommonFlags(fs)
			_ = fs.Parse(os.Args[2:])

			description := strings.TrimSpace(strings.Join(fs.Args(), " "))
			if description == "" {
				fs.Usage()
				os.Exit(2)
			}

			exitOn(runTask(*opts, func(ctx context.Context, a *assistant.Assistant) (string, error) {
				return a.GenerateCode(ctx, description)
			}))
			return
		}
	}

	fs := flag.NewFlagSet("mentor", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mentor <command> [flags]\n       mentor [flags]\n\nCommands:\n  explain   Explain a programming concept\n  debug     Help with failing code\n  generate  Generate code from a description\n\nWithout a command, mentor asks interactively.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	opts := addCommonFlags(fs)
	_ = fs.Parse(os.Args[1:])

	exitOn(runInteractive(*opts))
}

// runTask loads configuration, builds the assistant, runs one task, and
// prints the rendered reply.
func runTask(opts options, task func(context.Context, *assistant.Assistant) (string, error)) error {
	if err := loadDotEnv(opts.envPath); err != nil {
		return err
	}

	var cfg engine.Config
	if opts.configPath != "" {
		var err error
		cfg, err = engine.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
	} else {
		cfg = engine.FromEnv()
	}

	asst, err := engine.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintln(os.Stderr, dimStyle.Render("asking "+cfg.Kind+"..."))

	reply, err := task(ctx, asst)
	if err != nil {
		return err
	}

	fmt.Print(renderMarkdown(reply))
	return nil
}

// readCode returns the contents of path, or stdin when path is empty.
func readCode(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own -file flag
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func exitOn(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
	os.Exit(1)
}
