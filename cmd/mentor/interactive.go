package main

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/joboneact/mentor/pkg/assistant"
)

// runInteractive asks for a task and its inputs with a one-shot form, then
// runs the task exactly like the corresponding subcommand would.
func runInteractive(opts options) error {
	var task string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What do you need?").
			Options(
				huh.NewOption("Explain a concept", "explain"),
				huh.NewOption("Debug failing code", "debug"),
				huh.NewOption("Generate code", "generate"),
			).
			Value(&task),
	)).Run(); err != nil {
		return err
	}

	switch task {
	case "explain":
		var topic string
		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Topic").Value(&topic),
		)).Run(); err != nil {
			return err
		}

		return runTask(opts, func(ctx context.Context, a *assistant.Assistant) (string, error) {
			return a.Explain(ctx, topic)
		})

	case "debug":
		var code, errText string
		if err := huh.NewForm(huh.NewGroup(
			huh.NewText().Title("Paste the failing code").Value(&code),
			huh.NewText().Title("Error output").Value(&errText),
		)).Run(); err != nil {
			return err
		}

		return runTask(opts, func(ctx context.Context, a *assistant.Assistant) (string, error) {
			return a.DebugCode(ctx, code, errText)
		})

	default:
		var description string
		if err := huh.NewForm(huh.NewGroup(
			huh.NewText().Title("Describe the code you need").Value(&description),
		)).Run(); err != nil {
			return err
		}

		return runTask(opts, func(ctx context.Context, a *assistant.Assistant) (string, error) {
			return a.GenerateCode(ctx, description)
		})
	}
}
