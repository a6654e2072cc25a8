package cli

import (
	"fmt"
	"os"

	"github.com/amterp/hilite/internal/api"
	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/prompt"
)

// App holds the wired dependencies for the CLI.
type App struct {
	Ctx      *api.AppContext
	Prompter prompt.Prompter
	Settings *model.Settings
}

// NewApp wires up an App for the given data directory.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(dataDir string, interactive bool) (*App, error) {
	ctx, err := api.BuildAppContext(dataDir)
	if err != nil {
		return nil, err
	}

	settings, err := ctx.SettingsStore.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &model.Settings{}
	}

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		Ctx:      ctx,
		Prompter: prompter,
		Settings: settings,
	}, nil
}

// Fatal prints an error and exits.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
