package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	Json           *bool
	DataDir        *string

	// color command
	ColorUsed *bool

	// color list
	ColorListUsed *bool

	// color add
	ColorAddUsed  *bool
	ColorAddValue *string

	// color delete
	ColorDeleteUsed  *bool
	ColorDeleteID    *string
	ColorDeleteForce *bool

	// color clear
	ColorClearUsed  *bool
	ColorClearForce *bool

	// pages command
	PagesUsed *bool

	// pages list
	PagesListUsed *bool

	// pages show
	PagesShowUsed *bool
	PagesShowURL  *string

	// pages clear
	PagesClearUsed  *bool
	PagesClearURL   *string
	PagesClearForce *bool

	// pages clear-all
	PagesClearAllUsed  *bool
	PagesClearAllForce *bool

	// menu command
	MenuUsed *bool

	// serve command
	ServeUsed *bool
	ServePort *int

	// completion command
	CompletionUsed  *bool
	CompletionShell *string
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("hilite")
	cmd.SetDescription("Highlight color coordinator")

	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Json, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd, ra.WithGlobal(true))

	ctx.DataDir, _ = ra.NewString("dir").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Data directory (default: user config dir)").
		Register(cmd, ra.WithGlobal(true))

	registerColor(cmd, ctx)
	registerPages(cmd, ctx)
	registerMenu(cmd, ctx)
	registerServe(cmd, ctx)
	registerCompletion(cmd, ctx)

	cmd.ParseOrExit(os.Args[1:])

	if *ctx.CompletionUsed {
		runCompletion(*ctx.CompletionShell, cmd)
		return
	}

	executeCommand(ctx)
}

func executeCommand(ctx *CommandContext) {
	switch {
	case *ctx.ColorListUsed:
		runColorList(*ctx.DataDir, *ctx.Json)

	case *ctx.ColorAddUsed:
		runColorAdd(*ctx.DataDir, *ctx.ColorAddValue, *ctx.Json, *ctx.NonInteractive)

	case *ctx.ColorDeleteUsed:
		runColorDelete(*ctx.DataDir, *ctx.ColorDeleteID, *ctx.ColorDeleteForce, *ctx.NonInteractive)

	case *ctx.ColorClearUsed:
		runColorClear(*ctx.DataDir, *ctx.ColorClearForce, *ctx.NonInteractive)

	case *ctx.PagesListUsed:
		runPagesList(*ctx.DataDir, *ctx.Json)

	case *ctx.PagesShowUsed:
		runPagesShow(*ctx.DataDir, *ctx.PagesShowURL, *ctx.Json)

	case *ctx.PagesClearUsed:
		runPagesClear(*ctx.DataDir, *ctx.PagesClearURL, *ctx.PagesClearForce, *ctx.NonInteractive)

	case *ctx.PagesClearAllUsed:
		runPagesClearAll(*ctx.DataDir, *ctx.PagesClearAllForce, *ctx.NonInteractive)

	case *ctx.MenuUsed:
		runMenu(*ctx.DataDir, *ctx.Json)

	case *ctx.ServeUsed:
		runServe(*ctx.DataDir, *ctx.ServePort)
	}
}
