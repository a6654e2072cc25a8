package cli

import (
	"fmt"
	"strconv"

	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/service"
	"github.com/amterp/ra"
)

func registerColor(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("color")
	cmd.SetDescription("Manage the custom color collection")

	listCmd := ra.NewCmd("list")
	listCmd.SetDescription("List colors")
	ctx.ColorListUsed, _ = cmd.RegisterCmd(listCmd)

	addCmd := ra.NewCmd("add")
	addCmd.SetDescription("Add a custom color")
	ctx.ColorAddValue, _ = ra.NewString("color").
		SetOptional(true).
		SetUsage("Hex color value, e.g. #FFAA00").
		Register(addCmd)
	ctx.ColorAddUsed, _ = cmd.RegisterCmd(addCmd)

	deleteCmd := ra.NewCmd("delete")
	deleteCmd.SetDescription("Delete a color by id or number")
	ctx.ColorDeleteID, _ = ra.NewString("color").
		SetUsage("Color ID or number").
		SetCompletionFunc(completeColors).
		Register(deleteCmd)
	ctx.ColorDeleteForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(deleteCmd)
	ctx.ColorDeleteUsed, _ = cmd.RegisterCmd(deleteCmd)

	clearCmd := ra.NewCmd("clear")
	clearCmd.SetDescription("Delete all custom colors")
	ctx.ColorClearForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(clearCmd)
	ctx.ColorClearUsed, _ = cmd.RegisterCmd(clearCmd)

	ctx.ColorUsed, _ = parent.RegisterCmd(cmd)
}

func runColorList(dataDir string, jsonOutput bool) {
	app, err := NewApp(dataDir, true)
	if err != nil {
		Fatal(err)
	}

	colors, err := app.Ctx.ColorService.Load()
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewColorsOutput(colors)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(colors) == 0 {
		PrintInfo("No colors")
		return
	}

	for _, color := range colors {
		name := app.Ctx.Catalog.Resolve(color.NameKey)
		fmt.Printf("%s %2d  %s  %s  %s\n",
			ColorSwatch(color.Color),
			color.ColorNumber,
			color.Color,
			name,
			RenderMuted(color.ID))
	}
}

func runColorAdd(dataDir, value string, jsonOutput, nonInteractive bool) {
	app, err := NewApp(dataDir, !nonInteractive)
	if err != nil {
		Fatal(err)
	}

	if _, err := app.Ctx.ColorService.Load(); err != nil {
		Fatal(err)
	}

	if value == "" {
		if nonInteractive {
			Fatal(fmt.Errorf("color value is required in non-interactive mode"))
		}
		value, err = app.Prompter.Input("Hex color (e.g. #FFAA00)", "")
		if err != nil {
			Fatal(err)
		}
	}

	record, colors, err := app.Ctx.ColorService.Add(value)
	if err != nil {
		if hilerr.IsCapacityExceeded(err) {
			Fatal(fmt.Errorf("collection is full (%d colors max)", model.MaxCustomColors))
		}
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(ColorOutput{Color: *record, Colors: colors}); err != nil {
			Fatal(err)
		}
		return
	}

	PrintSuccess("Added color %s %s as number %d (%s)",
		ColorSwatch(record.Color), record.Color, record.ColorNumber, RenderID(record.ID))
}

func runColorDelete(dataDir, colorArg string, force, nonInteractive bool) {
	app, err := NewApp(dataDir, !nonInteractive)
	if err != nil {
		Fatal(err)
	}

	if _, err := app.Ctx.ColorService.Load(); err != nil {
		Fatal(err)
	}

	color, err := resolveColor(app.Ctx.ColorService, colorArg)
	if err != nil {
		Fatal(err)
	}

	if !force {
		if nonInteractive {
			Fatal(fmt.Errorf("deleting color %s (%s) requires --force in non-interactive mode", color.Color, color.ID))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Delete color %s (number %d)?", color.Color, color.ColorNumber),
			false,
		)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	if _, err := app.Ctx.ColorService.Delete(color.ID); err != nil {
		Fatal(err)
	}

	PrintSuccess("Deleted color %s (%s); remaining colors renumbered", color.Color, color.ID)
}

func runColorClear(dataDir string, force, nonInteractive bool) {
	app, err := NewApp(dataDir, !nonInteractive)
	if err != nil {
		Fatal(err)
	}

	colors, err := app.Ctx.ColorService.Load()
	if err != nil {
		Fatal(err)
	}

	if len(colors) == 0 {
		PrintInfo("No custom colors to clear")
		return
	}

	if !force {
		if nonInteractive {
			Fatal(fmt.Errorf("clearing %d colors requires --force in non-interactive mode", len(colors)))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Delete all %d custom colors?", len(colors)),
			false,
		)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	if _, err := app.Ctx.ColorService.Clear(); err != nil {
		Fatal(err)
	}

	PrintSuccess("Cleared %d colors", len(colors))
}

// resolveColor finds a color by its id or, when the argument is numeric, by
// its position number.
func resolveColor(colors *service.ColorService, arg string) (*model.ColorRecord, error) {
	if number, err := strconv.Atoi(arg); err == nil {
		for _, color := range colors.Colors() {
			if color.ColorNumber == number {
				return &color, nil
			}
		}
		return nil, fmt.Errorf("no color with number %d", number)
	}

	color := colors.ColorByID(arg)
	if color == nil {
		return nil, hilerr.ColorNotFound(arg)
	}
	return color, nil
}
