package cli

import (
	"fmt"

	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/ra"
)

func registerMenu(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("menu")
	cmd.SetDescription("Show the projected context menu tree")

	ctx.MenuUsed, _ = parent.RegisterCmd(cmd)
}

func runMenu(dataDir string, jsonOutput bool) {
	app, err := NewApp(dataDir, true)
	if err != nil {
		Fatal(err)
	}

	if err := app.Ctx.Bootstrap(); err != nil {
		Fatal(err)
	}

	entries := app.Ctx.Registry.Entries()

	if jsonOutput {
		if err := printJson(NewMenuOutput(entries)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(entries) == 0 {
		PrintInfo("Menu is empty")
		return
	}

	for _, entry := range entries {
		if entry.ParentID == "" {
			fmt.Printf("%s %s\n", RenderBold(entry.Title), RenderMuted(entry.ID))
			continue
		}
		swatch := ""
		if colorID, ok := model.ColorIDFromMenuID(entry.ID); ok {
			if color := app.Ctx.ColorService.ColorByID(colorID); color != nil {
				swatch = ColorSwatch(color.Color) + " "
			}
		}
		fmt.Printf("  %s%s %s\n", swatch, entry.Title, RenderMuted(entry.ID))
	}
}
