package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerPages(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("pages")
	cmd.SetDescription("Inspect and manage highlighted pages")

	listCmd := ra.NewCmd("list")
	listCmd.SetDescription("List highlighted pages")
	ctx.PagesListUsed, _ = cmd.RegisterCmd(listCmd)

	showCmd := ra.NewCmd("show")
	showCmd.SetDescription("Show highlights for a page")
	ctx.PagesShowURL, _ = ra.NewString("url").
		SetUsage("Page URL").
		Register(showCmd)
	ctx.PagesShowUsed, _ = cmd.RegisterCmd(showCmd)

	clearCmd := ra.NewCmd("clear")
	clearCmd.SetDescription("Delete all highlights for a page")
	ctx.PagesClearURL, _ = ra.NewString("url").
		SetUsage("Page URL").
		Register(clearCmd)
	ctx.PagesClearForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(clearCmd)
	ctx.PagesClearUsed, _ = cmd.RegisterCmd(clearCmd)

	clearAllCmd := ra.NewCmd("clear-all")
	clearAllCmd.SetDescription("Delete highlights for every page")
	ctx.PagesClearAllForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(clearAllCmd)
	ctx.PagesClearAllUsed, _ = cmd.RegisterCmd(clearAllCmd)

	ctx.PagesUsed, _ = parent.RegisterCmd(cmd)
}

func runPagesList(dataDir string, jsonOutput bool) {
	app, err := NewApp(dataDir, true)
	if err != nil {
		Fatal(err)
	}

	pages, err := app.Ctx.HighlightService.ListPages()
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewPagesOutput(pages)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(pages) == 0 {
		PrintInfo("No highlighted pages")
		return
	}

	for _, page := range pages {
		title := page.Meta.Title
		if title == "" {
			title = RenderMuted("(untitled)")
		}
		fmt.Printf("%s\n  %s  %s  %s\n",
			RenderBold(title),
			RenderURL(page.URL),
			fmt.Sprintf("%d groups", page.GroupCount),
			RenderMuted(page.Meta.LastUpdated))
	}
}

func runPagesShow(dataDir, url string, jsonOutput bool) {
	app, err := NewApp(dataDir, true)
	if err != nil {
		Fatal(err)
	}

	groups, err := app.Ctx.HighlightService.Get(url)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewHighlightsOutput(url, groups)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(groups) == 0 {
		PrintInfo("No highlights for %s", url)
		return
	}

	for _, group := range groups {
		fmt.Printf("%s %s %s\n", ColorSwatch(group.Color), group.Color, RenderMuted(group.GroupID))
		for _, text := range group.Texts {
			fmt.Printf("  %q\n", text.Text)
		}
	}
}

func runPagesClear(dataDir, url string, force, nonInteractive bool) {
	app, err := NewApp(dataDir, !nonInteractive)
	if err != nil {
		Fatal(err)
	}

	if !force {
		if nonInteractive {
			Fatal(fmt.Errorf("clearing highlights for %s requires --force in non-interactive mode", url))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Delete all highlights for %s?", url),
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

	if err := app.Ctx.HighlightService.ClearPage(url); err != nil {
		Fatal(err)
	}

	PrintSuccess("Cleared highlights for %s", url)
}

func runPagesClearAll(dataDir string, force, nonInteractive bool) {
	app, err := NewApp(dataDir, !nonInteractive)
	if err != nil {
		Fatal(err)
	}

	pages, err := app.Ctx.HighlightService.ListPages()
	if err != nil {
		Fatal(err)
	}

	if len(pages) == 0 {
		PrintInfo("No highlighted pages")
		return
	}

	if !force {
		if nonInteractive {
			Fatal(fmt.Errorf("clearing %d pages requires --force in non-interactive mode", len(pages)))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Delete highlights for all %d pages?", len(pages)),
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

	if err := app.Ctx.HighlightService.DeleteAllPages(); err != nil {
		Fatal(err)
	}

	PrintSuccess("Cleared highlights for %d pages", len(pages))
}
