package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/amterp/hilite/internal/config"
	"github.com/amterp/hilite/internal/store"
	"github.com/amterp/ra"
)

// completionCtx provides lightweight store access for shell completion.
// Completion functions run during ParseOrExit, before NewApp() is called,
// so this initializes just enough to list colors.
type completionCtx struct {
	once       sync.Once
	colorStore *store.FileColorStore
}

var compCtx completionCtx

func initCompletionCtx() {
	compCtx.once.Do(func() {
		paths := config.NewPaths("")
		compCtx.colorStore = store.NewColorStore(paths)
	})
}

// completeColors returns color ids and numbers matching the given prefix.
func completeColors(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()

	colors, err := compCtx.colorStore.Load()
	if err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	var result []string
	for _, color := range colors {
		if strings.HasPrefix(color.ID, toComplete) {
			result = append(result, color.ID)
		}
		number := strconv.Itoa(color.ColorNumber)
		if strings.HasPrefix(number, toComplete) {
			result = append(result, number)
		}
	}
	return result, ra.CompletionDirectiveNoFileComp
}

// registerCompletion adds the "hilite completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
