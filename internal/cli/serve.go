package cli

import (
	"fmt"
	"net"

	"github.com/amterp/hilite/internal/api"
	"github.com/amterp/ra"
)

func registerServe(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("serve")
	cmd.SetDescription("Start the coordinator server")

	ctx.ServePort, _ = ra.NewInt("port").
		SetOptional(true).
		SetDefault(0).
		SetShort("p").
		SetFlagOnly(true).
		SetUsage("Port to listen on (will try incrementally if in use)").
		Register(cmd)

	ctx.ServeUsed, _ = parent.RegisterCmd(cmd)
}

func runServe(dataDir string, port int) {
	app, err := NewApp(dataDir, false)
	if err != nil {
		Fatal(err)
	}

	if err := app.Ctx.Bootstrap(); err != nil {
		Fatal(err)
	}

	if port == 0 {
		port = app.Settings.EffectivePort()
	}

	// Find an available port starting from the requested one
	actualPort := findAvailablePort(port)

	server := api.NewServer(app.Ctx, actualPort)

	fmt.Printf("hilite coordinator running at ws://localhost:%d/api/v1/ws\n", actualPort)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		Fatal(err)
	}
}

// findAvailablePort tries ports starting from startPort until it finds one that's available.
func findAvailablePort(startPort int) int {
	maxAttempts := 100
	for i := 0; i < maxAttempts; i++ {
		port := startPort + i
		if isPortAvailable(port) {
			return port
		}
	}
	// If we couldn't find a port after maxAttempts, return the original and let it fail naturally
	return startPort
}

// isPortAvailable checks if a port is available by attempting to listen on it.
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	listener.Close()
	return true
}
