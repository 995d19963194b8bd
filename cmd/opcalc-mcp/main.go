package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mamaar/opcalc/internal/cli"
	internalmcp "github.com/mamaar/opcalc/internal/mcp"
)

func main() {
	var (
		portFlag    = flag.Int("port", 0, "TCP port to listen on (0 for stdio)")
		debugFlag   = flag.Bool("debug", false, "Enable debug logging")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("opcalc-mcp v%s\n", cli.Version)
		fmt.Println("Model Context Protocol server for the opcalc engine")
		os.Exit(0)
	}

	// Setup logging. Log to stderr so stdio transport stays clean.
	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Create MCP server using mark3labs/mcp-go
	mcpServer := server.NewMCPServer(
		"opcalc-mcp",
		cli.Version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	state := internalmcp.NewCalcServer(logger)
	internalmcp.RegisterAllTools(mcpServer, state)

	// Start server
	if *portFlag == 0 {
		// Stdio transport
		if err := server.ServeStdio(mcpServer); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	} else {
		// HTTP transport
		httpServer := server.NewStreamableHTTPServer(mcpServer)
		logger.Info("starting HTTP server", "port", *portFlag)
		if err := httpServer.Start(fmt.Sprintf(":%d", *portFlag)); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}
}
