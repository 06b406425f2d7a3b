package main

import (
	"fmt"
	"log"
	"os"

	"github.com/friendlygt/mask-tools-mcp/internal/config"
	"github.com/friendlygt/mask-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("mask-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("mask-tools-mcp - MCP server for binary mask annotation")
			fmt.Println()
			fmt.Println("Usage: mask-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println("  init-config      Write a default config file and exit")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MASK_MCP_CONFIG=/path/to/config.yaml    Config file location")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		case "init-config":
			path := configPath()
			if err := config.CreateDefaultConfigFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote default config to %s\n", path)
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if cfg.Output.Verbose {
		log.Printf("Mask MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// configPath resolves the config file location, preferring the
// MASK_MCP_CONFIG environment variable.
func configPath() string {
	if path := os.Getenv("MASK_MCP_CONFIG"); path != "" {
		return path
	}
	return "mask-mcp.yaml"
}
