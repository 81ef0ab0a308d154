package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the googleads-mcp application
var rootCmd = &cobra.Command{
	Use:   "googleads-mcp",
	Short: "MCP server for the Google Ads API",
	Long: `googleads-mcp exposes Google Ads account management, campaigns,
reporting, and optimization operations as MCP (Model Context Protocol)
tools for AI assistants.

It supports stdio and streamable HTTP transports and runs in read-only
mode by default; write operations require the --yolo flag.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "googleads-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
