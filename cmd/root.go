package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the gcalmcp application
var rootCmd = &cobra.Command{
	Use:   "gcalmcp",
	Short: "Google Calendar MCP server",
	Long: `gcalmcp exposes Google Calendar events to AI assistants over the
Model Context Protocol (MCP) on stdio.

It offers five tools: create_event, get_event, update_event, delete_event
and list_events, all acting on the primary calendar of the account whose
refresh token is configured.

Run "gcalmcp auth" once to obtain a refresh token, then "gcalmcp serve"
(the default command).`,
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
	rootCmd.SetVersionTemplate(`{{printf "gcalmcp version %s\n" .Version}}`)

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
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
