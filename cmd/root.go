package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcp-youtube",
	Short: "YouTube transcript extraction over MCP",
	Long: `mcp-youtube extracts YouTube video transcripts with yt-dlp, caches them
as JSON files and serves them to MCP clients. Run 'mcp-youtube serve' to
expose the transcribe/get_transcript tools over stdio, or use the
subcommands directly from the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	// optional .env next to the binary; real environment wins
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
