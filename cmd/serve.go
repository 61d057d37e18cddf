package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Steve-651/mcp-youtube/internal/config"
	"github.com/Steve-651/mcp-youtube/internal/mcpserver"
	repository "github.com/Steve-651/mcp-youtube/internal/repository/transcript"
	transcriptsvc "github.com/Steve-651/mcp-youtube/internal/service/transcript"
	"github.com/Steve-651/mcp-youtube/internal/service/youtube"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over stdio",
	Long: `Run the MCP server on stdin/stdout. Clients get the transcribe,
get_transcript and list_transcripts tools plus transcript:// resources.
Logs go to stderr; stdout belongs to the protocol.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		store := repository.NewStore(cfg.TranscriptsDir)
		youtubeSvc := youtube.NewService(youtube.Options{
			Binary:          cfg.YtDlpBinary,
			MetadataTimeout: cfg.MetadataTimeout(),
			CaptionTimeout:  cfg.CaptionTimeout(),
		})
		transcriptService := transcriptsvc.NewService(youtubeSvc, store)

		srv := mcpserver.New(transcriptService, store, cfg.PageSize)
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
