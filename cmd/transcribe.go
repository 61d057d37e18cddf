package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Steve-651/mcp-youtube/internal/config"
	repository "github.com/Steve-651/mcp-youtube/internal/repository/transcript"
	transcriptsvc "github.com/Steve-651/mcp-youtube/internal/service/transcript"
	"github.com/Steve-651/mcp-youtube/internal/service/youtube"
)

// transcribeCmd represents the transcribe command
var transcribeCmd = &cobra.Command{
	Use:   "transcribe [URL]",
	Short: "Extract and cache the transcript of a YouTube video",
	Long: `Fetch video metadata and subtitles with yt-dlp, parse them into
transcript segments and cache the result as <video_id>.json in the
transcripts directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoURL := args[0]

		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		store := repository.NewStore(cfg.TranscriptsDir)
		youtubeSvc := youtube.NewService(youtube.Options{
			Binary:          cfg.YtDlpBinary,
			MetadataTimeout: cfg.MetadataTimeout(),
			CaptionTimeout:  cfg.CaptionTimeout(),
		})
		transcriptService := transcriptsvc.NewService(youtubeSvc, store)

		// progress goes to stderr so --json output stays parseable
		progress := func(step, total int, message string) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", step, total, message)
		}

		summary, err := transcriptService.Transcribe(ctx, videoURL, progress)
		if err != nil {
			return fmt.Errorf("failed to transcribe video: %w", err)
		}

		if asJSON {
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Transcribed %s\n", summary.VideoID)
		fmt.Printf("Title: %s\n", displayOrFallback(summary.Title, "(title not found)"))
		fmt.Printf("Uploader: %s\n", displayOrFallback(summary.Uploader, "(uploader not found)"))
		fmt.Printf("Segments: %d\n", summary.SegmentCount)
		fmt.Printf("Language: %s\n", summary.Language)
		fmt.Printf("Stored at: %s\n", summary.StoragePath)

		return nil
	},
}

// displayOrFallback substitutes a display fallback for metadata fields the
// platform did not report. The stored record keeps them empty.
func displayOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func init() {
	transcribeCmd.Flags().Bool("json", false, "Print the summary as JSON")
	rootCmd.AddCommand(transcribeCmd)
}
