package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Steve-651/mcp-youtube/internal/config"
	repository "github.com/Steve-651/mcp-youtube/internal/repository/transcript"
)

// transcriptCmd represents the transcript command
var transcriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Inspect cached transcripts",
	Long:  `Operations for reading and listing transcripts already in the cache.`,
}

// transcriptGetCmd represents the transcript get command
var transcriptGetCmd = &cobra.Command{
	Use:   "get [VIDEO_ID]",
	Short: "Print the cached transcript for a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID := args[0]

		textOnly, _ := cmd.Flags().GetBool("text")

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		store := repository.NewStore(cfg.TranscriptsDir)
		record, err := store.Get(videoID)
		if err != nil {
			return err
		}

		if textOnly {
			for _, seg := range record.Segments {
				fmt.Println(seg.Text)
			}
			return nil
		}

		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

		return nil
	},
}

// transcriptListCmd represents the transcript list command
var transcriptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List video IDs with a cached transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		store := repository.NewStore(cfg.TranscriptsDir)
		ids, err := store.List()
		if err != nil {
			return err
		}

		if len(ids) == 0 {
			fmt.Println("No cached transcripts.")
			return nil
		}

		// store order is filesystem-dependent; sort for stable output
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Println(id)
		}

		return nil
	},
}

func init() {
	transcriptGetCmd.Flags().Bool("text", false, "Print only the segment text, one line per segment")
	transcriptCmd.AddCommand(transcriptGetCmd)
	transcriptCmd.AddCommand(transcriptListCmd)
	rootCmd.AddCommand(transcriptCmd)
}
