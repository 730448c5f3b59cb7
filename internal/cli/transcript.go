package cli

import (
	"github.com/spf13/cobra"

	supadata "github.com/supadata-ai/supadata-go"
)

var (
	transcriptLang      string
	transcriptText      bool
	transcriptChunkSize int
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript <video-id-or-url>",
	Short: "Fetch the transcript of a YouTube video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		client, err := newClient()
		if err != nil {
			return err
		}

		transcript, err := client.YouTube.Transcript(ctx, videoRefFromArg(args[0]), &supadata.TranscriptOptions{
			Lang:      transcriptLang,
			Text:      transcriptText,
			ChunkSize: transcriptChunkSize,
		})
		if err != nil {
			return err
		}

		if resolveFormat() == "text" {
			if transcriptText {
				printLines([]string{transcript.Text})
				return nil
			}
			lines := make([]string, 0, len(transcript.Chunks))
			for _, chunk := range transcript.Chunks {
				lines = append(lines, chunk.Text)
			}
			printLines(lines)
			return nil
		}
		return printResult(transcript)
	},
}

func init() {
	transcriptCmd.Flags().StringVarP(&transcriptLang, "lang", "l", "", "preferred transcript language (ISO 639-1)")
	transcriptCmd.Flags().BoolVar(&transcriptText, "text", false, "return plain text instead of timed chunks")
	transcriptCmd.Flags().IntVar(&transcriptChunkSize, "chunk-size", 0, "maximum characters per chunk")
	rootCmd.AddCommand(transcriptCmd)
}
