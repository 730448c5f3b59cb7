package cli

import (
	"github.com/spf13/cobra"

	supadata "github.com/supadata-ai/supadata-go"
)

var (
	translateLang      string
	translateText      bool
	translateChunkSize int
)

var translateCmd = &cobra.Command{
	Use:   "translate <video-id-or-url>",
	Short: "Fetch a YouTube transcript translated to another language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		client, err := newClient()
		if err != nil {
			return err
		}

		transcript, err := client.YouTube.Translate(ctx, videoRefFromArg(args[0]), supadata.TranslateOptions{
			Lang:      translateLang,
			Text:      translateText,
			ChunkSize: translateChunkSize,
		})
		if err != nil {
			return err
		}

		if resolveFormat() == "text" {
			if translateText {
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
	translateCmd.Flags().StringVarP(&translateLang, "lang", "l", "", "target language (ISO 639-1)")
	translateCmd.Flags().BoolVar(&translateText, "text", false, "return plain text instead of timed chunks")
	translateCmd.Flags().IntVar(&translateChunkSize, "chunk-size", 0, "maximum characters per chunk")
	translateCmd.MarkFlagRequired("lang")
	rootCmd.AddCommand(translateCmd)
}
