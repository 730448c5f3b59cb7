package mcptools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	supadata "github.com/supadata-ai/supadata-go"
)

func registerTranscript(server *mcp.Server, client *supadata.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript",
		Description: "Fetch the transcript of a YouTube video as timed chunks or plain text. Accepts a video ID or URL and an optional preferred language.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input transcriptInput) (*mcp.CallToolResult, supadata.Transcript, error) {
		ref, err := videoRefFromInput(input.VideoID, input.URL)
		if err != nil {
			return nil, supadata.Transcript{}, err
		}

		transcript, err := client.YouTube.Transcript(ctx, ref, &supadata.TranscriptOptions{
			Lang:      input.Lang,
			Text:      input.Text,
			ChunkSize: input.ChunkSize,
		})
		if err != nil {
			return nil, supadata.Transcript{}, err
		}
		return nil, *transcript, nil
	})
}

func registerTranslate(server *mcp.Server, client *supadata.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_translate",
		Description: "Fetch a YouTube transcript translated to a target language. Accepts a video ID or URL; lang is the target language code.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input translateInput) (*mcp.CallToolResult, supadata.TranslatedTranscript, error) {
		ref, err := videoRefFromInput(input.VideoID, input.URL)
		if err != nil {
			return nil, supadata.TranslatedTranscript{}, err
		}
		if input.Lang == "" {
			return nil, supadata.TranslatedTranscript{}, errors.New("lang is required")
		}

		transcript, err := client.YouTube.Translate(ctx, ref, supadata.TranslateOptions{
			Lang:      input.Lang,
			Text:      input.Text,
			ChunkSize: input.ChunkSize,
		})
		if err != nil {
			return nil, supadata.TranslatedTranscript{}, err
		}
		return nil, *transcript, nil
	})
}
