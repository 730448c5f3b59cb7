package supadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// YouTubeService exposes the /youtube endpoints.
type YouTubeService struct {
	client *Client
}

// VideoRef identifies a video either by its YouTube ID or by URL. The
// two are mutually exclusive by construction; use VideoID or VideoURL.
type VideoRef interface {
	videoParam() (key, value string)
}

// VideoID references a video by its YouTube ID.
type VideoID string

func (id VideoID) videoParam() (string, string) { return "videoId", string(id) }

// VideoURL references a video by URL.
type VideoURL string

func (u VideoURL) videoParam() (string, string) { return "url", string(u) }

// videoQuery validates the reference before any network I/O and builds
// the identifier query parameter.
func videoQuery(video VideoRef) (url.Values, error) {
	if video == nil {
		return nil, validationError("a video id or url is required")
	}
	key, value := video.videoParam()
	if value == "" {
		return nil, validationError("a video id or url is required")
	}
	q := url.Values{}
	q.Set(key, value)
	return q, nil
}

// TranscriptOptions tunes a Transcript request. A nil options value
// requests timed chunks in the video's own language.
type TranscriptOptions struct {
	// Lang is the preferred transcript language (ISO 639-1).
	Lang string
	// Text requests plain text instead of timed chunks.
	Text bool
	// ChunkSize caps the characters per chunk.
	ChunkSize int
}

// TranslateOptions tunes a Translate request. Lang is the target
// language and is required.
type TranslateOptions struct {
	Lang      string
	Text      bool
	ChunkSize int
}

// Transcript fetches the transcript of a video. The result carries
// chunks by default and plain text when opts.Text is set.
func (s *YouTubeService) Transcript(ctx context.Context, video VideoRef, opts *TranscriptOptions) (*Transcript, error) {
	q, err := videoQuery(video)
	if err != nil {
		return nil, err
	}

	wantText := false
	if opts != nil {
		wantText = opts.Text
		if opts.Lang != "" {
			q.Set("lang", opts.Lang)
		}
		if opts.Text {
			q.Set("text", "true")
		}
		if opts.ChunkSize > 0 {
			q.Set("chunkSize", strconv.Itoa(opts.ChunkSize))
		}
	}

	var env transcriptEnvelope
	if err := s.client.request(ctx, http.MethodGet, "/youtube/transcript", q, nil, &env); err != nil {
		return nil, err
	}

	t := &Transcript{Lang: env.Lang, AvailableLangs: env.AvailableLangs}
	t.Chunks, t.Text, err = decodeTranscriptContent(env.Content, wantText)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Translate fetches the transcript of a video translated into the
// target language.
func (s *YouTubeService) Translate(ctx context.Context, video VideoRef, opts TranslateOptions) (*TranslatedTranscript, error) {
	if opts.Lang == "" {
		return nil, validationError("a target language is required")
	}
	q, err := videoQuery(video)
	if err != nil {
		return nil, err
	}
	q.Set("lang", opts.Lang)
	if opts.Text {
		q.Set("text", "true")
	}
	if opts.ChunkSize > 0 {
		q.Set("chunkSize", strconv.Itoa(opts.ChunkSize))
	}

	var env transcriptEnvelope
	if err := s.client.request(ctx, http.MethodGet, "/youtube/transcript/translate", q, nil, &env); err != nil {
		return nil, err
	}

	t := &TranslatedTranscript{Lang: env.Lang}
	t.Chunks, t.Text, err = decodeTranscriptContent(env.Content, opts.Text)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// decodeTranscriptContent decodes the content union of a transcript
// response. The branch is chosen by the request's text flag, never
// inferred from the payload shape.
func decodeTranscriptContent(content json.RawMessage, wantText bool) ([]TranscriptChunk, string, error) {
	if len(content) == 0 {
		return nil, "", fmt.Errorf("decode transcript: missing content field")
	}
	if wantText {
		var text string
		if err := json.Unmarshal(content, &text); err != nil {
			return nil, "", fmt.Errorf("decode transcript text: %w", err)
		}
		return nil, text, nil
	}
	var chunks []TranscriptChunk
	if err := json.Unmarshal(content, &chunks); err != nil {
		return nil, "", fmt.Errorf("decode transcript chunks: %w", err)
	}
	return chunks, "", nil
}

// Video fetches metadata for a video.
func (s *YouTubeService) Video(ctx context.Context, id string) (*Video, error) {
	q, err := idQuery(id)
	if err != nil {
		return nil, err
	}
	var v Video
	if err := s.client.request(ctx, http.MethodGet, "/youtube/video", q, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Channel fetches metadata for a channel.
func (s *YouTubeService) Channel(ctx context.Context, id string) (*Channel, error) {
	q, err := idQuery(id)
	if err != nil {
		return nil, err
	}
	var ch Channel
	if err := s.client.request(ctx, http.MethodGet, "/youtube/channel", q, nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// ChannelVideos lists the video IDs of a channel, most recent first.
// limit caps the number of ids; zero lets the server decide.
func (s *YouTubeService) ChannelVideos(ctx context.Context, id string, limit int) ([]string, error) {
	return s.videoIDs(ctx, "/youtube/channel/videos", id, limit)
}

// Playlist fetches metadata for a playlist.
func (s *YouTubeService) Playlist(ctx context.Context, id string) (*Playlist, error) {
	q, err := idQuery(id)
	if err != nil {
		return nil, err
	}
	var p Playlist
	if err := s.client.request(ctx, http.MethodGet, "/youtube/playlist", q, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PlaylistVideos lists the video IDs of a playlist in playlist order.
// limit caps the number of ids; zero lets the server decide.
func (s *YouTubeService) PlaylistVideos(ctx context.Context, id string, limit int) ([]string, error) {
	return s.videoIDs(ctx, "/youtube/playlist/videos", id, limit)
}

func (s *YouTubeService) videoIDs(ctx context.Context, path, id string, limit int) ([]string, error) {
	q, err := idQuery(id)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var resp videoIDsResponse
	if err := s.client.request(ctx, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.VideoIDs, nil
}

func idQuery(id string) (url.Values, error) {
	if id == "" {
		return nil, validationError("an id is required")
	}
	q := url.Values{}
	q.Set("id", id)
	return q, nil
}
