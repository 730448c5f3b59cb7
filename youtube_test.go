package supadata

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestTranscriptDecodesChunksByDefault(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [{"text": "Hello", "offset": 0, "duration": 1000, "lang": "en"}],
			"lang": "en",
			"availableLangs": ["en", "es"]
		}`))
	}))

	transcript, err := client.YouTube.Transcript(context.Background(), VideoID("test123"), nil)
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}

	if gotQuery != "videoId=test123" {
		t.Fatalf("expected videoId query param, got %q", gotQuery)
	}
	if transcript.Text != "" {
		t.Fatalf("expected no plain text without the text flag, got %q", transcript.Text)
	}
	if len(transcript.Chunks) != 1 || transcript.Chunks[0].Text != "Hello" {
		t.Fatalf("expected one chunk with text Hello, got %+v", transcript.Chunks)
	}
	if transcript.Chunks[0].Duration != 1000 {
		t.Fatalf("expected chunk duration 1000ms, got %d", transcript.Chunks[0].Duration)
	}
	if transcript.Lang != "en" {
		t.Fatalf("expected lang en, got %q", transcript.Lang)
	}
	if len(transcript.AvailableLangs) != 2 {
		t.Fatalf("expected two available langs, got %+v", transcript.AvailableLangs)
	}
}

func TestTranscriptDecodesPlainTextWhenRequested(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": "Hello, this is a test transcript",
			"lang": "en",
			"availableLangs": ["en", "es"]
		}`))
	}))

	transcript, err := client.YouTube.Transcript(context.Background(), VideoID("test123"), &TranscriptOptions{Text: true})
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}

	if got := gotQuery["text"]; len(got) != 1 || got[0] != "true" {
		t.Fatalf("expected text=true query param, got %v", gotQuery)
	}
	if transcript.Text != "Hello, this is a test transcript" {
		t.Fatalf("expected plain text content, got %q", transcript.Text)
	}
	if transcript.Chunks != nil {
		t.Fatalf("expected no chunks in text mode, got %+v", transcript.Chunks)
	}
}

func TestTranscriptContentModeFollowsRequestNotPayload(t *testing.T) {
	// The server answers with a plain string, but the request did not
	// ask for text mode: the decode must fail rather than adapt.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": "surprise text", "lang": "en"}`))
	}))

	if _, err := client.YouTube.Transcript(context.Background(), VideoID("test123"), nil); err == nil {
		t.Fatalf("expected a decode error when payload shape contradicts the request")
	}
}

func TestTranscriptSendsLangAndChunkSize(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": [], "lang": "de"}`))
	}))

	_, err := client.YouTube.Transcript(context.Background(), VideoURL("https://youtu.be/test123"), &TranscriptOptions{Lang: "de", ChunkSize: 512})
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}

	if got := gotQuery["url"]; len(got) != 1 || got[0] != "https://youtu.be/test123" {
		t.Fatalf("expected url identifier param, got %v", gotQuery)
	}
	if got := gotQuery["lang"]; len(got) != 1 || got[0] != "de" {
		t.Fatalf("expected lang=de, got %v", gotQuery)
	}
	if got := gotQuery["chunkSize"]; len(got) != 1 || got[0] != "512" {
		t.Fatalf("expected chunkSize=512, got %v", gotQuery)
	}
}

func TestTranscriptValidatesRefBeforeRequest(t *testing.T) {
	var requests atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	_, err := client.YouTube.Transcript(context.Background(), nil, nil)
	apiErr := asAPIError(t, err)
	if apiErr.Code != "invalid-request" {
		t.Fatalf("expected invalid-request for nil ref, got %q", apiErr.Code)
	}

	_, err = client.YouTube.Transcript(context.Background(), VideoID(""), nil)
	apiErr = asAPIError(t, err)
	if apiErr.Code != "invalid-request" {
		t.Fatalf("expected invalid-request for empty id, got %q", apiErr.Code)
	}

	if n := requests.Load(); n != 0 {
		t.Fatalf("validation must happen before any network call, server saw %d requests", n)
	}
}

func TestTranslateRequiresTargetLang(t *testing.T) {
	var requests atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	_, err := client.YouTube.Translate(context.Background(), VideoID("test123"), TranslateOptions{})
	apiErr := asAPIError(t, err)
	if apiErr.Code != "invalid-request" {
		t.Fatalf("expected invalid-request without target lang, got %q", apiErr.Code)
	}
	if n := requests.Load(); n != 0 {
		t.Fatalf("validation must happen before any network call, server saw %d requests", n)
	}
}

func TestTranslateDecodesTargetLanguage(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": "Hola, esto es una prueba", "lang": "es"}`))
	}))

	transcript, err := client.YouTube.Translate(context.Background(), VideoID("test123"), TranslateOptions{Lang: "es", Text: true})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	if gotPath != "/youtube/transcript/translate" {
		t.Fatalf("expected translate endpoint, got %q", gotPath)
	}
	if got := gotQuery["lang"]; len(got) != 1 || got[0] != "es" {
		t.Fatalf("expected lang=es, got %v", gotQuery)
	}
	if transcript.Text != "Hola, esto es una prueba" {
		t.Fatalf("expected translated text, got %q", transcript.Text)
	}
	if transcript.Lang != "es" {
		t.Fatalf("expected lang es, got %q", transcript.Lang)
	}
}

func TestVideoDecodesMetadata(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "pEfrdAtAmqk" {
			t.Errorf("expected id query param, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "pEfrdAtAmqk",
			"title": "God-Tier Developer Roadmap",
			"description": "The programming iceberg",
			"duration": 1002,
			"channel": {"id": "UCsBjURrPoezykLs9EqgamOA", "name": "Fireship"},
			"tags": ["#iceberg", "#programming"],
			"thumbnail": "https://i.ytimg.com/vi/pEfrdAtAmqk/maxresdefault.jpg",
			"uploadDate": "2022-08-24T00:00:00.000Z",
			"viewCount": 7388353,
			"likeCount": 262086,
			"transcriptLanguages": ["en"]
		}`))
	}))

	video, err := client.YouTube.Video(context.Background(), "pEfrdAtAmqk")
	if err != nil {
		t.Fatalf("video: %v", err)
	}

	if video.ID != "pEfrdAtAmqk" || video.Title != "God-Tier Developer Roadmap" {
		t.Fatalf("unexpected video identity: %+v", video)
	}
	if video.Duration != 1002 {
		t.Fatalf("expected duration 1002s, got %d", video.Duration)
	}
	if video.Channel.Name != "Fireship" {
		t.Fatalf("expected channel ref decoded, got %+v", video.Channel)
	}
	wantDate := time.Date(2022, time.August, 24, 0, 0, 0, 0, time.UTC)
	if !video.UploadDate.Equal(wantDate) {
		t.Fatalf("expected upload date %v, got %v", wantDate, video.UploadDate)
	}
	if video.ViewCount != 7388353 || video.LikeCount != 262086 {
		t.Fatalf("unexpected counters: %+v", video)
	}
}

func TestChannelDecodesMetadata(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "UCsBjURrPoezykLs9EqgamOA",
			"name": "Fireship",
			"handle": "@Fireship",
			"description": "High-intensity code tutorials",
			"videoCount": 719,
			"subscriberCount": 3770000,
			"thumbnail": "https://yt3.test/thumb",
			"banner": "https://yt3.test/banner"
		}`))
	}))

	channel, err := client.YouTube.Channel(context.Background(), "UCsBjURrPoezykLs9EqgamOA")
	if err != nil {
		t.Fatalf("channel: %v", err)
	}

	if channel.Handle != "@Fireship" {
		t.Fatalf("expected handle decoded, got %q", channel.Handle)
	}
	if channel.VideoCount != 719 || channel.SubscriberCount != 3770000 {
		t.Fatalf("unexpected counters: %+v", channel)
	}
}

func TestPlaylistDecodesMetadata(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "PL0vfts4VzfNjQOM9VClyL5R0LeuTxlAR3",
			"title": "CS101",
			"videoCount": 17,
			"viewCount": 440901,
			"lastUpdated": "2024-07-06T00:00:00.000Z",
			"channel": {"id": "UCsBjURrPoezykLs9EqgamOA", "name": "Fireship"}
		}`))
	}))

	playlist, err := client.YouTube.Playlist(context.Background(), "PL0vfts4VzfNjQOM9VClyL5R0LeuTxlAR3")
	if err != nil {
		t.Fatalf("playlist: %v", err)
	}

	if playlist.Title != "CS101" || playlist.VideoCount != 17 {
		t.Fatalf("unexpected playlist: %+v", playlist)
	}
	wantDate := time.Date(2024, time.July, 6, 0, 0, 0, 0, time.UTC)
	if !playlist.LastUpdated.Equal(wantDate) {
		t.Fatalf("expected last updated %v, got %v", wantDate, playlist.LastUpdated)
	}
	if playlist.Channel.ID != "UCsBjURrPoezykLs9EqgamOA" {
		t.Fatalf("expected channel ref decoded, got %+v", playlist.Channel)
	}
}

func TestChannelVideosListsIDs(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"videoIds": ["PQ2WjtaPfXU", "UIVADiGfwWc"]}`))
	}))

	ids, err := client.YouTube.ChannelVideos(context.Background(), "UCsBjURrPoezykLs9EqgamOA", 50)
	if err != nil {
		t.Fatalf("channel videos: %v", err)
	}

	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "50" {
		t.Fatalf("expected limit=50, got %v", gotQuery)
	}
	if len(ids) != 2 || ids[0] != "PQ2WjtaPfXU" || ids[1] != "UIVADiGfwWc" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestPlaylistVideosListsIDs(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"videoIds": ["zDNaUi2cjv4", "B1t4Fjlomi8"]}`))
	}))

	ids, err := client.YouTube.PlaylistVideos(context.Background(), "PL0vfts4VzfNjQOM9VClyL5R0LeuTxlAR3", 0)
	if err != nil {
		t.Fatalf("playlist videos: %v", err)
	}

	if _, ok := gotQuery["limit"]; ok {
		t.Fatalf("zero limit must be omitted from the query, got %v", gotQuery)
	}
	if len(ids) != 2 || ids[0] != "zDNaUi2cjv4" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
