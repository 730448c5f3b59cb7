package cli

import (
	"github.com/spf13/cobra"
)

var (
	channelVideos  bool
	channelLimit   int
	playlistVideos bool
	playlistLimit  int
)

var videoCmd = &cobra.Command{
	Use:   "video <video-id-or-url>",
	Short: "Fetch metadata for a YouTube video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		client, err := newClient()
		if err != nil {
			return err
		}

		video, err := client.YouTube.Video(ctx, args[0])
		if err != nil {
			return err
		}
		return printResult(video)
	},
}

var channelCmd = &cobra.Command{
	Use:   "channel <channel-id-handle-or-url>",
	Short: "Fetch metadata or recent videos for a YouTube channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		client, err := newClient()
		if err != nil {
			return err
		}

		if channelVideos {
			ids, err := client.YouTube.ChannelVideos(ctx, args[0], channelLimit)
			if err != nil {
				return err
			}
			if resolveFormat() == "text" {
				printLines(ids)
				return nil
			}
			return printResult(ids)
		}

		channel, err := client.YouTube.Channel(ctx, args[0])
		if err != nil {
			return err
		}
		return printResult(channel)
	},
}

var playlistCmd = &cobra.Command{
	Use:   "playlist <playlist-id-or-url>",
	Short: "Fetch metadata or videos for a YouTube playlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		client, err := newClient()
		if err != nil {
			return err
		}

		if playlistVideos {
			ids, err := client.YouTube.PlaylistVideos(ctx, args[0], playlistLimit)
			if err != nil {
				return err
			}
			if resolveFormat() == "text" {
				printLines(ids)
				return nil
			}
			return printResult(ids)
		}

		playlist, err := client.YouTube.Playlist(ctx, args[0])
		if err != nil {
			return err
		}
		return printResult(playlist)
	},
}

func init() {
	channelCmd.Flags().BoolVar(&channelVideos, "videos", false, "list video IDs instead of channel metadata")
	channelCmd.Flags().IntVar(&channelLimit, "limit", 0, "maximum number of video IDs to return")
	playlistCmd.Flags().BoolVar(&playlistVideos, "videos", false, "list video IDs instead of playlist metadata")
	playlistCmd.Flags().IntVar(&playlistLimit, "limit", 0, "maximum number of video IDs to return")
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(channelCmd)
	rootCmd.AddCommand(playlistCmd)
}
