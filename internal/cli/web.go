package cli

import (
	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a web page into markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		client, err := newClient()
		if err != nil {
			return err
		}

		scrape, err := client.Web.Scrape(ctx, args[0])
		if err != nil {
			return err
		}

		if resolveFormat() == "text" {
			printLines([]string{scrape.Content})
			return nil
		}
		return printResult(scrape)
	},
}

var mapCmd = &cobra.Command{
	Use:   "map <url>",
	Short: "List the URLs of a website",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		client, err := newClient()
		if err != nil {
			return err
		}

		siteMap, err := client.Web.Map(ctx, args[0])
		if err != nil {
			return err
		}

		if resolveFormat() == "text" {
			printLines(siteMap.URLs)
			return nil
		}
		return printResult(siteMap)
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(mapCmd)
}
