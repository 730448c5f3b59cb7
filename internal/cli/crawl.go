package cli

import (
	"github.com/spf13/cobra"
)

var crawlLimit int

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Manage website crawl jobs",
}

var crawlStartCmd = &cobra.Command{
	Use:   "start <url>",
	Short: "Start a crawl job for a website",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		client, err := newClient()
		if err != nil {
			return err
		}

		job, err := client.Web.Crawl(ctx, args[0], crawlLimit)
		if err != nil {
			return err
		}

		if resolveFormat() == "text" {
			printLines([]string{job.JobID})
			return nil
		}
		return printResult(job)
	},
}

var crawlResultsCmd = &cobra.Command{
	Use:   "results <job-id>",
	Short: "Fetch all pages produced by a crawl job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		client, err := newClient()
		if err != nil {
			return err
		}

		pages, err := client.Web.CrawlResults(ctx, args[0])
		if err != nil {
			return err
		}

		if resolveFormat() == "text" {
			lines := make([]string, 0, len(pages))
			for _, page := range pages {
				lines = append(lines, page.URL)
			}
			printLines(lines)
			return nil
		}
		return printResult(pages)
	},
}

func init() {
	crawlStartCmd.Flags().IntVar(&crawlLimit, "limit", 0, "maximum number of pages to crawl")
	crawlCmd.AddCommand(crawlStartCmd)
	crawlCmd.AddCommand(crawlResultsCmd)
	rootCmd.AddCommand(crawlCmd)
}
