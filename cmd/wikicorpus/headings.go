package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/wikicorpus/corpus"
)

var headingsLimit int

func init() {
	rootCmd.AddCommand(headingsCmd)

	headingsCmd.Flags().IntVarP(&headingsLimit, "limit", "l", 25, "Maximum number of headings to show")
}

// HeadingsResponse is the response for the headings command.
type HeadingsResponse struct {
	Headings []corpus.HeadingFrequency `json:"headings"`
	Articles int                       `json:"articles"`
}

var headingsCmd = &cobra.Command{
	Use:   "headings <title>...",
	Short: "Count section headings across articles",
	Long: `Fetch the given articles and count their level-2 section headings.
Frequent headings (References, External links, ...) are the usual
candidates for truncation when assembling a corpus.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runHeadings,
}

func runHeadings(cmd *cobra.Command, args []string) {
	client := newClient()

	articles, err := client.Articles(cmd.Context(), args)
	if err != nil {
		exitWithError(ExitError, "retrieving articles: %v", err)
	}

	texts := make([]string, len(articles))
	for i, a := range articles {
		texts[i] = a.Text
	}
	freqs := corpus.HeadingFrequencies(texts)
	if headingsLimit > 0 && len(freqs) > headingsLimit {
		freqs = freqs[:headingsLimit]
	}

	if humanOutput {
		max := 0
		if len(freqs) > 0 {
			max = freqs[0].Count
		}
		for _, f := range freqs {
			fmt.Printf("%5d  %-40s %s\n", f.Count, truncateString(f.Heading, 40), barChart(f.Count, max, 30))
		}
		return
	}
	outputJSON(HeadingsResponse{Headings: freqs, Articles: len(articles)})
}
