package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/wikicorpus/corpus"
	"github.com/matsen/wikicorpus/wiki"
)

var sectionsCut []string

func init() {
	rootCmd.AddCommand(sectionsCmd)

	sectionsCmd.Flags().StringSliceVar(&sectionsCut, "cut", nil, "Headings at which to truncate before splitting")
}

// SectionsResponse is the response for the sections command.
type SectionsResponse struct {
	Title    string           `json:"title"`
	Sections []corpus.Section `json:"sections"`
	Total    int              `json:"total"`
}

var sectionsCmd = &cobra.Command{
	Use:   "sections <title>",
	Short: "Split an article into sections by heading",
	Args:  cobra.ExactArgs(1),
	Run:   runSections,
}

func runSections(cmd *cobra.Command, args []string) {
	client := newClient()

	article, err := client.Article(cmd.Context(), args[0])
	if err != nil {
		if wiki.IsNotFound(err) {
			exitWithError(ExitNotFound, "%v", err)
		}
		exitWithError(ExitError, "retrieving article: %v", err)
	}

	text := article.Text
	if len(sectionsCut) > 0 {
		text = corpus.CutAtHeadings(text, sectionsCut)
	}
	sections := corpus.Split(text)

	if humanOutput {
		for _, sec := range sections {
			fmt.Printf("== %s == (%d chars)\n", sec.Heading, len(sec.Text))
		}
		return
	}
	outputJSON(SectionsResponse{
		Title:    article.Title,
		Sections: sections,
		Total:    len(sections),
	})
}
