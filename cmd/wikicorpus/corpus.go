package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/wikicorpus/corpus"
	"github.com/matsen/wikicorpus/wiki"
)

var (
	buildStore   string
	buildCut     []string
	buildLinks   bool
	exportStore  string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.AddCommand(corpusBuildCmd)
	corpusCmd.AddCommand(corpusExportCmd)
	corpusCmd.AddCommand(corpusListCmd)

	corpusBuildCmd.Flags().StringVar(&buildStore, "store", "", "Corpus store path (default from config)")
	corpusBuildCmd.Flags().StringSliceVar(&buildCut, "cut", nil, "Headings at which to truncate article text")
	corpusBuildCmd.Flags().BoolVar(&buildLinks, "links", false, "Also fetch and store each article's outgoing links")

	corpusExportCmd.Flags().StringVar(&exportStore, "store", "", "Corpus store path (default from config)")
	corpusExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")

	corpusListCmd.Flags().StringVar(&exportStore, "store", "", "Corpus store path (default from config)")
}

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Build and export a topic corpus",
}

// BuildResponse is the response for the corpus build command.
type BuildResponse struct {
	Category  string `json:"category"`
	Requested int    `json:"requested"`
	Fetched   int    `json:"fetched"`
	Redirects int    `json:"redirects_resolved"`
	Links     int    `json:"link_sets_stored,omitempty"`
}

var corpusBuildCmd = &cobra.Command{
	Use:   "build <category>",
	Short: "Fetch a category's pages into the corpus store",
	Long: `Assemble a corpus from one category: list its member pages, resolve
redirects among them, fetch the article texts, optionally truncate at the
given headings, and save everything to the corpus store.`,
	Args: cobra.ExactArgs(1),
	Run:  runCorpusBuild,
}

func runCorpusBuild(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	client := newClient()
	s := openStore(buildStore)
	defer s.Close()

	members, err := client.CategoryMembers(ctx, args[0], wiki.NamespaceMain)
	if err != nil {
		exitWithError(ExitError, "retrieving category members: %v", err)
	}
	titles := make([]string, len(members))
	for i, m := range members {
		titles[i] = m.Title
	}

	redirects, err := client.ResolveRedirects(ctx, titles)
	if err != nil {
		exitWithError(ExitError, "resolving redirects: %v", err)
	}
	titles = corpus.OverwriteRedirects(titles, redirects)

	articles, err := client.Articles(ctx, titles)
	if err != nil {
		exitWithError(ExitError, "retrieving articles: %v", err)
	}
	if len(buildCut) > 0 {
		for i := range articles {
			articles[i].Text = corpus.CutAtHeadings(articles[i].Text, buildCut)
		}
	}
	if err := s.SaveArticles(articles); err != nil {
		exitWithError(ExitError, "saving articles: %v", err)
	}

	linkSets := 0
	if buildLinks {
		for _, a := range articles {
			links, err := client.Links(ctx, a.Title, wiki.Outgoing, nil)
			if err != nil {
				exitWithError(ExitError, "retrieving links for %q: %v", a.Title, err)
			}
			targets := make([]string, len(links))
			for i, l := range links {
				targets[i] = l.Title
			}
			if err := s.SaveLinks(a.Title, wiki.Outgoing, targets); err != nil {
				exitWithError(ExitError, "saving links for %q: %v", a.Title, err)
			}
			linkSets++
		}
	}

	resp := BuildResponse{
		Category:  wiki.NormalizeCategory(args[0]),
		Requested: len(members),
		Fetched:   len(articles),
		Redirects: len(redirects),
		Links:     linkSets,
	}
	if humanOutput {
		fmt.Printf("%s: fetched %d of %d pages (%d redirects resolved", resp.Category, resp.Fetched, resp.Requested, resp.Redirects)
		if buildLinks {
			fmt.Printf(", %d link sets", linkSets)
		}
		fmt.Println(")")
		return
	}
	outputJSON(resp)
}

var corpusExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored article text",
	Args:  cobra.NoArgs,
	Run:   runCorpusExport,
}

func runCorpusExport(cmd *cobra.Command, args []string) {
	s := openStore(exportStore)
	defer s.Close()

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			exitWithError(ExitError, "creating output file: %v", err)
		}
		defer f.Close()
		out = f
	}
	if err := s.ExportText(out); err != nil {
		exitWithError(ExitError, "exporting corpus: %v", err)
	}
}

// ListResponse is the response for the corpus list command.
type ListResponse struct {
	Titles []string `json:"titles"`
	Total  int      `json:"total"`
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the articles in the corpus store",
	Args:  cobra.NoArgs,
	Run:   runCorpusList,
}

func runCorpusList(cmd *cobra.Command, args []string) {
	s := openStore(exportStore)
	defer s.Close()

	articles, err := s.ListArticles()
	if err != nil {
		exitWithError(ExitError, "listing articles: %v", err)
	}
	titles := make([]string, len(articles))
	for i, a := range articles {
		titles[i] = a.Title
	}

	if humanOutput {
		for _, t := range titles {
			fmt.Println(t)
		}
		fmt.Printf("\n%d articles\n", len(titles))
		return
	}
	outputJSON(ListResponse{Titles: titles, Total: len(titles)})
}
