package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/wikicorpus/wiki"
)

func init() {
	rootCmd.AddCommand(articleCmd)
	rootCmd.AddCommand(articlesCmd)
}

var articleCmd = &cobra.Command{
	Use:   "article <title>",
	Short: "Retrieve the plaintext of a Wikipedia article",
	Args:  cobra.ExactArgs(1),
	Run:   runArticle,
}

func runArticle(cmd *cobra.Command, args []string) {
	client := newClient()

	article, err := client.Article(cmd.Context(), args[0])
	if err != nil {
		if wiki.IsNotFound(err) {
			exitWithError(ExitNotFound, "%v", err)
		}
		exitWithError(ExitError, "retrieving article: %v", err)
	}

	if humanOutput {
		fmt.Printf("%s (pageid %d, lang %s)\n\n%s\n", article.Title, article.PageID, article.Lang, article.Text)
		return
	}
	outputJSON(article)
}

// ArticlesResponse is the response for the articles command.
type ArticlesResponse struct {
	Articles []wiki.Article `json:"articles"`
	Total    int            `json:"total"`
	Skipped  int            `json:"skipped"`
}

var articlesCmd = &cobra.Command{
	Use:   "articles <title>...",
	Short: "Retrieve multiple articles concurrently",
	Long: `Retrieve the plaintext of multiple articles, fetching in parallel.
Missing pages are skipped and reported in the skipped count.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runArticles,
}

func runArticles(cmd *cobra.Command, args []string) {
	client := newClient()

	articles, err := client.Articles(cmd.Context(), args)
	if err != nil {
		exitWithError(ExitError, "retrieving articles: %v", err)
	}

	if humanOutput {
		for _, a := range articles {
			fmt.Printf("%s (%d chars)\n", a.Title, len(a.Text))
		}
		if skipped := len(args) - len(articles); skipped > 0 {
			fmt.Printf("\n%d of %d pages missing\n", skipped, len(args))
		}
		return
	}
	outputJSON(ArticlesResponse{
		Articles: articles,
		Total:    len(articles),
		Skipped:  len(args) - len(articles),
	})
}
