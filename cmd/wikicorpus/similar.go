package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/wikicorpus/internal/store"
	"github.com/matsen/wikicorpus/linkgraph"
	"github.com/matsen/wikicorpus/wiki"
)

var (
	similarLimit int
	similarStore string
)

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().IntVarP(&similarLimit, "limit", "l", 10, "Maximum number of results")
	similarCmd.Flags().StringVar(&similarStore, "store", "", "Corpus store path (default from config)")
}

// SimilarResponse is the response for the similar command.
type SimilarResponse struct {
	Seeds       []string               `json:"seeds"`
	Ranked      []linkgraph.RankedPage `json:"ranked"`
	ColsUsed    int                    `json:"cols_used"`
	ColsDropped int                    `json:"cols_dropped"`
}

var similarCmd = &cobra.Command{
	Use:   "similar <seed>...",
	Short: "Rank stored pages by link-profile similarity to seed pages",
	Long: `Score every page in the corpus store against the given seed pages by the
cosine similarity of their link profiles, and print a ranking. Link sets
must have been stored first with 'corpus build --links'.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSimilar,
}

func runSimilar(cmd *cobra.Command, args []string) {
	s := openStore(similarStore)
	defer s.Close()

	links, err := s.LinkMap(wiki.Outgoing)
	if err != nil {
		exitWithError(ExitError, "reading stored links: %v", err)
	}
	if len(links) == 0 {
		exitWithError(ExitDataError, "no links in store; run 'wikicorpus corpus build --links' first")
	}

	m := linkgraph.NewMatrix(links)
	inAll, inSeeds := linkgraph.InDegrees(links, args)
	sim, err := linkgraph.ComputeSeedSimilarity(args, m, inAll, inSeeds)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	ranked := linkgraph.Rank(sim.Scores, similarLimit, args...)

	if humanOutput {
		fmt.Printf("Pages similar to seeds: %v\n\n", args)
		for i, r := range ranked {
			fmt.Printf("%d. [%.3f] %s\n", i+1, r.Score, r.Title)
		}
		return
	}
	outputJSON(SimilarResponse{
		Seeds:       args,
		Ranked:      ranked,
		ColsUsed:    sim.ColsUsed,
		ColsDropped: sim.ColsDropped,
	})
}

// openStore opens the corpus store at the given path, falling back to the
// configured default.
func openStore(path string) *store.Store {
	if path == "" {
		path = loadConfig().StorePath
	}
	s, err := store.Open(path)
	if err != nil {
		exitWithError(ExitConfigError, "opening store: %v", err)
	}
	return s
}
