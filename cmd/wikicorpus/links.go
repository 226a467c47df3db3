package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/wikicorpus/wiki"
)

var (
	linksIncoming   bool
	linksNamespaces []int
)

func init() {
	rootCmd.AddCommand(linksCmd)

	linksCmd.Flags().BoolVar(&linksIncoming, "incoming", false, "List pages linking here instead of outgoing links")
	linksCmd.Flags().IntSliceVar(&linksNamespaces, "namespaces", nil, "Namespace IDs to include (default: articles only)")
}

// LinksResponse is the response for the links command.
type LinksResponse struct {
	Page      string          `json:"page"`
	Direction string          `json:"direction"`
	Links     []wiki.PageLink `json:"links"`
	Total     int             `json:"total"`
}

var linksCmd = &cobra.Command{
	Use:   "links <page>",
	Short: "List the outgoing or incoming links of a page",
	Args:  cobra.ExactArgs(1),
	Run:   runLinks,
}

func runLinks(cmd *cobra.Command, args []string) {
	client := newClient()

	direction := wiki.Outgoing
	if linksIncoming {
		direction = wiki.Incoming
	}

	links, err := client.Links(cmd.Context(), args[0], direction, linksNamespaces)
	if err != nil {
		exitWithError(ExitError, "retrieving links: %v", err)
	}

	if humanOutput {
		for _, l := range links {
			fmt.Println(l.Title)
		}
		fmt.Printf("\n%d %s links\n", len(links), direction)
		return
	}
	outputJSON(LinksResponse{
		Page:      args[0],
		Direction: string(direction),
		Links:     links,
		Total:     len(links),
	})
}
