package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(redirectsCmd)
	redirectsCmd.AddCommand(redirectsResolveCmd)
	redirectsCmd.AddCommand(redirectsToCmd)
}

var redirectsCmd = &cobra.Command{
	Use:   "redirects",
	Short: "Resolve redirects or list pages redirecting to a target",
}

// ResolveResponse is the response for the redirects resolve command.
type ResolveResponse struct {
	Redirects map[string]string `json:"redirects"`
	Checked   int               `json:"checked"`
}

var redirectsResolveCmd = &cobra.Command{
	Use:   "resolve <title>...",
	Short: "Resolve each title's redirect destination",
	Long: `Check which of the given titles are redirects and resolve each to its
terminal destination. Titles that do not redirect are omitted from the
result.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runRedirectsResolve,
}

func runRedirectsResolve(cmd *cobra.Command, args []string) {
	client := newClient()

	redirects, err := client.ResolveRedirects(cmd.Context(), args)
	if err != nil {
		exitWithError(ExitError, "resolving redirects: %v", err)
	}

	if humanOutput {
		for _, title := range args {
			if dest, ok := redirects[title]; ok {
				fmt.Printf("%s -> %s\n", title, dest)
			} else {
				fmt.Printf("%s (not a redirect)\n", title)
			}
		}
		return
	}
	outputJSON(ResolveResponse{Redirects: redirects, Checked: len(args)})
}

var redirectsToCmd = &cobra.Command{
	Use:   "to <page>",
	Short: "List all pages that redirect to a page",
	Args:  cobra.ExactArgs(1),
	Run:   runRedirectsTo,
}

func runRedirectsTo(cmd *cobra.Command, args []string) {
	client := newClient()

	titles, err := client.RedirectsTo(cmd.Context(), args[0])
	if err != nil {
		exitWithError(ExitError, "retrieving redirects: %v", err)
	}

	if humanOutput {
		for _, t := range titles {
			fmt.Println(t)
		}
		return
	}
	outputJSON(TitlesResponse{Titles: titles, Total: len(titles)})
}
