package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates <page>",
	Short: "List the templates transcluded on a page",
	Args:  cobra.ExactArgs(1),
	Run:   runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) {
	client := newClient()

	templates, err := client.Templates(cmd.Context(), args[0])
	if err != nil {
		exitWithError(ExitError, "retrieving templates: %v", err)
	}

	if humanOutput {
		for _, t := range templates {
			fmt.Println(t)
		}
		return
	}
	outputJSON(TitlesResponse{Titles: templates, Total: len(templates)})
}
