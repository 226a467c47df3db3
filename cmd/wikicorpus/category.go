package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/wikicorpus/wiki"
)

var (
	membersPages  bool
	includeHidden bool
)

func init() {
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(categoriesCmd)

	membersCmd.Flags().BoolVar(&membersPages, "pages", false, "List member pages instead of subcategories")
	categoriesCmd.Flags().BoolVar(&includeHidden, "hidden", false, "Include hidden (maintenance) categories")
}

// MembersResponse is the response for the members command.
type MembersResponse struct {
	Category string                `json:"category"`
	Members  []wiki.CategoryMember `json:"members"`
	Total    int                   `json:"total"`
}

var membersCmd = &cobra.Command{
	Use:   "members <category>",
	Short: "List the subcategories or pages within a category",
	Args:  cobra.ExactArgs(1),
	Run:   runMembers,
}

func runMembers(cmd *cobra.Command, args []string) {
	client := newClient()

	ns := wiki.NamespaceCategory
	if membersPages {
		ns = wiki.NamespaceMain
	}

	members, err := client.CategoryMembers(cmd.Context(), args[0], ns)
	if err != nil {
		exitWithError(ExitError, "retrieving category members: %v", err)
	}

	if humanOutput {
		for _, m := range members {
			fmt.Printf("%s (pageid %d)\n", m.Title, m.PageID)
		}
		fmt.Printf("\n%d members\n", len(members))
		return
	}
	outputJSON(MembersResponse{
		Category: wiki.NormalizeCategory(args[0]),
		Members:  members,
		Total:    len(members),
	})
}

var categoriesCmd = &cobra.Command{
	Use:   "categories <page>",
	Short: "List the categories a page belongs to",
	Args:  cobra.ExactArgs(1),
	Run:   runCategories,
}

func runCategories(cmd *cobra.Command, args []string) {
	client := newClient()

	categories, err := client.PageCategories(cmd.Context(), args[0], includeHidden)
	if err != nil {
		exitWithError(ExitError, "retrieving page categories: %v", err)
	}

	if humanOutput {
		for _, c := range categories {
			fmt.Println(c)
		}
		return
	}
	outputJSON(TitlesResponse{Titles: categories, Total: len(categories)})
}
