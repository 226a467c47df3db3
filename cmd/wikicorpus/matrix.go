package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/wikicorpus/wiki"
)

var (
	matrixDepth int
	matrixPages bool
)

func init() {
	rootCmd.AddCommand(matrixCmd)

	matrixCmd.Flags().IntVar(&matrixDepth, "depth", 1, "Levels of subcategory hierarchy to traverse")
	matrixCmd.Flags().BoolVar(&matrixPages, "pages", false, "Retrieve member pages instead of subcategories")
}

// MatrixResponse is the response for the matrix command. Edges are listed
// per row to keep the output sparse.
type MatrixResponse struct {
	Rows  []string            `json:"rows"`
	Cols  []string            `json:"cols"`
	Edges map[string][]string `json:"edges"`
	NNZ   int                 `json:"nnz"`
}

var matrixCmd = &cobra.Command{
	Use:   "matrix <category>...",
	Short: "Build a category-member matrix",
	Long: `Retrieve members for the given categories and build a sparse binary
category-by-member matrix. With --depth greater than 1, subcategories are
expanded breadth-first and fetched level by level.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runMatrix,
}

func runMatrix(cmd *cobra.Command, args []string) {
	client := newClient()

	ns := wiki.NamespaceCategory
	if matrixPages {
		ns = wiki.NamespaceMain
	}

	m, err := client.CategoryMatrix(cmd.Context(), args, matrixDepth, ns)
	if err != nil {
		exitWithError(ExitError, "building category matrix: %v", err)
	}

	if humanOutput {
		rows, cols := m.Shape()
		fmt.Printf("%d categories x %d members, %d edges\n", rows, cols, m.NNZ())
		return
	}

	edges := make(map[string][]string, len(m.RowLabels))
	for i, row := range m.RowLabels {
		for _, j := range m.Row(i) {
			edges[row] = append(edges[row], m.ColLabels[j])
		}
	}
	outputJSON(MatrixResponse{
		Rows:  m.RowLabels,
		Cols:  m.ColLabels,
		Edges: edges,
		NNZ:   m.NNZ(),
	})
}
