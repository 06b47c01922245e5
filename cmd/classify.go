package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/classify"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	classifyShowDiagram bool
	classifyExportFile  string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify the plate elements of a section",
	Long: `Classify every plate element of a cross-section as COMPACT,
NONCOMPACT or SLENDER using the width-to-thickness limits of
table B4.1. The section takes the most severe class of its elements.

Examples:
  # IPE 200 from the CIRSOC table
  gosteel classify --profile 200 --type IPE --fy 235

  # Built-up girder from a JSON file, with a drawing of the section
  gosteel classify --file girder.json --fy 345 --diagram`,
	Run: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	addSectionFlags(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyShowDiagram, "diagram", false, "Show the section outline and slenderness gauges")
	classifyCmd.Flags().StringVarP(&classifyExportFile, "output", "o", "", "Export the section drawing to file (png, svg, pdf)")
}

func runClassify(cmd *cobra.Command, args []string) {
	p, _, lookup, err := loadSection()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	c, err := classify.Section(p, aisc.Steel(memberFy))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	banner("SECTION CLASSIFICATION")
	printSection(p, memberFy)

	heading("ELEMENTS")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Element\tλ\tλp\tλr\tClass")
	for _, e := range c.Elements {
		fmt.Fprintf(w, "  %s\t%.2f\t%s\t%.2f\t%s\n", e.Name, e.Lambda, e.LambdaP, e.LambdaR, e.Class)
	}
	w.Flush()
	fmt.Println()

	if classifyShowDiagram {
		fmt.Print(diagram.DrawSection(p))
		fmt.Print(diagram.DrawSlenderness(c))
		fmt.Println()
	}
	if classifyExportFile != "" {
		if err := diagram.ExportSection(p, classifyExportFile); err != nil {
			fmt.Printf("Error exporting section: %v\n", err)
		} else {
			fmt.Printf("  Section drawing exported to %s\n\n", classifyExportFile)
		}
	}

	fmt.Print(diagram.DrawSummaryBox("SECTION CLASS", []string{
		fmt.Sprintf("%s: %s", p.Name(), c.Class),
	}))
	fmt.Println()
	printWarnings(diag.Merge(lookup, c.Notes))
}
