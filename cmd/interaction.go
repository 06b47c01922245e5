package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/interaction"
	"github.com/alexiusacademia/gosteel/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Factored demand
	interactionNu  float64
	interactionMux float64
	interactionMuy float64

	// Report options
	reportFile    string
	reportProject string
	reportAuthor  string
)

var interactionCmd = &cobra.Command{
	Use:   "interaction",
	Short: "Combined compression and bending check",
	Long: `Check a member under factored axial compression and biaxial
bending with equations H1-1a (Nu/φPn ≥ 0.2) and H1-1b (Nu/φPn < 0.2).

Examples:
  # HEB-type column with 800 kN and 60 kN-m about x
  gosteel interaction -p 200 -t IPB --fy 235 --lx 4000 --ly 4000 --lb 4000 --nu 800 --mux 60

  # Same check written to a PDF calculation sheet
  gosteel interaction -p 200 -t IPB --lx 4000 --ly 4000 --nu 800 --mux 60 --pdf check.pdf`,
	Run: runInteraction,
}

func init() {
	rootCmd.AddCommand(interactionCmd)
	addSectionFlags(interactionCmd)
	addLengthFlags(interactionCmd)
	addBracingFlags(interactionCmd)
	addReportFlags(interactionCmd)

	interactionCmd.Flags().Float64Var(&interactionNu, "nu", 0, "Factored axial compression Nu (kN)")
	interactionCmd.Flags().Float64Var(&interactionMux, "mux", 0, "Factored moment about x Mux (kN-m)")
	interactionCmd.Flags().Float64Var(&interactionMuy, "muy", 0, "Factored moment about y Muy (kN-m)")
}

func addReportFlags(c *cobra.Command) {
	c.Flags().StringVar(&reportFile, "pdf", "", "Write a PDF calculation sheet to this file")
	c.Flags().StringVar(&reportProject, "project", "", "Project name printed on the PDF")
	c.Flags().StringVar(&reportAuthor, "author", "", "Author printed on the PDF")
}

// writeReport renders the sheet when --pdf is given
func writeReport(s report.Sheet) {
	if reportFile == "" {
		return
	}
	s.Header = report.Header{Project: reportProject, Author: reportAuthor}
	f, err := os.Create(reportFile)
	if err != nil {
		fmt.Printf("Error creating report: %v\n", err)
		return
	}
	defer f.Close()
	if err := report.Write(f, s); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	fmt.Printf("  Report written to %s\n\n", reportFile)
}

func printCapacities(c interaction.Capacities) {
	heading("DESIGN STRENGTHS")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  φPn:\t%.1f kN\t(%s)\n", c.Pd(), c.Axial.Mode)
	fmt.Fprintf(w, "  φMnx:\t%.2f kN-m\t(%s)\n", c.Mdx(), c.Major.Governing)
	fmt.Fprintf(w, "  φMny:\t%.2f kN-m\t(%s)\n", c.Mdy(), c.Minor.Governing)
	w.Flush()
	fmt.Println()
}

func runInteraction(cmd *cobra.Command, args []string) {
	m, lookup, err := loadMember()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	d := interaction.Demand{N: interactionNu, Mx: interactionMux, My: interactionMuy}
	res, c, err := interaction.Check(m, d)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	banner("COMBINED FORCES")
	printSection(m.Section, memberFy)
	printCapacities(c)

	heading("INTERACTION")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nu / Mux / Muy:\t%.1f kN / %.2f kN-m / %.2f kN-m\n", d.N, d.Mx, d.My)
	fmt.Fprintf(w, "  Nu/φPn:\t%.3f\n", res.AxialRatio)
	fmt.Fprintf(w, "  Mux/φMnx + Muy/φMny:\t%.3f\n", res.MomentRatio)
	fmt.Fprintf(w, "  Equation:\t%s\n", res.Equation)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("INTERACTION RATIO", []string{
		fmt.Sprintf("%s = %.3f  %s", res.Equation, res.Ratio, status(res.Pass)),
	}))
	fmt.Println()
	printWarnings(diag.Merge(lookup, res.Warnings))

	writeReport(report.Sheet{Member: m, Capacities: c, Check: &res})
}
