package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/spf13/cobra"
)

var compressionCmd = &cobra.Command{
	Use:   "compression",
	Short: "Axial compression capacity of a member",
	Long: `Calculate the design compressive strength (φPn) of a member.

The calculation follows chapter E:
  - E3: flexural buckling about x and y
  - E4: torsional and flexural-torsional buckling
  - E7: slender element reduction Q = Qs·Qa (iterated on Fcr)

Examples:
  # UPN 200 with 3 m between braces in both planes
  gosteel compression --profile 200 --type UPN --fy 235 --lx 3000 --ly 3000

  # Built-up column from file, weak axis braced at mid height
  gosteel compression -f column.json --fy 345 --lx 6000 --ly 3000`,
	Run: runCompression,
}

func init() {
	rootCmd.AddCommand(compressionCmd)
	addSectionFlags(compressionCmd)
	addLengthFlags(compressionCmd)
}

func runCompression(cmd *cobra.Command, args []string) {
	m, lookup, err := loadMember()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	res, err := compression.Capacity(m.Section, m.Material, m.Lengths, m.Solver)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	banner("AXIAL COMPRESSION")
	printSection(m.Section, memberFy)

	heading("EFFECTIVE LENGTHS")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	l := res.Lengths
	fmt.Fprintf(w, "  KxLx:\t%.0f mm\n", l.KLx())
	fmt.Fprintf(w, "  KyLy:\t%.0f mm\n", l.KLy())
	fmt.Fprintf(w, "  KzLz:\t%.0f mm\n", l.KLz())
	fmt.Fprintf(w, "  Max. slenderness (KL/r):\t%.1f\n", res.Slenderness)
	w.Flush()
	fmt.Println()

	heading("BUCKLING MODES")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, md := range res.Modes {
		mark := ""
		if md.Name == res.Mode {
			mark = "  ← governs"
		}
		fmt.Fprintf(w, "  %s:\tFe = %.1f MPa%s\n", md.Name, md.Fe, mark)
	}
	w.Flush()
	fmt.Println()

	heading("SLENDER ELEMENT REDUCTION")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	rf := res.Reduction
	fmt.Fprintf(w, "  Section class:\t%s\n", res.Classification.Class)
	fmt.Fprintf(w, "  Qs:\t%.3f\n", rf.Qs)
	fmt.Fprintf(w, "  Qa:\t%.3f\n", rf.Qa)
	fmt.Fprintf(w, "  Q:\t%.3f (%d iterations)\n", rf.Q, rf.Iterations)
	w.Flush()
	fmt.Println()

	heading("CRITICAL STRESS")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fe:\t%.1f MPa\n", res.Fe)
	fmt.Fprintf(w, "  Fcr:\t%.1f MPa\n", res.Fcr)
	fmt.Fprintf(w, "  Nominal strength (Pn):\t%.1f kN\n", res.Pn)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("DESIGN CAPACITY", []string{
		fmt.Sprintf("φPn = %.1f kN", res.Pd),
		fmt.Sprintf("Governing mode: %s", res.Mode),
	}))
	fmt.Println()
	printWarnings(diag.Merge(lookup, res.Warnings))
}
