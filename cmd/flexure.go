package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/flexure"
	"github.com/spf13/cobra"
)

var flexureAxis string

var flexureCmd = &cobra.Command{
	Use:   "flexure",
	Short: "Flexural capacity of a member about one axis",
	Long: `Calculate the design flexural strength (φMn) of a member.

Every limit state of the family is evaluated and the lowest governs:
  - Yielding (plastic moment)
  - Lateral-torsional buckling (F2, F4 for channels)
  - Flange and web local buckling (F3, F6, F7, F8)

Examples:
  # IPE 300, strong axis, 4 m between lateral braces
  gosteel flexure --profile 300 --type IPE --fy 235 --lb 4000

  # Weak axis bending of a W shape from the AISC table
  STEELCHECK_DB=AISC gosteel flexure -p W310X97 --fy 345 --axis y`,
	Run: runFlexure,
}

func init() {
	rootCmd.AddCommand(flexureCmd)
	addSectionFlags(flexureCmd)
	addBracingFlags(flexureCmd)
	flexureCmd.Flags().StringVar(&flexureAxis, "axis", "x", "Bending axis: x (major) or y (minor)")
}

func runFlexure(cmd *cobra.Command, args []string) {
	axis, err := flexure.ParseAxis(flexureAxis)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	p, _, lookup, err := loadSection()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	res, err := flexure.Capacity(p, aisc.Steel(memberFy), axis, memberLb, memberCb)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	banner(fmt.Sprintf("FLEXURE ABOUT %s", axis))
	printSection(p, memberFy)

	heading("REFERENCE MOMENTS")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Plastic moment (Mp):\t%.2f kN-m\n", res.Mp)
	fmt.Fprintf(w, "  Yield moment (My):\t%.2f kN-m\n", res.My)
	if lp, ok := res.Lp.Get(); ok {
		fmt.Fprintf(w, "  Lp:\t%.0f mm\n", lp)
	}
	if lr, ok := res.Lr.Get(); ok {
		fmt.Fprintf(w, "  Lr:\t%.0f mm\n", lr)
	}
	fmt.Fprintf(w, "  Lb / Cb:\t%.0f mm / %.2f\n", res.Lb, res.Cb)
	w.Flush()
	fmt.Println()

	heading("LIMIT STATES")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, ls := range res.LimitStates {
		mark := ""
		if ls.Name == res.Governing {
			mark = "  ← governs"
		}
		fmt.Fprintf(w, "  %s\t%s\tMn = %.2f kN-m%s\n", ls.Name, ls.Zone, ls.Mn, mark)
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("DESIGN CAPACITY", []string{
		fmt.Sprintf("φMn = %.2f kN-m", res.Md),
		fmt.Sprintf("Governing: %s", res.Governing),
	}))
	fmt.Println()
	printWarnings(diag.Merge(lookup, res.Warnings))
}
