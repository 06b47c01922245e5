package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/flexure"
	"github.com/spf13/cobra"
)

var (
	curveKind   string
	curveAxis   string
	curveMax    float64
	curvePoints int
	curveOutput string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Plot a capacity curve",
	Long: `Sample a capacity curve of a section and plot it in the terminal.

Kinds:
  flexure  - φMn against the unbraced length Lb, from 0 to --max
  column   - φPn against the effective length KL, up to --max

Examples:
  # Moment capacity of an IPE 300 up to 10 m between braces
  gosteel curve --kind flexure -p 300 -t IPE --max 10000

  # Column curve exported as an image
  gosteel curve --kind column -p 200 -t IPB --max 8000 -o column.png`,
	Run: runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)
	addSectionFlags(curveCmd)
	curveCmd.Flags().StringVar(&curveKind, "kind", "flexure", "Curve kind: flexure or column")
	curveCmd.Flags().StringVar(&curveAxis, "axis", "x", "Bending axis of the flexure curve")
	curveCmd.Flags().Float64Var(&memberCb, "cb", 1, "Moment gradient factor Cb")
	curveCmd.Flags().Float64Var(&curveMax, "max", 10000, "Largest length sampled (mm)")
	curveCmd.Flags().IntVarP(&curvePoints, "points", "n", 60, "Number of samples")
	curveCmd.Flags().StringVarP(&curveOutput, "output", "o", "", "Export the curve to file (png, svg, pdf)")
}

func runCurve(cmd *cobra.Command, args []string) {
	p, cfg, _, err := loadSection()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	m := aisc.Steel(memberFy)

	switch curveKind {
	case "flexure":
		axis, err := flexure.ParseAxis(curveAxis)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		points, err := flexure.Curve(p, m, axis, memberCb, curveMax, curvePoints)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		banner(fmt.Sprintf("MOMENT CAPACITY CURVE %s", p.Name()))
		fmt.Print(diagram.DrawFlexureCurve(points))
		fmt.Println()
		if curveOutput != "" {
			// Lp and Lr do not depend on Lb
			ref, err := flexure.Capacity(p, m, axis, 0, memberCb)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			exportCurve(diagram.ExportFlexureCurve(points, &ref, curveOutput))
		}
	case "column":
		points, err := compression.Curve(p, m, cfg.Solver, curveMax, curvePoints)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		banner(fmt.Sprintf("COLUMN CURVE %s", p.Name()))
		fmt.Print(diagram.DrawColumnCurve(points))
		fmt.Println()
		if curveOutput != "" {
			exportCurve(diagram.ExportColumnCurve(points, fmt.Sprintf("Column curve %s, Fy = %.0f MPa", p.Name(), memberFy), curveOutput))
		}
	default:
		fmt.Printf("Error: unknown curve kind %q (flexure or column)\n", curveKind)
	}
}

func exportCurve(err error) {
	if err != nil {
		fmt.Printf("Error exporting curve: %v\n", err)
		return
	}
	fmt.Printf("  Curve exported to %s\n\n", curveOutput)
}
