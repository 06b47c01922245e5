package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/interaction"
	"github.com/alexiusacademia/gosteel/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Unfactored effects per load type: N (kN), Mx, My (kN-m)
	comboDead       []float64
	comboLive       []float64
	comboRoof       []float64
	comboWind       []float64
	comboEarthquake []float64
	comboRain       []float64

	comboSet string
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Check a member under every LRFD load combination",
	Long: `Factor the unfactored member forces of each load type with the
LRFD combinations and check every resulting demand with chapter H.
The capacities are computed once; the combination with the highest
ratio governs.

Each load type takes N,Mx,My (kN, kN-m). Missing components are zero.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity column
  gosteel combos -p 200 -t IPB --lx 4000 --ly 4000 --dead 300,10 --live 200,8 --set gravity

  # Beam-column with wind
  gosteel combos -p 300 -t IPE --lx 5000 --ly 2500 --lb 2500 --dead 120,25 --live 80,20 --wind 40,35,0`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)
	addSectionFlags(combosCmd)
	addLengthFlags(combosCmd)
	addBracingFlags(combosCmd)
	addReportFlags(combosCmd)

	combosCmd.Flags().Float64SliceVarP(&comboDead, "dead", "d", nil, "Dead load effects N,Mx,My")
	combosCmd.Flags().Float64SliceVarP(&comboLive, "live", "l", nil, "Live load effects N,Mx,My")
	combosCmd.Flags().Float64SliceVarP(&comboRoof, "roof", "r", nil, "Roof live load effects N,Mx,My")
	combosCmd.Flags().Float64SliceVarP(&comboWind, "wind", "w", nil, "Wind load effects N,Mx,My")
	combosCmd.Flags().Float64SliceVarP(&comboEarthquake, "earthquake", "e", nil, "Earthquake load effects N,Mx,My")
	combosCmd.Flags().Float64SliceVar(&comboRain, "rain", nil, "Rain load effects N,Mx,My")
	combosCmd.Flags().StringVar(&comboSet, "set", "full", "Combination set: full or gravity")
}

// effect reads up to three components
func effect(name string, v []float64) (aisc.Effect, error) {
	if len(v) > 3 {
		return aisc.Effect{}, diag.Invalid("--%s takes at most N,Mx,My: %v", name, v)
	}
	var e [3]float64
	copy(e[:], v)
	return aisc.Effect{N: e[0], Mx: e[1], My: e[2]}, nil
}

func loadEffects() (aisc.LoadEffects, error) {
	var le aisc.LoadEffects
	for _, f := range []struct {
		name string
		v    []float64
		dst  *aisc.Effect
	}{
		{"dead", comboDead, &le.Dead},
		{"live", comboLive, &le.Live},
		{"roof", comboRoof, &le.Roof},
		{"wind", comboWind, &le.Wind},
		{"earthquake", comboEarthquake, &le.Earthquake},
		{"rain", comboRain, &le.Rain},
	} {
		e, err := effect(f.name, f.v)
		if err != nil {
			return le, err
		}
		*f.dst = e
	}
	return le, nil
}

func runCombos(cmd *cobra.Command, args []string) {
	combos, ok := aisc.Combinations(comboSet)
	if !ok {
		fmt.Printf("Error: unknown combination set %q\n", comboSet)
		return
	}
	le, err := loadEffects()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	m, lookup, err := loadMember()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sw, err := interaction.CheckCombinations(m, le, combos)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	banner("LOAD COMBINATIONS")
	printSection(m.Section, memberFy)
	printCapacities(sw.Capacities)

	heading("COMBINATIONS")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tCombination\tNu (kN)\tMux\tMuy\tEq.\tRatio\t")
	for _, cr := range sw.Results {
		r := cr.Result
		mark := ""
		if cr.Combination.ID == sw.Governing.Combination.ID {
			mark = "← governs"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.2f\t%.2f\t%s\t%.3f\t%s\n",
			cr.Combination.ID, cr.Combination.Description, r.Demand.N, r.Demand.Mx, r.Demand.My,
			r.Equation, r.Ratio, mark)
	}
	w.Flush()
	fmt.Println()

	g := sw.Governing
	fmt.Print(diagram.DrawSummaryBox("GOVERNING COMBINATION", []string{
		fmt.Sprintf("%s: %s", g.Combination.ID, g.Combination.Description),
		fmt.Sprintf("%s = %.3f  %s", g.Result.Equation, g.Result.Ratio, status(sw.Pass)),
	}))
	fmt.Println()
	printWarnings(diag.Merge(lookup, sw.Warnings))

	writeReport(report.Sheet{Member: m, Capacities: sw.Capacities, Sweep: &sw})
}
