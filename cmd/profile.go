package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/spf13/cobra"
)

var (
	profileShowType    string
	profileShowDiagram bool
	profileListType    string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Browse the profile tables",
	Long: `Inspect the CIRSOC or AISC profile table selected by STEELCHECK_DB.
The table is read from STEELCHECK_ROOT/database.

Subcommands:
  show       - Print the converted properties of one profile
  list       - List the designations of the table
  ambiguous  - List designations shared by several type tags`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <designation>",
	Short: "Print the properties of one profile in mm-based units",
	Long: `Look up a designation and print every property after unit conversion.

Examples:
  gosteel profile show 200 --type IPE
  gosteel profile show 200 --type UPN --diagram`,
	Args: cobra.ExactArgs(1),
	Run:  runProfileShow,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the designations of the table",
	Run:   runProfileList,
}

var profileAmbiguousCmd = &cobra.Command{
	Use:   "ambiguous",
	Short: "List designations that need a type tag",
	Run:   runProfileAmbiguous,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileListCmd, profileAmbiguousCmd)

	profileShowCmd.Flags().StringVarP(&profileShowType, "type", "t", "", "Profile type tag (e.g. IPE, UPN, W)")
	profileShowCmd.Flags().BoolVar(&profileShowDiagram, "diagram", false, "Draw the section outline")
	profileListCmd.Flags().StringVarP(&profileListType, "type", "t", "", "Only list this type tag")
}

func runProfileShow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	t, err := cfg.Table()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	p, lookup, err := t.Section(args[0], profileShowType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	banner(fmt.Sprintf("PROFILE %s (%s)", p.Name(), cfg.System))
	heading("PROPERTIES")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  family\t%s\n", p.Family)
	for _, name := range section.FieldNames() {
		v, _ := p.Field(name)
		if _, ok := v.Get(); ok {
			fmt.Fprintf(w, "  %s\t%s\n", name, v)
		}
	}
	w.Flush()
	fmt.Println()

	if profileShowDiagram {
		fmt.Print(diagram.DrawSection(p))
		fmt.Println()
	}
	printWarnings(lookup)
}

func runProfileList(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	t, err := cfg.Table()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	tags := t.Tags()
	if profileListType != "" {
		tags = []string{strings.ToUpper(profileListType)}
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, tag := range tags {
		names := t.ByTag(tag)
		fmt.Fprintf(w, "  %s\t(%d)\t%s\n", tag, len(names), strings.Join(names, ", "))
	}
	w.Flush()
}

func runProfileAmbiguous(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	t, err := cfg.Table()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	dups := t.Ambiguous()
	if len(dups) == 0 {
		fmt.Println("  Every designation is unique.")
		return
	}
	heading("AMBIGUOUS DESIGNATIONS")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, d := range dups {
		fmt.Fprintf(w, "  %s\t×%d\t%s\n", d.Designation, d.Count, strings.Join(d.Tags, ", "))
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Pass --type to pick one of them.")
}
