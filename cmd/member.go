package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/buckling"
	"github.com/alexiusacademia/gosteel/internal/config"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/interaction"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/spf13/cobra"
)

const rule = "───────────────────────────────────────────────────────────────"

var (
	envFile string

	// Section source
	memberProfile string
	memberType    string
	memberFile    string

	// Material
	memberFy float64

	// Unbraced lengths (mm) and effective length factors
	memberLx, memberLy, memberLz float64
	memberKx, memberKy, memberKz float64

	// Lateral bracing
	memberLb float64
	memberCb float64
)

// addSectionFlags registers the section source and material flags
func addSectionFlags(c *cobra.Command) {
	c.Flags().StringVarP(&memberProfile, "profile", "p", "", "Profile designation in the configured table (e.g. 200)")
	c.Flags().StringVarP(&memberType, "type", "t", "", "Profile type tag (e.g. IPE, UPN, W)")
	c.Flags().StringVarP(&memberFile, "file", "f", "", "Path to a section JSON file")
	c.Flags().Float64Var(&memberFy, "fy", 235, "Yield stress Fy (MPa)")
	c.MarkFlagsMutuallyExclusive("profile", "file")
	c.MarkFlagsOneRequired("profile", "file")
}

// addLengthFlags registers the buckling lengths
func addLengthFlags(c *cobra.Command) {
	c.Flags().Float64Var(&memberLx, "lx", 0, "Unbraced length about x (mm) [required]")
	c.Flags().Float64Var(&memberLy, "ly", 0, "Unbraced length about y (mm) [required]")
	c.Flags().Float64Var(&memberLz, "lz", 0, "Torsional unbraced length (mm), default max(Lx, Ly)")
	c.Flags().Float64Var(&memberKx, "kx", 1, "Effective length factor Kx")
	c.Flags().Float64Var(&memberKy, "ky", 1, "Effective length factor Ky")
	c.Flags().Float64Var(&memberKz, "kz", 1, "Effective length factor Kz")
	c.MarkFlagRequired("lx")
	c.MarkFlagRequired("ly")
}

// addBracingFlags registers the lateral-torsional buckling inputs
func addBracingFlags(c *cobra.Command) {
	c.Flags().Float64Var(&memberLb, "lb", 0, "Laterally unbraced length Lb (mm)")
	c.Flags().Float64Var(&memberCb, "cb", 1, "Moment gradient factor Cb")
}

func loadConfig() (config.Config, error) {
	return config.Load(envFile)
}

// loadSection resolves the section from --file or from the profile table
func loadSection() (*section.Properties, config.Config, diag.Warnings, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, nil, err
	}
	if memberFile != "" {
		p, err := section.LoadFromFile(memberFile)
		return p, cfg, nil, err
	}
	t, err := cfg.Table()
	if err != nil {
		return nil, cfg, nil, err
	}
	p, w, err := t.Section(memberProfile, memberType)
	return p, cfg, w, err
}

func lengths() buckling.Lengths {
	return buckling.Lengths{Lx: memberLx, Ly: memberLy, Lz: memberLz, Kx: memberKx, Ky: memberKy, Kz: memberKz}
}

// loadMember builds the member checked by compression, interaction and combos
func loadMember() (interaction.Member, diag.Warnings, error) {
	p, cfg, w, err := loadSection()
	if err != nil {
		return interaction.Member{}, nil, err
	}
	m := interaction.Member{
		Section:  p,
		Material: aisc.Steel(memberFy),
		Lengths:  lengths(),
		Lb:       memberLb,
		Cb:       memberCb,
		Solver:   cfg.Solver,
	}
	return m, w, nil
}

func banner(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s - CIRSOC 301 / AISC 360-10\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func heading(title string) {
	fmt.Printf("%s:\n", title)
	fmt.Println(rule)
}

func printSection(p *section.Properties, fy float64) {
	heading("SECTION")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Designation:\t%s\n", p.Name())
	fmt.Fprintf(w, "  Family:\t%s\n", p.Family)
	fmt.Fprintf(w, "  Area (A):\t%s mm²\n", p.A)
	fmt.Fprintf(w, "  Ix / Iy:\t%s / %s mm⁴\n", p.Ix, p.Iy)
	fmt.Fprintf(w, "  rx / ry:\t%s / %s mm\n", p.Rx, p.Ry)
	fmt.Fprintf(w, "  Fy:\t%.0f MPa\n", fy)
	w.Flush()
	fmt.Println()
}

func printWarnings(ws diag.Warnings) {
	if len(ws) == 0 {
		return
	}
	heading("WARNINGS")
	for _, w := range ws {
		fmt.Printf("  ⚠ %s\n", w)
	}
	fmt.Println()
}

func status(pass bool) string {
	if pass {
		return "✓ OK"
	}
	return "✗ NOT OK"
}
