package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosteel/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Steel member resistance checks",
	Long: `gosteel - Go Steel Member Checker

A CLI tool for the resistance of rolled and built-up steel members
under CIRSOC 301 / AISC 360-10 (LRFD).

This tool helps structural engineers perform:
  - Cross-section classification (table B4.1)
  - Axial compression capacity with slender element reduction (chapter E)
  - Flexural capacity about both axes (chapter F)
  - Combined axial and bending checks (chapter H)
  - Load combination sweeps, capacity curves and PDF reports

Sections come from the CIRSOC or AISC profile tables (--profile)
or from a JSON file (--file).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteel v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Steel Member Checker                                 ║")
		fmt.Printf("  ║   %-56s║\n", version.Codes)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Classification of I-shapes, channels, angles, tees and tubes")
		fmt.Println("    • Compression with flexural, torsional and flexural-torsional modes")
		fmt.Println("    • Flexure with yielding, LTB, FLB and WLB limit states")
		fmt.Println("    • H1-1a / H1-1b interaction and LRFD load combinations")
		fmt.Println("    • HTTP JSON API (gosteel serve)")
		fmt.Println()
		fmt.Println("  Use 'gosteel --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Configuration file read before the environment")
}
