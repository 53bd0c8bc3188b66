package commands

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "comic-encoder",
	Short: "Extract comic pages from CBZ/ZIP archives and PDF documents",
	Long: `comic-encoder extracts the page images embedded in a comic container
(a ZIP/CBZ archive) or a PDF document and writes them to an output directory
as zero-padded, sequentially numbered image files in reading order.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
