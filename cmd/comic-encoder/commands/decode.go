package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thanadolps/Comic-Encoder/cmd/comic-encoder/ui"
	"github.com/thanadolps/Comic-Encoder/internal/config"
	"github.com/thanadolps/Comic-Encoder/internal/observability"
	"github.com/thanadolps/Comic-Encoder/pkg/decoder"
)

var (
	decodeOutput          string
	decodeCreateOutputDir bool
	decodeImagesOnly      bool
	decodeExtendedFormats bool
	decodeSimpleSorting   bool
	decodeSkipBadPages    bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <input>",
	Short: "Extract the pages of a comic archive or PDF",
	Long: `Extract the page images of a ZIP/CBZ archive or PDF document into an
output directory as a zero-padded numbered sequence. Without --output, pages
land in a directory named after the input file.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "output directory (default: input path without extension)")
	decodeCmd.Flags().BoolVar(&decodeCreateOutputDir, "create-output-dir", false, "create the output directory if it does not exist")
	decodeCmd.Flags().BoolVar(&decodeImagesOnly, "extract-images-only", true, "only extract archive entries that are images")
	decodeCmd.Flags().BoolVar(&decodeExtendedFormats, "accept-extended-image-formats", false, "accept less common image formats (webp, tiff, ...)")
	decodeCmd.Flags().BoolVar(&decodeSimpleSorting, "simple-sorting", false, "sort pages lexicographically instead of naturally")
	decodeCmd.Flags().BoolVar(&decodeSkipBadPages, "skip-bad-pdf-pages", false, "skip PDF pages that fail to resolve instead of aborting")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ui.InitUI(noColor, verbose)

	// Flags the user set win over config file values.
	applyDecodeFlags(cmd, cfg)

	level := cfg.Log.Level
	if verbose {
		level = "trace"
	}
	log := observability.NewLogger(observability.LogConfig{
		Level:  level,
		Format: cfg.Log.Format,
	})

	client := decoder.NewClientWithLogger(log)

	var (
		bar *ui.ProgressBar
		sp  *ui.Spinner
	)
	progress := func(done, total int) {
		if verbose {
			return // verbose logging already narrates every page
		}
		if sp != nil {
			sp.Stop()
			sp = nil
		}
		if bar == nil {
			bar = ui.NewProgressBar(int64(total), "Extracting pages")
		}
		bar.Set(int64(done))
	}

	ui.Info("Input: %s", args[0])

	if !verbose {
		sp = ui.NewSpinner("Opening container...")
		sp.Start()
	}

	started := time.Now()
	paths, err := client.Decode(decoder.Options{
		Input:                      args[0],
		Output:                     decodeOutput,
		CreateOutputDir:            decodeCreateOutputDir,
		ExtractImagesOnly:          cfg.Decode.ExtractImagesOnly,
		AcceptExtendedImageFormats: cfg.Decode.AcceptExtendedImageFormats,
		SimpleSorting:              cfg.Decode.SimpleSorting,
		SkipBadPDFPages:            cfg.Decode.SkipBadPDFPages,
		Progress:                   progress,
	})
	if sp != nil {
		sp.Stop()
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}

	ui.Success("Extracted %d pages in %s", len(paths), ui.FormatDuration(time.Since(started)))
	if len(paths) > 0 {
		ui.Info("Pages written next to %s", paths[0])
	}

	return nil
}

// applyDecodeFlags overlays explicitly set command flags onto cfg.
func applyDecodeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("extract-images-only") {
		cfg.Decode.ExtractImagesOnly = decodeImagesOnly
	}
	if cmd.Flags().Changed("accept-extended-image-formats") {
		cfg.Decode.AcceptExtendedImageFormats = decodeExtendedFormats
	}
	if cmd.Flags().Changed("simple-sorting") {
		cfg.Decode.SimpleSorting = decodeSimpleSorting
	}
	if cmd.Flags().Changed("skip-bad-pdf-pages") {
		cfg.Decode.SkipBadPDFPages = decodeSkipBadPages
	}
	if cmd.Flags().Changed("create-output-dir") {
		cfg.Decode.CreateOutputDir = decodeCreateOutputDir
	} else {
		decodeCreateOutputDir = cfg.Decode.CreateOutputDir
	}
}
