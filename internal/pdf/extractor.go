// Package pdf extracts the page images of a PDF document in document order.
//
// Unlike the archive path there is no sorting step: the document itself
// supplies a meaningful page order, and pages are never re-sorted.
package pdf

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/thanadolps/Comic-Encoder/internal/domain"
	"github.com/thanadolps/Comic-Encoder/internal/observability"
)

// JPEG quality for written pages.
const jpegQuality = 90

// Options control page failure handling and progress reporting.
type Options struct {
	// SkipBadPages downgrades a page resolution failure to a warning; the
	// page then contributes no image. Without it the first failure aborts.
	SkipBadPages bool
	// Progress, when set, is called after each image is written.
	Progress domain.ProgressFunc
}

// Extractor writes a document's page images into an output directory as a
// zero-padded JPEG sequence.
type Extractor struct {
	log *observability.Logger
}

// NewExtractor creates a document extractor reporting through log.
func NewExtractor(log *observability.Logger) *Extractor {
	return &Extractor{log: log.With("extractor", "pdf")}
}

// Extract collects every page image of doc in document order, then writes
// them out as zero-padded .jpg files under outputDir and returns the final
// paths. A write failure is fatal; an image whose JPEG form cannot be
// produced is skipped with a warning, since encoding support depends on the
// source material. Already-written files are left in place on failure.
func (e *Extractor) Extract(doc Document, outputDir string, opts Options) ([]string, error) {
	total := doc.NumPage()

	e.log.Debug().Int("pages", total).Msg("looking for images in the document")

	images := make([]image.Image, 0, total)

	for i := 0; i < total; i++ {
		e.log.Trace().Int("page", i+1).Msg("resolving page")

		img, err := doc.Image(i)
		if err != nil {
			resolveErr := domain.PageResolveError(i+1, err)
			if opts.SkipBadPages {
				e.log.Warn().Err(resolveErr).Int("page", i+1).Msg("skipping bad page")
				continue
			}
			return nil, resolveErr
		}

		images = append(images, img)
	}

	e.log.Info().Int("images", len(images)).Msg("extracting images from document")

	width := domain.PadWidth(len(images))
	extracted := make([]string, 0, len(images))

	for i, img := range images {
		outpath := filepath.Join(outputDir, domain.PageFileName(i+1, width, "jpg"))

		e.log.Debug().Int("image", i+1).Int("total", len(images)).Msg("extracting image")

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			e.log.Warn().Err(err).Int("image", i+1).Msg("image has no encodable form, skipping")
			continue
		}

		if err := os.WriteFile(outpath, buf.Bytes(), 0o644); err != nil {
			return nil, domain.WriteImageError(i+1, outpath, err)
		}

		extracted = append(extracted, outpath)

		if opts.Progress != nil {
			opts.Progress(i+1, len(images))
		}
	}

	return extracted, nil
}
