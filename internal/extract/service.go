// Package extract dispatches a decode request to the extractor matching the
// input container's format.
package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thanadolps/Comic-Encoder/internal/cbz"
	"github.com/thanadolps/Comic-Encoder/internal/domain"
	"github.com/thanadolps/Comic-Encoder/internal/format"
	"github.com/thanadolps/Comic-Encoder/internal/observability"
	"github.com/thanadolps/Comic-Encoder/internal/pdf"
)

// Options describes one decode request.
type Options struct {
	// Input is the container to decode.
	Input string
	// Output is the directory extracted pages are written to. Empty selects
	// the input path with its extension removed, created unconditionally.
	Output string
	// CreateOutputDir creates a named Output when it does not exist yet.
	CreateOutputDir bool
	// ExtractImagesOnly skips archive entries that are not images.
	ExtractImagesOnly bool
	// AcceptExtendedImageFormats widens the image extension table.
	AcceptExtendedImageFormats bool
	// SimpleSorting orders archive pages lexicographically instead of
	// naturally.
	SimpleSorting bool
	// SkipBadPDFPages downgrades PDF page resolution failures to warnings.
	SkipBadPDFPages bool
	// Progress, when set, receives per-page extraction progress.
	Progress domain.ProgressFunc
}

// Service routes decode requests to the right extractor and times them.
type Service struct {
	log      *observability.Logger
	archive  *cbz.Extractor
	document *pdf.Extractor
}

// NewService creates a decode service reporting through log.
func NewService(log *observability.Logger) *Service {
	return &Service{
		log:      log,
		archive:  cbz.NewExtractor(log),
		document: pdf.NewExtractor(log),
	}
}

// Decode extracts the page images of the container named by opts and returns
// the final output paths in reading order. The whole operation is
// synchronous and aborts at the first failure; files already written stay on
// disk for inspection.
func (s *Service) Decode(opts Options) ([]string, error) {
	input, err := filepath.Abs(opts.Input)
	if err != nil {
		return nil, domain.WorkingDirectoryError(err)
	}

	info, err := os.Stat(input)
	if err != nil {
		return nil, domain.InputNotFoundError(input)
	}
	if info.IsDir() {
		return nil, domain.InputIsDirectoryError(input)
	}

	output, err := s.resolveOutput(input, opts)
	if err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(filepath.Ext(input), ".")
	if ext == "" {
		return nil, domain.UnsupportedFormatError("")
	}
	if !utf8.ValidString(ext) {
		return nil, domain.InvalidEncodingError("input file extension")
	}

	started := time.Now()

	var extracted []string

	switch strings.ToLower(ext) {
	case "zip", "cbz":
		s.log.Debug().Str("format", "zip/cbz").Msg("matched input format")
		extracted, err = s.archive.Extract(input, output, cbz.Options{
			ImagesOnly:      opts.ExtractImagesOnly,
			ExtendedFormats: opts.AcceptExtendedImageFormats,
			SimpleSorting:   opts.SimpleSorting,
			Progress:        opts.Progress,
		})

	case "pdf":
		s.log.Debug().Str("format", "pdf").Msg("matched input format")
		var doc pdf.Document
		doc, err = pdf.OpenDocument(input)
		if err != nil {
			return nil, err
		}
		extracted, err = s.document.Extract(doc, output, pdf.Options{
			SkipBadPages: opts.SkipBadPDFPages,
			Progress:     opts.Progress,
		})
		if cerr := doc.Close(); cerr != nil && err == nil {
			s.log.Warn().Err(cerr).Msg("failed to close document")
		}

	default:
		if format.IsSupportedForDecoding(ext) {
			s.log.Warn().Str("format", ext).
				Msg("internal error: format cannot be handled but is marked as supported nonetheless")
		}
		return nil, domain.UnsupportedFormatError(ext)
	}

	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("pages", len(extracted)).
		Dur("elapsed", time.Since(started)).
		Msg("successfully extracted pages")

	return extracted, nil
}

// resolveOutput determines and, when allowed, creates the output directory.
func (s *Service) resolveOutput(input string, opts Options) (string, error) {
	if opts.Output == "" {
		path := strings.TrimSuffix(input, filepath.Ext(input))
		if err := os.MkdirAll(path, 0o755); err != nil {
			return "", domain.CreateOutputDirError(path, err)
		}
		return path, nil
	}

	info, err := os.Stat(opts.Output)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if !opts.CreateOutputDir {
			return "", domain.OutputDirMissingError(opts.Output)
		}
		if mkErr := os.MkdirAll(opts.Output, 0o755); mkErr != nil {
			return "", domain.CreateOutputDirError(opts.Output, mkErr)
		}
	case err != nil:
		return "", domain.CreateOutputDirError(opts.Output, err)
	case !info.IsDir():
		return "", domain.OutputDirIsFileError(opts.Output)
	}

	return opts.Output, nil
}
