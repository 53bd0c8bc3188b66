// Package cbz extracts page images from ZIP-like comic archives.
package cbz

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/thanadolps/Comic-Encoder/internal/domain"
	"github.com/thanadolps/Comic-Encoder/internal/format"
	"github.com/thanadolps/Comic-Encoder/internal/natsort"
	"github.com/thanadolps/Comic-Encoder/internal/observability"
)

// Options control which entries qualify as pages and how they are ordered.
type Options struct {
	// ImagesOnly skips entries whose extension does not name an image.
	ImagesOnly bool
	// ExtendedFormats widens the image extension table (webp, tiff, ...).
	ExtendedFormats bool
	// SimpleSorting orders pages lexicographically instead of naturally.
	SimpleSorting bool
	// Progress, when set, is called after each page is copied out.
	Progress domain.ProgressFunc
}

// Extractor pulls page images out of a ZIP/CBZ container and renames them
// into a zero-padded sequence.
type Extractor struct {
	log *observability.Logger
}

// NewExtractor creates an archive extractor reporting through log.
func NewExtractor(log *observability.Logger) *Extractor {
	return &Extractor{log: log.With("extractor", "cbz")}
}

// Extract enumerates the archive at input, copies every qualifying entry to a
// temporary file under outputDir, sorts the pages by their original archive
// paths and renames them to the final numbered names. It returns the final
// paths in page order. The extraction is done in two phases because the
// archive's own order rarely matches reading order, and a temporary name
// avoids collisions between an entry's original name and its numbered target.
//
// Any failure aborts the whole extraction; temporary files already written
// are left in place for inspection.
func (e *Extractor) Extract(input, outputDir string, opts Options) ([]string, error) {
	e.log.Trace().Str("input", input).Msg("opening archive")

	r, err := zip.OpenReader(input)
	if err != nil {
		return nil, domain.ArchiveOpenError(input, err)
	}
	defer r.Close()

	total := len(r.File)
	e.log.Debug().Int("entries", total).Msg("archive opened")

	var pages []domain.StagedPage

	for i, f := range r.File {
		e.log.Trace().Int("entry", i).Str("name", f.Name).Msg("retrieving archive entry")

		if f.FileInfo().IsDir() {
			continue
		}

		name := sanitizeName(f.Name)

		if opts.ImagesOnly && !format.HasImageExt(name, opts.ExtendedFormats) {
			e.log.Trace().
				Int("entry", i+1).
				Int("total", total).
				Str("name", name).
				Msg("ignoring entry based on extension")
			continue
		}

		ext := strings.TrimPrefix(path.Ext(name), ".")
		if !utf8.ValidString(ext) {
			return nil, domain.EntryNameError(name)
		}

		tmp := filepath.Join(outputDir, fmt.Sprintf("___tmp_pic_%s", uuid.NewString()))

		e.log.Debug().Int("entry", i+1).Int("total", total).Msg("extracting entry")

		if err := copyEntry(f, tmp); err != nil {
			return nil, err
		}

		pages = append(pages, domain.StagedPage{
			ArchivePath: name,
			TempPath:    tmp,
			Ext:         ext,
		})

		if opts.Progress != nil {
			opts.Progress(i+1, total)
		}
	}

	e.log.Trace().Msg("sorting pages")

	if opts.SimpleSorting {
		sort.SliceStable(pages, func(i, j int) bool {
			return pages[i].ArchivePath < pages[j].ArchivePath
		})
	} else {
		sort.SliceStable(pages, func(i, j int) bool {
			return natsort.Less(pages[i].ArchivePath, pages[j].ArchivePath)
		})
	}

	width := domain.PadWidth(len(pages))
	extracted := make([]string, 0, len(pages))

	e.log.Debug().Int("pages", len(pages)).Msg("renaming pictures")

	for i, page := range pages {
		target := filepath.Join(outputDir, domain.PageFileName(i+1, width, page.Ext))

		e.log.Trace().Int("page", i+1).Int("total", len(pages)).Msg("renaming picture")

		if err := os.Rename(page.TempPath, target); err != nil {
			return nil, domain.RenameTempError(page.TempPath, target, err)
		}

		extracted = append(extracted, target)
	}

	return extracted, nil
}

// copyEntry streams one archive entry to dest, making sure the entry's read
// handle never outlives the copy.
func copyEntry(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return domain.ArchiveEntryError(f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return domain.CreateTempFileError(dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return domain.CopyEntryError(f.Name, dest, err)
	}

	return nil
}

// sanitizeName normalizes an entry name to clean, slash-separated, relative
// form, mirroring what archive readers do to guard against traversal.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Clean(name)
	name = strings.TrimPrefix(name, "/")
	for strings.HasPrefix(name, "../") {
		name = strings.TrimPrefix(name, "../")
	}
	return name
}
