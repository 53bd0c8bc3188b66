package pdf

import (
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/thanadolps/Comic-Encoder/internal/domain"
)

// Document is one open PDF, enumerated in page order.
type Document interface {
	// NumPage returns the page count.
	NumPage() int
	// Image resolves the raster image of page n (0-based).
	Image(n int) (image.Image, error)
	// Close releases the document.
	Close() error
}

// fitzDocument adapts a go-fitz document.
type fitzDocument struct {
	doc *fitz.Document
}

// OpenDocument opens the PDF at path.
func OpenDocument(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, domain.DocumentOpenError(path, err)
	}
	return &fitzDocument{doc: doc}, nil
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) Image(n int) (image.Image, error) {
	return d.doc.Image(n)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
