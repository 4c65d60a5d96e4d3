package source

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/chip8rt/refextract/internal/config"
)

// Source yields one decoded raster image per conversion.
type Source interface {
	Image() (image.Image, error)
	Close() error
}

// Open picks a Source implementation by file extension: PDFs are
// rendered through go-fitz, everything else goes through the image
// decoders.
func Open(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewPDFSource(path)
	}
	return NewFileSource(path), nil
}

// PDFSource rasterizes the first page of a PDF. Some test suites ship
// their reference screenshots embedded in documentation pages.
type PDFSource struct {
	doc  *fitz.Document
	path string
}

func NewPDFSource(path string) (*PDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &PDFSource{doc: doc, path: path}, nil
}

func (p *PDFSource) Image() (image.Image, error) {
	return p.doc.ImageDPI(0, float64(config.DefaultPDFDPI))
}

func (p *PDFSource) Close() error {
	return p.doc.Close()
}
