package export

import (
	"asciigfx/canvas"
	"strings"
)

// ASCIIExporter exports a canvas as its text rows
type ASCIIExporter struct{}

// NewASCIIExporter creates a new ASCII exporter
func NewASCIIExporter() *ASCIIExporter {
	return &ASCIIExporter{}
}

// Export joins the canvas rows with newlines, ending with a trailing newline.
func (e *ASCIIExporter) Export(c *canvas.Canvas) (string, error) {
	var sb strings.Builder
	if err := Print(&sb, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// GetFileExtension returns the recommended file extension
func (e *ASCIIExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *ASCIIExporter) GetFormatName() string {
	return "ASCII art"
}
