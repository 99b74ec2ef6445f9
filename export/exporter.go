// Package export turns a finished canvas into text output.
package export

import (
	"asciigfx/canvas"
	"fmt"
)

// Format represents an export format
type Format string

const (
	// FormatASCII exports the grid rows as plain text (default)
	FormatASCII Format = "ascii"
	// FormatJSON exports the grid size and rows as a JSON document
	FormatJSON Format = "json"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a canvas to the target format
	Export(c *canvas.Canvas) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatASCII:
		return NewASCIIExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "ascii", "text", "txt":
		return FormatASCII, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatASCII,
		FormatJSON,
	}
}

// checkCanvas rejects canvases that cannot be exported.
func checkCanvas(c *canvas.Canvas) error {
	if c == nil {
		return fmt.Errorf("canvas is nil")
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("canvas has a drawing error: %w", err)
	}
	return nil
}
