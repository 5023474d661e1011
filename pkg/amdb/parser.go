package amdb

import (
	"fmt"
	"os"

	"github.com/beetlebugorg/amdb/internal/parser"
)

// Parser parses AMDB airport documents.
//
// Create a parser with NewParser and use Parse or ParseWithOptions to read
// documents from disk, or ParseBytes for documents already in memory.
type Parser interface {
	// Parse reads an AMDB document and returns the decoded airport.
	//
	// Returns an error if the file cannot be read, if the document misses a
	// feature group, or if any feature fails to decode.
	Parse(filename string) (*Airport, error)

	// ParseWithOptions parses an AMDB document with custom options.
	//
	// Use ParseOptions to control validation, error handling and concurrency.
	ParseWithOptions(filename string, opts ParseOptions) (*Airport, error)

	// ParseBytes decodes a document held in memory.
	ParseBytes(document []byte, opts ParseOptions) (*Airport, error)
}

// NewParser creates a new AMDB parser.
//
// Example:
//
//	p := amdb.NewParser()
//	airport, err := p.Parse("KXYZ.geojson")
func NewParser() Parser {
	return &documentParser{}
}

// ParseAirport decodes a document with default options.
func ParseAirport(document []byte) (*Airport, error) {
	return NewParser().ParseBytes(document, DefaultParseOptions())
}

type documentParser struct{}

func (p *documentParser) Parse(filename string) (*Airport, error) {
	return p.ParseWithOptions(filename, DefaultParseOptions())
}

func (p *documentParser) ParseWithOptions(filename string, opts ParseOptions) (*Airport, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	airport, err := p.ParseBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return airport, nil
}

func (p *documentParser) ParseBytes(document []byte, opts ParseOptions) (*Airport, error) {
	doc, err := parser.Decode(document)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	opts.logger().Debug("decoded document", "document", doc.String())

	return newBuilder(doc, opts).build()
}
