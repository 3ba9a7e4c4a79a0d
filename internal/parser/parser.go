package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/me/flightsched/internal/logging"
	"github.com/me/flightsched/pkg/model"
	"gopkg.in/yaml.v3"
)

// Parser decodes flight batch documents (YAML, or JSON as a YAML subset).
type Parser struct {
	logger *slog.Logger
}

// New creates a Parser with the given logger.
func New(logger *slog.Logger) *Parser {
	return &Parser{logger: logging.OrDiscard(logger).With("component", "parser")}
}

// Parse decodes a batch document. Unknown keys are rejected so that a typo
// such as "arival" does not silently produce an empty field.
func (p *Parser) Parse(data []byte) (*model.FlightBatch, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var batch model.FlightBatch
	if err := dec.Decode(&batch); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty batch document")
		}
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}

	p.logger.Debug("batch parsed", "name", batch.Name, "flights", len(batch.Flights))
	return &batch, nil
}

// ParseFile reads and decodes the batch at path. When the document has no
// name the file path is used.
func (p *Parser) ParseFile(path string) (*model.FlightBatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	batch, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if batch.Name == "" {
		batch.Name = path
	}
	return batch, nil
}
