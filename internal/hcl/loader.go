package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/adventgrid/internal/config"
	"github.com/specialistvlad/adventgrid/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses a single .hcl manifest and translates its puzzle blocks into
// the format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	m := &config.Manifest{}
	for _, b := range root.Puzzles {
		p, err := translatePuzzle(path, b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		m.Puzzles = append(m.Puzzles, p)
	}

	logger.Debug("HCL loading complete.", "path", path, "puzzles", len(m.Puzzles))
	return m, nil
}
