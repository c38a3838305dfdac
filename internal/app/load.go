package app

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/adventgrid/internal/config"
	"github.com/specialistvlad/adventgrid/internal/ctxlog"
	"github.com/specialistvlad/adventgrid/internal/fsutil"
)

// loadManifest reads the manifest at path, or every manifest below it when
// path is a directory, choosing the loader by file extension.
func (a *App) loadManifest(ctx context.Context, path string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing manifest path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		exts := slices.Sorted(maps.Keys(a.loaders))
		files, err = fsutil.FindFilesByExtension(path, exts...)
		if err != nil {
			return nil, fmt.Errorf("failed to search %s for manifests: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no manifest files found in %s", path)
		}
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	manifest := &config.Manifest{}
	for _, f := range files {
		loader, ok := a.loaders[filepath.Ext(f)]
		if !ok {
			return nil, fmt.Errorf("unsupported manifest format %q for %s", filepath.Ext(f), f)
		}
		m, err := loader.Load(ctx, f)
		if err != nil {
			return nil, err
		}
		manifest.Merge(m)
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	logger.Info("Manifest loaded.", "files", len(files), "puzzles", len(manifest.Puzzles))
	return manifest, nil
}
