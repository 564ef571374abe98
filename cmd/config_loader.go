package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oakwood-commons/tplc/internal/catalog"
	"github.com/oakwood-commons/tplc/internal/completion"
	"github.com/oakwood-commons/tplc/internal/render"
	"github.com/oakwood-commons/tplc/pkg/logger"
	"github.com/oakwood-commons/tplc/pkg/settings"
)

// resolveCatalogPath returns the explicit catalog file if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/tplc/catalog.yaml) or ~/.config/tplc/catalog.yaml if present.
func resolveCatalogPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, settings.CatalogFileName)
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, settings.CatalogFileName)
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// loadMergedCatalog returns the built-in catalog with path laid over it.
// An empty path yields the built-in catalog alone.
func loadMergedCatalog(path string) (catalog.Catalog, error) {
	base, err := catalog.Default()
	if err != nil {
		return base, fmt.Errorf("load default catalog: %w", err)
	}
	if path == "" {
		return base, nil
	}
	overlay, err := catalog.LoadFile(path)
	if err != nil {
		return base, err
	}
	merged := catalog.Merge(base, overlay)
	if err := catalog.Validate(merged); err != nil {
		return merged, fmt.Errorf("%s: %w", path, err)
	}
	return merged, nil
}

// workspace bundles what every completion command needs.
type workspace struct {
	catalog  catalog.Catalog
	registry *catalog.Registry
	engine   *completion.Engine
	path     string
}

func loadWorkspace() (*workspace, error) {
	run := runSettings()
	path := resolveCatalogPath(run.CatalogPath)
	cat, err := loadMergedCatalog(path)
	if err != nil {
		return nil, err
	}
	log := cmdLogger()
	if path != "" {
		log = log.WithValues(logger.CatalogKey, path)
	}
	reg := catalog.NewRegistry(cat)
	vars, methods := reg.Size()
	log.V(1).Info("catalog loaded", "variables", vars, "methods", methods)
	return &workspace{
		catalog:  cat,
		registry: reg,
		engine:   completion.NewEngineFromRegistry(reg, completion.WithLogger(log)),
		path:     path,
	}, nil
}

func (w *workspace) renderer() (*render.Renderer, error) {
	return render.New(w.registry, render.WithLogger(cmdLogger()))
}
