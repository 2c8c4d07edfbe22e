package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-slides/cmd/config"
	"github.com/mattsolo1/grove-slides/pkg/catalog"
	"github.com/mattsolo1/grove-slides/pkg/host"
	"github.com/mattsolo1/grove-slides/pkg/service"
)

// openDeck opens path in the service's workbench, making it the active editor.
func openDeck(s *service.Service, path string) (*host.Editor, error) {
	if !strings.EqualFold(filepath.Ext(path), ".ipynb") {
		return nil, fmt.Errorf("%s: not a notebook (.ipynb)", path)
	}
	ed, err := s.Workbench().Open(path)
	if err != nil {
		return nil, err
	}
	return ed, nil
}

// openCatalog opens the deck catalog under the configured data directory.
func openCatalog() (*catalog.Catalog, error) {
	dataDir := viper.GetString(config.KeyDataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	cat, err := catalog.Open(filepath.Join(dataDir, "decks.db"))
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return cat, nil
}
