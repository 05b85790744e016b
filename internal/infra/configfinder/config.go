package configfinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/angie11-11/PhotoApp/internal/domain"
)

// LoadConfig loads photoalbum.yaml from root and applies it on top of defaults.
// A missing file yields the defaults together with a KindNotFound error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := apply(&cfg, y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// LoadOrDefault returns defaults when root has no config file; other errors are returned.
func LoadOrDefault(root string) (domain.Config, error) {
	if root == "" {
		return domain.DefaultConfig(), nil
	}
	cfg, err := LoadConfig(root)
	if err != nil && domain.IsKind(err, domain.KindNotFound) {
		return cfg, nil
	}
	return cfg, err
}

func apply(cfg *domain.Config, y yamlConfig) error {
	p := y.PhotoAlbum

	if s := strings.TrimSpace(p.Sort.Default); s != "" {
		c, err := domain.ParseSortCriterion(s)
		if err != nil {
			return fmt.Errorf("field sort.default: %w", err)
		}
		cfg.Sort.Default = c
	}

	if len(p.Files.Extensions) > 0 {
		exts := make([]string, 0, len(p.Files.Extensions))
		for _, e := range p.Files.Extensions {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e == "" {
				continue
			}
			exts = append(exts, e)
		}
		if len(exts) == 0 {
			return fmt.Errorf("field files.extensions: no usable extension: %w", domain.ErrInvalidConfig)
		}
		cfg.Files.Extensions = exts
	}

	if p.Display.DateFormat != "" {
		cfg.Display.DateFormat = p.Display.DateFormat
	}
	if p.Display.PreviewWidth != nil {
		if *p.Display.PreviewWidth < 0 {
			return fmt.Errorf("field display.preview_width: must be >= 0: %w", domain.ErrInvalidConfig)
		}
		cfg.Display.PreviewWidth = *p.Display.PreviewWidth
	}
	if p.Display.PreviewHeight != nil {
		if *p.Display.PreviewHeight < 0 {
			return fmt.Errorf("field display.preview_height: must be >= 0: %w", domain.ErrInvalidConfig)
		}
		cfg.Display.PreviewHeight = *p.Display.PreviewHeight
	}

	return nil
}

type yamlConfig struct {
	PhotoAlbum struct {
		Sort struct {
			Default string `yaml:"default"`
		} `yaml:"sort"`

		Files struct {
			Extensions []string `yaml:"extensions"`
		} `yaml:"files"`

		Display struct {
			DateFormat    string `yaml:"date_format"`
			PreviewWidth  *int   `yaml:"preview_width"`
			PreviewHeight *int   `yaml:"preview_height"`
		} `yaml:"display"`
	} `yaml:"photoalbum"`
}
