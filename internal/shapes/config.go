package shapes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unrootedlint/unrooted/internal/ir"
)

// Config is the on-disk shape configuration. Each list holds
// "pkg/path.TypeName" refs added on top of the built-in table.
//
//	rc:
//	  - example.com/runtime/rc.Shared
//	box:
//	  - example.com/runtime/heap.Owned
//	views:
//	  - example.com/runtime/cell.Guard
type Config struct {
	Rc    []string `yaml:"rc"`
	Box   []string `yaml:"box"`
	Views []string `yaml:"views"`
}

// LoadConfig reads and applies a YAML shape configuration file to t.
func LoadConfig(t *Table, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading shape config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing shape config %s: %w", path, err)
	}

	cfg.apply(t)

	return nil
}

func (c *Config) apply(t *Table) {
	t.Add(ir.ShapeSharedPtr, parseAll(c.Rc))
	t.Add(ir.ShapeHeapBox, parseAll(c.Box))
	t.Add(ir.ShapeTransientView, parseAll(c.Views))
}

func parseAll(specs []string) []Ref {
	var refs []Ref
	for _, s := range specs {
		if ref, ok := parseRef(s); ok {
			refs = append(refs, ref)
		}
	}

	return refs
}
