// Package template loads layout definitions from YAML or JSON files and
// ships a built-in template for every known layout type.
//
// The built-in templates are embedded directly into the binary using
// go:embed, making them available without external files. User templates
// loaded from disk follow the same schema.
package template

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/promptcanvas/promptcanvas/pkg/errors"
	"github.com/promptcanvas/promptcanvas/pkg/layout"
)

//go:embed templates/*.yaml
var builtinFS embed.FS

// Info describes one available template.
type Info struct {
	Name       string `json:"name"`
	LayoutID   string `json:"layout_id"`
	LayoutType string `json:"layout_type"`
	Zones      int    `json:"zones"`
	Builtin    bool   `json:"builtin"`
}

// Decode parses a YAML layout definition and checks its basic shape. It does
// not validate zone requirements; that is the engine's job.
func Decode(data []byte) (*layout.LayoutDefinition, error) {
	var def layout.LayoutDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "malformed template")
	}
	if err := checkShape(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// DecodeJSON parses a JSON layout definition, the format compute results and
// snapshots use.
func DecodeJSON(data []byte) (*layout.LayoutDefinition, error) {
	var def layout.LayoutDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "malformed template")
	}
	if err := checkShape(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

func checkShape(def *layout.LayoutDefinition) error {
	if err := errors.ValidateLayoutID(def.LayoutID); err != nil {
		return err
	}
	if err := errors.ValidateLayoutType(def.LayoutType); err != nil {
		return err
	}
	if len(def.Zones) == 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "template %q defines no zones", def.LayoutID)
	}
	return nil
}

// Read decodes a YAML layout definition from r.
func Read(r io.Reader) (*layout.LayoutDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "read template")
	}
	return Decode(data)
}

// Load returns a built-in template by name. The name is the template
// filename without extension (e.g. "vertical_split") or a full layout type
// identifier.
func Load(name string) (*layout.LayoutDefinition, error) {
	data, err := builtinFS.ReadFile("templates/" + name + ".yaml")
	if err != nil {
		// Second chance: resolve a layout type to its template.
		if def, terr := loadByType(name); terr == nil {
			return def, nil
		}
		return nil, errors.New(errors.ErrCodeTemplateNotFound, "no built-in template %q", name)
	}
	return Decode(data)
}

func loadByType(layoutType string) (*layout.LayoutDefinition, error) {
	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("templates/" + e.Name())
		if err != nil {
			continue
		}
		def, err := Decode(data)
		if err != nil {
			continue
		}
		if def.LayoutType == layoutType {
			return def, nil
		}
	}
	return nil, fmt.Errorf("no template for layout type %q", layoutType)
}

// LoadFile loads a layout definition from disk. The format follows the file
// extension: .yaml/.yml or .json.
func LoadFile(path string) (*layout.LayoutDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "template file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "read template %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Decode(data)
	case ".json":
		return DecodeJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported template format %q", filepath.Ext(path))
	}
}

// Resolve loads a template by the most convenient handle: an existing file
// path first, then a built-in name.
func Resolve(nameOrPath string) (*layout.LayoutDefinition, error) {
	if _, err := os.Stat(nameOrPath); err == nil {
		return LoadFile(nameOrPath)
	}
	return Load(nameOrPath)
}

// Builtins lists every embedded template, sorted by name.
func Builtins() ([]Info, error) {
	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list built-in templates")
	}

	infos := make([]Info, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile("templates/" + e.Name())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "read built-in template %s", e.Name())
		}
		def, err := Decode(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "built-in template %s", e.Name())
		}
		infos = append(infos, Info{
			Name:       strings.TrimSuffix(e.Name(), ".yaml"),
			LayoutID:   def.LayoutID,
			LayoutType: def.LayoutType,
			Zones:      len(def.Zones),
			Builtin:    true,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// ScanDir lists the user templates in dir (non-recursive). Files that fail
// to parse are skipped; a missing directory yields an empty list.
func ScanDir(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "scan template directory %s", dir)
	}

	var infos []Info
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}
		def, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Name:       strings.TrimSuffix(e.Name(), ext),
			LayoutID:   def.LayoutID,
			LayoutType: def.LayoutType,
			Zones:      len(def.Zones),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
