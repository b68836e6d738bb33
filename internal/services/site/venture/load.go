package venture

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed ventures.yaml
var embeddedCatalog []byte

var defaultCatalog = mustParse(embeddedCatalog)

type catalogFile struct {
	Ventures []ventureRecord `yaml:"ventures"`
}

type ventureRecord struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Tagline     string   `yaml:"tagline"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status"`
	Features    []string `yaml:"features"`
	URL         *string  `yaml:"url"`
	Icon        string   `yaml:"icon"`
	Gradient    string   `yaml:"gradient"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return defaultCatalog
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	ventures := make([]Venture, 0, len(file.Ventures))
	for _, record := range file.Ventures {
		ventures = append(ventures, record.venture())
	}
	if err := Validate(ventures); err != nil {
		return nil, err
	}
	return NewCatalog(ventures), nil
}

// Validate reports every structural problem in a venture list: missing ids
// or names, duplicate ids, and visit URLs that are not absolute http(s).
func Validate(ventures []Venture) error {
	if len(ventures) == 0 {
		return errors.New("catalog has no ventures")
	}
	var problems []error
	seen := make(map[string]int, len(ventures))
	for i, v := range ventures {
		if strings.TrimSpace(v.ID) == "" {
			problems = append(problems, fmt.Errorf("venture %d: id is required", i))
			continue
		}
		if first, dup := seen[v.ID]; dup {
			problems = append(problems, fmt.Errorf("venture %d: id %q duplicates venture %d", i, v.ID, first))
		} else {
			seen[v.ID] = i
		}
		if strings.TrimSpace(v.Name) == "" {
			problems = append(problems, fmt.Errorf("venture %q: name is required", v.ID))
		}
		if v.HasURL() {
			if err := validateURL(v.URL); err != nil {
				problems = append(problems, fmt.Errorf("venture %q: %w", v.ID, err))
			}
		}
	}
	return errors.Join(problems...)
}

func validateURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("url %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("url %q: scheme must be http or https", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("url %q: host is required", raw)
	}
	return nil
}

func (r ventureRecord) venture() Venture {
	v := Venture{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Tagline:     strings.TrimSpace(r.Tagline),
		Description: strings.TrimSpace(r.Description),
		Status:      strings.TrimSpace(r.Status),
		Features:    r.Features,
		Icon:        strings.TrimSpace(r.Icon),
		Gradient:    strings.TrimSpace(r.Gradient),
	}
	if r.URL != nil {
		v.URL = strings.TrimSpace(*r.URL)
	}
	return v
}

func mustParse(data []byte) *Catalog {
	catalog, err := Parse(data)
	if err != nil {
		panic(fmt.Errorf("embedded venture catalog: %w", err))
	}
	return catalog
}
