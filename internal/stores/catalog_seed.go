package stores

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chanderlud/dstat-frontend/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalogSeed = errors.New("invalid catalog seed")

type catalogSeedFile struct {
	Servers []*models.ServerRef `yaml:"servers"`
}

// LoadCatalogSeed parses a YAML seed file of the form:
//
//	servers:
//	  - server_id: fra-1
//	    category: europe
//	    server_name: edge1
//	    url: https://edge1.example.com
//
// Entries without a server_id get a random UUID. Names must be non-empty and unique.
func LoadCatalogSeed(path string) ([]*models.ServerRef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed %q: %w", path, err)
	}
	return ParseCatalogSeed(raw)
}

func ParseCatalogSeed(raw []byte) ([]*models.ServerRef, error) {
	var file catalogSeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogSeed, err)
	}

	seen := make(map[string]struct{}, len(file.Servers))
	for i, ref := range file.Servers {
		if ref == nil {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrInvalidCatalogSeed, i)
		}
		ref.ServerName = strings.TrimSpace(ref.ServerName)
		if ref.ServerName == "" {
			return nil, fmt.Errorf("%w: entry %d: server_name is required", ErrInvalidCatalogSeed, i)
		}
		if _, dup := seen[ref.ServerName]; dup {
			return nil, fmt.Errorf("%w: duplicate server_name %q", ErrInvalidCatalogSeed, ref.ServerName)
		}
		seen[ref.ServerName] = struct{}{}

		if strings.TrimSpace(ref.ServerID) == "" {
			ref.ServerID = uuid.NewString()
		}
	}
	return file.Servers, nil
}
