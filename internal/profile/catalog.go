package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/errors"
)

// Info is one catalog entry. For unparsable documents only File and Error
// are set: a broken profile must not hide the rest of the catalog.
type Info struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Warnings    []string `json:"warnings,omitempty"`
	Blocklists  int      `json:"blocklists"`
	File        string   `json:"file"`
	Error       string   `json:"error,omitempty"`
}

// ListProfiles enumerates the profile documents in dir, sorted by file name.
func ListProfiles(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewProfileError(fmt.Sprintf("cannot read profile directory: %s", dir), err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		infos = append(infos, describeProfile(filepath.Join(dir, name)))
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].File < infos[j].File
	})

	return infos, nil
}

func describeProfile(path string) Info {
	info := Info{File: filepath.Base(path)}

	content, err := os.ReadFile(path)
	if err != nil {
		info.Error = err.Error()
		return info
	}

	var spec ProfileSpec
	if err := yaml.Unmarshal(content, &spec); err != nil {
		info.Error = fmt.Sprintf("invalid YAML: %v", err)
		return info
	}

	info.Name = spec.Name
	info.Category = spec.Category
	info.Description = spec.Description
	info.Warnings = spec.Warnings
	info.Blocklists = len(spec.Blocklists)
	return info
}
