// Package manifest loads declarative route tables.
//
// A manifest is a JSON or YAML document listing route specs:
//
//	routes:
//	  - path: /
//	    name: home
//	  - path: /users/:id
//	    name: user
//	  - path: /logout
//	    name: logout
//	    external: true
//
// Manifests load from local files or from S3, and decode into
// router.RouteSpec values ready for Router.AddRoutes.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// Format identifies a manifest encoding.
type Format int

const (
	// FormatJSON is a JSON manifest.
	FormatJSON Format = iota

	// FormatYAML is a YAML manifest.
	FormatYAML
)

// File is the manifest document shape.
type File struct {
	Routes []Entry `json:"routes" yaml:"routes"`
}

// Entry declares one route. Path and Regexp are mutually exclusive;
// Regexp holds a regular-expression source compiled at load time.
type Entry struct {
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Regexp   string `json:"regexp,omitempty" yaml:"regexp,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	External bool   `json:"external,omitempty" yaml:"external,omitempty"`
}

// DetectFormat picks the manifest format from a file path's extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("manifest: unsupported extension %q", filepath.Ext(path))
	}
}

// Parse decodes manifest data into route specs.
func Parse(data []byte, format Format) ([]router.RouteSpec, error) {
	var file File
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("manifest: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("manifest: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("manifest: unknown format %d", format)
	}
	return toSpecs(file)
}

// Load reads and parses a manifest file, picking the format from the
// file extension.
func Load(path string) ([]router.RouteSpec, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(data, format)
}

// toSpecs converts manifest entries into route specs.
func toSpecs(file File) ([]router.RouteSpec, error) {
	specs := make([]router.RouteSpec, 0, len(file.Routes))
	for i, e := range file.Routes {
		spec := router.RouteSpec{
			Name:     e.Name,
			External: router.External(e.External),
		}
		switch {
		case e.Path != "" && e.Regexp != "":
			return nil, fmt.Errorf("manifest: route %d sets both path and regexp", i)
		case e.Regexp != "":
			re, err := regexp.Compile(e.Regexp)
			if err != nil {
				return nil, fmt.Errorf("manifest: route %d: %w", i, err)
			}
			spec.Pattern = re
		case e.Path != "":
			spec.Path = e.Path
		default:
			return nil, fmt.Errorf("manifest: route %d sets neither path nor regexp", i)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
