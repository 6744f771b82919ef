// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package routes

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// catalogFile is the on-disk shape of a route catalog override.
type catalogFile struct {
	Routes []Route `yaml:"routes"`
}

// LoadCatalog reads a route catalog from a YAML file. Deployments that tune
// example sets or keyword lists per tenant ship an override file; the
// built-in catalogs remain the default.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(f.Routes) == 0 {
		return nil, fmt.Errorf("no routes found in %s", path)
	}
	for _, r := range f.Routes {
		if !Valid(r.Name) {
			return nil, fmt.Errorf("unknown route %q in %s", r.Name, path)
		}
	}

	return NewCatalog(f.Routes)
}
