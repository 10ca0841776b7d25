package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AnyCategory leaves the category out of the request.
const AnyCategory = 0

//go:embed categories.yaml
var categoriesYAML []byte

type Category struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// Categories returns the fixed category menu shown before the category prompt.
func Categories() ([]Category, error) {
	return parseCategories(categoriesYAML)
}

func parseCategories(data []byte) ([]Category, error) {
	var categories []Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	for _, category := range categories {
		if category.ID <= AnyCategory || category.Name == "" {
			return nil, fmt.Errorf("invalid category entry %+v", category)
		}
	}
	return categories, nil
}
