package catalog

import (
	_ "embed"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemPrefix marks entries of the database dropdown lists.
const ItemPrefix = "۶ "

//go:embed catalog.yaml
var embeddedCatalogYAML []byte

type EnemyEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type DollMenu struct {
	Buttons            []string `yaml:"buttons"`
	Positions          []string `yaml:"positions"`
	ReinforcementParts []string `yaml:"reinforcement_parts"`
	Classes            []string `yaml:"classes"`
}

type NecromancerMenu struct {
	Buttons []string     `yaml:"buttons"`
	Enemies []EnemyEntry `yaml:"enemies"`
}

// Catalog is the static content of the menus.
type Catalog struct {
	Title       string          `yaml:"title"`
	MainMenu    []string        `yaml:"main_menu"`
	Categories  []string        `yaml:"categories"`
	Doll        DollMenu        `yaml:"doll"`
	Necromancer NecromancerMenu `yaml:"necromancer"`
}

// Default decodes the catalog bundled with the binary.
func Default() (Catalog, error) {
	return Parse(embeddedCatalogYAML)
}

// Load reads a catalog from path, e.g. a user override of the bundled one.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	return Parse(data)
}

func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, err
	}
	if len(c.Categories) == 0 {
		return Catalog{}, errors.New("catalog has no database categories")
	}
	return c, nil
}

// Label renders a dropdown entry the way the lists show it.
func Label(item string) string {
	return ItemPrefix + item
}

// EnemyByName finds a list entry by its display name.
func (c Catalog) EnemyByName(name string) (EnemyEntry, bool) {
	for _, e := range c.Necromancer.Enemies {
		if e.Name == name {
			return e, true
		}
	}
	return EnemyEntry{}, false
}
