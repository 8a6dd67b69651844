package command

import (
	"fmt"
	"os"

	"github.com/pixil98/deepmud/internal/catalog"
	"github.com/pixil98/deepmud/internal/player"
	"github.com/pixil98/deepmud/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Items   AssetConfig[*catalog.Item]      `json:"items"`
	Recipes AssetConfig[*catalog.Recipe]    `json:"recipes"`
	Rooms   AssetConfig[*catalog.Room]      `json:"rooms"`
	Players AssetConfig[*player.PlayerFile] `json:"players"`
}

// BuildCatalog loads the read-only definition stores and checks their
// cross-references.
func (c *StorageConfig) BuildCatalog() (*catalog.Catalog, error) {
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	recipes, err := c.Recipes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating recipe store: %w", err)
	}
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}

	cat := &catalog.Catalog{
		Items:   items,
		Recipes: recipes,
		Rooms:   rooms,
	}

	if err := cat.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return cat, nil
}

func (c *StorageConfig) BuildPlayerStore() (storage.Storer[*player.PlayerFile], error) {
	return c.Players.BuildFileStore()
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Items.Validate("items"))
	el.Add(c.Recipes.Validate("recipes"))
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Players.Validate("players"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
