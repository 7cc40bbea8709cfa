// Package filestore persists the product catalogue and shop configuration as
// two JSON documents (products.json, config.json), read and written wholesale
// on every access. It backs file-based demo deployments that have no live
// store but still want durable edits.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/avigneron/boutique/internal/server/models"
)

const (
	productsFile = "products.json"
	configFile   = "config.json"
)

// Store reads and writes the two JSON documents under dir.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

type productsDoc struct {
	Products []*models.Product `json:"products"`
}

// configDoc mirrors the on-disk layout: the shop section is ours, the admin
// section belongs to the provisioning tooling and is preserved verbatim.
type configDoc struct {
	Shop  *models.ShopConfig `json:"shop"`
	Admin json.RawMessage    `json:"admin,omitempty"`
}

func (s *Store) readDoc(name string, target any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeDoc(name string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

// LoadProducts returns the catalogue document, or (nil, nil) when the
// document does not exist yet.
func (s *Store) LoadProducts() ([]*models.Product, error) {
	var doc productsDoc
	if err := s.readDoc(productsFile, &doc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return doc.Products, nil
}

// SaveProducts replaces the catalogue document wholesale.
func (s *Store) SaveProducts(items []*models.Product) error {
	if items == nil {
		items = []*models.Product{}
	}
	return s.writeDoc(productsFile, productsDoc{Products: items})
}

// LoadShopConfig returns the shop section of the config document, or
// (nil, nil) when the document does not exist yet.
func (s *Store) LoadShopConfig() (*models.ShopConfig, error) {
	var doc configDoc
	if err := s.readDoc(configFile, &doc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return doc.Shop, nil
}

// SaveShopConfig replaces the shop section, keeping the admin section as-is.
func (s *Store) SaveShopConfig(cfg *models.ShopConfig) error {
	var doc configDoc
	if err := s.readDoc(configFile, &doc); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	doc.Shop = cfg
	return s.writeDoc(configFile, doc)
}
