package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

//go:embed default_catalog.json
var defaultCatalog []byte

type catalogFile struct {
	Frames []frameDTO `json:"frames"`
	Parts  []itemDTO  `json:"parts"`
}

type itemDTO struct {
	ID            core.ItemIDInt      `json:"id"`
	Type          string              `json:"type"`
	Name          string              `json:"name"`
	Price         core.PriceFloat64   `json:"price"`
	Compatibility []core.FrameSizeInt `json:"compatibility"`
	Image         string              `json:"image"`
}

type frameDTO struct {
	ID               core.ItemIDInt      `json:"id"`
	Name             string              `json:"name"`
	Price            core.PriceFloat64   `json:"price"`
	Compatibility    []core.FrameSizeInt `json:"compatibility"`
	Image            string              `json:"image"`
	ConnectionPoints []pointDTO          `json:"connectionPoints"`
}

type pointDTO struct {
	ID     core.PointIDInt `json:"id"`
	Type   string          `json:"type"`
	X      float64         `json:"x"`
	Y      float64         `json:"y"`
	Size   float64         `json:"size"`
	ZIndex int             `json:"zIndex"`
}

// LoadCatalog reads and validates the catalog file at path.
// An empty path loads the embedded default catalog.
func LoadCatalog(path string) (*core.Catalog, error) {
	if path == "" {
		return DecodeCatalog(defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	catalog, err := DecodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return catalog, nil
}

// ReadCatalog reads and validates a catalog from r.
func ReadCatalog(r io.Reader) (*core.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return DecodeCatalog(data)
}

// DecodeCatalog decodes JSON catalog data and validates it through core.NewCatalog.
func DecodeCatalog(data []byte) (*core.Catalog, error) {
	var file catalogFile
	if err := jsoniter.ConfigFastest.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	var errs []error

	frames := make([]core.Frame, 0, len(file.Frames))
	for _, dto := range file.Frames {
		frame, err := dto.toFrame()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		frames = append(frames, frame)
	}

	parts := make([]core.CatalogItem, 0, len(file.Parts))
	for _, dto := range file.Parts {
		part, err := dto.toItem()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		parts = append(parts, part)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return core.NewCatalog(frames, parts)
}

func (d itemDTO) toItem() (core.CatalogItem, error) {
	category, err := core.ParseCategory(d.Type)
	if err != nil {
		return core.CatalogItem{}, fmt.Errorf("item %d: %w", d.ID, err)
	}

	return core.CatalogItem{
		ID:              d.ID,
		Category:        category,
		Name:            d.Name,
		Price:           d.Price,
		CompatibleSizes: d.Compatibility,
		Image:           d.Image,
	}, nil
}

func (d frameDTO) toFrame() (core.Frame, error) {
	item := core.CatalogItem{
		ID:              d.ID,
		Category:        core.CategoryFrame,
		Name:            d.Name,
		Price:           d.Price,
		CompatibleSizes: d.Compatibility,
		Image:           d.Image,
	}

	points := make([]core.ConnectionPoint, 0, len(d.ConnectionPoints))
	for _, p := range d.ConnectionPoints {
		accepts, err := core.ParseCategory(p.Type)
		if err != nil {
			return core.Frame{}, fmt.Errorf("frame %d, point %d: %w", d.ID, p.ID, err)
		}

		points = append(points, core.ConnectionPoint{
			ID:      p.ID,
			Accepts: accepts,
			X:       p.X,
			Y:       p.Y,
			Size:    p.Size,
			ZIndex:  p.ZIndex,
		})
	}

	return core.Frame{CatalogItem: item, ConnectionPoints: points}, nil
}
