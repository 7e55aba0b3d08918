package carton

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/xuri/excelize/v2"

	"github.com/lucverdier/lotscan/internal/common"
)

// Dims are inner dimensions in centimeters.
type Dims struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume in cm³.
func (d Dims) Volume() float64 { return d.Length * d.Width * d.Height }

// Rule is one carton reference. HeightMin/HeightMax describe telescoping
// cartons whose usable height varies; both zero means the inner height is
// fixed.
type Rule struct {
	Ref       string  `json:"ref"`
	Inner     Dims    `json:"inner"`
	HeightMin float64 `json:"height_min,omitempty"`
	HeightMax float64 `json:"height_max,omitempty"`
	PriceHT   float64 `json:"price_ht,omitempty"`
	PriceTTC  float64 `json:"price_ttc,omitempty"`
}

// PaintingRule maps a width range × depth range onto a flat carton.
type PaintingRule struct {
	Ref      string  `json:"ref"`
	WidthMin float64 `json:"width_min"`
	WidthMax float64 `json:"width_max"`
	DepthMin float64 `json:"depth_min"`
	DepthMax float64 `json:"depth_max"`
	PriceHT  float64 `json:"price_ht,omitempty"`
	PriceTTC float64 `json:"price_ttc,omitempty"`
}

// Catalog is the full dimensional rule set. It is loaded once and read-only
// afterwards; concurrent readers share the same instance.
type Catalog struct {
	Cartons   []Rule         `json:"cartons"`
	Paintings []PaintingRule `json:"paintings"`
	Tubes     []Rule         `json:"tubes"`
	Suitcases []Rule         `json:"suitcases"`
	Pallet    *Rule          `json:"pallet,omitempty"`
	Bicycle   *Rule          `json:"bicycle,omitempty"`
}

const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["cartons"],
  "properties": {
    "cartons":   {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/rule"}},
    "paintings": {"type": "array", "items": {"$ref": "#/definitions/painting"}},
    "tubes":     {"type": "array", "items": {"$ref": "#/definitions/rule"}},
    "suitcases": {"type": "array", "items": {"$ref": "#/definitions/rule"}},
    "pallet":    {"$ref": "#/definitions/rule"},
    "bicycle":   {"$ref": "#/definitions/rule"}
  },
  "definitions": {
    "dims": {
      "type": "object",
      "required": ["length", "width", "height"],
      "properties": {
        "length": {"type": "number", "exclusiveMinimum": 0},
        "width":  {"type": "number", "exclusiveMinimum": 0},
        "height": {"type": "number", "exclusiveMinimum": 0}
      }
    },
    "rule": {
      "type": "object",
      "required": ["ref", "inner"],
      "properties": {
        "ref":        {"type": "string", "minLength": 1},
        "inner":      {"$ref": "#/definitions/dims"},
        "height_min": {"type": "number", "minimum": 0},
        "height_max": {"type": "number", "minimum": 0},
        "price_ht":   {"type": "number", "minimum": 0},
        "price_ttc":  {"type": "number", "minimum": 0}
      }
    },
    "painting": {
      "type": "object",
      "required": ["ref", "width_min", "width_max", "depth_min", "depth_max"],
      "properties": {
        "ref":       {"type": "string", "minLength": 1},
        "width_min": {"type": "number", "minimum": 0},
        "width_max": {"type": "number", "exclusiveMinimum": 0},
        "depth_min": {"type": "number", "minimum": 0},
        "depth_max": {"type": "number", "exclusiveMinimum": 0},
        "price_ht":  {"type": "number", "minimum": 0},
        "price_ttc": {"type": "number", "minimum": 0}
      }
    }
  }
}`

var (
	catalogOnce sync.Once
	catalog     *Catalog
	catalogErr  error
)

// LoadCatalog loads the rule catalog once per process and returns the same
// read-only instance afterwards. An empty path selects the built-in
// catalog; .json files are schema-validated, .xlsx files go through
// excelize.
func LoadCatalog(path string) (*Catalog, error) {
	catalogOnce.Do(func() {
		catalog, catalogErr = readCatalog(path)
	})
	return catalog, catalogErr
}

func readCatalog(path string) (*Catalog, error) {
	if path == "" {
		return builtinCatalog(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return readJSONCatalog(path)
	case ".xlsx":
		return readXLSXCatalog(path)
	default:
		return nil, common.NewAppError("CATALOG_FORMAT",
			fmt.Sprintf("unsupported catalog format %q", filepath.Ext(path)),
			common.ErrCatalog)
	}
}

func readJSONCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(common.ErrCatalog, err.Error())
	}

	schema, err := jsonschema.CompileString("catalog.schema.json", catalogSchema)
	if err != nil {
		return nil, common.WrapError(common.ErrCatalog, err.Error())
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, common.WrapError(common.ErrCatalog, err.Error())
	}
	if err := schema.Validate(doc); err != nil {
		return nil, common.WrapError(common.ErrCatalog, err.Error())
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, common.WrapError(common.ErrCatalog, err.Error())
	}
	return &c, nil
}

// readXLSXCatalog expects a "Cartons" sheet with columns ref, length, width,
// height, height_min, height_max, price_ht, price_ttc and an optional
// "Peintures" sheet with ref, width_min, width_max, depth_min, depth_max.
func readXLSXCatalog(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.WrapError(common.ErrCatalog, err.Error())
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Cartons")
	if err != nil {
		return nil, common.WrapError(common.ErrCatalog, err.Error())
	}
	var c Catalog
	for i, row := range rows {
		if i == 0 || len(row) < 4 || row[0] == "" {
			continue // header or padding row
		}
		r := Rule{Ref: row[0]}
		r.Inner.Length = cell(row, 1)
		r.Inner.Width = cell(row, 2)
		r.Inner.Height = cell(row, 3)
		r.HeightMin = cell(row, 4)
		r.HeightMax = cell(row, 5)
		r.PriceHT = cell(row, 6)
		r.PriceTTC = cell(row, 7)
		if r.Inner.Length <= 0 || r.Inner.Width <= 0 || r.Inner.Height <= 0 {
			return nil, common.NewAppError("CATALOG_ROW",
				fmt.Sprintf("carton %q row %d: non-positive dimension", r.Ref, i+1),
				common.ErrCatalog)
		}
		c.Cartons = append(c.Cartons, r)
	}
	if len(c.Cartons) == 0 {
		return nil, common.NewAppError("CATALOG_EMPTY", "no carton rows in sheet", common.ErrCatalog)
	}

	if prows, err := f.GetRows("Peintures"); err == nil {
		for i, row := range prows {
			if i == 0 || len(row) < 5 || row[0] == "" {
				continue
			}
			c.Paintings = append(c.Paintings, PaintingRule{
				Ref:      row[0],
				WidthMin: cell(row, 1),
				WidthMax: cell(row, 2),
				DepthMin: cell(row, 3),
				DepthMax: cell(row, 4),
				PriceHT:  cell(row, 5),
				PriceTTC: cell(row, 6),
			})
		}
	}
	return &c, nil
}

func cell(row []string, i int) float64 {
	if i >= len(row) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(row[i]), ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// builtinCatalog is the default rule set shipped with the binary, used when
// no external catalog is configured.
func builtinCatalog() *Catalog {
	return &Catalog{
		Cartons: []Rule{
			{Ref: "C20", Inner: Dims{Length: 20, Width: 15, Height: 11}, PriceHT: 1.10, PriceTTC: 1.32},
			{Ref: "C35", Inner: Dims{Length: 35, Width: 25, Height: 18}, PriceHT: 1.80, PriceTTC: 2.16},
			{Ref: "C50", Inner: Dims{Length: 50, Width: 35, Height: 30}, PriceHT: 2.60, PriceTTC: 3.12},
			{Ref: "C60", Inner: Dims{Length: 60, Width: 40, Height: 40}, PriceHT: 3.40, PriceTTC: 4.08},
			{Ref: "C80", Inner: Dims{Length: 80, Width: 50, Height: 50}, PriceHT: 5.20, PriceTTC: 6.24},
			{Ref: "C100", Inner: Dims{Length: 100, Width: 60, Height: 60}, HeightMin: 40, HeightMax: 60, PriceHT: 7.90, PriceTTC: 9.48},
			{Ref: "C120", Inner: Dims{Length: 120, Width: 80, Height: 80}, HeightMin: 50, HeightMax: 80, PriceHT: 11.50, PriceTTC: 13.80},
		},
		Paintings: []PaintingRule{
			{Ref: "P60", WidthMin: 0, WidthMax: 60, DepthMin: 0, DepthMax: 10, PriceHT: 4.50, PriceTTC: 5.40},
			{Ref: "P90", WidthMin: 60, WidthMax: 90, DepthMin: 0, DepthMax: 12, PriceHT: 6.80, PriceTTC: 8.16},
			{Ref: "P120", WidthMin: 90, WidthMax: 120, DepthMin: 0, DepthMax: 15, PriceHT: 9.90, PriceTTC: 11.88},
			{Ref: "P160", WidthMin: 120, WidthMax: 160, DepthMin: 0, DepthMax: 20, PriceHT: 14.50, PriceTTC: 17.40},
		},
		Tubes: []Rule{
			{Ref: "T80", Inner: Dims{Length: 80, Width: 10, Height: 10}, PriceHT: 2.90, PriceTTC: 3.48},
			{Ref: "T120", Inner: Dims{Length: 120, Width: 12, Height: 12}, PriceHT: 4.20, PriceTTC: 5.04},
		},
		Suitcases: []Rule{
			{Ref: "V70", Inner: Dims{Length: 70, Width: 50, Height: 30}, PriceHT: 6.50, PriceTTC: 7.80},
			{Ref: "V90", Inner: Dims{Length: 90, Width: 60, Height: 40}, PriceHT: 8.90, PriceTTC: 10.68},
		},
		Pallet:  &Rule{Ref: "PAL120", Inner: Dims{Length: 120, Width: 80, Height: 160}, PriceHT: 38, PriceTTC: 45.60},
		Bicycle: &Rule{Ref: "BIKE", Inner: Dims{Length: 150, Width: 25, Height: 85}, PriceHT: 19.50, PriceTTC: 23.40},
	}
}
