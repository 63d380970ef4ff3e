// Package skills provides the trade skill catalog and skill gap calculation.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jonathan/tradepath/internal/schemas"
	"github.com/jonathan/tradepath/internal/types"
)

// CatalogSchemaPath is the repo-relative path of the catalog JSON Schema.
const CatalogSchemaPath = "schemas/catalog.schema.json"

// Catalog is static reference data: per-trade skill lists plus a
// transferable list shared by every trade. It is read-only after construction.
type Catalog struct {
	Trades       map[string][]types.Skill `json:"trades"`
	Transferable []types.Skill            `json:"transferable"`
}

var defaultCatalog = &Catalog{
	Trades: map[string][]types.Skill{
		types.TradePlumber: {
			{Name: "Pipe fitting", Category: types.CategoryBasic, Importance: 9},
			{Name: "Soldering", Category: types.CategoryBasic, Importance: 8},
			{Name: "Blueprint reading", Category: types.CategoryIntermediate, Importance: 7},
			{Name: "Water systems", Category: types.CategoryIntermediate, Importance: 9},
			{Name: "Drainage systems", Category: types.CategoryIntermediate, Importance: 8},
			{Name: "Tool proficiency", Category: types.CategoryBasic, Importance: 8},
			{Name: "Problem diagnosis", Category: types.CategoryAdvanced, Importance: 10},
			{Name: "Valve installation", Category: types.CategoryBasic, Importance: 7},
			{Name: "Leak detection", Category: types.CategoryIntermediate, Importance: 8},
			{Name: "Fixture installation", Category: types.CategoryBasic, Importance: 6},
			{Name: "Gas line work", Category: types.CategoryAdvanced, Importance: 9},
			{Name: "Backflow prevention", Category: types.CategoryAdvanced, Importance: 8},
			{Name: "Hydro-jetting", Category: types.CategoryIntermediate, Importance: 6},
			{Name: "Pipe cutting and threading", Category: types.CategoryBasic, Importance: 7},
			{Name: "Water pressure regulation", Category: types.CategoryIntermediate, Importance: 7},
		},
		types.TradeElectrician: {
			{Name: "Circuit design", Category: types.CategoryAdvanced, Importance: 9},
			{Name: "Wiring installation", Category: types.CategoryBasic, Importance: 9},
			{Name: "Electrical code knowledge", Category: types.CategoryIntermediate, Importance: 10},
			{Name: "Safety protocols", Category: types.CategoryBasic, Importance: 10},
			{Name: "Troubleshooting", Category: types.CategoryAdvanced, Importance: 10},
			{Name: "Panel installation", Category: types.CategoryIntermediate, Importance: 8},
			{Name: "Conduit installation", Category: types.CategoryBasic, Importance: 7},
			{Name: "Motor controls", Category: types.CategoryAdvanced, Importance: 8},
			{Name: "Lighting systems", Category: types.CategoryIntermediate, Importance: 7},
			{Name: "Grounding systems", Category: types.CategoryIntermediate, Importance: 9},
			{Name: "Voltage testing", Category: types.CategoryBasic, Importance: 8},
			{Name: "Load calculations", Category: types.CategoryAdvanced, Importance: 8},
			{Name: "Fire alarm systems", Category: types.CategoryAdvanced, Importance: 7},
			{Name: "Blueprint interpretation", Category: types.CategoryIntermediate, Importance: 8},
			{Name: "Power distribution", Category: types.CategoryAdvanced, Importance: 9},
		},
	},
	Transferable: []types.Skill{
		{Name: "Problem-solving", Category: types.CategoryIntermediate, Importance: 10},
		{Name: "Attention to detail", Category: types.CategoryBasic, Importance: 9},
		{Name: "Physical stamina", Category: types.CategoryBasic, Importance: 8},
		{Name: "Customer service", Category: types.CategoryBasic, Importance: 7},
		{Name: "Time management", Category: types.CategoryBasic, Importance: 8},
		{Name: "Safety awareness", Category: types.CategoryBasic, Importance: 10},
		{Name: "Manual dexterity", Category: types.CategoryBasic, Importance: 8},
		{Name: "Mathematical skills", Category: types.CategoryBasic, Importance: 7},
		{Name: "Communication skills", Category: types.CategoryBasic, Importance: 8},
		{Name: "Project management", Category: types.CategoryIntermediate, Importance: 7},
		{Name: "Quality control", Category: types.CategoryIntermediate, Importance: 8},
		{Name: "Technical documentation", Category: types.CategoryIntermediate, Importance: 6},
	},
}

// Default returns a copy of the built-in catalog.
func Default() *Catalog {
	return defaultCatalog.Clone()
}

// Clone returns a deep copy of c.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Trades:       make(map[string][]types.Skill, len(c.Trades)),
		Transferable: append([]types.Skill(nil), c.Transferable...),
	}
	for trade, list := range c.Trades {
		out.Trades[trade] = append([]types.Skill(nil), list...)
	}
	return out
}

// RequiredSkills returns the trade's skills followed by the transferable
// skills. An unknown trade yields an empty list rather than an error.
func (c *Catalog) RequiredSkills(trade string) []types.Skill {
	tradeSkills, ok := c.Trades[trade]
	if !ok {
		return []types.Skill{}
	}
	out := make([]types.Skill, 0, len(tradeSkills)+len(c.Transferable))
	out = append(out, tradeSkills...)
	out = append(out, c.Transferable...)
	return out
}

// TradeNames returns the catalog's trade identifiers in sorted order.
func (c *Catalog) TradeNames() []string {
	names := make([]string, 0, len(c.Trades))
	for name := range c.Trades {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every skill in the catalog.
func (c *Catalog) Validate() error {
	for trade, list := range c.Trades {
		for i := range list {
			if err := list[i].Validate(); err != nil {
				return &CatalogError{Message: fmt.Sprintf("trade %q skill %d", trade, i), Cause: err}
			}
		}
	}
	for i := range c.Transferable {
		if err := c.Transferable[i].Validate(); err != nil {
			return &CatalogError{Message: fmt.Sprintf("transferable skill %d", i), Cause: err}
		}
	}
	return nil
}

// RequiredSkills returns the required skills for a trade from the built-in catalog.
func RequiredSkills(trade string) []types.Skill {
	return defaultCatalog.RequiredSkills(trade)
}

// LoadCatalog reads a catalog JSON file and validates it.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Message: fmt.Sprintf("failed to read catalog file %s", path), Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(CatalogSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, &CatalogError{Message: "catalog does not match schema", Cause: err}
		}
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &CatalogError{Message: "failed to parse catalog JSON", Cause: err}
	}
	if c.Trades == nil {
		c.Trades = map[string][]types.Skill{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
