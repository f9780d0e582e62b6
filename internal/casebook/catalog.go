package casebook

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/cases.json
var bundledCases []byte

//go:embed data/cases.schema.json
var catalogSchema []byte

const schemaURL = "schema://verdict/cases.json"

// Catalog is an immutable, ordered list of cases with an id index.
type Catalog struct {
	cases []Case
	byID  map[int]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the bundled catalog. The embedded data is validated by
// the package tests, so a failure here is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bundledCases)
		if err != nil {
			panic(fmt.Sprintf("casebook: bundled catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadFile reads and validates a catalog from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Load parses raw JSON, checks it against the catalog schema and then
// runs the semantic checks the schema cannot express.
func Load(data []byte) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var cases []Case
	if err := dec.Decode(&cases); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validateCases(cases); err != nil {
		return nil, err
	}
	return newCatalog(cases), nil
}

func newCatalog(cases []Case) *Catalog {
	c := &Catalog{
		cases: cases,
		byID:  make(map[int]int, len(cases)),
	}
	for i := range c.cases {
		c.byID[c.cases[i].ID] = i
	}
	return c
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(catalogSchema, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		comp := jsonschema.NewCompiler()
		if err := comp.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = comp.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

func validateSchema(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Count returns the number of cases.
func (c *Catalog) Count() int {
	return len(c.cases)
}

// At returns the case at position i.
func (c *Catalog) At(i int) (Case, bool) {
	if i < 0 || i >= len(c.cases) {
		return Case{}, false
	}
	return c.cases[i].clone(), true
}

// ByID returns the case with the given id.
func (c *Catalog) ByID(id int) (Case, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Case{}, false
	}
	return c.cases[i].clone(), true
}

// IndexOf returns the catalog position of the case with the given id, or -1.
func (c *Catalog) IndexOf(id int) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// All returns every case in catalog order.
func (c *Catalog) All() []Case {
	out := make([]Case, len(c.cases))
	for i := range c.cases {
		out[i] = c.cases[i].clone()
	}
	return out
}

// Sources returns the sources of every case, flattened in catalog order.
func (c *Catalog) Sources() []Source {
	var out []Source
	for i := range c.cases {
		out = append(out, c.cases[i].Sources...)
	}
	return slices.Clip(out)
}

// Validate re-runs the semantic checks over the loaded cases.
func (c *Catalog) Validate() error {
	return validateCases(c.cases)
}
