// Package yamlfile builds a source.Table from a YAML snapshot document:
//
//	name: users
//	columns:
//	  - name: age
//	    values: [25, 30, ~, 22]
//
// Cell kinds come from the resolved YAML scalar tag, so `30` is an integer,
// `"30"` a string and `~`/`null` the missing marker. `.nan` is also missing,
// and timestamps such as `2024-01-01` are kept as their literal string.
package yamlfile

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderjulianmartinez/tablecheck/internal/source"
	"github.com/alexanderjulianmartinez/tablecheck/pkg/types"
)

type Snapshot struct {
	Name  string
	Table *source.Table
}

type document struct {
	Name    string           `yaml:"name"`
	Columns []columnDocument `yaml:"columns"`
}

type columnDocument struct {
	Name   string      `yaml:"name"`
	Values []yaml.Node `yaml:"values"`
}

func Load(path string) (*Snapshot, error) {
	if path == "" {
		return nil, errors.New("snapshot path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	snap, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snap, nil
}

func Parse(data []byte) (*Snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if len(doc.Columns) == 0 {
		return nil, errors.New("snapshot has no columns")
	}

	columns := make([]source.Column, 0, len(doc.Columns))
	for _, cd := range doc.Columns {
		values := make([]types.Value, 0, len(cd.Values))
		for row := range cd.Values {
			v, err := decodeValue(&cd.Values[row])
			if err != nil {
				return nil, fmt.Errorf("column %s row %d: %w", cd.Name, row, err)
			}
			values = append(values, v)
		}
		columns = append(columns, source.Column{Name: cd.Name, Values: values})
	}

	table, err := source.NewTable(columns...)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Name: doc.Name, Table: table}, nil
}

func decodeValue(node *yaml.Node) (types.Value, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return types.Value{}, fmt.Errorf("line %d: cell must be a scalar", node.Line)
	}

	switch tag := node.ShortTag(); tag {
	case "!!null":
		return types.Missing(), nil
	case "!!str", "!!timestamp":
		return types.NewString(node.Value), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return types.Value{}, fmt.Errorf("line %d: decode integer: %w", node.Line, err)
		}
		return types.NewInt(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return types.Value{}, fmt.Errorf("line %d: decode float: %w", node.Line, err)
		}
		if math.IsNaN(f) {
			return types.Missing(), nil
		}
		return types.NewFloat(f), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return types.Value{}, fmt.Errorf("line %d: decode boolean: %w", node.Line, err)
		}
		return types.NewBool(b), nil
	default:
		return types.Value{}, fmt.Errorf("line %d: unsupported scalar tag %s", node.Line, tag)
	}
}
