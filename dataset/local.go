package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/internal/colfile"
)

const schemaFileName = "_schema.json"

// LocalDataset discovers partitions under a root directory laid out as
// `key=value/key2=value2/...` leaf directories, each holding a
// `_schema.json` manifest and one colfile per non-partition column
// (spec §6 "Dataset layout").
type LocalDataset struct {
	root           string
	partitionKeys  []string
	pieces         []Piece
}

// OpenLocalDataset walks root and builds a LocalDataset. Partition keys
// are taken from the first leaf directory's path and are assumed
// consistent across all pieces, matching the reference wombat_db
// implementation's single fixed partition-key list per dataset.
func OpenLocalDataset(root string) (*LocalDataset, error) {
	var leaves []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if _, statErr := os.Stat(filepath.Join(path, schemaFileName)); statErr == nil {
			leaves = append(leaves, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(leaves)

	ds := &LocalDataset{root: root}
	for _, leaf := range leaves {
		rel, err := filepath.Rel(root, leaf)
		if err != nil {
			return nil, err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		values := make(map[string]any, len(parts))
		keys := make([]string, 0, len(parts))
		for _, part := range parts {
			kv := strings.SplitN(part, "=", 2)
			if len(kv) != 2 {
				continue
			}
			keys = append(keys, kv[0])
			values[kv[0]] = parsePartitionValue(kv[1])
		}
		if ds.partitionKeys == nil {
			ds.partitionKeys = keys
		}
		schema, err := colfile.ReadSchema(filepath.Join(leaf, schemaFileName))
		if err != nil {
			return nil, err
		}
		names := make([]string, len(schema.Columns))
		for i, c := range schema.Columns {
			names[i] = c.Name
		}
		ds.pieces = append(ds.pieces, &LocalPiece{
			dir:     leaf,
			values:  values,
			columns: names,
		})
	}
	return ds, nil
}

// parsePartitionValue guesses a scalar type from a directory-name
// string the same way wombat's part_check casts at filter time: tried
// here eagerly so PartitionValues() returns typed values.
func parsePartitionValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func (d *LocalDataset) PartitionKeys() []string { return d.partitionKeys }

func (d *LocalDataset) Pieces() []Piece { return d.pieces }

// LocalPiece is one partition directory.
type LocalPiece struct {
	dir     string
	values  map[string]any
	columns []string
}

func (p *LocalPiece) PartitionValues() map[string]any { return p.values }

func (p *LocalPiece) Schema() []string { return p.columns }

func (p *LocalPiece) Read(ctx context.Context, columns []string) (columnar.Table, error) {
	if columns == nil {
		columns = p.columns
	}
	cols := make([]columnar.Column, len(columns))
	for i, name := range columns {
		col, err := colfile.ReadColumn(filepath.Join(p.dir, name+".json"))
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return columnar.NewMemTable(columns, cols)
}

// WritePiece is a test/demo helper that materialises a piece directory
// under root for the given partition values and columns.
func WritePiece(root string, partitionKeys []string, partitionValues map[string]any, names []string, cols []columnar.Column) error {
	segments := make([]string, len(partitionKeys))
	for i, k := range partitionKeys {
		segments[i] = k + "=" + toPathValue(partitionValues[k])
	}
	dir := filepath.Join(append([]string{root}, segments...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	schema := colfile.Schema{}
	for i, n := range names {
		schema.Columns = append(schema.Columns, colfile.ColumnMeta{Name: n, Kind: kindOf(cols[i])})
		if err := colfile.WriteColumn(filepath.Join(dir, n+".json"), cols[i]); err != nil {
			return err
		}
	}
	return colfile.WriteSchema(filepath.Join(dir, schemaFileName), schema)
}

func kindOf(col columnar.Column) string {
	switch col.Kind() {
	case columnar.KindInt64:
		return "int64"
	case columnar.KindFloat64:
		return "float64"
	case columnar.KindBool:
		return "bool"
	default:
		return "string"
	}
}

func toPathValue(v any) string {
	switch t := v.(type) {
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return v.(string)
	}
}
