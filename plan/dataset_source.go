package plan

import (
	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/dataset"
)

// DatasetSource reads a partitioned dataset.Dataset, splitting pushed
// predicates into partition filters (used to prune whole pieces before
// any file is opened) and value filters (applied after the surviving
// pieces are read and concatenated), per spec §4.2 DatasetSource.
type DatasetSource struct {
	base
	Name            string
	Dataset         dataset.Dataset
	partitionFilter []columnar.Predicate
}

// NewDatasetSource builds a source over ds's discoverable schema. The
// visible column set is the union of partition keys and the first
// piece's schema; spec §3 treats per-piece schema as consistent across
// all pieces of one dataset.
func NewDatasetSource(name string, ds dataset.Dataset) *DatasetSource {
	pieces := ds.Pieces()
	var schema []string
	if len(pieces) > 0 {
		schema = pieces[0].Schema()
	}
	visible := UnionStrings(ds.PartitionKeys(), schema)
	return &DatasetSource{
		base: base{columnsVisible: visible, columnsSource: visible},
		Name: name, Dataset: ds,
	}
}

func (n *DatasetSource) Kind() string     { return "DatasetSource" }
func (n *DatasetSource) Children() []Node { return nil }

// PartitionFilters returns the predicates routed to partition pruning,
// meaningful only after Backward has run.
func (n *DatasetSource) PartitionFilters() []columnar.Predicate { return n.partitionFilter }

func (n *DatasetSource) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	requested := UnionStrings(n.columnsForward, columnsBackward)
	n.columnsBackward = IntersectStrings(requested, n.columnsSource)

	allFilters := DedupePredicates(append(append([]columnar.Predicate(nil), n.filtersForward...), filtersBackward...))
	partKeys := n.Dataset.PartitionKeys()
	partFilters, valueFilters := FilterByColumnSet(allFilters, partKeys)
	n.partitionFilter = DedupePredicates(partFilters)
	n.filters = DedupePredicates(valueFilters)

	fp, err := fold(identity{
		"name":             n.Kind(),
		"dataset":          n.Name,
		"partition_filters": predicateStrings(n.partitionFilter),
		"filters":          predicateStrings(n.filters),
		"columns_backward": n.columnsBackward,
	})
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = fp
	return fp, nil
}
