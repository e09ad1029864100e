package plan

import (
	"encoding/hex"
	"encoding/json"

	"github.com/zeebo/blake3"

	"github.com/colqhq/colq/columnar"
)

// Fingerprint is the 256-bit content hash described in spec §3: it
// depends deterministically and only on a node's optimised metadata and
// the fingerprints of its parents, so structurally equivalent
// post-optimisation sub-plans hash identically (spec §4.3, testable
// property 3).
type Fingerprint [32]byte

func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// IsZero reports whether f is the zero fingerprint, the value a node's
// Fingerprint holds before Backward has run.
func (f Fingerprint) IsZero() bool { return f == Fingerprint{} }

// identity is the per-node-kind dictionary hashed into the fingerprint,
// matching spec §4.3 point 3's field list:
// {name, on, filters, by, methods, key, ascending, calculation, columns_backward}.
type identity map[string]any

// fold folds this node's identity and zero or more parent fingerprints
// into a new Fingerprint using a streaming 256-bit hash (spec §4.3
// point 3). json.Marshal of a map[string]any sorts keys alphabetically,
// which is what gives the encoding its canonical, order-independent form.
func fold(id identity, parents ...Fingerprint) (Fingerprint, error) {
	h := blake3.New()
	for _, p := range parents {
		h.Write(p[:])
	}
	payload, err := json.Marshal(id)
	if err != nil {
		return Fingerprint{}, err
	}
	h.Write(payload)

	var out Fingerprint
	copy(out[:], h.Sum(nil))
	return out, nil
}

// predicateStrings renders a canonical (sorted) predicate list for
// inclusion in an identity map; json.Marshal can't be trusted to sort
// slices, only map keys, so predicates are stringified first.
func predicateStrings(preds []columnar.Predicate) []string {
	canon := DedupePredicates(preds)
	out := make([]string, len(canon))
	for i, p := range canon {
		out[i] = p.String()
	}
	return out
}
