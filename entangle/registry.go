// Package entangle groups spatial codes so that every member shares the same
// low-order bits.
//
// A group is formed by copying the low n bits of the first code onto every
// other code. Collapsing a group replaces those shared bits with a fresh
// random suffix, moving all members together.
//
//	reg := entangle.NewRegistry(rand.NewSource(1))
//	id, err := reg.Entangle(codes, 16)
//	moved, err := reg.Collapse(id, 16)
//
// A Registry is a plain value owned by the caller and is not safe for
// concurrent use.
package entangle

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/spatial"
)

// Registry tracks entanglement groups by id.
type Registry struct {
	rng    *rand.Rand
	groups map[uint64][]spatial.Code
	nextID uint64
}

// NewRegistry creates an empty registry drawing collapse suffixes from src.
func NewRegistry(src rand.Source) *Registry {
	return &Registry{
		rng:    rand.New(src), //nolint:gosec // not used for security
		groups: make(map[uint64][]spatial.Code),
		nextID: 1,
	}
}

// Entangle forces codes to share their low nBits bits, taken from codes[0],
// and stores the resulting distinct codes as a new group.
//
// Parameters:
//   - codes: Group members; the first one donates the shared suffix
//   - nBits: Number of low bits to share, in [0, 192]
//
// Returns:
//   - uint64: Id of the new group, starting at 1
//   - error: errs.ErrEmptyGroup if codes is empty, errs.ErrOutOfRange for a bad nBits
func (r *Registry) Entangle(codes []spatial.Code, nBits int) (uint64, error) {
	if len(codes) == 0 {
		return 0, errs.ErrEmptyGroup
	}
	mask, err := suffixMask(nBits)
	if err != nil {
		return 0, err
	}

	r.groups[r.nextID] = applySuffix(codes, mask, codes[0].And(mask))
	id := r.nextID
	r.nextID++

	return id, nil
}

// Collapse replaces the low nBits bits of every member of group id with one
// new random suffix and returns the updated members in ascending order.
func (r *Registry) Collapse(id uint64, nBits int) ([]spatial.Code, error) {
	members, ok := r.groups[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrGroupNotFound, id)
	}
	mask, err := suffixMask(nBits)
	if err != nil {
		return nil, err
	}

	suffix := spatial.FromWords(r.rng.Uint64(), r.rng.Uint64(), r.rng.Uint64()).And(mask)
	updated := applySuffix(members, mask, suffix)
	r.groups[id] = updated

	return slices.Clone(updated), nil
}

// Group returns the members of group id in ascending order, or nil if the
// group does not exist.
func (r *Registry) Group(id uint64) []spatial.Code {
	return slices.Clone(r.groups[id])
}

// Len returns the number of groups.
func (r *Registry) Len() int {
	return len(r.groups)
}

func suffixMask(nBits int) (spatial.Code, error) {
	if nBits < 0 || nBits > spatial.TotalBits {
		return spatial.Zero, fmt.Errorf("%w: bit count %d not in [0, %d]", errs.ErrOutOfRange, nBits, spatial.TotalBits)
	}

	return spatial.LowBitsMask(nBits), nil
}

// applySuffix returns the distinct codes, ascending, after overwriting the
// masked bits with suffix.
func applySuffix(codes []spatial.Code, mask, suffix spatial.Code) []spatial.Code {
	out := make([]spatial.Code, 0, len(codes))
	for _, c := range codes {
		out = append(out, c.AndNot(mask).Or(suffix))
	}
	slices.SortFunc(out, spatial.Code.Compare)

	return slices.Compact(out)
}
