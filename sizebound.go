package icu

import "github.com/pkg/errors"

// These constants give ChunkCompressedSizeBound's formula concrete values;
// spec.md §6 leaves the exact header/field sizes implementation-defined
// ("non_imagette_header_size", "collection_field_size",
// "CMP_ENTITY_MAX_SIZE"), so the values below are this codec's chosen
// constants, grounded on the largest structured shape
// (S_FX_EFX_NCOB_ECOB, 25 bytes) and a generic entity header, and recorded
// as an Open Question resolution in DESIGN.md.
const (
	nonImagetteHeaderSize = 24
	collectionFieldSize   = 25
	cmpEntityMaxSize      = 1 << 24
)

// ChunkCompressedSizeBound mirrors spec.md §6's
// compress_chunk_cmp_size_bound: an upper bound, in bytes, on the
// compressed size of a chunk made of numCol concatenated collections plus
// chunkSize bytes of imagette payload. It returns 0 when any precondition
// is violated: a non-positive numCol, a chunkSize below the minimum header
// size, or a result exceeding CMP_ENTITY_MAX_SIZE.
func ChunkCompressedSizeBound(chunkSize uint32, numCol int) uint32 {
	if numCol <= 0 {
		return 0
	}
	if chunkSize < nonImagetteHeaderSize {
		return 0
	}

	total := uint64(nonImagetteHeaderSize) + uint64(numCol)*uint64(collectionFieldSize) + uint64(chunkSize)
	bound := roundUp4(total)
	if bound > cmpEntityMaxSize {
		return 0
	}
	return uint32(bound)
}

func roundUp4(v uint64) uint64 {
	return (v + 3) &^ 3
}

// sizeBoundError wraps a caller-facing precondition failure, used at this
// package's one plain-Go-error boundary (ChunkCompressedSizeBound's sibling
// validation helper below, kept for callers that want an error rather than
// a bare 0 sentinel).
func sizeBoundError(chunkSize uint32, numCol int) error {
	if numCol <= 0 {
		return errors.Errorf("icu: num_col must be positive, got %d", numCol)
	}
	if chunkSize < nonImagetteHeaderSize {
		return errors.Errorf("icu: chunk_size %d below minimum header size %d", chunkSize, nonImagetteHeaderSize)
	}
	return nil
}

// ChunkCompressedSizeBoundErr behaves like ChunkCompressedSizeBound but
// returns a descriptive error instead of a bare 0 when a precondition
// fails, using pkg/errors at this package's external boundary.
func ChunkCompressedSizeBoundErr(chunkSize uint32, numCol int) (uint32, error) {
	if err := sizeBoundError(chunkSize, numCol); err != nil {
		return 0, errors.WithStack(err)
	}
	bound := ChunkCompressedSizeBound(chunkSize, numCol)
	if bound == 0 {
		return 0, errors.Errorf("icu: chunk size bound exceeds CMP_ENTITY_MAX_SIZE")
	}
	return bound, nil
}
