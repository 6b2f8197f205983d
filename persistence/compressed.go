package persistence

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// WriteSnapshotCompressed writes s through a zstd encoder wrapped around w.
// The zstd frame itself carries no information about the wire format inside
// it; ReadSnapshotCompressed expects exactly what WriteSnapshotCompressed
// produced, namely one BinaryWriter-encoded snapshot as the entire
// decompressed stream.
func WriteSnapshotCompressed(w io.Writer, s Snapshot) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := NewBinaryWriter(enc).WriteSnapshot(s); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// ReadSnapshotCompressed reads a snapshot previously written by
// WriteSnapshotCompressed.
func ReadSnapshotCompressed(r io.Reader) (Snapshot, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return Snapshot{}, err
	}
	defer dec.Close()
	return NewBinaryReader(dec).ReadSnapshot()
}
