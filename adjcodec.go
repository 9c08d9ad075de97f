package gds

import "encoding/binary"

// EncodeDeltaVarint writes ids (already sorted ascending, as
// adjacency lists conventionally are) as a run of delta-encoded
// unsigned varints into buf, appending to whatever buf already holds.
// This is the packing scheme a loader uses before handing bytes to a
// bump Allocator (spec.md section 2's "writing bytes ... via E
// scratch buffers" step); the core itself is agnostic to the byte
// layout an allocation holds.
func EncodeDeltaVarint(ids []int64, buf *ByteBuffer) {
	var scratch [binary.MaxVarintLen64]byte
	prev := int64(0)
	for _, id := range ids {
		delta := id - prev
		n := binary.PutUvarint(scratch[:], uint64(delta))
		buf.Append(scratch[:n])
		prev = id
	}
}

// DecodeDeltaVarint reverses EncodeDeltaVarint, unpacking every id
// packed into data. Adjacency runs carry their span as a byte count
// (AdjacencyList.Degrees), not a neighbour count, so decoding consumes
// data until exhausted rather than stopping at a fixed id count.
func DecodeDeltaVarint(data []byte) []int64 {
	out := make([]int64, 0, len(data))
	var prev int64
	pos := 0
	for pos < len(data) {
		delta, n := binary.Uvarint(data[pos:])
		if n <= 0 {
			raise(invariantError("DecodeDeltaVarint", "malformed varint in adjacency run"))
		}
		pos += n
		prev += int64(delta)
		out = append(out, prev)
	}
	return out
}
