package streamio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/mrdmnd/streamgeo/geom"
)

// versionV1 is the leading byte of DumpV1's wire format. The original
// implementation's write_streams_to_binary/read_streams_from_binary pair
// has no such byte — streamgeo adds it so a future V2 layout can be
// introduced without breaking readers of old blobs.
const versionV1 uint8 = 1

// DumpV1 writes collection in streamgeo's binary format:
//
//	u8       version (versionV1)
//	u64le    n_streams
//	for each stream, in order:
//	  u64le  n_points
//	  n_points*2 f32le coordinates, interleaved x0, y0, x1, y1, ...
//
// This mirrors the original source's write_streams_to_binary layout
// except for the size_t stream count (fixed here to u64 for a portable
// on-disk width) and the added version byte.
func DumpV1(w io.Writer, collection geom.StreamCollection) error {
	bw := bufio.NewWriter(w)

	if err := bw.WriteByte(versionV1); err != nil {
		return fmt.Errorf("streamio: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint64(collection.Len())); err != nil {
		return fmt.Errorf("streamio: %w", err)
	}

	for i := 0; i < collection.Len(); i++ {
		stream, err := collection.At(i)
		if err != nil {
			return err
		}
		points := stream.Points()
		if err := binary.Write(bw, binary.LittleEndian, uint64(len(points))); err != nil {
			return fmt.Errorf("streamio: stream %d: %w", i, err)
		}
		coords := make([]float32, 0, 2*len(points))
		for _, p := range points {
			coords = append(coords, float32(p.X), float32(p.Y))
		}
		if err := binary.Write(bw, binary.LittleEndian, coords); err != nil {
			return fmt.Errorf("streamio: stream %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// LoadV1 decodes a geom.StreamCollection written by DumpV1. It returns
// ErrUnsupportedVersion if the leading byte is not versionV1 and
// ErrTruncated if the blob ends before its declared counts are satisfied.
func LoadV1(r io.Reader) (geom.StreamCollection, error) {
	br := bufio.NewReader(r)

	version, err := br.ReadByte()
	if err != nil {
		return geom.StreamCollection{}, fmt.Errorf("streamio: %w", ErrTruncated)
	}
	if version != versionV1 {
		return geom.StreamCollection{}, ErrUnsupportedVersion
	}

	var nStreams uint64
	if err := binary.Read(br, binary.LittleEndian, &nStreams); err != nil {
		return geom.StreamCollection{}, fmt.Errorf("streamio: %w", ErrTruncated)
	}

	streams := make([]geom.Stream, 0, nStreams)
	for i := uint64(0); i < nStreams; i++ {
		var nPoints uint64
		if err := binary.Read(br, binary.LittleEndian, &nPoints); err != nil {
			return geom.StreamCollection{}, fmt.Errorf("streamio: stream %d: %w", i, ErrTruncated)
		}
		coords := make([]float32, 2*nPoints)
		if err := binary.Read(br, binary.LittleEndian, coords); err != nil {
			return geom.StreamCollection{}, fmt.Errorf("streamio: stream %d: %w", i, ErrTruncated)
		}
		points := make([]geom.Point, nPoints)
		for j := range points {
			points[j] = geom.Point{X: float64(coords[2*j]), Y: float64(coords[2*j+1])}
		}
		stream, err := geom.NewStream(points)
		if err != nil {
			return geom.StreamCollection{}, fmt.Errorf("streamio: stream %d: %w", i, err)
		}
		streams = append(streams, stream)
	}

	return geom.NewStreamCollection(streams)
}
