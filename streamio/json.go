package streamio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrdmnd/streamgeo/geom"
)

// ReadJSONLines decodes a geom.StreamCollection from r, one stream per
// line, each line a flat JSON array [x0, y0, x1, y1, ...] matching the
// layout the original implementation's getline/strtok loader produced.
// It returns ErrEmptyLine for a line with zero points and
// ErrOddCoordinateCount for a line whose coordinate count isn't even.
func ReadJSONLines(r io.Reader) (geom.StreamCollection, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var streams []geom.Stream
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var flat []float64
		if err := json.Unmarshal(line, &flat); err != nil {
			return geom.StreamCollection{}, fmt.Errorf("streamio: line %d: %w", lineNo, err)
		}
		if len(flat)%2 != 0 {
			return geom.StreamCollection{}, fmt.Errorf("streamio: line %d: %w", lineNo, ErrOddCoordinateCount)
		}
		if len(flat) == 0 {
			return geom.StreamCollection{}, fmt.Errorf("streamio: line %d: %w", lineNo, ErrEmptyLine)
		}

		points := make([]geom.Point, len(flat)/2)
		for i := range points {
			points[i] = geom.Point{X: flat[2*i], Y: flat[2*i+1]}
		}
		stream, err := geom.NewStream(points)
		if err != nil {
			return geom.StreamCollection{}, fmt.Errorf("streamio: line %d: %w", lineNo, err)
		}
		streams = append(streams, stream)
	}
	if err := scanner.Err(); err != nil {
		return geom.StreamCollection{}, fmt.Errorf("streamio: %w", err)
	}

	return geom.NewStreamCollection(streams)
}

// WriteJSONLines encodes collection to w, one flat [x0, y0, x1, y1, ...]
// JSON array per line.
func WriteJSONLines(w io.Writer, collection geom.StreamCollection) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for i := 0; i < collection.Len(); i++ {
		stream, err := collection.At(i)
		if err != nil {
			return err
		}
		points := stream.Points()
		flat := make([]float64, 0, 2*len(points))
		for _, p := range points {
			flat = append(flat, p.X, p.Y)
		}
		if err := enc.Encode(flat); err != nil {
			return fmt.Errorf("streamio: stream %d: %w", i, err)
		}
	}

	return bw.Flush()
}
