// Command streamgeo-bench loads a JSON-lines stream fixture and times
// dtw.Full against fastdtw.Run at a handful of radii, reporting wall time
// and the relative cost error FastDTW introduces at each radius.
//
// Usage:
//
//	streamgeo-bench -in fixture.jsonl
//	streamgeo-bench -in fixture.jsonl -radii 2,4,8,16 -pairs 20
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mrdmnd/streamgeo/dtw"
	"github.com/mrdmnd/streamgeo/fastdtw"
	"github.com/mrdmnd/streamgeo/geom"
	"github.com/mrdmnd/streamgeo/streamio"
)

func main() {
	in := flag.String("in", "", "Path to a JSON-lines stream fixture (required)")
	radiiFlag := flag.String("radii", "2,4,8,16", "Comma-separated FastDTW radii to benchmark")
	pairs := flag.Int("pairs", 10, "Number of random stream pairs to benchmark")
	seed := flag.Int64("seed", 1, "Random seed for pair selection")
	flag.Parse()

	if *in == "" {
		log.Fatal("streamgeo-bench: -in is required")
	}

	radii, err := parseRadii(*radiiFlag)
	if err != nil {
		log.Fatalf("streamgeo-bench: %v", err)
	}

	collection, err := loadFixture(*in)
	if err != nil {
		log.Fatalf("streamgeo-bench: %v", err)
	}
	if collection.Len() < 2 {
		log.Fatalf("streamgeo-bench: fixture %q needs at least two streams, has %d", *in, collection.Len())
	}

	rng := rand.New(rand.NewSource(*seed))
	streamPairs := samplePairs(collection, *pairs, rng)

	fmt.Printf("Loaded %d streams from %s, benchmarking %d pairs\n", collection.Len(), *in, len(streamPairs))

	fullElapsed, fullCosts := benchmarkFull(streamPairs)
	fmt.Printf("\ndtw.Full: %d pairs in %v (%.3f ms/pair)\n",
		len(streamPairs), fullElapsed, msPerPair(fullElapsed, len(streamPairs)))

	fmt.Printf("\n%-8s %14s %14s %14s\n", "radius", "elapsed", "ms/pair", "mean rel.err")
	for _, radius := range radii {
		elapsed, costs := benchmarkFastDTW(streamPairs, radius)
		relErr := meanRelativeError(fullCosts, costs)
		fmt.Printf("%-8d %14v %14.3f %14.4f\n", radius, elapsed, msPerPair(elapsed, len(streamPairs)), relErr)
	}
}

type streamPair struct {
	a, b geom.Stream
}

func loadFixture(path string) (geom.StreamCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.StreamCollection{}, err
	}
	defer f.Close()

	return streamio.ReadJSONLines(f)
}

func samplePairs(collection geom.StreamCollection, n int, rng *rand.Rand) []streamPair {
	streams := collection.Streams()
	pairs := make([]streamPair, 0, n)
	for i := 0; i < n; i++ {
		a := streams[rng.Intn(len(streams))]
		b := streams[rng.Intn(len(streams))]
		pairs = append(pairs, streamPair{a: a, b: b})
	}

	return pairs
}

func benchmarkFull(pairs []streamPair) (time.Duration, []float64) {
	costs := make([]float64, len(pairs))
	start := time.Now()
	for i, p := range pairs {
		summary, err := dtw.Full(p.a, p.b)
		if err != nil {
			log.Fatalf("streamgeo-bench: dtw.Full: %v", err)
		}
		costs[i] = summary.Cost
	}

	return time.Since(start), costs
}

func benchmarkFastDTW(pairs []streamPair, radius int) (time.Duration, []float64) {
	costs := make([]float64, len(pairs))
	start := time.Now()
	for i, p := range pairs {
		summary, err := fastdtw.Run(p.a, p.b, radius)
		if err != nil {
			log.Fatalf("streamgeo-bench: fastdtw.Run(radius=%d): %v", radius, err)
		}
		costs[i] = summary.Cost
	}

	return time.Since(start), costs
}

func meanRelativeError(exact, approx []float64) float64 {
	var sum float64
	for i := range exact {
		if exact[i] == 0 {
			continue
		}
		sum += (approx[i] - exact[i]) / exact[i]
	}

	return sum / float64(len(exact))
}

func msPerPair(d time.Duration, n int) float64 {
	return float64(d.Microseconds()) / 1000 / float64(n)
}

func parseRadii(raw string) ([]int, error) {
	fields := strings.Split(raw, ",")
	radii := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid -radii value %q: %w", f, err)
		}
		radii = append(radii, v)
	}

	return radii, nil
}
