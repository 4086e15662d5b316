package main

// dataset_gen.go generates session-ID datasets, reproducible for a given
// -seed, for exercising the session cache outside `go test`: one
// hex-encoded 32-byte session_id per line, suitable for feeding a
// load-testing script or for building fixture files.
//
// Usage:
//
//	go run ./tools/dataset_gen -n 100000 -dist=zipf -pool=5000 -seed=42 -out sids.txt
//
// Flags:
//
//	-n     number of session IDs to emit (default 1e5)
//	-dist  distribution: "uniform" (all distinct) or "zipf" (skewed reuse
//	       from a fixed-size pool, to model clients that reconnect far more
//	       often than others)
//	-pool  size of the reuse pool when -dist=zipf (default 5000)
//	-zipfs Zipf s parameter (>1) (default 1.2)
//	-zipfv Zipf v parameter (>=1) (default 1.0)
//	-seed  PRNG seed (default current time)
//	-out   output file (default stdout)
//
// © 2025 session-cache authors. MIT License.

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

func main() {
	var (
		n       = flag.Int("n", 100_000, "number of session IDs to generate")
		dist    = flag.String("dist", "uniform", "distribution: uniform or zipf")
		pool    = flag.Int("pool", 5000, "reuse pool size for -dist=zipf")
		zipfS   = flag.Float64("zipfs", 1.2, "zipf s parameter (>1)")
		zipfV   = flag.Float64("zipfv", 1.0, "zipf v parameter (>=1)")
		seedVal = flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
		outPath = flag.String("out", "", "output file (default stdout)")
	)
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seedVal))

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot create file:", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriterSize(out, 1<<20)
	defer w.Flush()

	switch *dist {
	case "uniform":
		buf := make([]byte, 32)
		for i := 0; i < *n; i++ {
			rnd.Read(buf)
			fmt.Fprintln(w, hex.EncodeToString(buf))
		}

	case "zipf":
		if *zipfS <= 1.0 || *zipfV < 1 {
			fmt.Fprintln(os.Stderr, "zipfs must be >1 and zipfv >=1")
			os.Exit(1)
		}
		if *pool <= 0 {
			fmt.Fprintln(os.Stderr, "pool must be >0")
			os.Exit(1)
		}
		poolIDs := make([][]byte, *pool)
		for i := range poolIDs {
			id := make([]byte, 32)
			rnd.Read(id)
			poolIDs[i] = id
		}
		z := rand.NewZipf(rnd, *zipfS, *zipfV, uint64(*pool-1))
		for i := 0; i < *n; i++ {
			fmt.Fprintln(w, hex.EncodeToString(poolIDs[z.Uint64()]))
		}

	default:
		fmt.Fprintln(os.Stderr, "unknown dist:", *dist)
		os.Exit(1)
	}
}
