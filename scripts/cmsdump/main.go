package main

import (
	"Go2FreqSpectra/pkg/cms"
	"flag"
	"fmt"
	"log"
	"os"
)

// cmsdump inspects a binary sketch snapshot produced by the sketchfile writer
// and optionally evaluates the estimators for a set of keys.
//
// Usage:
//
//	go run scripts/cmsdump/main.go -file snapshots/2026-08-31_12-00-00/task/sketch.cms key1 key2
func main() {
	file := flag.String("file", "", "Path to a sketch.cms snapshot file")
	flag.Parse()

	if *file == "" {
		log.Fatal("Error: -file flag is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *file, err)
	}
	defer f.Close()

	sketch, err := cms.Import(f, nil)
	if err != nil {
		log.Fatalf("Failed to import sketch: %v", err)
	}

	fmt.Printf("Sketch: %s\n", *file)
	fmt.Printf("  Width:          %d\n", sketch.Width())
	fmt.Printf("  Depth:          %d\n", sketch.Depth())
	fmt.Printf("  Error Rate:     %g\n", sketch.ErrorRate())
	fmt.Printf("  Confidence:     %g\n", sketch.Confidence())
	fmt.Printf("  Elements Added: %d\n", sketch.ElementsAdded())

	keys := flag.Args()
	if len(keys) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("%-30s %12s %12s %12s\n", "Key", "CountMin", "Mean", "MeanMin")
	for _, key := range keys {
		fmt.Printf("%-30s %12d %12d %12d\n", key, sketch.Check(key), sketch.CheckMean(key), sketch.CheckMeanMin(key))
	}
}
