package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"scene-inspector/feature/gltf"
	"scene-inspector/feature/inspect"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_gltf <bundle file>")
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Test 1: Parse the document
	fmt.Println("=== TEST 1: Parse ===")
	imp, err := gltf.Parse(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Parsed %d bytes\n", len(data))

	// Test 2: Full report
	fmt.Println("\n=== TEST 2: Report ===")
	rep, err := inspect.Build(ctx, imp, inspect.All(), nil)
	if err != nil {
		log.Fatal(err)
	}

	for _, kind := range []string{"scene", "object", "animation", "skin", "light", "material", "mesh", "texture", "image"} {
		fmt.Printf("%-10s %d\n", kind, rep.Counts[kind])
	}

	if rep.Failed() {
		fmt.Printf("\n%d entities failed to import:\n", len(rep.Failures))
		for _, f := range rep.Failures {
			fmt.Println("  " + f.String())
		}
	}

	// Test 3: Census findings
	fmt.Println("\n=== TEST 3: Census ===")
	if len(rep.OutOfRange) == 0 {
		fmt.Println("No out-of-range references")
	}
	for _, ref := range rep.OutOfRange {
		fmt.Printf("%s references %s %d (only %d present)\n",
			ref.Source, ref.Edge.Target(), ref.Value, ref.Targets)
	}

	unreferenced := 0
	for _, o := range rep.Objects {
		if o.Unreferenced {
			unreferenced++
		}
	}
	fmt.Printf("Unreferenced objects: %d\n", unreferenced)

	// Save detailed output
	out, _ := json.MarshalIndent(rep, "", "  ")
	os.WriteFile("debug_report.json", out, 0644)

	fmt.Println("\nDebug complete. Check debug_report.json for details.")
}
