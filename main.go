package main

import (
	"fmt"
	"os"
	"strconv"

	"cpucatalog/internal/generation"
)

// Standalone classifier: feed it a model string, a launch year, and an
// optional family, get back the generation codename.
//
//	go run . "EPYC 7301" 2017 "AMD EPYC"
func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, `usage: cpucatalog <model> <year> [family]`)
		os.Exit(2)
	}

	model := os.Args[1]
	year, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid year %q\n", os.Args[2])
		os.Exit(2)
	}

	family := ""
	if len(os.Args) > 3 {
		family = os.Args[3]
	}

	codename := generation.Classify(model, year, family)
	if codename == generation.Unknown {
		fmt.Println("unknown")
		return
	}
	fmt.Println(codename)
}
