// fen-lint validates, canonicalizes, and deduplicates FEN position records.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fen-lint version %s\n", programVersion)
		os.Exit(0)
	}

	pr := newProcessor(lintOptionsFromFlags(), setupOutputFile(), os.Stderr)

	ok := processAllInputs(pr)

	if !*silent {
		pr.reportStatistics()
	}
	if !ok {
		os.Exit(1)
	}
}

// setupOutputFile opens the -o target, defaulting to stdout.
func setupOutputFile() io.Writer {
	if *outputFile == "" {
		return os.Stdout
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	return file
}

// processAllInputs runs every named input file, or stdin when none are named,
// through the processor. It reports whether every record parsed.
func processAllInputs(pr *processor) bool {
	args := flag.Args()

	if len(args) == 0 {
		return pr.processInput(os.Stdin, "stdin")
	}

	ok := true
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			ok = false
			continue
		}

		if !pr.processInput(file, filename) {
			ok = false
		}

		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
	return ok
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fen-lint [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "A tool for validating and canonicalizing FEN position records.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput is one FEN record per line. Blank lines and lines starting with '#'\n")
	fmt.Fprintf(os.Stderr, "are skipped; every valid record is echoed back in canonical form.\n")
}
