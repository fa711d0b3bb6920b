// Command edbkeygen generates a fresh key bundle for the searchable
// encryption client and writes it to disk, mirroring the reference
// keygen.py script: draw a bundle against the client's key schema, then
// persist it as a keyfile.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"edbcore/keybundle"
	"edbcore/sse"
)

func main() {
	out := flag.String("out", "", "path to write the generated keyfile to (required)")
	fingerprint := flag.Bool("fingerprint", true, "print the keyfile's fingerprint after writing")
	flag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "usage: edbkeygen -out <filename>")
		os.Exit(2)
	}

	if err := run(*out, *fingerprint); err != nil {
		log.Fatalf("edbkeygen: %v", err)
	}
}

func run(path string, printFingerprint bool) error {
	bundle, err := keybundle.Generate(sse.KeySchema)
	if err != nil {
		return fmt.Errorf("generate key bundle: %w", err)
	}
	if _, err := sse.NewClient(bundle, nil); err != nil {
		return fmt.Errorf("generated bundle failed validation: %w", err)
	}

	if err := keybundle.Write(bundle, path); err != nil {
		return fmt.Errorf("write keyfile %s: %w", path, err)
	}

	log.Printf("wrote key bundle to %s", path)

	if printFingerprint {
		fmt.Println(keybundle.Fingerprint(bundle))
	}
	return nil
}
