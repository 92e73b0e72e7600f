// Command jod decodes documents that embed Java-serialized blobs.
//
// Input is a JSON document with a version marker and an array of records,
// each carrying a base64 byte-array blob:
//
//	{"version": 1, "records": [{"id": "r1", "blob": "rO0ABXA="}]}
//
// Each blob is decoded independently; gzip-framed blobs are unwrapped
// first. The decoded values are written to stdout as JSON (or as a spew
// dump with -spew). Any failure aborts the run with a non-zero exit.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/javaobj/javaobj"
	"github.com/klauspost/compress/gzip"
)

var dump = flag.Bool("spew", false, "dump decoded values with spew instead of JSON")

type document struct {
	Version int      `json:"version"`
	Records []record `json:"records"`
}

type record struct {
	ID   string `json:"id"`
	Blob []byte `json:"blob"`
}

type result struct {
	Version int            `json:"version"`
	Records []recordResult `json:"records"`
}

type recordResult struct {
	ID     string        `json:"id"`
	Values []interface{} `json:"values"`
}

// unwrap removes gzip framing from compressed blobs; anything else passes
// through untouched.
func unwrap(b []byte) ([]byte, error) {
	if len(b) < 2 || b[0] != 0x1f || b[1] != 0x8b {
		return b, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func process(fname string, b []byte) {

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		log.Fatalf("error parsing %s: %s", fname, err)
	}

	out := result{Version: doc.Version}

	for _, rec := range doc.Records {
		blob, err := unwrap(rec.Blob)
		if err != nil {
			log.Fatalf("error unwrapping %s record %q: %s", fname, rec.ID, err)
		}

		vals, err := javaobj.Unmarshal(blob)
		if err != nil {
			log.Fatalf("error decoding %s record %q: %s", fname, rec.ID, err)
		}

		out.Records = append(out.Records, recordResult{ID: rec.ID, Values: vals})
	}

	if *dump {
		spew.Dump(out)
		return
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(out); err != nil {
		log.Fatalf("error writing output for %s: %s", fname, err)
	}
}

func main() {

	flag.Parse()

	if flag.NArg() == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("error reading stdin: %s", err)
		}
		process("stdin", b)
		return
	}

	for _, arg := range flag.Args() {
		b, err := os.ReadFile(arg)
		if err != nil {
			log.Fatalf("error reading %s: %s", arg, err)
		}
		process(arg, b)
	}
}
