//go:build gofuzz

package javaobj

import (
	"encoding/json"

	"github.com/google/go-cmp/cmp"
)

func Fuzz(data []byte) int {
	vals, err := Unmarshal(data)
	if err != nil {
		return 0
	}

	// decoding is deterministic: the same bytes must yield the same graph
	again, err := Unmarshal(data)
	if err != nil {
		panic("second decode failed: " + err.Error())
	}

	a, err := json.Marshal(vals)
	if err != nil {
		panic(err)
	}
	b, err := json.Marshal(again)
	if err != nil {
		panic(err)
	}
	if diff := cmp.Diff(string(a), string(b)); diff != "" {
		panic("roundtrip mismatch: " + diff)
	}

	return 1
}
