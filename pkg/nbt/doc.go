// Package nbt decodes the named binary tag format: a self-describing,
// hierarchically nested tree of typed values serialized big-endian.
//
// The decoder works over a fully materialized, already-decompressed byte
// buffer and produces an immutable tree in a single pass. It is strict:
// truncated input, unknown tag kinds, and negative lengths or counts all
// abort the whole decode with no partial result.
//
// Basic usage:
//
//	root, err := nbt.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for name, tag := range root.All() {
//	    fmt.Println(name, nbt.SNBT(tag))
//	}
//
// A complete document is a single named compound; Decode returns it wrapped
// in a synthetic compound with one entry keyed by the root's declared name.
//
// For compressed payloads, structured (map-based) output, and message
// pipeline integration, see the nbtbin package and the Benthos processor
// under cmd/nbt-plugin.
package nbt
