// Command nbt-dump decodes a named-binary-tag file and prints it as JSON,
// YAML, or stringified tag text. Gzip and zlib envelopes are inflated
// automatically.
//
// Usage:
//
//	nbt-dump -format json level.dat
//	nbt-dump -format snbt -max-depth 64 region.nbt
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/twinfer/nbt-plugin/pkg/nbtbin"
)

func main() {
	format := flag.String("format", "json", "output format: json, yaml or snbt")
	maxDepth := flag.Int("max-depth", 512, "maximum container nesting depth")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-format json|yaml|snbt] [-max-depth n] <file>\n", os.Args[0])
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *format, *maxDepth); err != nil {
		fmt.Fprintf(os.Stderr, "nbt-dump: %v\n", err)
		os.Exit(1)
	}
}

func run(path, format string, maxDepth int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := nbtbin.NewDecoder(nbtbin.WithMaxDepth(maxDepth))
	ctx := context.Background()

	switch format {
	case "json":
		out, err := decoder.ToJSON(ctx, data)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		tree, err := decoder.ParseBinary(ctx, data)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(tree)
		if err != nil {
			return fmt.Errorf("marshaling to YAML: %w", err)
		}
		fmt.Print(string(out))
	case "snbt":
		out, err := decoder.ToSNBT(ctx, data)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
