package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	fraux "github.com/xh-gotz9/go-fraux"
	"github.com/xh-gotz9/go-fraux/config"
)

var canonical = pflag.BoolP("canonical", "c", false, "Write the canonical encoding to stdout instead of a rendered tree")
var maxDepth = pflag.Int("max-depth", fraux.DefaultMaxDepth, "Maximum container nesting accepted while decoding")
var debug = pflag.Bool("debug", false, "Enable debug logging")

func main() {
	pflag.Parse()

	c := config.NewConfig(
		config.WithDebug(*debug),
		config.WithMaxDepth(*maxDepth),
		config.WithLoggingPrefix("fraux"),
	)
	logger := c.Logger("cli")

	var input []byte
	var err error
	if pflag.NArg() > 0 {
		input, err = os.ReadFile(pflag.Arg(0))
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		logger.Fatalf("error reading input: %v", err)
	}

	value, consumed, err := fraux.DecodeDepth(input, c.MaxDepth)
	if err != nil {
		logger.Fatalf("error decoding input: %v", err)
	}
	if consumed < len(input) {
		logger.Warnf("decoded %d bytes, ignoring %d trailing bytes", consumed, len(input)-consumed)
	}
	logger.Debugf("decoded a %s from %d bytes", value.Kind(), consumed)

	if *canonical {
		out, err := fraux.Encode(value)
		if err != nil {
			logger.Fatalf("error encoding value: %v", err)
		}
		if _, err := os.Stdout.Write(out); err != nil {
			logger.Fatalf("error writing output: %v", err)
		}
		return
	}

	fmt.Println(render(value))
}
