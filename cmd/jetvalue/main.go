// Command jetvalue is a thin CLI wrapper around the jetvalue encoder:
// it reads a JSON document, decodes it into a Value tree through
// jetvalue/decode, and re-encodes it under a chosen escape profile and
// map mode, the way you'd exercise the library from a shell pipeline.
//
// Grounded on trufflehog's main.go kingpin layout: package-level
// app/command/flag vars parsed once in main, then switched on
// FullCommand.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/jetvalue/jetvalue"
	"github.com/jetvalue/jetvalue/decode"
	"github.com/jetvalue/jetvalue/internal/jsonlog"
	"github.com/jetvalue/jetvalue/jerr"
)

var (
	app = kingpin.New("jetvalue", "Re-encode JSON under a chosen escape profile and map mode.")

	encodeCmd    = app.Command("encode", "Decode a JSON document and re-encode it.").Default()
	encodeInput  = encodeCmd.Arg("file", "Input file, or '-' for stdin.").Default("-").String()
	encodeEscape = encodeCmd.Flag("escape", "Escape profile: json, javascript, html_safe, unicode.").Default("json").String()
	encodeStrict = encodeCmd.Flag("strict-maps", "Reject objects with duplicate keys.").Bool()
	encodeDepth  = encodeCmd.Flag("max-depth", "Maximum nesting depth.").Default("10000").Int()

	verbose = app.Flag("verbose", "Emit debug-level diagnostics.").Bool()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		jsonlog.SetLevel(zap.DebugLevel)
	}
	logger := jsonlog.Named("cmd")
	defer jsonlog.Sync()

	switch cmd {
	case encodeCmd.FullCommand():
		if err := runEncode(logger); err != nil {
			logger.Error("encode failed", zap.Error(err))
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func runEncode(logger *zap.Logger) error {
	profile, err := parseEscape(*encodeEscape)
	if err != nil {
		return err
	}

	input, err := readInput(*encodeInput)
	if err != nil {
		return jerr.Wrap(err, "reading input")
	}

	v, err := decode.Decode(input)
	if err != nil {
		return jerr.Wrap(err, "decoding input")
	}

	opts := []jetvalue.Option{
		jetvalue.WithEscape(profile),
		jetvalue.WithMaxDepth(*encodeDepth),
	}
	if *encodeStrict {
		opts = append(opts, jetvalue.WithMaps(jetvalue.MapsStrict))
	}

	out, err := jetvalue.Encode(v, opts...)
	if err != nil {
		return jerr.Wrap(err, "encoding output")
	}

	logger.Debug("encoded document", zap.Int("input_bytes", len(input)), zap.Int("output_bytes", len(out)))

	_, err = fmt.Println(out)
	return err
}

func parseEscape(name string) (jetvalue.Escape, error) {
	switch name {
	case "json":
		return jetvalue.EscapeJSON, nil
	case "javascript":
		return jetvalue.EscapeJavaScript, nil
	case "html_safe":
		return jetvalue.EscapeHTMLSafe, nil
	case "unicode":
		return jetvalue.EscapeUnicode, nil
	default:
		return jetvalue.EscapeJSON, fmt.Errorf("unknown escape profile %q", name)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
