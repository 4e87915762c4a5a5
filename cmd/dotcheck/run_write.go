package main

import (
	"fmt"
	"io"

	"golang.org/x/text/message"

	"github.com/ic-timon/dotlane/gen"
	"github.com/ic-timon/dotlane/vecfile"
)

func runWrite(p *message.Printer, w io.Writer, path string, opts writeOpts) error {
	if opts.n < 0 {
		return fmt.Errorf("-n must be >= 0, got %d", opts.n)
	}
	var a, b []float32
	switch opts.pattern {
	case "ramp":
		a, b = gen.Ramp(opts.n)
	case "random":
		a, b = gen.Random(opts.n, opts.seed)
	case "unit":
		a, b = gen.Unit(opts.n, opts.seed)
	default:
		return fmt.Errorf("unknown pattern %q (want ramp, random or unit)", opts.pattern)
	}
	if err := vecfile.Write(path, a, b); err != nil {
		return err
	}
	p.Fprintf(w, "wrote %s: %d elements per sequence (%s)\n", path, opts.n, opts.pattern)
	return nil
}
