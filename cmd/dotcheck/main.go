// dotcheck writes and verifies vector pair files: -write FILE | -in FILE | -list
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type checkOpts struct {
	kernel string
}

type writeOpts struct {
	n       int
	pattern string
	seed    int64
}

func main() {
	in := flag.String("in", "", "pair file to check")
	out := flag.String("write", "", "write a generated pair file to this path")
	n := flag.Int("n", 4096, "elements per sequence (with -write)")
	pattern := flag.String("pattern", "ramp", "input pattern (with -write): ramp | random | unit")
	seed := flag.Int64("seed", 42, "random seed (with -write)")
	kernel := flag.String("kernel", "", "vectorized kernel to check (default: the one DotSIMD uses)")
	list := flag.Bool("list", false, "list kernels available on this CPU")
	flag.Parse()

	p := message.NewPrinter(language.English)
	var err error
	switch {
	case *list:
		runList(p, os.Stdout)
	case *out != "":
		err = runWrite(p, os.Stdout, *out, writeOpts{n: *n, pattern: *pattern, seed: *seed})
	case *in != "":
		err = runCheck(p, os.Stdout, *in, checkOpts{kernel: *kernel})
	default:
		log.Fatalf("dotcheck: specify -write FILE, -in FILE or -list")
	}
	if err != nil {
		log.Fatalf("dotcheck: %v", err)
	}
}
