package main

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/text/message"

	"github.com/ic-timon/dotlane/simd"
	"github.com/ic-timon/dotlane/vecfile"
)

type checkResult struct {
	Len     int
	Basic   float32
	Vector  float32
	Kernel  simd.Kernel
	AbsDiff float64
}

func runCheck(p *message.Printer, w io.Writer, path string, opts checkOpts) error {
	r, err := check(path, opts)
	if err != nil {
		return err
	}
	p.Fprintf(w, "file:     %s\n", path)
	p.Fprintf(w, "elements: %d\n", r.Len)
	p.Fprintf(w, "kernel:   %s (%d lanes)\n", r.Kernel.Name, r.Kernel.Lanes)
	p.Fprintf(w, "basic:    %g\n", r.Basic)
	p.Fprintf(w, "vector:   %g\n", r.Vector)
	p.Fprintf(w, "absdiff:  %g\n", r.AbsDiff)
	return nil
}

func check(path string, opts checkOpts) (checkResult, error) {
	k, err := pickKernel(opts.kernel)
	if err != nil {
		return checkResult{}, err
	}
	pair, err := vecfile.Open(path)
	if err != nil {
		return checkResult{}, err
	}
	defer pair.Close()

	a, b := pair.A(), pair.B()
	basic, err := simd.DotBasic(a, b)
	if err != nil {
		return checkResult{}, err
	}
	vec, err := k.Dot(a, b)
	if err != nil {
		return checkResult{}, err
	}
	return checkResult{
		Len:     pair.Len(),
		Basic:   basic,
		Vector:  vec,
		Kernel:  k,
		AbsDiff: math.Abs(float64(vec) - float64(basic)),
	}, nil
}

func pickKernel(name string) (simd.Kernel, error) {
	if name == "" {
		k, _ := simd.Lookup(simd.Desc())
		return k, nil
	}
	k, ok := simd.Lookup(name)
	if !ok {
		return simd.Kernel{}, fmt.Errorf("kernel %q not available on this CPU", name)
	}
	return k, nil
}

func runList(p *message.Printer, w io.Writer) {
	for _, k := range simd.Kernels() {
		mark := " "
		if k.Name == simd.Desc() {
			mark = "*"
		}
		p.Fprintf(w, "%s %-8s %d lanes\n", mark, k.Name, k.Lanes)
	}
}
