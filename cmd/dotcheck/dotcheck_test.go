package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ic-timon/dotlane/simd"
)

func TestWriteThenCheck(t *testing.T) {
	p := message.NewPrinter(language.English)
	path := filepath.Join(t.TempDir(), "ramp.dotv")

	var out bytes.Buffer
	if err := runWrite(p, &out, path, writeOpts{n: 4096, pattern: "ramp"}); err != nil {
		t.Fatalf("runWrite: %v", err)
	}
	if !strings.Contains(out.String(), "4,096 elements") {
		t.Errorf("write output: %q", out.String())
	}

	r, err := check(path, checkOpts{kernel: "go"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if r.Len != 4096 || r.Kernel.Name != "Go" {
		t.Errorf("result %+v", r)
	}
	if rel := r.AbsDiff / float64(r.Basic); rel > 1e-3 {
		t.Errorf("basic=%v vector=%v rel=%g", r.Basic, r.Vector, rel)
	}

	out.Reset()
	if err := runCheck(p, &out, path, checkOpts{}); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if !strings.Contains(out.String(), "kernel:   "+simd.Desc()) {
		t.Errorf("check output: %q", out.String())
	}
}

func TestWriteCheckSmallExact(t *testing.T) {
	p := message.NewPrinter(language.English)
	path := filepath.Join(t.TempDir(), "small.dotv")
	if err := runWrite(p, &bytes.Buffer{}, path, writeOpts{n: 10, pattern: "ramp"}); err != nil {
		t.Fatal(err)
	}
	for _, k := range simd.Kernels() {
		r, err := check(path, checkOpts{kernel: k.Name})
		if err != nil {
			t.Fatalf("%s: %v", k.Name, err)
		}
		// sum 2*i^2 for i < 10
		if r.Basic != 570 || r.Vector != 570 {
			t.Errorf("%s: basic=%v vector=%v want 570", k.Name, r.Basic, r.Vector)
		}
	}
}

func TestWriteErrors(t *testing.T) {
	p := message.NewPrinter(language.English)
	dir := t.TempDir()
	if err := runWrite(p, &bytes.Buffer{}, filepath.Join(dir, "x"), writeOpts{n: 8, pattern: "zigzag"}); err == nil {
		t.Error("unknown pattern should fail")
	}
	if err := runWrite(p, &bytes.Buffer{}, filepath.Join(dir, "y"), writeOpts{n: -1, pattern: "ramp"}); err == nil {
		t.Error("negative n should fail")
	}
}

func TestCheckErrors(t *testing.T) {
	if _, err := check(filepath.Join(t.TempDir(), "missing"), checkOpts{}); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := pickKernel("no-such-kernel"); err == nil {
		t.Error("unknown kernel should fail")
	}
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	runList(message.NewPrinter(language.English), &out)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(simd.Kernels()) {
		t.Fatalf("got %d lines: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[len(lines)-1], "* ") {
		t.Errorf("active kernel not marked last: %q", lines[len(lines)-1])
	}
}
