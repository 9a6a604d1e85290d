package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestList(t *testing.T) {
	code, out, _ := runCLI(t, "-list")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, k := range []string{"triangle", "square", "octagon", "polygon"} {
		if !strings.Contains(out, k+"\n") {
			t.Errorf("list output missing %q:\n%s", k, out)
		}
	}
}

func TestTable(t *testing.T) {
	code, out, errOut := runCLI(t, "square:2", "Square:10", "triangle:3")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, errOut)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "square") || !strings.Contains(lines[2], "4.0000") {
		t.Errorf("row 0 = %q, want square with area 4", lines[2])
	}
	if !strings.Contains(lines[3], "100.0000") || !strings.HasSuffix(lines[3], "0.0000") {
		t.Errorf("row 1 = %q, want area 100 at shape distance 0", lines[3])
	}
	if !strings.Contains(lines[2], "(0.000, 0.000)") {
		t.Errorf("row 0 = %q, want centered square", lines[2])
	}
	if lines[5] != "3 figures, total area 107.90" {
		t.Errorf("total line = %q", lines[5])
	}
}

func TestTotalUsesGrouping(t *testing.T) {
	code, out, _ := runCLI(t, "square:100")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out, "1 figures, total area 10,000.00") {
		t.Fatalf("total not grouped:\n%s", out)
	}
}

func TestRemove(t *testing.T) {
	code, out, _ := runCLI(t, "-remove", "0", "square:2", "octagon:1")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if strings.Contains(out, "square") || !strings.Contains(out, "0  octagon") {
		t.Fatalf("square not removed:\n%s", out)
	}

	code, _, errOut := runCLI(t, "-remove", "5", "square:2")
	if code != 1 || !strings.Contains(errOut, "out of range") {
		t.Fatalf("remove past end: code %d stderr %q", code, errOut)
	}
}

func TestPolygonArgument(t *testing.T) {
	code, out, errOut := runCLI(t, "polygon:(0, 0) (4, 0) (0, 3)")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "polygon") || !strings.Contains(out, "6.0000") {
		t.Fatalf("polygon row missing:\n%s", out)
	}
}

func TestBadArguments(t *testing.T) {
	for _, arg := range []string{"square", "square:x", "circle:1", "square:-1", "polygon:(0, 0)"} {
		code, _, errOut := runCLI(t, arg)
		if code != 1 || !strings.HasPrefix(errOut, "error: ") {
			t.Errorf("%q: code %d stderr %q, want error exit", arg, code, errOut)
		}
	}
	if code, _, _ := runCLI(t); code != 2 {
		t.Errorf("no arguments: code %d, want 2", code)
	}
	if code, _, _ := runCLI(t, "-nope"); code != 2 {
		t.Errorf("unknown flag: code %d, want 2", code)
	}
}

func TestVerboseLogsGrowth(t *testing.T) {
	code, _, errOut := runCLI(t, "-v", "square:1", "square:2", "square:3")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(errOut, "array: grow") {
		t.Fatalf("no growth records on stderr:\n%s", errOut)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	code, _, errOut := runCLI(t, "-png", path, "-cell", "40", "square:1", "triangle:1")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, errOut)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Fatalf("bounds = %v, want 80x40", b)
	}
}
