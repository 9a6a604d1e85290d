// Command figinfo builds a list of figures and prints their geometry.
//
// Usage:
//
//	figinfo [flags] kind:side ...
//
// Each argument is either kind:side for a regular figure or
// polygon:"(x, y) (x, y) ..." for an arbitrary outline. The last column
// is the Fourier descriptor distance to the first figure; 0 means the
// same shape.
//
// Examples:
//
//	figinfo square:2 triangle:3 octagon:1
//	figinfo -remove 1 square:2 square:5 triangle:1
//	figinfo -png sheet.png -cell 160 square:1 'polygon:(0, 0) (4, 0) (0, 3)'
//	figinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cwbudde/algo-figures/container/array"
	"github.com/cwbudde/algo-figures/geom/descriptor"
	"github.com/cwbudde/algo-figures/geom/render"
	"github.com/cwbudde/algo-figures/geom/shape"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("figinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	list := fs.Bool("list", false, "list available figure kinds")
	remove := fs.Int("remove", -1, "remove the figure at this index before printing")
	pngPath := fs.String("png", "", "write a contact sheet to this PNG file")
	cell := fs.Int("cell", 128, "contact sheet cell size in pixels")
	verbose := fs.Bool("v", false, "log debug records to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: figinfo [flags] kind:side ...\n\n")
		fmt.Fprintf(stderr, "Prints area, center and shape distance of regular figures and polygons.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  figinfo square:2 triangle:3 octagon:1\n")
		fmt.Fprintf(stderr, "  figinfo -remove 1 square:2 square:5 triangle:1\n")
		fmt.Fprintf(stderr, "  figinfo -png sheet.png 'polygon:(0, 0) (4, 0) (0, 3)'\n")
		fmt.Fprintf(stderr, "  figinfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *list {
		for _, k := range shape.Kinds() {
			fmt.Fprintln(stdout, k)
		}
		fmt.Fprintln(stdout, "polygon")
		return 0
	}

	if *verbose {
		array.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer array.SetLogger(nil)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	figs := array.New[shape.Figure[float64]]()
	for _, arg := range fs.Args() {
		f, err := parseArg(arg)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if err := figs.PushMove(f); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if *remove >= 0 {
		if err := figs.Remove(*remove); err != nil {
			fmt.Fprintf(stderr, "error: -remove: %v\n", err)
			return 1
		}
	}

	if err := printTable(stdout, figs); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *pngPath != "" {
		if err := writeSheet(*pngPath, figs.Values(), *cell); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	return 0
}

// parseArg turns kind:side or polygon:(x, y)... into a figure.
func parseArg(arg string) (shape.Figure[float64], error) {
	kind, val, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("argument %q: want kind:side (use -list to see kinds)", arg)
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "polygon" {
		p, err := shape.Parse[float64](val)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
		return p, nil
	}
	side, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return nil, fmt.Errorf("argument %q: side: %w", arg, err)
	}
	f, err := shape.New(kind, side)
	if err != nil {
		return nil, fmt.Errorf("argument %q: %w", arg, err)
	}
	return f, nil
}

func printTable(w io.Writer, figs *array.Array[shape.Figure[float64]]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "#\tKind\tVertices\tArea\tCenter\tShape dist\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t----\t--------\t----\t------\t----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	var ref []float64
	total := 0.0
	for i := 0; i < figs.Len(); i++ {
		f, err := figs.At(i)
		if err != nil {
			return err
		}
		d, derr := descriptor.Of(f)
		if i == 0 {
			ref = d
		}
		dist := "-"
		if derr == nil && ref != nil {
			if v, err := descriptor.Distance(ref, d); err == nil {
				dist = strconv.FormatFloat(v, 'f', 4, 64)
			}
		}
		cx, cy := f.Center().Float()
		total += f.Area()
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\t%.4f\t(%.3f, %.3f)\t%s\n",
			i,
			f.Kind(),
			len(f.Vertices()),
			f.Area(),
			clean(cx), clean(cy),
			dist,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "%d figures, total area %.2f\n", figs.Len(), total); err != nil {
		return fmt.Errorf("failed to write total: %w", err)
	}
	return nil
}

func writeSheet(path string, figs []shape.Figure[float64], cell int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.Render(f, figs, render.WithCellSize(cell))
}

// clean maps values that print as zero to +0 so the table never shows -0.000.
func clean(v float64) float64 {
	if math.Abs(v) < 5e-4 {
		return 0
	}
	return v
}
