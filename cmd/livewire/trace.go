package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"

	// Stdlib decoders for the common formats; png is imported for encoding
	// and registers its decoder as a side effect.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	// Extra decoders from x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/katalvlaran/livewire/energy"
	"github.com/katalvlaran/livewire/grid"
	"github.com/katalvlaran/livewire/solver"
	"github.com/katalvlaran/livewire/tracer"
	"github.com/katalvlaran/livewire/weightfield"
)

var (
	traceImageFlag   string
	traceAnchorsFlag string
	traceWindowFlag  int
	traceCloseFlag   bool
	traceOutFlag     string
	traceStatsFlag   bool
)

// traceCmd represents the trace command.
var traceCmd = newTraceCmd()

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Replay anchor clicks over an image and print the traced selection",
		Long: `Trace decodes an image (PNG, JPEG, GIF, BMP or TIFF), builds the edge
weight field once, and replays the given anchors through the assembler.
Anchors are space-separated "x,y" pairs, e.g. --anchors "4,4 120,8 96,200".

With --close the selection is closed back to the first anchor and the
resulting polygon is printed; --out additionally crops the polygon's bounding
box from the source image into a PNG file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrace(cmd)
		},
	}
	cmd.Flags().StringVarP(&traceImageFlag, "image", "i", "", "path of the image to trace (required)")
	cmd.Flags().StringVarP(&traceAnchorsFlag, "anchors", "a", "", `anchor clicks as space-separated "x,y" pairs (required)`)
	cmd.Flags().IntVarP(&traceWindowFlag, "window", "w", solver.DefaultWindowSize, "solving window side length in pixels")
	cmd.Flags().BoolVarP(&traceCloseFlag, "close", "c", false, "close the selection back to the first anchor")
	cmd.Flags().StringVarP(&traceOutFlag, "out", "o", "", "crop the closed polygon's bounding box into this PNG file")
	cmd.Flags().BoolVar(&traceStatsFlag, "stats", false, "print a per-segment summary table")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("anchors")

	return cmd
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command) error {
	anchors, err := parseAnchors(traceAnchorsFlag)
	if err != nil {
		return err
	}

	img, err := decodeImage(traceImageFlag)
	if err != nil {
		return err
	}

	// Build the static graph once, then replay the clicks.
	provider := energy.FromImage(img)
	field, err := weightfield.New(provider, provider.Width(), provider.Height())
	if err != nil {
		return err
	}
	s := solver.New(solver.WithWindowSize(traceWindowFlag))
	if err = s.SetImage(field); err != nil {
		return err
	}

	tr := tracer.New(s)
	for _, a := range anchors {
		if err = tr.AddAnchor(a.X, a.Y); err != nil {
			return err
		}
	}
	if traceCloseFlag {
		tr.CloseSelection()
	}

	segments := tr.Segments()
	cmd.Printf("traced %d anchors into %d segments (state=%s)\n",
		len(anchors), len(segments), tr.State())

	if traceStatsFlag {
		printSegmentStats(cmd, segments)
	}

	if poly, ok := tr.ClosedPolygon(); ok {
		cmd.Printf("polygon: %d points\n", len(poly))
		for _, p := range poly {
			cmd.Printf("%d,%d\n", p.X, p.Y)
		}
		if traceOutFlag != "" {
			if err = exportCrop(img, poly, traceOutFlag); err != nil {
				return err
			}
			cmd.Printf("cropped selection written to %s\n", traceOutFlag)
		}
	} else if traceOutFlag != "" {
		return fmt.Errorf("--out requires a closed, non-degenerate selection (use --close)")
	}

	return nil
}

// parseAnchors parses space-separated "x,y" pairs into points.
func parseAnchors(raw string) ([]grid.Point, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no anchors given")
	}
	anchors := make([]grid.Point, 0, len(fields))
	for _, f := range fields {
		xy := strings.Split(f, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("bad anchor %q: want \"x,y\"", f)
		}
		x, err := strconv.Atoi(xy[0])
		if err != nil {
			return nil, fmt.Errorf("bad anchor %q: %w", f, err)
		}
		y, err := strconv.Atoi(xy[1])
		if err != nil {
			return nil, fmt.Errorf("bad anchor %q: %w", f, err)
		}
		anchors = append(anchors, grid.Point{X: x, Y: y})
	}

	return anchors, nil
}

// decodeImage opens and decodes any registered image format.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

// printSegmentStats renders a per-segment summary table.
func printSegmentStats(cmd *cobra.Command, segments [][]grid.Point) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Segment", "From", "To", "Points"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	total := 0
	for i, seg := range segments {
		first, last := seg[0], seg[len(seg)-1]
		table.Append([]string{
			strconv.Itoa(i),
			fmt.Sprintf("%d,%d", first.X, first.Y),
			fmt.Sprintf("%d,%d", last.X, last.Y),
			strconv.Itoa(len(seg)),
		})
		total += len(seg)
	}
	table.SetFooter([]string{"", "", "Total", strconv.Itoa(total)})
	table.Render()
}

// exportCrop writes the axis-aligned bounding box of the polygon, cut from
// the source image, as a PNG file.
func exportCrop(img image.Image, poly []grid.Point, path string) error {
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	b := img.Bounds()
	rect := image.Rect(b.Min.X+minX, b.Min.Y+minY, b.Min.X+maxX+1, b.Min.Y+maxY+1)

	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	var crop image.Image
	if si, ok := img.(subImager); ok {
		crop = si.SubImage(rect)
	} else {
		return fmt.Errorf("image format does not support cropping")
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, crop)
}
