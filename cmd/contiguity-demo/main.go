// Command contiguity-demo is a small consumer of the contiguity core,
// mirroring the teacher's own cmd/app: it never implements algorithm
// logic itself, only generates sample input, calls the core, and prints
// or renders the result.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/kelpie-geo/contiguity/pkg/contiguity"
	"github.com/kelpie-geo/contiguity/pkg/geometry"
	"github.com/kelpie-geo/contiguity/pkg/telemetry"
	"github.com/kelpie-geo/contiguity/pkg/voronoi"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("contiguity-demo", "Sample driver for the contiguity core")

	voronoiCmd   = app.Command("voronoi", "Generate random point sites and report Voronoi-derived contiguity")
	voronoiN     = voronoiCmd.Flag("n", "number of sites").Default("24").Int()
	voronoiQueen = voronoiCmd.Flag("queen", "use queen (vertex-sharing) instead of rook").Default("true").Bool()
	voronoiOrder = voronoiCmd.Flag("order", "contiguity order").Default("1").Int()

	polygonCmd   = polygonCommand()
	renderCmd    = app.Command("render", "Render a random Voronoi diagram to an HTML scatter/line chart")
	renderN      = renderCmd.Flag("n", "number of sites").Default("24").Int()
	renderOut    = renderCmd.Flag("out", "output HTML file").Default("voronoi.html").String()
)

func polygonCommand() *kingpin.CmdClause {
	return app.Command("polygon", "Run the two-adjacent-squares scenario (S1) through the exact hash engine")
}

func main() {
	log := telemetry.New()

	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case voronoiCmd.FullCommand():
		runVoronoi(log)
	case polygonCmd.FullCommand():
		runPolygon(log)
	case renderCmd.FullCommand():
		runRender(log)
	}
}

func randomSites(n int, width, height float64) []geometry.Point {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	pts := make([]geometry.Point, n)
	for i := range pts {
		pts[i] = geometry.Point{X: r.Float64() * width, Y: r.Float64() * height}
	}
	return pts
}

func runVoronoi(log *telemetry.Logger) {
	pts := randomSites(*voronoiN, 1000, 1000)
	graph, err := contiguity.PointContiguity(pts, *voronoiQueen, 0, *voronoiOrder, false, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}
	printSummary(graph)
}

func runPolygon(log *telemetry.Logger) {
	// S1: two unit squares sharing an edge at x=1.
	geoms := &geometry.Collection{
		X:     []float64{0, 1, 1, 0, 0, 1, 2, 2, 1, 1},
		Y:     []float64{0, 0, 1, 1, 0, 0, 0, 1, 1, 0},
		Parts: []int{0, 5},
		Sizes: []int{1, 1},
		Holes: []bool{false, false},
	}
	graph, err := contiguity.PolygonContiguity(geoms, true, 0, 1, false, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}
	printSummary(graph)
}

func runRender(log *telemetry.Logger) {
	pts := randomSites(*renderN, 1000, 1000)
	sites := make([]voronoi.Vertex, len(pts))
	for i, p := range pts {
		sites[i] = voronoi.Vertex{X: p.X, Y: p.Y}
	}
	bbox := voronoi.NewBoundingBox(0, 1000, 0, 1000)
	diagram := voronoi.CreateDiagram(sites, bbox, log)

	f, err := os.Create(*renderOut)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	if err := diagramToEcharts(sites, diagram).Render(f); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}
	fmt.Println(aurora.Green(fmt.Sprintf("wrote %s", *renderOut)))
}

func diagramToEcharts(sites []voronoi.Vertex, diagram *voronoi.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Height: "720px", Width: "1000px"}),
		charts.WithTitleOpts(opts.Title{Title: "Contiguity demo: clipped Voronoi diagram"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	points := make([]opts.ScatterData, 0, len(sites))
	for _, s := range sites {
		points = append(points, opts.ScatterData{Value: []float64{s.X, s.Y}})
	}
	scatter.AddSeries("sites", points).SetSeriesOptions(
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "lightgreen"}),
	)

	for _, seg := range diagram.Segments() {
		line := charts.NewLine()
		line.AddSeries("edges", []opts.LineData{
			{Value: []float64{seg.Va.X, seg.Va.Y}},
			{Value: []float64{seg.Vb.X, seg.Vb.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{Width: 1}),
		)
		scatter.Overlap(line)
	}

	return scatter
}

func printSummary(g contiguity.Graph) {
	s := g.Summary()
	isolated := 0
	for _, row := range g {
		if len(row) == 0 {
			isolated++
		}
	}
	fmt.Println(aurora.Cyan(fmt.Sprintf("geometries: %d", len(g))))
	fmt.Printf("neighbors: min=%v max=%v mean=%.2f median=%.2f sparsity=%.4f\n", s.Min, s.Max, s.Mean, s.Median, s.Sparsity)
	if isolated > 0 {
		fmt.Println(aurora.Yellow(fmt.Sprintf("isolated geometries: %d", isolated)))
	}
	if g.Connected() {
		fmt.Println(aurora.Green("graph is connected"))
	} else {
		fmt.Println(aurora.Red("graph has multiple components"))
	}
}
