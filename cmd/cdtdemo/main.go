// Command cdtdemo runs the engine's built-in demo scenarios and prints the
// resulting triangles, one per line, in denormalized input coordinates.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/planarcdt/cdt/cdt"
	"github.com/planarcdt/cdt/formatting"
	"github.com/planarcdt/cdt/types"
)

type scenario struct {
	name  string
	about string
	build func() ([]types.Point, [][]types.Point)
}

func pt(x, y float64) types.Point { return types.Point{X: x, Y: y} }

var scenarios = []scenario{
	{
		name:  "triangle",
		about: "a single CCW triangle with no holes",
		build: func() ([]types.Point, [][]types.Point) {
			return []types.Point{pt(0, 0), pt(1, 0), pt(0, 1)}, nil
		},
	},
	{
		name:  "square",
		about: "a unit square, triangulated by one diagonal",
		build: func() ([]types.Point, [][]types.Point) {
			return []types.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}, nil
		},
	},
	{
		name:  "square-with-hole",
		about: "a unit square with a centered square hole removed",
		build: func() ([]types.Point, [][]types.Point) {
			pts := []types.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
			hole := []types.Point{
				pt(0.4, 0.4), pt(0.5, 0.4), pt(0.6, 0.4),
				pt(0.6, 0.5), pt(0.6, 0.6),
				pt(0.5, 0.6), pt(0.4, 0.6),
				pt(0.4, 0.5),
			}
			return pts, [][]types.Point{hole}
		},
	},
	{
		name:  "cocircular-quad",
		about: "four cocircular points, testing a stable tie-break",
		build: func() ([]types.Point, [][]types.Point) {
			return []types.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}, nil
		},
	},
	{
		name:  "duplicate-point",
		about: "a triangle with its first vertex repeated at the end",
		build: func() ([]types.Point, [][]types.Point) {
			return []types.Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(0, 0)}, nil
		},
	},
	{
		name:  "l-shaped-hole",
		about: "a 10x10 grid with a concave L-shaped hole cut out",
		build: func() ([]types.Point, [][]types.Point) {
			var pts []types.Point
			for i := 0; i <= 9; i++ {
				for j := 0; j <= 9; j++ {
					pts = append(pts, pt(float64(i)/9, float64(j)/9))
				}
			}
			hole := []types.Point{
				pt(0.2, 0.2), pt(0.8, 0.2), pt(0.8, 0.4),
				pt(0.4, 0.4), pt(0.4, 0.8), pt(0.2, 0.8),
			}
			return pts, [][]types.Point{hole}
		},
	},
}

func scenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	sort.Strings(names)
	return names
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

func run(c *cli.Context) error {
	name := c.Args().First()
	verbose := c.Bool("verbose")

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	if name == "" {
		fmt.Println("available scenarios:")
		for _, n := range scenarioNames() {
			fmt.Printf("  %s\n", n)
		}
		return nil
	}

	s, ok := findScenario(name)
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown scenario %q", name), 1)
	}

	points, holes := s.build()
	fmt.Printf("=== %s ===\n%s\n", s.name, s.about)

	tris, err := cdt.Triangulate(points, holes, cdt.WithLogger(logger))
	if err != nil {
		return cli.Exit(fmt.Sprintf("triangulation failed: %v", err), 1)
	}

	fmt.Printf("%d triangle(s):\n", len(tris))
	for _, tr := range tris {
		fmt.Println(formatting.Triangle2DString(tr))
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:      "cdtdemo",
		Usage:     "run a built-in constrained Delaunay triangulation scenario",
		ArgsUsage: "[scenario]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log triangulation diagnostics to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
