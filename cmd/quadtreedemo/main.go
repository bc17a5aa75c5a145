// Command quadtreedemo exercises the quadtree package end to end: bulk
// insertion, range queries, broad-phase collision reporting, and
// nearest-neighbor search against a randomly populated tree.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rbutts/quadtree"
)

// item is the value type stored in the demo tree: an id paired with a
// small fixed-size box placed at a random position in the world.
type item struct {
	id  int
	box quadtree.Box[float64]
}

func getBox(it item) quadtree.Box[float64] { return it.box }
func equal(a, b item) bool                 { return a.id == b.id }

func randomTree(worldSize float64, n int, boxSize float64, seed int64) *quadtree.Quadtree[item, float64] {
	world := quadtree.Box[float64]{Left: 0, Top: 0, Width: worldSize, Height: worldSize}
	tree := quadtree.New[item, float64](world, getBox, equal)
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		b := quadtree.Box[float64]{
			Left:   r.Float64() * (worldSize - boxSize),
			Top:    r.Float64() * (worldSize - boxSize),
			Width:  boxSize,
			Height: boxSize,
		}
		// Add cannot fail here: b is constructed to fit inside world.
		_ = tree.Add(item{id: i, box: b})
	}
	return tree
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Fatal("quadtreedemo failed", zap.Error(err))
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var worldSize float64
	var items int
	var boxSize float64
	var seed int64

	root := &cobra.Command{
		Use:   "quadtreedemo",
		Short: "Exercise the region quadtree with a randomly populated tree",
	}
	flags := root.PersistentFlags()
	flags.Float64Var(&worldSize, "world-size", 10000, "side length of the square world box")
	flags.IntVar(&items, "items", 1000000, "number of random boxes to insert")
	flags.Float64Var(&boxSize, "box-size", 4, "side length of each inserted box")
	flags.Int64Var(&seed, "seed", time.Now().UnixNano(), "PRNG seed")

	bench := &cobra.Command{
		Use:   "bench",
		Short: "Time bulk operations against a random tree",
	}
	bench.AddCommand(
		benchInsertCmd(logger, &worldSize, &items, &boxSize, &seed),
		benchQueryCmd(logger, &worldSize, &items, &boxSize, &seed),
	)

	root.AddCommand(bench, collisionsCmd(logger, &worldSize, &items, &boxSize, &seed), nearestCmd(logger, &worldSize, &items, &boxSize, &seed))
	return root
}

func benchInsertCmd(logger *zap.Logger, worldSize *float64, items *int, boxSize *float64, seed *int64) *cobra.Command {
	return &cobra.Command{
		Use:   "insert",
		Short: "Time inserting --items random boxes",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			tree := randomTree(*worldSize, *items, *boxSize, *seed)
			logger.Info("bench insert complete",
				zap.Int("items", *items),
				zap.Duration("elapsed", time.Since(start)),
				zap.Int("query_sanity", len(tree.Query(tree.WorldBox()))),
			)
			return nil
		},
	}
}

func benchQueryCmd(logger *zap.Logger, worldSize *float64, items *int, boxSize *float64, seed *int64) *cobra.Command {
	var queries int
	var queryBoxSize float64
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Time --queries random range queries against a random tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := randomTree(*worldSize, *items, *boxSize, *seed)
			r := rand.New(rand.NewSource(*seed + 1))
			start := time.Now()
			found := 0
			for i := 0; i < queries; i++ {
				qb := quadtree.Box[float64]{
					Left:   r.Float64() * (*worldSize - queryBoxSize),
					Top:    r.Float64() * (*worldSize - queryBoxSize),
					Width:  queryBoxSize,
					Height: queryBoxSize,
				}
				found += len(tree.Query(qb))
			}
			logger.Info("bench query complete",
				zap.Int("queries", queries),
				zap.Int("found", found),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&queries, "queries", 1000, "number of random range queries to run")
	cmd.Flags().Float64Var(&queryBoxSize, "query-box-size", 50, "side length of each query box")
	return cmd
}

func collisionsCmd(logger *zap.Logger, worldSize *float64, items *int, boxSize *float64, seed *int64) *cobra.Command {
	return &cobra.Command{
		Use:   "collisions",
		Short: "Report every intersecting pair of boxes in a random tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := randomTree(*worldSize, *items, *boxSize, *seed)
			start := time.Now()
			pairs := tree.FindAllIntersections()
			logger.Info("collision report complete",
				zap.Int("pairs", len(pairs)),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}
}

func nearestCmd(logger *zap.Logger, worldSize *float64, items *int, boxSize *float64, seed *int64) *cobra.Command {
	var left, top float64
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the item nearest to the box at --left,--top",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := randomTree(*worldSize, *items, *boxSize, *seed)
			searchBox := quadtree.Box[float64]{Left: left, Top: top, Width: 1, Height: 1}
			start := time.Now()
			found := tree.FindClosest(searchBox)
			elapsed := time.Since(start)
			if found == nil {
				logger.Info("no item found", zap.Duration("elapsed", elapsed))
				return nil
			}
			logger.Info("nearest item found",
				zap.Int("id", found.id),
				zap.Duration("elapsed", elapsed),
			)
			return nil
		},
	}
	cmd.Flags().Float64Var(&left, "left", 0, "left coordinate of the search box")
	cmd.Flags().Float64Var(&top, "top", 0, "top coordinate of the search box")
	return cmd
}
