package dijkstra_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antpath/dijkstra"
	"github.com/katalvlaran/antpath/tensor"
)

// ExampleShortestPath finds the cheapest road/rail route between two cities.
func ExampleShortestPath() {
	nan := math.NaN()
	cost, _ := tensor.FromSlices([][][]float64{
		{{nan, 4, nan}, {4, nan, 4}, {nan, 4, nan}},      // road
		{{nan, nan, 10}, {nan, nan, 1}, {nan, nan, nan}}, // rail
	})

	route, err := dijkstra.ShortestPath(cost, 0, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(route.Cost)
	for _, h := range route.Hops {
		fmt.Printf("mode %d: %d -> %d\n", h.Mode, h.From, h.To)
	}
	// Output:
	// 5
	// mode 0: 0 -> 1
	// mode 1: 1 -> 2
}
