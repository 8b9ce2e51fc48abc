package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/vector"
)

// ExampleOrthogonalProjection splits v into parts along and across w.
func ExampleOrthogonalProjection() {
	par, perp, err := vector.OrthogonalProjection([]float64{3, 4}, []float64{1, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("parallel:", par, "perpendicular:", perp)
	// Output:
	// parallel: [3 0] perpendicular: [0 4]
}

// ExampleLargestNorm shows the earliest-wins tie policy.
func ExampleLargestNorm() {
	v, _ := vector.LargestNorm([][]float64{{1, 2, 3}, {7, 8, 9}, {9, 8, 7}})
	fmt.Println(v)
	// Output:
	// [7 8 9]
}
