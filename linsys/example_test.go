package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/linsys"
)

// ExampleSystem_SolveByElimination solves a 2×2 system and inverts its matrix.
func ExampleSystem_SolveByElimination() {
	s, err := linsys.NewFromData([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
	if err != nil {
		fmt.Println(err)
		return
	}

	x, _ := s.SolveByElimination()
	fmt.Printf("x = [%.4f %.4f]\n", x[0], x[1])

	inv, _ := s.Invert()
	for i := 0; i < inv.Rows(); i++ {
		a, _ := inv.At(i, 0)
		b, _ := inv.At(i, 1)
		fmt.Printf("[%.4f %.4f]\n", a, b)
	}

	// Output:
	// x = [0.8000 1.4000]
	// [0.6000 -0.2000]
	// [-0.2000 0.4000]
}

// ExampleSystem_SolveTridiagonal runs the O(n) Thomas algorithm.
func ExampleSystem_SolveTridiagonal() {
	s, _ := linsys.NewFromData(
		[][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}},
		[]float64{1, 0, 1},
	)
	x, _ := s.SolveTridiagonal()
	fmt.Printf("%.6f %.6f %.6f\n", x[0], x[1], x[2])

	// Output:
	// 1.000000 1.000000 1.000000
}

// ExampleSystem_SolveByIteration shows the iteration cap turning divergence into an error.
func ExampleSystem_SolveByIteration() {
	s, _ := linsys.NewFromData([][]float64{{1, 2}, {3, 1}}, []float64{1, 1}, linsys.WithMaxIterations(100))
	_, err := s.SolveByIteration(1e-6)
	fmt.Println(err != nil)

	good, _ := linsys.NewFromData([][]float64{{4, 1}, {2, 5}}, []float64{6, 12})
	x, _ := good.SolveByIteration(1e-9)
	fmt.Printf("%.4f %.4f\n", x[0], x[1])

	// Output:
	// true
	// 1.0000 2.0000
}
