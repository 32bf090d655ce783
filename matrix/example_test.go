package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// ExampleDense_SelectPivotRow shows one elimination step driven by partial pivoting.
func ExampleDense_SelectPivotRow() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{0, 1},
		{2, 4},
	})

	p, _ := m.SelectPivotRow(0, 0, matrix.DefaultEpsilon)
	_ = m.SwapRows(0, p)
	_ = m.ScaleRow(0, 0.5)
	fmt.Print(m)

	// Output:
	// 1 2
	// 0 1
}
