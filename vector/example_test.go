// SPDX-License-Identifier: MIT
package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

func ExampleCross() {
	c, err := vector.Cross([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output: [-3 6 -3]
}

func ExampleDot() {
	_, err := vector.Dot([]float64{1, 2}, []float64{3, 4, 5})
	fmt.Println(errors.Is(err, vector.ErrDimensionMismatch))

	d, _ := vector.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	fmt.Println(d)
	// Output:
	// true
	// 32
}

func ExampleEuclideanDistance() {
	d, _ := vector.EuclideanDistance([]float64{1, 1}, []float64{4, 5})
	fmt.Println(d)
	// Output: 5
}
