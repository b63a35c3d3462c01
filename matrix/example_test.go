// SPDX-License-Identifier: MIT
// Package matrix_test: runnable documentation examples for the target
// representations.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmix/matrix"
)

// ExampleNewStrided scales the idea of a window: a 2×2 target living inside
// a wider row-major buffer, gap lanes untouched.
func ExampleNewStrided() {
	buf := []float64{
		1, 2, -1,
		3, 4, -1,
	}
	d, _ := matrix.NewStrided(2, 2, 3, buf)

	_ = d.Set(1, 1, 40)
	fmt.Println(buf)
	// Output:
	// [1 2 -1 3 40 -1]
}

// ExampleBlockDiag_Block fills a homogeneous block-diagonal matrix one block
// panel at a time.
func ExampleBlockDiag_Block() {
	b, _ := matrix.NewBlockDiag(2, 2, 2, nil)

	for i := 0; i < 2; i++ {
		p, _ := b.Block(i)
		for j := range p {
			p[j] = float64((i+1)*10 + j)
		}
	}

	v00, _ := b.At(0, 0) // block 0, local (0,0)
	v22, _ := b.At(2, 2) // block 1, local (0,0)
	fmt.Println(v00, v22)
	// Output:
	// 10 20
}

// ExampleCSC_At reads through a validated sparse pattern.
func ExampleCSC_At() {
	// 3×2 with nonzeros (0,0), (2,0) and (1,1).
	c, _ := matrix.NewCSC(3, 2,
		[]int{0, 2, 3},
		[]int{0, 2, 1},
		[]float64{1.5, 2.5, 3.5},
	)

	hit, _ := c.At(2, 0)
	miss, _ := c.At(1, 0)
	fmt.Println(hit, miss, c.NNZ())
	// Output:
	// 2.5 0 3
}
