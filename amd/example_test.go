// SPDX-License-Identifier: MIT

package amd_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsecheck/amd"
	"github.com/katalvlaran/sparsecheck/csc"
)

// ExampleOrder plugs a trivial engine (natural order) behind the guard and
// shows a corrupted matrix being stopped before it reaches the engine.
func ExampleOrder() {
	natural := amd.OrdererFunc(func(_ context.Context, p csc.Pattern[int]) ([]int, []float64, amd.Status) {
		perm := make([]int, p.NCol)
		for k := range perm {
			perm[k] = k
		}
		return perm, nil, amd.OK
	})

	ok := csc.NewPattern(3, 3, []int{0, 2, 3, 4}, []int{0, 2, 1, 2})
	res, err := amd.Order(context.Background(), ok, natural)
	fmt.Println(res.Perm, res.Status, err)

	corrupted := csc.NewPattern(3, 3, []int{0, 2, 3, 4}, []int{2, 0, 1, 2})
	res, err = amd.Order(context.Background(), corrupted, natural)
	fmt.Println(res.Status, errors.Is(err, amd.ErrInvalidMatrix))
	// Output:
	// [0 1 2] ok <nil>
	// invalid true
}
