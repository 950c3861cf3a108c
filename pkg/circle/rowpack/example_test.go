package rowpack_test

import (
	"fmt"

	"github.com/matzehuels/repomap/pkg/circle/rowpack"
)

func ExamplePack() {
	for _, size := range []float64{16.66, 16.67, 30} {
		p, ok := rowpack.Pack(50, []float64{size, size, size})
		fmt.Println(size, ok, p.Counts())
	}
	// Output:
	// 16.66 true [3]
	// 16.67 true [2 1]
	// 30 false []
}
