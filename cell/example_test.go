package cell_test

import (
	"fmt"

	"github.com/katalvlaran/sheetgrid/cell"
)

// ExampleCell shows one text value read through several typed views.
func ExampleCell() {
	c := cell.FromInts([]int{10, 20, 30})
	fmt.Printf("%q\n", c.Text())
	fmt.Println(c.Ints())

	c.SetFloat(2.5)
	f, _ := c.Float()
	fmt.Println(f * 2)

	_, err := c.Int()
	fmt.Println(err)

	// Output:
	// "10 20 30 "
	// [10 20 30]
	// 5
	// Cell.Int("2.5"): cell: text is not a valid value of the requested type
}
