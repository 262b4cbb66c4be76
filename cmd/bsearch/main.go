package main

import (
	"fmt"

	"github.com/scottcagno/textsearch/pkg/bsearch"
)

var (
	arr = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	x   = 5
)

func main() {
	iterations, bound, ok := bsearch.Search(arr, x)
	fmt.Println("Iterations:", iterations)
	if !ok {
		fmt.Println("Upper bound: none")
		return
	}
	fmt.Println("Upper bound:", bound)
}
