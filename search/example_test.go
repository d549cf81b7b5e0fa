package search_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/statesearch/search"
)

// ExampleNew walks the integer line from 5 to 9, one unit at a time.
func ExampleNew() {
	eng, err := search.New(5,
		func(n int) bool { return n == 9 },
		func(n int) []int { return []int{n + 1, n - 1} },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(eng.Solve())
	// Output:
	// [5 6 7 8 9]
}

// ExampleEngine_Run distinguishes "already solved" from "no solution".
func ExampleEngine_Run() {
	isNine := func(n int) bool { return n == 9 }
	none := func(int) []int { return nil }

	solved, _ := search.New(9, isNine, none)
	stuck, _ := search.New(1, isNine, none)

	a, b := solved.Run(), stuck.Run()
	fmt.Println(a.Path, a.Found, a.Steps())
	fmt.Println(b.Path, b.Found, b.Steps())
	// Output:
	// [9] true 0
	// [] false -1
}

// ExamplePrintSolution renders a route between rooms of a small house.
func ExamplePrintSolution() {
	house := map[string][]string{
		"hall":    {"kitchen", "stairs"},
		"kitchen": {"garden"},
		"stairs":  {"attic"},
	}
	eng, err := search.New("hall",
		func(room string) bool { return room == "garden" },
		func(room string) []string { return house[room] },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = search.PrintSolution(os.Stdout, eng.Solve())
	// Output:
	// Printing solution:
	//
	// Step 1:
	// hall
	// Step 2:
	// kitchen
	// Step 3:
	// garden
}
