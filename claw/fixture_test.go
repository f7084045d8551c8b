package claw

import "os"

// exampleInput holds the four machines of the puzzle's worked example.
var exampleInput = mustReadFile("../testdata/example.txt")

func mustReadFile(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return string(b)
}
