package model

// Record holds the metadata extracted from one solution file.
type Record struct {
	Name       string
	Title      string
	Link       string
	Label      string
	Difficulty string
}
