package model

// Listing is a previously generated document together with the record names it lists.
type Listing struct {
	Content []byte
	Names   []string
}
