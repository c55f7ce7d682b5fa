package model

type Category struct {
	Name string
	Icon string
	// Display order; need not be contiguous.
	Order int
}
