package model

type Result struct {
	Collection string
	// Position in the catalog.
	Index int
	Name  string
	// Store-assigned document id; empty on failure.
	ID  string
	Err error
}

func (r Result) OK() bool { return r.Err == nil }

type Report struct {
	RunID          string
	Mode           SeedMode
	CatalogVersion string
	Furniture      []Result
	Categories     []Result
}

func (r Report) FurnitureWritten() int  { return countOK(r.Furniture) }
func (r Report) CategoriesWritten() int { return countOK(r.Categories) }

func (r Report) Written() int { return r.FurnitureWritten() + r.CategoriesWritten() }

func (r Report) Failed() int { return r.Attempted() - r.Written() }

func countOK(rs []Result) int {
	n := 0
	for _, r := range rs {
		if r.OK() {
			n++
		}
	}
	return n
}

func (r Report) Attempted() int { return len(r.Furniture) + len(r.Categories) }
