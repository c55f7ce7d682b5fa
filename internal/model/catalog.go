package model

type Catalog struct {
	Version    string
	Furniture  []FurnitureItem
	Categories []Category
}
