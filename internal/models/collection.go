package models

// Collection is a curated group of add-ons
type Collection struct {
	Slug      string
	Name      string
	Author    string
	Followers int
	Featured  bool
	Addons    []string
}
