package domain

// Topic is a category that articles are filed under. The slug doubles as
// the primary key.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
