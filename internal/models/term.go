package models

type Taxonomy struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	Hierarchical bool   `json:"hierarchical"`
	Public       bool   `json:"public"`
	RewriteSlug  string `json:"-"`
}

type Term struct {
	ID       int64  `json:"term_id"`
	Taxonomy string `json:"taxonomy"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID int64  `json:"parent"`
}

type TermOrder string

const (
	OrderByName   TermOrder = "name"
	OrderByIDDesc TermOrder = "id_desc"
)

// BulkInsertResult mirrors what an editor sees after a bulk insert.
type BulkInsertResult struct {
	Inserted []string `json:"inserted"`
	Notices  []string `json:"notices"`
}
