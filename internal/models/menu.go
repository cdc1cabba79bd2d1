package models

type Menu struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Count       int        `json:"count"`
	Items       []MenuItem `json:"items"`
}

type MenuItem struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Target      string   `json:"target"`
	Description string   `json:"description"`
	Order       int      `json:"order"`
	ParentID    int64    `json:"parentId"`
	AttrTitle   string   `json:"attrTitle"`
	Classes     []string `json:"classes"`
	Type        string   `json:"type"`
	TypeLabel   string   `json:"typeLabel"`
}
