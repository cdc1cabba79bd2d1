package models

type SitemapEntry struct {
	ID         string  `json:"id"`
	DatabaseID int64   `json:"databaseId"`
	URI        string  `json:"uri"`
	Slug       string  `json:"slug"`
	Type       string  `json:"type"`
	Modified   *string `json:"modified"`
	Status     string  `json:"status"`
}

type SitemapQuery struct {
	Types []string
	Limit int
}
