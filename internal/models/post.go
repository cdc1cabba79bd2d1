package models

import "time"

const StatusPublish = "publish"

type Post struct {
	ID          int64
	AuthorID    int64
	Type        string
	Status      string
	Slug        string
	URI         string
	ModifiedGMT time.Time
}
