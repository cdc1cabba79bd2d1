package models

import "fmt"

type EventKind string

const (
	EventPostStatus  EventKind = "post.status"
	EventPostSaved   EventKind = "post.saved"
	EventTermCreated EventKind = "term.created"
	EventTermEdited  EventKind = "term.edited"
	EventTermDeleted EventKind = "term.deleted"
)

// ContentEvent is published whenever content changes.
type ContentEvent struct {
	Kind      EventKind `json:"kind"`
	PostID    int64     `json:"post_id,omitempty"`
	PostType  string    `json:"post_type,omitempty"`
	OldStatus string    `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status,omitempty"`
	Autosave  bool      `json:"autosave,omitempty"`
	Revision  bool      `json:"revision,omitempty"`
	TermID    int64     `json:"term_id,omitempty"`
	Taxonomy  string    `json:"taxonomy,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// PartitionKey groups events about the same term or post.
func (e ContentEvent) PartitionKey() string {
	if e.TermID > 0 {
		return fmt.Sprintf("term:%s:%d", e.Taxonomy, e.TermID)
	}
	return fmt.Sprintf("post:%d", e.PostID)
}
