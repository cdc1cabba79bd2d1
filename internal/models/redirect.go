package models

type Redirect struct {
	ID         int64   `json:"id"`
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	StatusCode int     `json:"statusCode"`
	Regex      bool    `json:"regex"`
	Position   int     `json:"position"`
	GroupID    *int64  `json:"groupId"`
	GroupName  *string `json:"groupName"`
}

type RedirectQuery struct {
	Limit   int
	Search  string
	GroupID int64
}
