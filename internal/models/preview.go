package models

type PreviewCheck struct {
	Token string `json:"token" validate:"required"`
	ID    int64  `json:"id" validate:"required,gt=0"`
	Type  string `json:"type" validate:"required"`
}

type PreviewResult struct {
	Valid bool   `json:"valid"`
	ID    int64  `json:"id"`
	Type  string `json:"type"`
}
