package models

// PreviewClaims is the typed view of a verified preview token payload.
type PreviewClaims struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Nonce     string `json:"nonce"`
	User      int64  `json:"user"`
	ExpiresAt int64  `json:"exp"`
}
