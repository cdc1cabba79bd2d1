package auth

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/honeynil/headless-broker/internal/models"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
)

const expKey = "exp"

// Payload is the JSON object carried by a preview token.
type Payload map[string]any

// Int64 reads an integer value, accepting the representations JSON decoding can produce.
func (p Payload) Int64(key string) (int64, bool) {
	switch v := p[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		if f, err := v.Float64(); err == nil {
			return int64(f), true
		}
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func (p Payload) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// PreviewClaims reads the preview fields of a verified payload. It reports false
// when id or type is missing.
func (p Payload) PreviewClaims() (models.PreviewClaims, bool) {
	id, okID := p.Int64("id")
	typ, okType := p.String("type")
	if !okID || !okType {
		return models.PreviewClaims{}, false
	}
	nonce, _ := p.String("nonce")
	user, _ := p.Int64("user")
	exp, _ := p.Int64("exp")
	return models.PreviewClaims{ID: id, Type: typ, Nonce: nonce, User: user, ExpiresAt: exp}, true
}

// PreviewSigner issues and verifies short-lived HMAC tokens for preview links.
type PreviewSigner struct {
	secret []byte
	now    func() time.Time
}

func NewPreviewSigner(secret []byte) *PreviewSigner {
	return &PreviewSigner{secret: secret, now: time.Now}
}

func (s *PreviewSigner) Issue(payload Payload, ttl time.Duration) (string, error) {
	return issueAt(payload, ttl, s.secret, s.now())
}

func (s *PreviewSigner) Verify(token string) (Payload, error) {
	return verifyAt(token, s.secret, s.now())
}

// IssueToken signs payload with secret; the token expires ttl from now.
func IssueToken(payload Payload, ttl time.Duration, secret []byte) (string, error) {
	return issueAt(payload, ttl, secret, time.Now())
}

// VerifyToken checks shape, signature and expiry, in that order, and returns the payload.
func VerifyToken(token string, secret []byte) (Payload, error) {
	return verifyAt(token, secret, time.Now())
}

func issueAt(payload Payload, ttl time.Duration, secret []byte, now time.Time) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("%w: ttl must be positive", pkgerrors.ErrInvalidInput)
	}

	claims := make(Payload, len(payload)+1)
	for k, v := range payload {
		claims[k] = v
	}
	claims[expKey] = now.Add(ttl).Unix()

	data, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("%w: %w", pkgerrors.ErrEncoding, err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(data)
	return encoded + "." + sign(encoded, secret), nil
}

func verifyAt(token string, secret []byte, now time.Time) (Payload, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, pkgerrors.ErrMalformedToken
	}
	encoded, sig := parts[0], parts[1]

	if !hmac.Equal([]byte(sign(encoded, secret)), []byte(sig)) {
		return nil, pkgerrors.ErrInvalidSignature
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkgerrors.ErrMalformedToken, err)
	}

	var payload Payload
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", pkgerrors.ErrMalformedToken, err)
	}
	if payload == nil {
		return nil, pkgerrors.ErrMalformedToken
	}

	exp, ok := payload.Int64(expKey)
	if !ok || now.Unix() > exp {
		return nil, pkgerrors.ErrExpiredToken
	}
	return payload, nil
}

// sign returns the lowercase hex HMAC-SHA256 of the encoded payload.
func sign(encoded string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}
