package slipxml

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/jhoicas/campus-store/internal/domain/entity"
)

// FingerprintLen longitud de la huella impresa en el comprobante.
const FingerprintLen = 16

// Signer calcula HMAC-SHA256 sobre la forma canónica del comprobante.
type Signer struct {
	secret []byte
}

// NewSigner construye el firmador. El secreto no puede estar vacío.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("slipxml: secreto de huella vacío")
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Fingerprint devuelve los primeros 16 dígitos hex (mayúsculas) del HMAC.
func (s *Signer) Fingerprint(o entity.Order) (string, error) {
	canon, err := Canonical(o)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(canon)
	sum := hex.EncodeToString(mac.Sum(nil))
	return strings.ToUpper(sum[:FingerprintLen]), nil
}

// Match compara en tiempo constante, sin distinguir mayúsculas.
func (s *Signer) Match(o entity.Order, presented string) (bool, string, error) {
	want, err := s.Fingerprint(o)
	if err != nil {
		return false, "", err
	}
	got := strings.ToUpper(strings.TrimSpace(presented))
	return hmac.Equal([]byte(want), []byte(got)), want, nil
}
