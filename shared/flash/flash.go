package flash

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"stayhub/config"

	"github.com/rs/zerolog/log"
)

const cookieName = "stayhub_flash"

var errTokenTooShort = errors.New("flash token too short")

// Flash carries one-time notices across a redirect. The notice is sealed
// into a cookie with AES-GCM so the browser cannot forge or read it, and
// the cookie is cleared as soon as the notice is rendered.
type Flash struct {
	key []byte
}

func New(cfg *config.Config) *Flash {
	key, err := base64.StdEncoding.DecodeString(cfg.App.FlashSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode flash secret")
	}

	if len(key) != 32 {
		log.Fatal().Int("length", len(key)).Msg("Flash secret must decode to 32 bytes")
	}

	return &Flash{key: key}
}

// Set seals the message and stores it in the flash cookie.
func (f *Flash) Set(w http.ResponseWriter, message string) {
	token, err := f.seal(message)
	if err != nil {
		log.Error().Err(err).Msg("failed to seal flash notice")

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop returns the pending notice, if any, and clears the cookie so the
// notice renders exactly once. A missing or tampered cookie yields an
// empty notice.
func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	message, err := f.open(cookie.Value)
	if err != nil {
		log.Warn().Err(err).Msg("discarding unreadable flash cookie")

		return ""
	}

	return message
}

func (f *Flash) seal(message string) (string, error) {
	block, err := aes.NewCipher(f.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating gcm: %w", err)
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := aesgcm.Seal(nonce, nonce, []byte(message), nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (f *Flash) open(token string) (string, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("decoding token: %w", err)
	}

	block, err := aes.NewCipher(f.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating gcm: %w", err)
	}

	nonceSize := aesgcm.NonceSize()
	if len(data) < nonceSize {
		return "", errTokenTooShort
	}

	plaintext, err := aesgcm.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("opening token: %w", err)
	}

	return string(plaintext), nil
}
