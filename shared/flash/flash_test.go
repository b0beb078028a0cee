package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/config"
	"stayhub/shared/flash"
)

const testSecret = "MDEyMzQ1Njc4OTAxMjM0NTY3ODkwMTIzNDU2Nzg5MDE=" // base64("01234567890123456789012345678901")

func newFlash(t *testing.T) *flash.Flash {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.FlashSecret = testSecret

	return flash.New(cfg)
}

func setCookie(t *testing.T) *http.Cookie {
	t.Helper()

	f := newFlash(t)
	rec := httptest.NewRecorder()

	f.Set(rec, "Booking successful!")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	return cookies[0]
}

func TestFlash_SetPopRoundTrip(t *testing.T) {
	f := newFlash(t)
	cookie := setCookie(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	message := f.Pop(rec, req)

	if message != "Booking successful!" {
		t.Errorf("expected 'Booking successful!', got %q", message)
	}
}

func TestFlash_PopClearsCookie(t *testing.T) {
	f := newFlash(t)
	cookie := setCookie(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	f.Pop(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 clearing cookie, got %d", len(cookies))
	}

	if cookies[0].MaxAge >= 0 {
		t.Errorf("expected negative MaxAge to clear the cookie, got %d", cookies[0].MaxAge)
	}

	if cookies[0].Value != "" {
		t.Errorf("expected cleared cookie value, got %q", cookies[0].Value)
	}
}

func TestFlash_PopWithoutCookie(t *testing.T) {
	f := newFlash(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if message := f.Pop(rec, req); message != "" {
		t.Errorf("expected empty notice, got %q", message)
	}

	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no clearing cookie when none was sent")
	}
}

func TestFlash_PopTamperedCookie(t *testing.T) {
	f := newFlash(t)
	cookie := setCookie(t)

	tests := []struct {
		name  string
		value string
	}{
		{
			name:  "garbage token",
			value: "not-a-sealed-token",
		},
		{
			name:  "truncated token",
			value: cookie.Value[:8],
		},
		{
			name:  "empty token",
			value: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: cookie.Name, Value: tt.value})
			rec := httptest.NewRecorder()

			if message := f.Pop(rec, req); message != "" {
				t.Errorf("expected empty notice for tampered cookie, got %q", message)
			}
		})
	}
}

func TestFlash_TokensDifferPerSet(t *testing.T) {
	f := newFlash(t)

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()

	f.Set(first, "Booking successful!")
	f.Set(second, "Booking successful!")

	a := first.Result().Cookies()[0].Value
	b := second.Result().Cookies()[0].Value

	if a == b {
		t.Error("expected distinct tokens for the same notice")
	}
}
