package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	pg := FromContext(newContext("/"))
	if pg.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, pg.Limit)
	}
	if pg.Offset != 0 {
		t.Errorf("expected offset 0, got %d", pg.Offset)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	pg := FromContext(newContext("/?limit=10&offset=30"))
	if pg.Limit != 10 || pg.Offset != 30 {
		t.Errorf("expected 10/30, got %d/%d", pg.Limit, pg.Offset)
	}
}

func TestFromContext_ClampsLimit(t *testing.T) {
	pg := FromContext(newContext("/?limit=9999"))
	if pg.Limit != MaxLimit {
		t.Errorf("expected clamped limit %d, got %d", MaxLimit, pg.Limit)
	}
}

func TestFromContext_NegativeOffset(t *testing.T) {
	pg := FromContext(newContext("/?offset=-5"))
	if pg.Offset != 0 {
		t.Errorf("expected offset 0, got %d", pg.Offset)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	resp := NewResponse(nil, 100, 20, 0)
	if !resp.HasMore {
		t.Error("expected has_more with 100 total at offset 0")
	}
	resp = NewResponse(nil, 100, 20, 80)
	if resp.HasMore {
		t.Error("expected no more results at the last page")
	}
}
