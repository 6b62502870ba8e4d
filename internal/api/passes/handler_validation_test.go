package passes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// The PATCH body checks run before any repository call, so a nil DB is
// enough to exercise them.
func patchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(nil)
	r.PATCH("/submitData/:id", h.UpdateData)
	return r
}

func doPatch(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPatch, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpdateRejectsUnknownFields(t *testing.T) {
	r := patchRouter()
	resp := doPatch(r, "/submitData/1", `{"titel":"Y"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unknown field accepted: status=%d body=%s", resp.Code, resp.Body.String())
	}
}

func TestUpdateRejectsUserIdentityFields(t *testing.T) {
	r := patchRouter()
	resp := doPatch(r, "/submitData/1", `{"user":{"email":"x@y.z"}}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("user field accepted on update: status=%d body=%s", resp.Code, resp.Body.String())
	}
}

func TestUpdateRejectsInvalidID(t *testing.T) {
	r := patchRouter()
	resp := doPatch(r, "/submitData/abc", `{"title":"Y"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id accepted: status=%d", resp.Code)
	}
}

func TestUpdateRejectsOutOfRangeCoords(t *testing.T) {
	r := patchRouter()
	resp := doPatch(r, "/submitData/1", `{"coords":{"latitude":120}}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("latitude 120 accepted: status=%d body=%s", resp.Code, resp.Body.String())
	}
}

func TestUpdateRejectsMalformedJSON(t *testing.T) {
	r := patchRouter()
	resp := doPatch(r, "/submitData/1", `{"title":`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("malformed body accepted: status=%d", resp.Code)
	}
}
