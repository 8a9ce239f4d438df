package notificationControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type recordingEmail struct {
	sent []string
	fail bool
}

func (r *recordingEmail) Send(_ context.Context, to, subject, html string) error {
	if r.fail {
		return errSendFailed
	}
	r.sent = append(r.sent, to)
	return nil
}

var errSendFailed = &sendError{}

type sendError struct{}

func (e *sendError) Error() string { return "provider rejected the message" }

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	handler(c)
	return w
}

func TestSendEmailWelcomeMissingData(t *testing.T) {
	email := &recordingEmail{}
	w := postJSON(t, SendEmail(email), `{"type":"welcome"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["error"] != "Missing welcome data" {
		t.Errorf("error = %q, want %q", resp["error"], "Missing welcome data")
	}
	if len(email.sent) != 0 {
		t.Errorf("no email should be sent on validation failure, got %d", len(email.sent))
	}
}

func TestSendEmailOrderMissingData(t *testing.T) {
	for _, typ := range []string{"confirmation", "status_update"} {
		w := postJSON(t, SendEmail(&recordingEmail{}), `{"type":"`+typ+`"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("type %s: status = %d, want 400", typ, w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "Missing order data" {
			t.Errorf("type %s: error = %q, want %q", typ, resp["error"], "Missing order data")
		}
	}
}

func TestSendEmailInvalidType(t *testing.T) {
	w := postJSON(t, SendEmail(&recordingEmail{}), `{"type":"newsletter"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSendEmailWelcomeSuccess(t *testing.T) {
	email := &recordingEmail{}
	w := postJSON(t, SendEmail(email),
		`{"type":"welcome","welcomeData":{"name":"Ada","email":"ada@example.com"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["success"] != true {
		t.Errorf("success = %v, want true", resp["success"])
	}
	if len(email.sent) != 1 || email.sent[0] != "ada@example.com" {
		t.Errorf("sent = %v, want one email to ada@example.com", email.sent)
	}
}

func TestSendEmailProviderFailure(t *testing.T) {
	w := postJSON(t, SendEmail(&recordingEmail{fail: true}),
		`{"type":"welcome","welcomeData":{"name":"Ada","email":"ada@example.com"}}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
