package contact_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/umerfilms/website/internal/contact"
	"github.com/umerfilms/website/pkg/email"
	"github.com/umerfilms/website/pkg/logger"
)

func postContact(t *testing.T, h http.Handler, body string) (int, contact.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	var resp contact.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func newHandler(sender email.Sender) http.Handler {
	return contact.NewHandler(newService(sender, nil), logger.Discard())
}

const validBody = `{"name":"Test User","email":"test@example.com","projectType":"Commercial","message":"This is a test message for the contact form."}`

func TestHandler_HappyPath(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
		return strings.Contains(m.Subject, "Commercial")
	})).Return(email.Receipt{MessageID: "pm-1"}, nil).Once()

	code, resp := postContact(t, newHandler(sender), validBody)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.Equal(t, contact.SuccessMessage, resp.Message)
	sender.AssertExpectations(t)
}

func TestHandler_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "honeypot",
			body:    `{"name":"Bot","email":"bot@example.com","projectType":"Commercial","message":"Buy cheap things now!!","honeypot":"filled"}`,
			message: "Invalid submission",
		},
		{
			name:    "missing project type",
			body:    `{"name":"Test User","email":"test@example.com","message":"This is a test message."}`,
			message: "All fields are required",
		},
		{
			name:    "whitespace name",
			body:    `{"name":"   ","email":"test@example.com","projectType":"Commercial","message":"This is a test message."}`,
			message: "All fields are required",
		},
		{
			name:    "invalid email",
			body:    `{"name":"Test User","email":"not-an-email","projectType":"Commercial","message":"This is a test message."}`,
			message: "Invalid email address",
		},
		{
			name:    "short message",
			body:    `{"name":"Test User","email":"test@example.com","projectType":"Commercial","message":"   short   "}`,
			message: "Message must be at least 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := new(mockSender)
			code, resp := postContact(t, newHandler(sender), tt.body)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_ProviderFailureIsGeneric(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).
		Return(email.Receipt{}, errors.New("postmark error 10: bad or missing server token")).Once()

	code, resp := postContact(t, newHandler(sender), validBody)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, resp.Success)
	assert.Equal(t, contact.GenericFailureMessage, resp.Message)
	assert.NotContains(t, resp.Message, "token")
}

func TestHandler_MalformedBodyIsGeneric500(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"truncated json": `{"name":"Test`,
		"empty body":     ``,
		"not an object":  `["a","b"]`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sender := new(mockSender)
			code, resp := postContact(t, newHandler(sender), body)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.False(t, resp.Success)
			assert.Equal(t, contact.GenericFailureMessage, resp.Message)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_UnsupportedContentTypeIsGeneric500(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	newHandler(new(mockSender)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to send message. Please try again later."}`, rec.Body.String())
}

func TestHandler_PanicIsGeneric500(t *testing.T) {
	t.Parallel()

	sender := email.SenderFunc(func(context.Context, email.Message) (email.Receipt, error) {
		panic("provider client exploded")
	})

	code, resp := postContact(t, newHandler(sender), validBody)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, resp.Success)
	assert.Equal(t, contact.GenericFailureMessage, resp.Message)
}

func TestHandler_ClientDisconnectStillSends(t *testing.T) {
	t.Parallel()

	var sendErr error
	sender := email.SenderFunc(func(ctx context.Context, _ email.Message) (email.Receipt, error) {
		sendErr = ctx.Err()
		return email.Receipt{MessageID: "pm-1"}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validBody)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHandler(sender).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, sendErr)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
