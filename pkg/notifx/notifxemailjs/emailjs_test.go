package notifxemailjs_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alamane/outreach/pkg/errx"
	"github.com/alamane/outreach/pkg/notifx"
	"github.com/alamane/outreach/pkg/notifx/notifxemailjs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, endpoint string) *notifxemailjs.Provider {
	t.Helper()
	p, err := notifxemailjs.NewProvider(notifxemailjs.Config{
		ServiceID:  "service_test",
		TemplateID: "template_test",
		PublicKey:  "pk_test",
		Endpoint:   endpoint,
		Timeout:    2 * time.Second,
	})
	require.NoError(t, err)
	return p
}

func contactMessage() notifx.EmailMessage {
	return notifx.EmailMessage{
		To:          []string{"asso-alamane@outlook.com"},
		SenderName:  "Jane",
		SenderEmail: "jane@x.com",
		Subject:     "Nouveau message",
		TextBody:    "hello",
	}
}

func TestSendEmail_PostsTemplateParams(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &got))
		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(srv.Close)

	err := newProvider(t, srv.URL).SendEmail(context.Background(), contactMessage())
	require.NoError(t, err)

	assert.Equal(t, "service_test", got["service_id"])
	assert.Equal(t, "template_test", got["template_id"])
	assert.Equal(t, "pk_test", got["user_id"])
	assert.NotContains(t, got, "accessToken")
	assert.Equal(t, map[string]interface{}{
		"to_email":   "asso-alamane@outlook.com",
		"from_name":  "Jane",
		"from_email": "jane@x.com",
		"message":    "hello",
		"subject":    "Nouveau message",
	}, got["template_params"])
}

func TestSendEmail_RejectionKeepsResponseAsDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The Public Key is invalid"))
	}))
	t.Cleanup(srv.Close)

	err := newProvider(t, srv.URL).SendEmail(context.Background(), contactMessage())
	require.ErrorIs(t, err, notifx.ErrSendFailed)

	var xe *errx.Error
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, http.StatusBadRequest, xe.Details["status"])
	assert.Equal(t, "The Public Key is invalid", xe.Details["response"])
	assert.True(t, errx.IsType(err, errx.TypeExternal))
}

func TestSendEmail_ContextBoundsTheWait(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := newProvider(t, srv.URL).SendEmail(ctx, contactMessage())
	assert.ErrorIs(t, err, notifx.ErrSendFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewProvider_RequiresCredentials(t *testing.T) {
	_, err := notifxemailjs.NewProvider(notifxemailjs.Config{ServiceID: "s"})
	require.ErrorIs(t, err, notifx.ErrInvalidProviderConf)

	var xe *errx.Error
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, []string{"template_id", "public_key"}, xe.Details["missing"])
}
