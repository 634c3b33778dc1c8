package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/alamane/outreach/pkg/config"
	"github.com/alamane/outreach/pkg/formx"
	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/notifx"
	"github.com/alamane/outreach/pkg/notifx/notifxmemory"
	"github.com/alamane/outreach/pkg/outreach"
	"github.com/alamane/outreach/pkg/toastx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDriver answers prompts from a fixed script. Select answers are
// ints, text answers are strings.
type scriptedDriver struct {
	mu      sync.Mutex
	answers []interface{}
	asked   []string
}

func script(answers ...interface{}) *scriptedDriver {
	return &scriptedDriver{answers: answers}
}

func (d *scriptedDriver) next(message string) (interface{}, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.asked = append(d.asked, message)
	if len(d.answers) == 0 {
		return nil, ErrAborted
	}
	a := d.answers[0]
	d.answers = d.answers[1:]
	return a, nil
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	a, err := d.next(cfg.Message)
	if err != nil {
		return "", err
	}
	return a.(string), nil
}

func (d *scriptedDriver) TextArea(ctx context.Context, cfg InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	a, err := d.next(cfg.Message)
	if err != nil {
		return 0, err
	}
	return a.(int), nil
}

type clientFixture struct {
	client   *Client
	site     *outreach.Site
	provider *notifxmemory.Provider
	toasts   *toastx.Recorder
	out      *bytes.Buffer
}

func newClientFixture(t *testing.T, d PromptDriver) *clientFixture {
	t.Helper()

	provider := notifxmemory.New()
	mailer, err := outreach.NewMailer(notifx.NewClient(provider))
	require.NoError(t, err)

	toasts := &toastx.Recorder{}
	site := outreach.NewSite("asso-alamane@outlook.com", formx.Deps{
		Sender:   mailer,
		Feedback: toasts,
		Timeout:  time.Second,
		Logger:   logx.NewWriterLogger(io.Discard, logx.LevelOff),
	})
	content, err := outreach.LoadContent()
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &clientFixture{
		client:   NewClient(site, content, d, NewTerminal(out)),
		site:     site,
		provider: provider,
		toasts:   toasts,
		out:      out,
	}
}

func TestClient_ContactFlow(t *testing.T) {
	fx := newClientFixture(t, script(menuContact, "Jane", "jane@x.com", "hello", menuQuit))

	require.NoError(t, fx.client.Run(context.Background()))

	sent := fx.provider.Outbox()
	require.Len(t, sent, 1)
	assert.Equal(t, "hello", sent[0].Params["message"])
	assert.Equal(t, []string{"Message envoyé avec succès !"}, fx.toasts.Texts())
	assert.Contains(t, fx.out.String(), "+33 6 77 53 60 54")
	assert.Empty(t, fx.site.Contact.Fields().Get("email"))
}

func TestClient_NewsletterInvalidEmail(t *testing.T) {
	fx := newClientFixture(t, script(menuNewsletter, "not-an-email", menuQuit))

	require.NoError(t, fx.client.Run(context.Background()))

	assert.Empty(t, fx.provider.Outbox())
	assert.Equal(t, []string{"Veuillez entrer une adresse email valide"}, fx.toasts.Texts())
}

func TestClient_DonationRetryAfterInvalidEmail(t *testing.T) {
	fx := newClientFixture(t, script(
		menuDonate,
		modalSubmit, "Ali", "ali",
		modalSubmit, "Ali", "ali@y.com",
		menuQuit,
	))

	require.NoError(t, fx.client.Run(context.Background()))

	require.Len(t, fx.provider.Outbox(), 1)
	assert.Equal(t, "Ali", fx.provider.Outbox()[0].Params["from_name"])
	assert.False(t, fx.site.Modal.IsOpen())
	assert.Equal(t, []string{
		"Veuillez entrer une adresse email valide",
		"Vos informations ont été enregistrées. Vous recevrez votre reçu fiscal par email.",
	}, fx.toasts.Texts())
	assert.Contains(t, fx.out.String(), "FR76 2823 3000 0133 9453 4514 881")
}

func TestClient_DonationFailureKeepsModalOpen(t *testing.T) {
	d := script(menuDonate, modalSubmit, "Ali", "ali@y.com", menuQuit)
	fx := newClientFixture(t, d)
	fx.provider.FailWith(errors.New("rejected"))

	require.NoError(t, fx.client.Run(context.Background()))

	assert.True(t, fx.site.Modal.IsOpen())
	assert.Equal(t, formx.Fields{"name": "Ali", "email": "ali@y.com"}, fx.site.Modal.Form().Fields())
	assert.Equal(t, []string{"Erreur lors de l'envoi des informations. Veuillez réessayer."}, fx.toasts.Texts())
}

func TestClient_CloseModal(t *testing.T) {
	fx := newClientFixture(t, script(menuDonate, modalClose, menuQuit))

	require.NoError(t, fx.client.Run(context.Background()))
	assert.False(t, fx.site.Modal.IsOpen())
	assert.Empty(t, fx.provider.Outbox())
}

func TestClient_DonationEntryPoints(t *testing.T) {
	tests := []struct {
		name   string
		script []interface{}
		want   outreach.Trigger
	}{
		{"header button", []interface{}{menuDonate, modalClose, menuQuit}, outreach.TriggerHeaderButton},
		{"hero call to action", []interface{}{menuHero, modalClose, menuQuit}, outreach.TriggerHeroCTA},
		{"mobile menu", []interface{}{menuNav, navDonate, modalClose, menuQuit}, outreach.TriggerMobileMenu},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newClientFixture(t, script(tt.script...))

			require.NoError(t, fx.client.Run(context.Background()))
			assert.Equal(t, tt.want, fx.site.Modal.Trigger())
			assert.False(t, fx.site.Modal.IsOpen())
		})
	}
}

func TestClient_MobileMenuReachesContact(t *testing.T) {
	fx := newClientFixture(t, script(menuNav, navContact, "Jane", "jane@x.com", "hello", menuQuit))

	require.NoError(t, fx.client.Run(context.Background()))
	require.Len(t, fx.provider.Outbox(), 1)
	assert.Equal(t, []string{"Message envoyé avec succès !"}, fx.toasts.Texts())
}

func TestClient_AbortWaitsForInFlight(t *testing.T) {
	fx := newClientFixture(t, script(menuNewsletter, "sub@x.com"))
	fx.provider.Hold()
	go func() {
		time.Sleep(20 * time.Millisecond)
		fx.provider.Release()
	}()

	err := fx.client.Run(context.Background())
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, []string{"Inscription à la newsletter réussie !"}, fx.toasts.Texts())
}

func TestTerminal_ShowsToasts(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Show(toastx.Success("ok"))
	term.Show(toastx.Error("ko"))
	term.Dismiss(toastx.Success("ok"))

	assert.Contains(t, buf.String(), "✔ ok")
	assert.Contains(t, buf.String(), "✖ ko")
}

func TestContainer_MemoryProvider(t *testing.T) {
	cfg := &config.Config{
		Notifx: config.NotifxConfig{Provider: "memory"},
		Outreach: config.OutreachConfig{
			Recipient:       "asso-alamane@outlook.com",
			SubmitTimeout:   time.Second,
			SuccessDuration: time.Second,
			ErrorDuration:   time.Second,
		},
	}
	var buf bytes.Buffer
	c, err := NewContainer(context.Background(), cfg, &buf)
	require.NoError(t, err)
	c.StartBackgroundServices(context.Background())

	form := c.Site.Newsletter
	require.NoError(t, form.SetField(formx.FieldEmail, "sub@x.com"))
	fut, err := form.Submit(context.Background())
	require.NoError(t, err)
	out, err := fut.Await()
	require.NoError(t, err)
	require.True(t, out.Succeeded())

	c.Cleanup()
	assert.Contains(t, buf.String(), "Inscription à la newsletter réussie !")
	assert.Len(t, c.Provider.(*notifxmemory.Provider).Outbox(), 1)

	_, err = NewContainer(context.Background(), cfg, &buf)
	assert.ErrorIs(t, err, notifx.ErrAlreadyInitialized)
}
