package submitx_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/submitx"
	"github.com/alamane/outreach/pkg/toastx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMessages = submitx.Messages{Success: "sent", Failure: "please retry"}

// stubSender records requests and, when gate is set, waits for it to close
// without looking at its context.
type stubSender struct {
	mu    sync.Mutex
	calls []submitx.Request
	err   error
	gate  chan struct{}
}

func (s *stubSender) Send(_ context.Context, req submitx.Request) error {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	if s.gate != nil {
		<-s.gate
	}
	return s.err
}

func (s *stubSender) Calls() []submitx.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]submitx.Request(nil), s.calls...)
}

func request() submitx.Request {
	return submitx.Request{
		Form:        "contact",
		Recipient:   "org@example.org",
		SenderName:  "Jane",
		SenderEmail: "jane@x.com",
		Body:        "hello",
	}
}

func TestSubmit_SuccessNotifiesRunsEffectAndReturnsToIdle(t *testing.T) {
	sender := &stubSender{}
	feedback := &toastx.Recorder{}
	orch := submitx.New(sender, feedback, testMessages)

	var effects atomic.Int32
	fut, err := orch.Submit(context.Background(), request(), func() { effects.Add(1) })
	require.NoError(t, err)

	out, err := fut.Await()
	require.NoError(t, err)
	assert.True(t, out.Succeeded())
	assert.NotZero(t, out.RequestID)
	assert.Equal(t, int32(1), effects.Load())
	assert.Equal(t, []string{"sent"}, feedback.Texts())
	assert.Equal(t, toastx.KindSuccess, feedback.Shown()[0].Kind)
	assert.Equal(t, submitx.StateIdle, orch.State())

	require.Len(t, sender.Calls(), 1)
	assert.Equal(t, out.RequestID, sender.Calls()[0].ID)
}

func TestSubmit_FailureLogsCauseAndShowsGenericText(t *testing.T) {
	providerErr := errors.New("412 template not found")
	sender := &stubSender{err: providerErr}
	feedback := &toastx.Recorder{}
	var logs bytes.Buffer
	orch := submitx.New(sender, feedback, testMessages,
		submitx.WithLogger(logx.NewWriterLogger(&logs, logx.LevelDebug)))

	ran := false
	fut, err := orch.Submit(context.Background(), request(), func() { ran = true })
	require.NoError(t, err)
	out, _ := fut.Await()

	assert.False(t, out.Succeeded())
	assert.ErrorIs(t, out.Cause, submitx.ErrTransport)
	assert.ErrorIs(t, out.Cause, providerErr)
	assert.False(t, ran)

	require.Len(t, feedback.Shown(), 1)
	assert.Equal(t, toastx.KindError, feedback.Shown()[0].Kind)
	assert.Equal(t, "please retry", feedback.Shown()[0].Text)
	assert.NotContains(t, feedback.Shown()[0].Text, "412")

	assert.Contains(t, logs.String(), "412 template not found")
	assert.Contains(t, logs.String(), out.RequestID.String())
	assert.Equal(t, submitx.StateIdle, orch.State())
}

func TestSubmit_SecondCallWhileInFlightIsRefused(t *testing.T) {
	sender := &stubSender{gate: make(chan struct{})}
	feedback := &toastx.Recorder{}
	orch := submitx.New(sender, feedback, testMessages)

	fut, err := orch.Submit(context.Background(), request(), nil)
	require.NoError(t, err)
	assert.True(t, orch.Busy())

	again, err := orch.Submit(context.Background(), request(), nil)
	assert.Nil(t, again)
	assert.ErrorIs(t, err, submitx.ErrBusy)

	close(sender.gate)
	_, _ = fut.Await()

	assert.Len(t, sender.Calls(), 1)
	assert.Equal(t, []string{"sent"}, feedback.Texts())
	assert.False(t, orch.Busy())
}

func TestSubmit_TimeoutForcesIdleWithTransportError(t *testing.T) {
	sender := &stubSender{gate: make(chan struct{})}
	t.Cleanup(func() { close(sender.gate) })
	feedback := &toastx.Recorder{}
	var logs bytes.Buffer
	orch := submitx.New(sender, feedback, testMessages,
		submitx.WithTimeout(20*time.Millisecond),
		submitx.WithLogger(logx.NewWriterLogger(&logs, logx.LevelDebug)))

	fut, err := orch.Submit(context.Background(), request(), nil)
	require.NoError(t, err)

	out, _ := fut.Await()
	assert.ErrorIs(t, out.Cause, submitx.ErrTransport)
	assert.ErrorIs(t, out.Cause, submitx.ErrTimeout)
	assert.Equal(t, submitx.StateIdle, orch.State())
	assert.Equal(t, []string{"please retry"}, feedback.Texts())
	assert.Contains(t, logs.String(), `"cause_code":"SUBMITX_TIMEOUT"`)
}

func TestSubmit_CallerCancellationDoesNotAbort(t *testing.T) {
	sender := &stubSender{gate: make(chan struct{})}
	feedback := &toastx.Recorder{}
	orch := submitx.New(sender, feedback, testMessages)

	ctx, cancel := context.WithCancel(context.Background())
	fut, err := orch.Submit(ctx, request(), nil)
	require.NoError(t, err)
	cancel()
	close(sender.gate)

	out, _ := fut.Await()
	assert.True(t, out.Succeeded())
}

func TestSubmit_NoSenderIsAFailureNotAPanic(t *testing.T) {
	feedback := &toastx.Recorder{}
	orch := submitx.New(nil, feedback, testMessages)

	fut, err := orch.Submit(context.Background(), request(), nil)
	require.NoError(t, err)
	out, _ := fut.Await()

	assert.ErrorIs(t, out.Cause, submitx.ErrNoSender)
	assert.Equal(t, []string{"please retry"}, feedback.Texts())
}

func TestSubmit_PanickingSenderIsATransportFailure(t *testing.T) {
	feedback := &toastx.Recorder{}
	sender := submitx.SenderFunc(func(context.Context, submitx.Request) error {
		var m map[string]string
		m["boom"] = "x"
		return nil
	})
	orch := submitx.New(sender, feedback, testMessages)

	fut, err := orch.Submit(context.Background(), request(), func() { t.Error("onSuccess ran after a panic") })
	require.NoError(t, err)
	out, _ := fut.Await()

	assert.ErrorIs(t, out.Cause, submitx.ErrTransport)
	assert.Contains(t, out.Cause.Error(), "provider panic")
	assert.Equal(t, []string{"please retry"}, feedback.Texts())
	assert.Equal(t, submitx.StateIdle, orch.State())
}
