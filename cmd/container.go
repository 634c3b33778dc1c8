// cmd/container.go
//
// Root composition root. Owns the email provider and the feedback channel
// and composes the site's forms. This is the only place that knows about ALL modules.
package main

import (
	"context"
	"io"
	"sync"

	"github.com/alamane/outreach/pkg/config"
	"github.com/alamane/outreach/pkg/errx"
	"github.com/alamane/outreach/pkg/formx"
	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/notifx"
	"github.com/alamane/outreach/pkg/notifx/notifxconsole"
	"github.com/alamane/outreach/pkg/notifx/notifxemailjs"
	"github.com/alamane/outreach/pkg/notifx/notifxmemory"
	"github.com/alamane/outreach/pkg/notifx/notifxses"
	"github.com/alamane/outreach/pkg/outreach"
	"github.com/alamane/outreach/pkg/toastx"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// Container holds shared infrastructure and the composed site.
type Container struct {
	Config *config.Config

	// Infrastructure
	Provider notifx.EmailSender
	Notifx   *notifx.Client
	Terminal *Terminal
	Toasts   *toastx.Channel

	// Domain
	Site *outreach.Site

	stop func()
	wg   sync.WaitGroup
}

func NewContainer(ctx context.Context, cfg *config.Config, out io.Writer) (*Container, error) {
	logx.Info("🔧 Initializing application container...")

	c := &Container{Config: cfg}

	if err := c.initInfrastructure(ctx, out); err != nil {
		return nil, err
	}
	if err := c.initModules(); err != nil {
		return nil, err
	}

	logx.Info("✅ Application container initialized")
	return c, nil
}

// ---------------------------------------------------------------------------
// Infrastructure: email provider, feedback channel
// ---------------------------------------------------------------------------

func (c *Container) initInfrastructure(ctx context.Context, out io.Writer) error {
	logx.Info("🏗️ Initializing infrastructure...")

	provider, err := c.newProvider(ctx)
	if err != nil {
		return err
	}
	c.Provider = provider

	client, err := notifx.Init(provider)
	if err != nil {
		return err
	}
	c.Notifx = client
	logx.Infof("  ✅ Email provider configured (%s)", c.Config.Notifx.Provider)

	c.Terminal = NewTerminal(out)
	c.Toasts = toastx.New(c.Terminal,
		toastx.WithDuration(toastx.KindSuccess, c.Config.Outreach.SuccessDuration),
		toastx.WithDuration(toastx.KindError, c.Config.Outreach.ErrorDuration),
	)

	logx.Info("✅ Infrastructure initialized")
	return nil
}

func (c *Container) newProvider(ctx context.Context) (notifx.EmailSender, error) {
	n := c.Config.Notifx

	switch n.Provider {
	case "emailjs":
		p, err := notifxemailjs.NewProvider(notifxemailjs.Config{
			ServiceID:   n.EmailJS.ServiceID,
			TemplateID:  n.EmailJS.TemplateID,
			PublicKey:   n.EmailJS.PublicKey,
			AccessToken: n.EmailJS.PrivateKey,
			Endpoint:    n.EmailJS.Endpoint,
			Timeout:     n.EmailJS.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return p, nil

	case "ses":
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(n.AWSRegion))
		if err != nil {
			return nil, errx.Wrap(err, "Unable to load AWS SDK config", errx.TypeInternal)
		}
		return notifxses.NewSESProvider(ses.NewFromConfig(awsCfg), n.FromAddress, n.FromName), nil

	case "console":
		return notifxconsole.NewConsoleProvider(logx.GetDefaultLogger()), nil

	case "memory":
		return notifxmemory.New(), nil

	default:
		return nil, notifx.Errors().New(notifx.ErrInvalidProviderConf).WithDetail("provider", n.Provider)
	}
}

// ---------------------------------------------------------------------------
// Module composition
// ---------------------------------------------------------------------------

func (c *Container) initModules() error {
	logx.Info("📦 Initializing modules...")

	mailer, err := outreach.NewMailer(c.Notifx)
	if err != nil {
		return err
	}

	c.Site = outreach.NewSite(c.Config.Outreach.Recipient, formx.Deps{
		Sender:   mailer,
		Feedback: c.Toasts,
		Timeout:  c.Config.Outreach.SubmitTimeout,
		Logger:   logx.GetDefaultLogger(),
	})
	logx.Info("  ✅ Forms ready (contact, newsletter, donor)")
	return nil
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func (c *Container) StartBackgroundServices(ctx context.Context) {
	logx.Info("🔄 Starting background services...")

	ctx, cancel := context.WithCancel(ctx)
	c.stop = cancel
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		_ = c.Toasts.Run(ctx)
	}()
}

func (c *Container) Cleanup() {
	logx.Info("🧹 Cleaning up resources...")

	if c.stop != nil {
		c.stop()
		c.wg.Wait()
		logx.Info("  ✅ Notification channel drained")
	}

	logx.Info("✅ Cleanup complete")
}
