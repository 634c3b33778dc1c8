package main

import (
	"context"
	"errors"
	"sync"

	"github.com/alamane/outreach/pkg/asyncx"
	"github.com/alamane/outreach/pkg/errx"
	"github.com/alamane/outreach/pkg/formx"
	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/outreach"
	"github.com/alamane/outreach/pkg/submitx"
)

const (
	menuMissions = iota
	menuDonate
	menuHero
	menuContact
	menuNewsletter
	menuNav
	menuQuit
)

var menuOptions = []string{
	menuMissions:   "Nos Missions",
	menuDonate:     "Faire un don",
	menuHero:       "Contribuer maintenant",
	menuContact:    "Contactez-nous",
	menuNewsletter: "Newsletter",
	menuNav:        "Menu",
	menuQuit:       "Quitter",
}

// The compact navigation, as on a phone.
const (
	navMissions = iota
	navImpact
	navContact
	navDonate
)

var navOptions = []string{
	navMissions: "Nos Missions",
	navImpact:   "Notre Impact",
	navContact:  "Contact",
	navDonate:   "Faire un don",
}

const (
	modalSubmit = iota
	modalClose
)

var modalOptions = []string{
	modalSubmit: "Enregistrer mes informations",
	modalClose:  "Fermer",
}

const sendingText = "Envoi en cours..."

// Client drives the site from a terminal. Submissions run in the
// background; the menu stays usable while they are in flight.
type Client struct {
	site    *outreach.Site
	content *outreach.Content
	prompts PromptDriver
	term    *Terminal

	mu      sync.Mutex
	pending []*asyncx.Future[submitx.Outcome]
}

func NewClient(site *outreach.Site, content *outreach.Content, prompts PromptDriver, term *Terminal) *Client {
	return &Client{site: site, content: content, prompts: prompts, term: term}
}

// Run shows the menu until the user quits, then waits for submissions still
// in flight so their outcome is displayed.
func (c *Client) Run(ctx context.Context) error {
	c.term.RenderHome(c.content)

	for {
		choice, err := c.prompts.Select(ctx, SelectConfig{Message: c.content.Organization.Name, Options: menuOptions})
		if err != nil {
			c.drain(ctx)
			return err
		}

		switch choice {
		case menuMissions:
			c.term.RenderHome(c.content)
		case menuDonate:
			err = c.donate(ctx, outreach.TriggerHeaderButton)
		case menuHero:
			err = c.donate(ctx, outreach.TriggerHeroCTA)
		case menuNav:
			err = c.nav(ctx)
		case menuContact:
			err = c.contact(ctx)
		case menuNewsletter:
			err = c.newsletter(ctx)
		case menuQuit:
			c.drain(ctx)
			return nil
		}
		if err != nil {
			c.drain(ctx)
			return err
		}
	}
}

func (c *Client) nav(ctx context.Context) error {
	choice, err := c.prompts.Select(ctx, SelectConfig{Message: "Menu", Options: navOptions})
	if err != nil {
		return err
	}
	switch choice {
	case navMissions, navImpact:
		c.term.RenderHome(c.content)
	case navContact:
		return c.contact(ctx)
	case navDonate:
		return c.donate(ctx, outreach.TriggerMobileMenu)
	}
	return nil
}

func (c *Client) contact(ctx context.Context) error {
	c.term.RenderContact(c.content)
	form := c.site.Contact
	if form.Busy() {
		c.term.Printf("%s\n", sendingText)
		return nil
	}

	if err := c.ask(ctx, form, formx.FieldName, "Votre nom", false); err != nil {
		return err
	}
	if err := c.ask(ctx, form, formx.FieldEmail, "Votre email", false); err != nil {
		return err
	}
	if err := c.ask(ctx, form, formx.FieldMessage, "Votre message", true); err != nil {
		return err
	}
	c.track(form.Submit(ctx))
	return nil
}

func (c *Client) newsletter(ctx context.Context) error {
	form := c.site.Newsletter
	if form.Busy() {
		c.term.Printf("%s\n", sendingText)
		return nil
	}

	if err := c.ask(ctx, form, formx.FieldEmail, "Votre email", false); err != nil {
		return err
	}
	c.track(form.Submit(ctx))
	return nil
}

func (c *Client) donate(ctx context.Context, trigger outreach.Trigger) error {
	modal := c.site.Modal
	modal.Open(trigger)

	for modal.IsOpen() {
		c.term.RenderDonation(c.content.Donation)

		choice, err := c.prompts.Select(ctx, SelectConfig{Message: c.content.Donation.Title, Options: modalOptions})
		if err != nil {
			return err
		}
		if choice == modalClose {
			modal.Close()
			return nil
		}

		form := modal.Form()
		if form.Busy() {
			c.term.Printf("%s\n", sendingText)
			return nil
		}
		if err := c.ask(ctx, form, formx.FieldName, "Votre nom", false); err != nil {
			return err
		}
		if err := c.ask(ctx, form, formx.FieldEmail, "Votre email", false); err != nil {
			return err
		}

		fut, err := modal.Submit(ctx)
		c.track(fut, err)
		if err == nil {
			// The modal closes itself on success; failures leave it open.
			return nil
		}
	}
	return nil
}

// ask prefills the prompt with the current value so a failed submission can
// be retried without retyping.
func (c *Client) ask(ctx context.Context, form *formx.Controller, field, label string, multiline bool) error {
	cfg := InputConfig{Message: label, Default: form.Fields().Get(field)}

	var (
		value string
		err   error
	)
	if multiline {
		value, err = c.prompts.TextArea(ctx, cfg)
	} else {
		value, err = c.prompts.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}
	return form.SetField(field, value)
}

func (c *Client) track(fut *asyncx.Future[submitx.Outcome], err error) {
	switch {
	case err == nil:
		c.term.Printf("%s\n", sendingText)
		c.mu.Lock()
		c.pending = append(c.pending, fut)
		c.mu.Unlock()
	case errors.Is(err, formx.ErrInvalidEmail):
		// Already reported through the feedback channel.
	case errx.IsType(err, errx.TypeConflict):
		c.term.Printf("%s\n", sendingText)
	default:
		logx.WithError(err).WithField("code", errx.CodeOf(err)).Warn("submission not started")
	}
}

func (c *Client) drain(ctx context.Context) {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, fut := range pending {
		select {
		case <-fut.Done():
		case <-ctx.Done():
			return
		}
	}
}
