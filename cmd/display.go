package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/outreach"
	"github.com/alamane/outreach/pkg/toastx"
	"github.com/fatih/color"
)

var (
	successStyle = color.New(color.FgWhite, color.BgGreen)
	errorStyle   = color.New(color.FgWhite, color.BgRed)
	titleStyle   = color.New(color.FgGreen, color.Bold)
	labelStyle   = color.New(color.FgHiBlack)
)

// Terminal writes notifications and static content to out. Writes are
// serialized because toasts arrive from the dispatcher goroutine.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Show implements toastx.Display.
func (t *Terminal) Show(n toastx.Notification) {
	style, icon := successStyle, "✔"
	if n.Kind == toastx.KindError {
		style, icon = errorStyle, "✖"
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "\n%s\n", style.Sprintf(" %s %s ", icon, n.Text))
}

// Dismiss implements toastx.Display. Printed lines cannot be taken back, so
// expiry is only logged.
func (t *Terminal) Dismiss(n toastx.Notification) {
	logx.WithField("id", n.ID.String()).Debug("toast expired")
}

// Printf writes a plain line.
func (t *Terminal) Printf(format string, args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}

// RenderHome writes the header, missions and impact sections.
func (t *Terminal) RenderHome(c *outreach.Content) {
	var b strings.Builder
	titleStyle.Fprintln(&b, c.Organization.Name+" · "+c.Organization.Tagline)
	fmt.Fprintln(&b, c.Organization.Summary)

	titleStyle.Fprintln(&b, "\nNos Missions")
	for _, m := range c.Missions {
		fmt.Fprintf(&b, "  • %s: %s\n", m.Title, m.Description)
	}

	titleStyle.Fprintln(&b, "\nNotre Impact")
	for _, s := range c.Impact {
		fmt.Fprintf(&b, "  %-5s %s\n", s.Value, s.Label)
	}
	t.Printf("%s\n", b.String())
}

// RenderContact writes the organisation's direct contact details.
func (t *Terminal) RenderContact(c *outreach.Content) {
	var b strings.Builder
	titleStyle.Fprintln(&b, "Contactez-nous")
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Sprint("Téléphone"), c.Organization.Phone)
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Sprint("Email"), c.Organization.Email)
	t.Printf("%s\n", b.String())
}

// RenderDonation writes the bank details shown beside the donor form.
func (t *Terminal) RenderDonation(d outreach.Donation) {
	var b strings.Builder
	titleStyle.Fprintln(&b, d.Title)
	fmt.Fprintln(&b, "Coordonnées bancaires")
	row := func(label, value string) {
		fmt.Fprintf(&b, "  %-12s %s\n", labelStyle.Sprint(label), value)
	}
	row("Bénéficiaire", d.Bank.Beneficiary)
	row("IBAN", d.Bank.IBAN)
	row("BIC / SWIFT", d.Bank.BIC)
	row("Banque", d.Bank.Name)
	row("", d.Bank.Address)

	fmt.Fprintln(&b, "\n"+d.Intro)
	for _, u := range d.Uses {
		fmt.Fprintf(&b, "  • %s\n", u)
	}
	fmt.Fprintln(&b, "\n"+d.Receipt)
	t.Printf("%s\n", b.String())
}
