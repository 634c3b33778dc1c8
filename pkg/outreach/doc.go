// Package outreach defines the three forms of the Al-Amane site, the
// donation modal that hosts one of them, and the mail adapter that turns a
// submission into an email.
//
// Every form is a formx.Controller; this package only supplies what differs
// between them: accepted fields, payload shape, user-facing texts and the
// effect that follows a successful send.
package outreach
