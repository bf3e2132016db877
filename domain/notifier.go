// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// Notifier is the presentation-layer collaborator. The session controller
// only ever calls it, it never blocks on it for state.
//
//go:generate mockgen -destination=mocks/notifier.go -package=mocks . Notifier
type Notifier interface {
	// MailboxReady fires when a freshly generated mailbox is installed.
	MailboxReady(account Account)
	// MailboxSwitched fires when a favorite is re-activated. Kept separate
	// from MailboxReady so the UI can be quieter about it.
	MailboxSwitched(account Account)
	NewMail(message Message)
	MailboxExpired(address string)
	SessionError(err error)
}
