// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

// Account is a provider-issued disposable mailbox plus the credential needed
// to read it. Token is empty for token-less providers, Password is kept so a
// favorite can be logged in again later.
type Account struct {
	Address  string
	Password string
	Token    string
	ID       string
}

type MailAddress struct {
	Address string
	Name    string
}

type Message struct {
	ID        string
	From      MailAddress
	Subject   string
	CreatedAt time.Time
	Intro     string
	Seen      bool
}

type Attachment struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
}

type MessageDetails struct {
	Message
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}
