// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/provider.go -package=mocks . MailProvider
type MailProvider interface {
	CreateAccount() (*Account, error)
	Login(address, password string) (*Account, error)
	ListMessages(account *Account) ([]Message, error)
	GetMessageDetails(account *Account, id string) (*MessageDetails, error)
	DownloadAttachment(account *Account, messageID, attachmentID string) ([]byte, error)
}
