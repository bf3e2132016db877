// SPDX-License-Identifier: GPL-3.0-or-later
package onesec

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/driftbox/go-driftbox/domain"
	"github.com/driftbox/go-driftbox/log"
	"github.com/driftbox/go-driftbox/mail"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	ClientTimeout   = 20 * time.Second
	LocalPartLength = 10

	dateFormat = "2006-01-02 15:04:05"
)

// Client talks to a 1secmail-style API: no registration, no tokens, the
// mailbox is addressed by login/domain query parameters on every call.
type Client struct {
	client  *http.Client
	baseURL string

	l *logrus.Logger
}

func NewClient(baseURL string) (*Client, error) {
	c := &Client{
		client: &http.Client{
			Timeout: ClientTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		l:       log.Logger(log.LOG_PROVIDER),
	}

	c.l.WithFields(logrus.Fields{"url": c.baseURL}).Debug("Using token-less provider")
	return c, nil
}

// CreateAccount asks the provider for a random mailbox and falls back to
// composing one from the domain list when the endpoint returns nothing.
func (c *Client) CreateAccount() (*domain.Account, error) {
	addresses := []string{}
	err := c.getJSON(url.Values{"action": {"genRandomMailbox"}, "count": {"1"}}, &addresses, domain.StageRegister)
	if err == nil && len(addresses) > 0 {
		return splitAddress(addresses[0], domain.StageRegister)
	}

	domains := []string{}
	err = c.getJSON(url.Values{"action": {"getDomainList"}}, &domains, domain.StageDomain)
	if err != nil {
		return nil, err
	}
	if len(domains) == 0 {
		return nil, &domain.ProviderError{Stage: domain.StageDomain, Err: fmt.Errorf("no domain offered by provider")}
	}

	localPart := strings.ReplaceAll(uuid.New().String(), "-", "")[:LocalPartLength]
	account := &domain.Account{Address: fmt.Sprintf("%s@%s", localPart, domains[0])}

	c.l.WithFields(logrus.Fields{"address": account.Address}).Info("Composed mailbox")
	return account, nil
}

// Login rebuilds the account locally. There is no credential to refresh on a
// token-less provider, only the address shape to validate.
func (c *Client) Login(address, _ string) (*domain.Account, error) {
	return splitAddress(address, domain.StageAuthenticate)
}

type apiMessage struct {
	ID      int64  `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
}

func (m *apiMessage) toMessage() domain.Message {
	createdAt, err := time.Parse(dateFormat, m.Date)
	if err != nil {
		createdAt = time.Time{}
	}

	return domain.Message{
		ID:        strconv.FormatInt(m.ID, 10),
		From:      domain.MailAddress{Address: m.From},
		Subject:   m.Subject,
		CreatedAt: createdAt,
	}
}

func (c *Client) ListMessages(account *domain.Account) ([]domain.Message, error) {
	if account == nil || len(account.Address) == 0 {
		return []domain.Message{}, nil
	}

	login, domainName, err := loginAndDomain(account.Address)
	if err != nil {
		return []domain.Message{}, nil
	}

	payload := []apiMessage{}
	err = c.getJSON(url.Values{"action": {"getMessages"}, "login": {login}, "domain": {domainName}}, &payload, domain.StageList)
	if err != nil {
		return nil, err
	}

	messages := []domain.Message{}
	for i := range payload {
		messages = append(messages, payload[i].toMessage())
	}

	return messages, nil
}

func (c *Client) GetMessageDetails(account *domain.Account, id string) (*domain.MessageDetails, error) {
	login, domainName, err := loginAndDomain(account.Address)
	if err != nil {
		return nil, &domain.ProviderError{Stage: domain.StageFetch, Err: err}
	}

	var payload struct {
		apiMessage
		TextBody string `json:"textBody"`
		HTMLBody string `json:"htmlBody"`
		Body     string `json:"body"`
	}
	err = c.getJSON(url.Values{"action": {"readMessage"}, "login": {login}, "domain": {domainName}, "id": {id}}, &payload, domain.StageFetch)
	if err != nil {
		return nil, err
	}

	details := &domain.MessageDetails{
		Message:     payload.apiMessage.toMessage(),
		TextBody:    payload.TextBody,
		HTMLBody:    payload.HTMLBody,
		Attachments: []domain.Attachment{},
	}
	if len(details.HTMLBody) == 0 {
		details.HTMLBody = payload.Body
	}
	// The list payload carries no preview text, so derive one here.
	details.Intro = mail.Preview(details.TextBody, details.HTMLBody)

	return details, nil
}

// DownloadAttachment is not part of the token-less provider surface.
func (c *Client) DownloadAttachment(_ *domain.Account, _, _ string) ([]byte, error) {
	return nil, &domain.ProviderError{
		Stage:  domain.StageDownload,
		Detail: "attachment download not supported by this provider",
		Err:    fmt.Errorf("unsupported operation"),
	}
}

func (c *Client) getJSON(query url.Values, target interface{}, stage domain.ProviderStage) error {
	resp, err := c.client.Get(c.baseURL + "/?" + query.Encode())
	if err != nil {
		return &domain.ProviderError{Stage: stage, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return &domain.ProviderError{
			Stage:  stage,
			Detail: resp.Status,
			Err:    fmt.Errorf("unexpected status %d from provider", resp.StatusCode),
		}
	}

	err = json.NewDecoder(resp.Body).Decode(target)
	if err != nil {
		return &domain.ProviderError{Stage: stage, Err: fmt.Errorf("could not deserialize response: %w", err)}
	}

	return nil
}

func splitAddress(address string, stage domain.ProviderStage) (*domain.Account, error) {
	_, _, err := loginAndDomain(address)
	if err != nil {
		return nil, &domain.ProviderError{Stage: stage, Err: err}
	}

	return &domain.Account{Address: address}, nil
}

func loginAndDomain(address string) (string, string, error) {
	parts := strings.Split(address, "@")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return "", "", fmt.Errorf("malformed mailbox address %q", address)
	}

	return parts[0], parts[1], nil
}
