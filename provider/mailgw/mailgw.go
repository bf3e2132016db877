// SPDX-License-Identifier: GPL-3.0-or-later
package mailgw

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/driftbox/go-driftbox/domain"
	"github.com/driftbox/go-driftbox/log"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	ClientTimeout   = 20 * time.Second
	LocalPartLength = 10
)

// Client talks to a mail.gw/mail.tm-style API: bearer-token auth and
// hydra-envelope collections.
type Client struct {
	client  *http.Client
	baseURL string
	domain  string

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

	domainName, err := c.fetchDomain()
	if err != nil {
		return nil, err
	}
	c.domain = domainName

	c.l.WithFields(logrus.Fields{"url": c.baseURL, "domain": c.domain}).Debug("Connected to provider")
	return c, nil
}

type apiDomain struct {
	Domain   string `json:"domain"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) fetchDomain() (string, error) {
	resp, err := c.client.Get(c.baseURL + "/domains")
	if err != nil {
		return "", &domain.ProviderError{Stage: domain.StageDomain, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", stageError(domain.StageDomain, resp)
	}

	var envelope struct {
		Member []apiDomain `json:"hydra:member"`
	}
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return "", &domain.ProviderError{Stage: domain.StageDomain, Err: fmt.Errorf("could not deserialize domains: %w", err)}
	}

	for _, d := range envelope.Member {
		if d.IsActive {
			return d.Domain, nil
		}
	}

	return "", &domain.ProviderError{Stage: domain.StageDomain, Err: fmt.Errorf("no active domain offered by provider")}
}

func (c *Client) CreateAccount() (*domain.Account, error) {
	address := fmt.Sprintf("%s@%s", randomLocalPart(), c.domain)
	password := uuid.New().String()

	registered, err := c.postCredentials("/accounts", domain.StageRegister, address, password)
	if err != nil {
		return nil, err
	}

	account, err := c.Login(address, password)
	if err != nil {
		return nil, err
	}

	if len(account.ID) == 0 {
		account.ID = registered.ID
	}

	c.l.WithFields(logrus.Fields{"address": account.Address}).Info("Created mailbox")
	return account, nil
}

func (c *Client) Login(address, password string) (*domain.Account, error) {
	authenticated, err := c.postCredentials("/token", domain.StageAuthenticate, address, password)
	if err != nil {
		return nil, err
	}

	return &domain.Account{
		Address:  address,
		Password: password,
		Token:    authenticated.Token,
		ID:       authenticated.ID,
	}, nil
}

type credentialResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

func (c *Client) postCredentials(path string, stage domain.ProviderStage, address, password string) (*credentialResponse, error) {
	payload, err := json.Marshal(map[string]string{"address": address, "password": password})
	if err != nil {
		return nil, &domain.ProviderError{Stage: stage, Err: fmt.Errorf("could not serialize credentials: %w", err)}
	}

	resp, err := c.client.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, &domain.ProviderError{Stage: stage, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, stageError(stage, resp)
	}

	response := &credentialResponse{}
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return nil, &domain.ProviderError{Stage: stage, Err: fmt.Errorf("could not deserialize response: %w", err)}
	}

	return response, nil
}

type apiMessage struct {
	ID        string             `json:"id"`
	From      domain.MailAddress `json:"from"`
	Subject   string             `json:"subject"`
	CreatedAt time.Time          `json:"createdAt"`
	Intro     string             `json:"intro"`
	Seen      bool               `json:"seen"`
}

func (m *apiMessage) toMessage() domain.Message {
	return domain.Message{
		ID:        m.ID,
		From:      m.From,
		Subject:   m.Subject,
		CreatedAt: m.CreatedAt,
		Intro:     m.Intro,
		Seen:      m.Seen,
	}
}

// ListMessages returns the inbox snapshot in upstream order. A missing
// credential yields an empty list so background polling can degrade
// silently; a rejected one yields ErrUnauthorized so the caller can count.
func (c *Client) ListMessages(account *domain.Account) ([]domain.Message, error) {
	if account == nil || len(account.Token) == 0 {
		return []domain.Message{}, nil
	}

	resp, err := c.getAuthenticated(account, "/messages")
	if err != nil {
		return nil, &domain.ProviderError{Stage: domain.StageList, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, stageError(domain.StageList, resp)
	}

	var envelope struct {
		Member []apiMessage `json:"hydra:member"`
	}
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return nil, &domain.ProviderError{Stage: domain.StageList, Err: fmt.Errorf("could not deserialize messages: %w", err)}
	}

	messages := []domain.Message{}
	for i := range envelope.Member {
		messages = append(messages, envelope.Member[i].toMessage())
	}

	return messages, nil
}

func (c *Client) GetMessageDetails(account *domain.Account, id string) (*domain.MessageDetails, error) {
	resp, err := c.getAuthenticated(account, "/messages/"+id)
	if err != nil {
		return nil, &domain.ProviderError{Stage: domain.StageFetch, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, stageError(domain.StageFetch, resp)
	}

	var payload struct {
		apiMessage
		Text        string   `json:"text"`
		HTML        []string `json:"html"`
		Attachments []struct {
			ID          string `json:"id"`
			Filename    string `json:"filename"`
			ContentType string `json:"contentType"`
			Size        int64  `json:"size"`
		} `json:"attachments"`
	}
	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return nil, &domain.ProviderError{Stage: domain.StageFetch, Err: fmt.Errorf("could not deserialize message: %w", err)}
	}

	details := &domain.MessageDetails{
		Message:     payload.apiMessage.toMessage(),
		TextBody:    payload.Text,
		Attachments: []domain.Attachment{},
	}
	if len(payload.HTML) > 0 {
		details.HTMLBody = payload.HTML[0]
	}
	for _, a := range payload.Attachments {
		details.Attachments = append(details.Attachments, domain.Attachment{
			ID:          a.ID,
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Size:        a.Size,
		})
	}

	// Marking the message seen is a courtesy to the provider, never a
	// precondition for returning the details.
	c.markSeen(account, id)

	return details, nil
}

func (c *Client) markSeen(account *domain.Account, id string) {
	req, err := http.NewRequest(http.MethodPatch, c.baseURL+"/messages/"+id, strings.NewReader(`{"seen":true}`))
	if err != nil {
		c.l.WithFields(logrus.Fields{"id": id, "error": err}).Debug("Could not create seen request")
		return
	}
	req.Header.Set("Content-Type", "application/merge-patch+json")
	req.Header.Set("Authorization", "Bearer "+account.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		c.l.WithFields(logrus.Fields{"id": id, "error": err}).Debug("Could not mark message seen")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		c.l.WithFields(logrus.Fields{"id": id, "status": resp.StatusCode}).Debug("Provider refused seen update")
	}
}

func (c *Client) DownloadAttachment(account *domain.Account, messageID, attachmentID string) ([]byte, error) {
	resp, err := c.getAuthenticated(account, "/messages/"+messageID+"/download/"+attachmentID)
	if err != nil {
		return nil, &domain.ProviderError{Stage: domain.StageDownload, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, stageError(domain.StageDownload, resp)
	}

	blob, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ProviderError{Stage: domain.StageDownload, Err: fmt.Errorf("could not read attachment: %w", err)}
	}

	return blob, nil
}

func (c *Client) getAuthenticated(account *domain.Account, path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+account.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request to provider: %w", err)
	}

	return resp, nil
}

// stageError drains the response body looking for the provider's own error
// description, falling back to the transport status text.
func stageError(stage domain.ProviderStage, resp *http.Response) error {
	detail := resp.Status

	body, err := ioutil.ReadAll(resp.Body)
	if err == nil {
		var payload struct {
			HydraDescription string `json:"hydra:description"`
			Detail           string `json:"detail"`
			Message          string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			for _, candidate := range []string{payload.HydraDescription, payload.Detail, payload.Message} {
				if len(candidate) > 0 {
					detail = candidate
					break
				}
			}
		}
	}

	return &domain.ProviderError{
		Stage:  stage,
		Detail: detail,
		Err:    fmt.Errorf("unexpected status %d from provider", resp.StatusCode),
	}
}

func randomLocalPart() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:LocalPartLength]
}
