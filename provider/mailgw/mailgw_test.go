// SPDX-License-Identifier: GPL-3.0-or-later
package mailgw

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/driftbox/go-driftbox/domain"
	"github.com/driftbox/go-driftbox/log"

	"github.com/stretchr/testify/assert"
)

const domainsPayload = `{"hydra:member":[{"domain":"stale.example","isActive":false},{"domain":"box.example","isActive":true}]}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	log.InitLogging("error")

	mux := http.NewServeMux()
	mux.HandleFunc("/domains", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(domainsPayload))
	})
	if handler != nil {
		mux.Handle("/", handler)
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	assert.NoError(t, err)

	return client, server
}

func TestNewClient_PicksActiveDomain(t *testing.T) {
	client, _ := newTestClient(t, nil)
	assert.Equal(t, "box.example", client.domain)
}

func TestNewClient_NoActiveDomain(t *testing.T) {
	log.InitLogging("error")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hydra:member":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)

	assert.Nil(t, client)
	providerErr := &domain.ProviderError{}
	assert.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.StageDomain, providerErr.Stage)
}

func TestClient_CreateAccount(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)
		credentials := map[string]string{}
		assert.NoError(t, json.Unmarshal(body, &credentials))
		assert.True(t, strings.HasSuffix(credentials["address"], "@box.example"))
		assert.NotEmpty(t, credentials["password"])

		switch r.URL.Path {
		case "/accounts":
			assert.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"acc-1"}`))
		case "/token":
			assert.Equal(t, http.MethodPost, r.Method)
			w.Write([]byte(`{"token":"tok-1"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	account, err := client.CreateAccount()

	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(account.Address, "@box.example"))
	assert.Len(t, strings.Split(account.Address, "@")[0], LocalPartLength)
	assert.Equal(t, "tok-1", account.Token)
	assert.Equal(t, "acc-1", account.ID)
	assert.NotEmpty(t, account.Password)
}

func TestClient_CreateAccountSurfacesProviderDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"hydra:description":"address: This value is already used."}`))
	}))

	account, err := client.CreateAccount()

	assert.Nil(t, account)
	providerErr := &domain.ProviderError{}
	assert.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.StageRegister, providerErr.Stage)
	assert.Equal(t, "address: This value is already used.", providerErr.Detail)
}

func TestClient_LoginFailureIsAuthenticateStage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials."}`))
	}))

	account, err := client.Login("a@box.example", "pw")

	assert.Nil(t, account)
	providerErr := &domain.ProviderError{}
	assert.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.StageAuthenticate, providerErr.Stage)
	assert.Equal(t, "Invalid credentials.", providerErr.Detail)
}

func TestClient_ListMessages(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Write([]byte(`{"hydra:member":[
			{"id":"m2","from":{"address":"b@x.y","name":"B"},"subject":"second","createdAt":"2024-05-01T10:00:00Z","intro":"hi","seen":false},
			{"id":"m1","from":{"address":"a@x.y","name":"A"},"subject":"first","createdAt":"2024-05-01T09:00:00Z","intro":"ho","seen":true}
		]}`))
	}))

	messages, err := client.ListMessages(&domain.Account{Address: "a@box.example", Token: "tok-1"})

	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	// Upstream order is preserved, not re-sorted.
	assert.Equal(t, "m2", messages[0].ID)
	assert.Equal(t, "B", messages[0].From.Name)
	assert.Equal(t, "m1", messages[1].ID)
	assert.True(t, messages[1].Seen)
}

func TestClient_ListMessagesWithoutTokenIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a credential")
	}))

	messages, err := client.ListMessages(&domain.Account{Address: "a@box.example"})
	assert.NoError(t, err)
	assert.Empty(t, messages)

	messages, err = client.ListMessages(nil)
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestClient_ListMessagesUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	messages, err := client.ListMessages(&domain.Account{Address: "a@box.example", Token: "expired"})

	assert.Nil(t, messages)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestClient_GetMessageDetails(t *testing.T) {
	seen := make(chan string, 1)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/m1", r.URL.Path)

		if r.Method == http.MethodPatch {
			body, _ := ioutil.ReadAll(r.Body)
			seen <- string(body)
			w.WriteHeader(http.StatusOK)
			return
		}

		w.Write([]byte(`{
			"id":"m1","from":{"address":"a@x.y","name":"A"},"subject":"first","createdAt":"2024-05-01T09:00:00Z","intro":"ho",
			"text":"plain body",
			"html":["<p>html body</p>","<p>ignored alternative</p>"],
			"attachments":[{"id":"att-1","filename":"cv.pdf","contentType":"application/pdf","size":1234}]
		}`))
	}))

	details, err := client.GetMessageDetails(&domain.Account{Token: "tok-1"}, "m1")

	assert.NoError(t, err)
	assert.Equal(t, "m1", details.ID)
	assert.Equal(t, "plain body", details.TextBody)
	assert.Equal(t, "<p>html body</p>", details.HTMLBody)
	assert.Len(t, details.Attachments, 1)
	assert.Equal(t, "cv.pdf", details.Attachments[0].Filename)
	assert.Equal(t, int64(1234), details.Attachments[0].Size)

	assert.Equal(t, `{"seen":true}`, <-seen)
}

func TestClient_GetMessageDetailsSeenFailureDoesNotBlock(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id":"m1","from":{"address":"a@x.y"},"subject":"s","createdAt":"2024-05-01T09:00:00Z","text":"body"}`))
	}))

	details, err := client.GetMessageDetails(&domain.Account{Token: "tok-1"}, "m1")

	assert.NoError(t, err)
	assert.Equal(t, "body", details.TextBody)
}

func TestClient_DownloadAttachment(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/m1/download/att-1", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Write([]byte{0x25, 0x50, 0x44, 0x46})
	}))

	blob, err := client.DownloadAttachment(&domain.Account{Token: "tok-1"}, "m1", "att-1")

	assert.NoError(t, err)
	assert.Equal(t, []byte{0x25, 0x50, 0x44, 0x46}, blob)
}

func TestClient_DownloadAttachmentFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	blob, err := client.DownloadAttachment(&domain.Account{Token: "tok-1"}, "m1", "gone")

	assert.Nil(t, blob)
	providerErr := &domain.ProviderError{}
	assert.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.StageDownload, providerErr.Stage)
}
