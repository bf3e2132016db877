// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/driftbox/go-driftbox/countdown"
	"github.com/driftbox/go-driftbox/domain"
	"github.com/driftbox/go-driftbox/log"
	"github.com/driftbox/go-driftbox/mail"

	"github.com/sirupsen/logrus"
)

// Controller owns the single active mailbox: it provisions accounts, drives
// the polling loop, reconciles inbox snapshots and guards the currently open
// message against stale responses. Everything else only calls it.
type Controller struct {
	provider  domain.MailProvider
	favorites domain.FavoriteStore
	notifier  domain.Notifier
	timer     *countdown.Timer

	configuration *configuration

	mu              sync.Mutex
	account         *domain.Account
	messages        []domain.Message
	selectedID      string
	selectedDetails *domain.MessageDetails

	pollCtx    context.Context
	pollCancel context.CancelFunc
	pollSeq    uint64
	appliedSeq uint64
	selectSeq  uint64

	starting           bool
	firstPoll          bool
	unauthorizedStreak int

	l *logrus.Logger
}

func NewController(provider domain.MailProvider, favorites domain.FavoriteStore, notifier domain.Notifier, timer *countdown.Timer, configFunc ...ConfigFunc) (*Controller, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	c := &Controller{
		provider:      provider,
		favorites:     favorites,
		notifier:      notifier,
		timer:         timer,
		configuration: config,
		l:             log.Logger(log.LOG_SESSION),
	}

	// The expiry action is read through the timer's handler cell at fire
	// time, so later rebinding (e.g. a prompt instead of regeneration)
	// takes effect without re-arming.
	timer.SetOnExpire(c.expire)

	return c, nil
}

// StartNewSession provisions a fresh mailbox and installs it as the active
// session. Calls arriving while one is in flight are ignored rather than
// racing two accounts against each other. On provider failure the previous
// session stays untouched.
func (c *Controller) StartNewSession() error {
	if !c.beginProvisioning() {
		c.l.Debug("Ignoring session start, another one is in flight")
		return nil
	}
	defer c.endProvisioning()

	account, err := c.provider.CreateAccount()
	if err != nil {
		c.l.WithField("error", err).Warn("Could not create mailbox")
		c.notifier.SessionError(err)
		return err
	}

	c.install(account)
	c.notifier.MailboxReady(*account)
	return nil
}

// SwitchToFavorite re-activates a stored mailbox. Switching to the already
// active address is a no-op; a rejected stored password leaves the active
// session untouched.
func (c *Controller) SwitchToFavorite(favorite *domain.Account) error {
	c.mu.Lock()
	if c.account != nil && c.account.Address == favorite.Address {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	if !c.beginProvisioning() {
		c.l.Debug("Ignoring favorite switch, a session change is in flight")
		return nil
	}
	defer c.endProvisioning()

	account, err := c.provider.Login(favorite.Address, favorite.Password)
	if err != nil {
		c.l.WithFields(logrus.Fields{"address": favorite.Address, "error": err}).Warn("Could not log in to favorite")
		c.notifier.SessionError(err)
		return err
	}

	c.install(account)
	c.notifier.MailboxSwitched(*account)
	return nil
}

func (c *Controller) beginProvisioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.starting {
		return false
	}
	c.starting = true
	return true
}

func (c *Controller) endProvisioning() {
	c.mu.Lock()
	c.starting = false
	c.mu.Unlock()
}

// install replaces the active session. The old poll loop is cancelled under
// the same lock and strictly before the new account is visible, so a
// late-firing poll of the previous session can never land in the new list.
func (c *Controller) install(account *domain.Account) {
	c.mu.Lock()
	if c.pollCancel != nil {
		c.pollCancel()
	}

	c.account = account
	c.messages = []domain.Message{}
	c.selectedID = ""
	c.selectedDetails = nil
	c.selectSeq++
	c.firstPoll = true
	c.unauthorizedStreak = 0

	ctx, cancel := context.WithCancel(context.Background())
	c.pollCtx = ctx
	c.pollCancel = cancel
	c.mu.Unlock()

	c.timer.Reset(c.configuration.SessionMinutes)
	c.l.WithFields(logrus.Fields{"address": account.Address}).Info("Installed mailbox")

	go c.pollLoop(ctx)
}

func (c *Controller) pollLoop(ctx context.Context) {
	c.pollOnce(ctx)

	ticker := time.NewTicker(c.configuration.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.pollOnce(ctx)
		}
	}
}

// pollOnce fetches one inbox snapshot and reconciles it. Transient errors
// are logged and swallowed, the previous list survives until a poll
// succeeds.
func (c *Controller) pollOnce(ctx context.Context) {
	c.mu.Lock()
	account := c.account
	c.pollSeq++
	seq := c.pollSeq
	c.mu.Unlock()

	messages, err := c.provider.ListMessages(account)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.recordUnauthorized(ctx)
			return
		}

		c.l.WithField("error", err).Debug("Poll failed")
		return
	}

	c.applySnapshot(ctx, seq, messages)
}

// applySnapshot replaces the held message list with the fetched one and
// emits one NewMail per id that was absent from the previous snapshot, in
// upstream arrival order. The first snapshot after an install never
// notifies. Responses from a torn-down session or older than the last
// applied snapshot are discarded.
func (c *Controller) applySnapshot(ctx context.Context, seq uint64, snapshot []domain.Message) {
	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()
		c.l.Debug("Discarding poll of a torn-down session")
		return
	}
	if seq <= c.appliedSeq {
		applied := c.appliedSeq
		c.mu.Unlock()
		c.l.WithFields(logrus.Fields{"seq": seq, "applied": applied}).Debug("Discarding out-of-order poll")
		return
	}
	c.appliedSeq = seq

	known := map[string]bool{}
	for _, m := range c.messages {
		known[m.ID] = true
	}

	arrived := []domain.Message{}
	if !c.firstPoll {
		for _, m := range snapshot {
			if !known[m.ID] {
				arrived = append(arrived, m)
			}
		}
	}

	c.firstPoll = false
	c.messages = snapshot
	c.unauthorizedStreak = 0
	c.mu.Unlock()

	for _, m := range arrived {
		c.l.WithFields(logrus.Fields{"from": mail.FormatAddress(m.From), "subject": mail.ShortSubject(m.Subject)}).Info("New mail")
		c.notifier.NewMail(m)
	}
}

// recordUnauthorized counts consecutive credential rejections. One is an
// empty inbox as far as the UI is concerned; a whole streak means the
// mailbox is dead upstream and polling it forever would be pointless.
func (c *Controller) recordUnauthorized(ctx context.Context) {
	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()
		return
	}

	c.unauthorizedStreak++
	if c.unauthorizedStreak < c.configuration.UnauthorizedLimit {
		streak := c.unauthorizedStreak
		c.mu.Unlock()
		c.l.WithFields(logrus.Fields{"streak": streak}).Debug("Poll unauthorized")
		return
	}

	address := ""
	if c.account != nil {
		address = c.account.Address
	}
	if c.pollCancel != nil {
		c.pollCancel()
	}
	c.account = nil
	c.messages = []domain.Message{}
	c.selectedID = ""
	c.selectedDetails = nil
	c.selectSeq++
	c.mu.Unlock()

	c.l.WithFields(logrus.Fields{"address": address}).Warn("Credential rejected repeatedly, ending session")
	c.notifier.MailboxExpired(address)
}

// SelectMessage opens a message and loads its details in the background.
// Re-selecting an already loaded message does nothing.
func (c *Controller) SelectMessage(id string) {
	c.mu.Lock()
	if c.selectedID == id && c.selectedDetails != nil {
		c.mu.Unlock()
		return
	}

	account := c.account
	if account == nil {
		c.mu.Unlock()
		return
	}

	c.selectedID = id
	c.selectedDetails = nil
	c.selectSeq++
	seq := c.selectSeq
	c.mu.Unlock()

	go c.loadDetails(account, id, seq)
}

// loadDetails installs the fetched details only if the selection is still
// the one the fetch was started for. A slow fetch must never overwrite a
// newer selection.
func (c *Controller) loadDetails(account *domain.Account, id string, seq uint64) {
	details, err := c.provider.GetMessageDetails(account, id)

	c.mu.Lock()
	if c.selectSeq != seq || c.selectedID != id {
		c.mu.Unlock()
		c.l.WithField("id", id).Debug("Discarding details of a superseded selection")
		return
	}

	if err != nil {
		c.selectedID = ""
		c.mu.Unlock()
		c.l.WithFields(logrus.Fields{"id": id, "error": err}).Warn("Could not fetch message details")
		c.notifier.SessionError(err)
		return
	}

	c.selectedDetails = details
	c.mu.Unlock()
}

func (c *Controller) Deselect() {
	c.mu.Lock()
	c.selectedID = ""
	c.selectedDetails = nil
	c.selectSeq++
	c.mu.Unlock()
}

// ToggleFavorite adds the active mailbox to the favorites or removes it,
// depending on current membership. Without an active mailbox it does
// nothing.
func (c *Controller) ToggleFavorite() error {
	c.mu.Lock()
	account := c.account
	c.mu.Unlock()

	if account == nil {
		return nil
	}

	contains, err := c.favorites.Contains(account.Address)
	if err != nil {
		return fmt.Errorf("could not check favorite membership: %w", err)
	}

	if contains {
		err = c.favorites.Remove(account.Address)
		if err != nil {
			return fmt.Errorf("could not remove favorite: %w", err)
		}
		return nil
	}

	err = c.favorites.Add(account)
	if err != nil {
		return fmt.Errorf("could not add favorite: %w", err)
	}
	return nil
}

// Refresh runs one out-of-cycle poll, synchronously, for the manual refresh
// control.
func (c *Controller) Refresh() {
	c.mu.Lock()
	ctx := c.pollCtx
	c.mu.Unlock()

	if ctx == nil || ctx.Err() != nil {
		return
	}

	c.pollOnce(ctx)
}

// Renew re-arms the expiry countdown without touching the mailbox.
func (c *Controller) Renew() {
	c.timer.Reset(c.configuration.SessionMinutes)
}

func (c *Controller) DownloadAttachment(messageID, attachmentID string) ([]byte, error) {
	c.mu.Lock()
	account := c.account
	c.mu.Unlock()

	if account == nil {
		return nil, fmt.Errorf("no active mailbox")
	}

	blob, err := c.provider.DownloadAttachment(account, messageID, attachmentID)
	if err != nil {
		c.l.WithFields(logrus.Fields{"message": messageID, "attachment": attachmentID, "error": err}).Warn("Could not download attachment")
		return nil, err
	}

	return blob, nil
}

func (c *Controller) ListFavorites() ([]*domain.Account, error) {
	return c.favorites.All()
}

func (c *Controller) Account() *domain.Account {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.account == nil {
		return nil
	}
	account := *c.account
	return &account
}

func (c *Controller) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	messages := make([]domain.Message, len(c.messages))
	copy(messages, c.messages)
	return messages
}

func (c *Controller) Selected() (string, *domain.MessageDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.selectedID, c.selectedDetails
}

func (c *Controller) Remaining() int {
	return c.timer.Remaining()
}

func (c *Controller) expire() {
	c.mu.Lock()
	address := ""
	if c.account != nil {
		address = c.account.Address
	}
	c.mu.Unlock()

	c.l.WithFields(logrus.Fields{"address": address}).Info("Mailbox expired")
	c.notifier.MailboxExpired(address)

	err := c.StartNewSession()
	if err != nil {
		c.l.WithField("error", err).Warn("Could not regenerate mailbox after expiry")
	}
}

// Close tears the session down: polling stops deterministically, in-flight
// responses are discarded by the context guard.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.pollCancel != nil {
		c.pollCancel()
		c.pollCancel = nil
	}
	c.account = nil
	c.mu.Unlock()

	c.timer.Stop()
}
