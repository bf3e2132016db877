// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"errors"
	"fmt"
)

type ProviderStage string

const (
	StageDomain       = ProviderStage("domain")
	StageRegister     = ProviderStage("register")
	StageAuthenticate = ProviderStage("authenticate")
	StageList         = ProviderStage("list")
	StageFetch        = ProviderStage("fetch")
	StageDownload     = ProviderStage("download")
)

// ErrUnauthorized is returned by MailProvider.ListMessages when the provider
// rejects the credential. Callers treat it as an empty inbox; the session
// layer counts consecutive occurrences to detect a dead mailbox.
var ErrUnauthorized = errors.New("credential rejected by provider")

// ProviderError wraps a failed provider call. Detail carries the provider's
// own error description when the response body contained one, otherwise the
// transport status text.
type ProviderError struct {
	Stage  ProviderStage
	Detail string
	Err    error
}

func (e *ProviderError) Error() string {
	if len(e.Detail) > 0 {
		return fmt.Sprintf("provider %s failed: %s", e.Stage, e.Detail)
	}
	return fmt.Sprintf("provider %s failed: %v", e.Stage, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
