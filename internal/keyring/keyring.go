// Package keyring stores the remote API credential in the operating system
// keychain. The token never touches the configuration store on disk.
package keyring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/logger"
	"github.com/notiplan/notiplan/internal/notion"
)

// ErrNotFound reports that no credential has been stored yet.
var ErrNotFound = errors.New("no stored credential; run setup first")

type storedCredential struct {
	Token       string `json:"token"`
	WorkspaceID string `json:"workspace_id,omitempty"`
}

// Provider reads and writes the credential under a fixed service and
// account name. It satisfies the transport's credential interface.
type Provider struct {
	service string
	user    string
}

// NewProvider returns a provider bound to the application's keychain entry.
func NewProvider() *Provider {
	return &Provider{service: constants.AppName, user: constants.DefaultKeyringUser}
}

// Save stores the credential, replacing any previous one.
func (p *Provider) Save(cred notion.Credential) error {
	blob, err := json.Marshal(storedCredential{Token: cred.Token, WorkspaceID: cred.WorkspaceID})
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	if err := gokeyring.Set(p.service, p.user, string(blob)); err != nil {
		return fmt.Errorf("store credential in keyring: %w", err)
	}
	logger.Debug("credential stored", "service", p.service)
	return nil
}

// Credential fetches the stored credential. A missing entry is ErrNotFound,
// not a transport failure.
func (p *Provider) Credential(_ context.Context) (*notion.Credential, error) {
	blob, err := gokeyring.Get(p.service, p.user)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read credential from keyring: %w", err)
	}
	var stored storedCredential
	if err := json.Unmarshal([]byte(blob), &stored); err != nil {
		// Pre-JSON entries held the bare token.
		stored = storedCredential{Token: blob}
	}
	return &notion.Credential{Token: stored.Token, WorkspaceID: stored.WorkspaceID}, nil
}

// Invalidate deletes the stored credential. Called by the transport when the
// remote rejects it, and by logout.
func (p *Provider) Invalidate(_ context.Context) error {
	if err := gokeyring.Delete(p.service, p.user); err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
		return fmt.Errorf("delete credential from keyring: %w", err)
	}
	return nil
}

// Available probes whether the system keychain is usable.
func Available() bool {
	probe := constants.AppName + "-probe"
	if err := gokeyring.Set(probe, "probe", "ok"); err != nil {
		return false
	}
	_ = gokeyring.Delete(probe, "probe")
	return true
}
