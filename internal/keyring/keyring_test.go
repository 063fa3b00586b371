package keyring

import (
	"context"
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/notiplan/notiplan/internal/notion"
)

func TestSaveAndCredential(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	p := NewProvider()
	want := notion.Credential{Token: "ntn_secret", WorkspaceID: "ws-1"}
	if err := p.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := p.Credential(context.Background())
	if err != nil {
		t.Fatalf("Credential() failed: %v", err)
	}
	if got.Token != want.Token || got.WorkspaceID != want.WorkspaceID {
		t.Errorf("credential = %+v, want %+v", got, want)
	}
}

func TestCredentialNotFound(t *testing.T) {
	gokeyring.MockInit()

	p := NewProvider()
	_ = p.Invalidate(context.Background())

	_, err := p.Credential(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Credential() error = %v, want ErrNotFound", err)
	}
}

func TestCredentialLegacyBareToken(t *testing.T) {
	gokeyring.MockInit()

	p := NewProvider()
	if err := gokeyring.Set(p.service, p.user, "bare-token"); err != nil {
		t.Fatalf("seed keyring: %v", err)
	}

	got, err := p.Credential(context.Background())
	if err != nil {
		t.Fatalf("Credential() failed: %v", err)
	}
	if got.Token != "bare-token" {
		t.Errorf("token = %q, want bare-token", got.Token)
	}
}

func TestInvalidateIsIdempotent(t *testing.T) {
	gokeyring.MockInit()

	p := NewProvider()
	if err := p.Invalidate(context.Background()); err != nil {
		t.Errorf("Invalidate() on an empty keyring = %v, want nil", err)
	}

	if err := p.Save(notion.Credential{Token: "x"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := p.Invalidate(context.Background()); err != nil {
		t.Errorf("Invalidate() failed: %v", err)
	}
	if err := p.Invalidate(context.Background()); err != nil {
		t.Errorf("second Invalidate() = %v, want nil", err)
	}
}
