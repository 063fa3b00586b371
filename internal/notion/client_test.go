package notion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/notiplan/notiplan/internal/constants"
	apperrors "github.com/notiplan/notiplan/internal/errors"
)

type stubCreds struct {
	cred        *Credential
	err         error
	invalidated bool
}

func (s *stubCreds) Credential(context.Context) (*Credential, error) { return s.cred, s.err }
func (s *stubCreds) Invalidate(context.Context) error {
	s.invalidated = true
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *stubCreds) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	creds := &stubCreds{cred: &Credential{Token: "secret-token"}}
	return NewClient(creds, WithBaseURL(srv.URL), WithHTTPClient(srv.Client())), creds
}

func TestClientSendsAuthAndVersionHeaders(t *testing.T) {
	var gotAuth, gotVersion string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		w.Write([]byte(`{"id":"p1","properties":{}}`))
	})

	if _, err := client.GetPage(context.Background(), "p1"); err != nil {
		t.Fatalf("GetPage() failed: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotVersion != constants.NotionVersion {
		t.Errorf("Notion-Version = %q, want %q", gotVersion, constants.NotionVersion)
	}
}

func TestClientNotAuthenticated(t *testing.T) {
	client := NewClient(&stubCreds{})
	_, err := client.GetPage(context.Background(), "p1")
	var authErr *apperrors.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want AuthError", err)
	}
}

func TestClientUnauthorizedInvalidatesCredential(t *testing.T) {
	client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetPage(context.Background(), "p1")
	var authErr *apperrors.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want AuthError", err)
	}
	if !creds.invalidated {
		t.Error("credential should be invalidated on 401")
	}
}

func TestClientNotFoundOnDirectLookup(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"object_not_found","message":"Could not find page"}`))
	})

	_, err := client.GetPage(context.Background(), "missing-id")
	var nf *apperrors.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if nf.ID != "missing-id" {
		t.Errorf("not-found id = %q, want missing-id", nf.ID)
	}
}

func TestClientRemoteErrorCarriesStatusAndMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"validation_error","message":"body failed validation"}`))
	})

	_, err := client.QueryDatabase(context.Background(), "db1", QueryRequest{})
	var re *apperrors.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want RemoteError", err)
	}
	if re.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", re.StatusCode)
	}
	if re.Message != "body failed validation" {
		t.Errorf("message = %q", re.Message)
	}
}

func TestClientQueryDecodesResults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/databases/db1/query" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"results":[{"id":"p1","properties":{}},{"id":"p2","properties":{}}],"has_more":false}`))
	})

	resp, err := client.QueryDatabase(context.Background(), "db1", QueryRequest{})
	if err != nil {
		t.Fatalf("QueryDatabase() failed: %v", err)
	}
	if len(resp.Results) != 2 || resp.Results[0].ID != "p1" {
		t.Errorf("results = %+v", resp.Results)
	}
}
