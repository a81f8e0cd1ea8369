package blobd

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/futliga/liga-api/internal/usecase"
)

func TestClientUpload_PutsObjectAndReturnsPublicURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/o/players/team-1/photo-1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "image/jpeg" {
			t.Fatalf("unexpected content type: %s", got)
		}
		if got := r.Header.Get("x-access-key"); got != "store-key" {
			t.Fatalf("unexpected access key: %s", got)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		if string(body) != "jpeg-bytes" {
			t.Fatalf("unexpected body: %q", body)
		}

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "https://cdn.liga.example", "store-key", nil)

	url, err := client.Upload(t.Context(), "players/team-1/photo-1", "image/jpeg", []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://cdn.liga.example/o/players/team-1/photo-1" {
		t.Fatalf("unexpected public url: %s", url)
	}
}

func TestClientDelete_MissingObjectWrapsNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "", "", nil)

	err := client.Delete(t.Context(), "players/team-1/gone")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClientDelete_ServerErrorIsReported(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "", "", nil)

	if err := client.Delete(t.Context(), "albums/x/y"); err == nil {
		t.Fatal("expected error for server failure")
	}
}
