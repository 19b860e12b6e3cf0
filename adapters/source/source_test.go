package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	data, err := NewFetcher(0).Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("Fetch() = %q", data)
	}
}

func TestFetchFileMissing(t *testing.T) {
	_, err := NewFetcher(0).Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFetchEmptyRef(t *testing.T) {
	if _, err := NewFetcher(0).Fetch(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty ref")
	}
}

func TestFetchURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))
	defer ts.Close()

	data, err := NewFetcher(5*time.Second).Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("Fetch() = %q", data)
	}
}

func TestFetchURLNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	if _, err := NewFetcher(5*time.Second).Fetch(context.Background(), ts.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
