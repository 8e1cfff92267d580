package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"sync/atomic"
	"testing"

	"bitbucket.org/Davydov/seqtools/store"
)

const fasta = ">s1\nACGT  \r\n>s2\nTT\n"

func newServer(t *testing.T, hits *int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Path != "/s.fasta" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, fasta)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.fasta")
	if err := os.WriteFile(path, []byte(fasta), 0644); err != nil {
		t.Fatal(err)
	}
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{">s1", "ACGT", ">s2", "TT"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("got %q, want %q", lines, want)
	}
	if _, err := ReadLines(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestFetch(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	f := NewFetcher(nil)
	lines, err := f.Fetch(context.Background(), srv.URL+"/s.fasta")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 || lines[1] != "ACGT" {
		t.Errorf("wrong lines: %q", lines)
	}
	if _, err := f.Fetch(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestFetchCached(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	cache, err := store.Open(filepath.Join(t.TempDir(), "cache.db"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	f := NewFetcher(cache)
	url := srv.URL + "/s.fasta"
	for i := 0; i < 3; i++ {
		text, err := f.FetchText(context.Background(), url)
		if err != nil {
			t.Fatal(err)
		}
		if text != fasta {
			t.Errorf("wrong text: %q", text)
		}
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("server was hit %d times, want 1", n)
	}
}

func TestFetchCanceled(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFetcher(nil).Fetch(ctx, srv.URL+"/s.fasta"); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestLines(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	lines, err := Lines(context.Background(), nil, "ignored", srv.URL+"/s.fasta")
	if err != nil {
		t.Fatal(err)
	}
	if lines[0] != ">s1" {
		t.Error("wrong first line:", lines[0])
	}
	if _, err := Lines(context.Background(), nil, "", ""); err == nil {
		t.Error("expected error without input")
	}
}
