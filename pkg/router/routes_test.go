package router

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vango-dev/outlet/pkg/view"
)

func TestResolve(t *testing.T) {
	home := Route{Title: "Home"}
	notFound := Route{Title: "Not found"}

	tests := []struct {
		name    string
		routes  Routes
		path    string
		wantKey string
		wantOK  bool
	}{
		{"exact match", Routes{"/": home, NotFoundKey: notFound}, "/", "/", true},
		{"fallback", Routes{"/": home, NotFoundKey: notFound}, "/missing", NotFoundKey, true},
		{"case sensitive", Routes{"/about": home, NotFoundKey: notFound}, "/About", NotFoundKey, true},
		{"no normalization", Routes{"/about": home, NotFoundKey: notFound}, "/about/", NotFoundKey, true},
		{"fallback requested directly", Routes{NotFoundKey: notFound}, NotFoundKey, NotFoundKey, true},
		{"no fallback", Routes{"/": home}, "/missing", "", false},
		{"empty table", Routes{}, "/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.routes.Resolve(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", got.Key, tt.wantKey)
			}
		})
	}
}

func TestPathsSorted(t *testing.T) {
	rs := Routes{"/b": {}, "/": {}, NotFoundKey: {}, "/a": {}}
	want := []string{"/", "/404", "/a", "/b"}
	if got := rs.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}
}

func TestSync(t *testing.T) {
	p := newPage("x")
	f := Sync(func() view.Mountable { return p })
	v, err := f(context.Background())
	if err != nil || v != p {
		t.Errorf("Sync factory = %v, %v", v, err)
	}
}

func TestSyncErr(t *testing.T) {
	boom := errors.New("bad config")
	f := SyncErr(func() (*page, error) { return nil, boom })
	v, err := f(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if v != nil {
		t.Errorf("view = %v, want untyped nil", v)
	}

	p := newPage("ok")
	f = SyncErr(func() (*page, error) { return p, nil })
	if v, err := f(context.Background()); err != nil || v != p {
		t.Errorf("SyncErr factory = %v, %v", v, err)
	}
}

func TestEventKindString(t *testing.T) {
	kinds := map[EventKind]string{
		EventStarted:   "started",
		EventMounted:   "mounted",
		EventDiscarded: "discarded",
		EventFailed:    "failed",
		EventUnmatched: "unmatched",
		EventStopped:   "stopped",
		EventKind(0):   "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
