package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshmriduhash/Cold-Emailer/pkg/model"
)

func TestNew_EmptyURL(t *testing.T) {
	if _, err := New("", nil); !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("want ErrEmptyURL, got %v", err)
	}
}

func TestDispatch_OK(t *testing.T) {
	var got model.Payload
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Errorf("want POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c, err := New(srv.URL, srv.Client())
	if err != nil {
		t.Fatal(err)
	}
	p := model.Payload{
		JobTitle: "T", JobDescription: "D", CompanyName: "C",
		People: []model.Person{{ID: "r-1", Name: "A", Email: "a@x.io"}, {ID: "r-2", Name: "B", Email: "b@x.io"}},
	}
	if err := c.Dispatch(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("want 1 call, got %d", calls)
	}
	if len(got.People) != 2 || got.People[0].ID != "r-1" || got.People[1].ID != "r-2" {
		t.Fatalf("unexpected people: %+v", got.People)
	}
}

func TestDispatch_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, srv.Client())
	err := c.Dispatch(context.Background(), model.Payload{})
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Fatalf("want StatusError 500, got %v", err)
	}
}

type failingClient struct{}

func (failingClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestDispatch_TransportError(t *testing.T) {
	c, _ := New("http://dispatch.invalid/hook", failingClient{})
	err := c.Dispatch(context.Background(), model.Payload{})
	if err == nil {
		t.Fatal("expected error")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Fatalf("transport failure reported as status: %v", err)
	}
}
