package leetcode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statcard/pkg/core/stats"
	"github.com/matzehuels/statcard/pkg/errors"
)

const aliceResponse = `{
  "data": {
    "problems": [
      {"difficulty": "All", "count": 3100},
      {"difficulty": "Easy", "count": 800},
      {"difficulty": "Medium", "count": 1600},
      {"difficulty": "Hard", "count": 700}
    ],
    "matchedUser": {
      "username": "alice",
      "profile": {"realname": "Alice", "country": "France", "ranking": 1234},
      "submitStats": {"acSubmissionNum": [
        {"difficulty": "All", "count": 42, "submissions": 90},
        {"difficulty": "Easy", "count": 30, "submissions": 50},
        {"difficulty": "Medium", "count": 10, "submissions": 30},
        {"difficulty": "Hard", "count": 2, "submissions": 10}
      ]},
      "userCalendar": {"streak": 7}
    }
  }
}`

type fakeLeetCode struct {
	handshakes atomic.Int32
	graphql    func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeLeetCode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/":
		f.handshakes.Add(1)
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok123"})
		w.Write([]byte("<html></html>"))
	case r.Method == http.MethodPost && r.URL.Path == "/graphql":
		f.graphql(w, r)
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, fake *fakeLeetCode) *Client {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	c := NewClient(WithBaseURL(server.URL+"/"), WithLogger(log.New(io.Discard)))
	c.SetHTTPClient(server.Client())
	return c
}

func TestFetchProfile(t *testing.T) {
	var gotReq request
	var headers http.Header
	fake := &fakeLeetCode{graphql: func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(aliceResponse))
	}}
	c := newTestClient(t, fake)

	p, err := c.FetchProfile(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FetchProfile() error: %v", err)
	}

	if gotReq.Variables.ID != "alice" || gotReq.Query != query {
		t.Errorf("request = %+v", gotReq)
	}
	if got := headers.Get("x-csrftoken"); got != "tok123" {
		t.Errorf("x-csrftoken = %q", got)
	}
	if got := headers.Get("Cookie"); got != "csrftoken=tok123; LEETCODE_SESSION=" {
		t.Errorf("Cookie = %q", got)
	}
	if headers.Get("Referer") == "" || headers.Get("Origin") == "" {
		t.Error("Referer and Origin should be set")
	}

	if p.Username != "alice" || p.RealName != "Alice" || p.Country != "France" {
		t.Errorf("profile = %+v", p)
	}
	if p.Ranking != 1234 || p.Streak != 7 {
		t.Errorf("ranking/streak = %d/%d", p.Ranking, p.Streak)
	}
	solved, total, err := p.Aggregate()
	if err != nil || solved != 42 || total != 3100 {
		t.Errorf("Aggregate() = %d, %d, %v", solved, total, err)
	}
	hard, _ := p.Item(stats.Hard)
	if hard.Solved != 2 || hard.Total != 700 || hard.Submissions != 10 {
		t.Errorf("hard = %+v", hard)
	}
}

func TestFetchProfileReusesToken(t *testing.T) {
	fake := &fakeLeetCode{graphql: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(aliceResponse))
	}}
	c := newTestClient(t, fake)

	for range 3 {
		if _, err := c.FetchProfile(context.Background(), "alice"); err != nil {
			t.Fatal(err)
		}
	}
	if n := fake.handshakes.Load(); n != 1 {
		t.Errorf("handshakes = %d, want 1", n)
	}
}

func TestFetchProfileUnknownUser(t *testing.T) {
	fake := &fakeLeetCode{graphql: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"problems":[],"matchedUser":null},"errors":[{"message":"That user does not exist."}]}`))
	}}
	c := newTestClient(t, fake)

	_, err := c.FetchProfile(context.Background(), "ghost")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestFetchProfileUnknownDifficulty(t *testing.T) {
	fake := &fakeLeetCode{graphql: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"problems":[{"difficulty":"Extreme","count":1}],"matchedUser":{"username":"alice"}}}`))
	}}
	c := newTestClient(t, fake)

	_, err := c.FetchProfile(context.Background(), "alice")
	if !errors.Is(err, errors.ErrCodeInvalidDifficulty) {
		t.Errorf("error = %v, want INVALID_DIFFICULTY", err)
	}
}

func TestFetchProfileInvalidUsername(t *testing.T) {
	fake := &fakeLeetCode{graphql: func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}}
	c := newTestClient(t, fake)

	for _, name := range []string{"", "bad name", "<script>"} {
		if _, err := c.FetchProfile(context.Background(), name); !errors.Is(err, errors.ErrCodeInvalidUsername) {
			t.Errorf("FetchProfile(%q) error = %v, want INVALID_USERNAME", name, err)
		}
	}
}

func TestFetchProfileClientError(t *testing.T) {
	fake := &fakeLeetCode{graphql: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}}
	c := newTestClient(t, fake)

	_, err := c.FetchProfile(context.Background(), "alice")
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("error = %v, want NETWORK_ERROR", err)
	}
}

func TestFetchProfileRejectedTokenHandshakesAgain(t *testing.T) {
	var calls atomic.Int32
	fake := &fakeLeetCode{graphql: func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(aliceResponse))
	}}
	c := newTestClient(t, fake)

	if _, err := c.FetchProfile(context.Background(), "alice"); !errors.Is(err, errors.ErrCodeNetwork) {
		t.Fatalf("first fetch error = %v, want NETWORK_ERROR", err)
	}
	p, err := c.FetchProfile(context.Background(), "alice")
	if err != nil {
		t.Fatalf("second fetch error = %v", err)
	}
	if p.Username != "alice" {
		t.Errorf("username = %q", p.Username)
	}
	if n := fake.handshakes.Load(); n != 2 {
		t.Errorf("handshakes = %d, want 2", n)
	}
}

func TestFetchProfileCancelled(t *testing.T) {
	fake := &fakeLeetCode{graphql: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(aliceResponse))
	}}
	c := newTestClient(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.FetchProfile(ctx, "alice"); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestProfileMissingTotal(t *testing.T) {
	d := data{
		Problems:    []count{{Difficulty: "All", Count: 10}},
		MatchedUser: &matchedUser{Username: "alice"},
	}
	d.MatchedUser.SubmitStats.AcSubmissionNum = []count{{Difficulty: "Easy", Count: 1}}

	if _, err := d.profile("alice"); !errors.Is(err, errors.ErrCodeMissingStat) {
		t.Errorf("error = %v, want MISSING_STAT", err)
	}
}
