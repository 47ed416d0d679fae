package leetcode

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statcard/pkg/core/stats"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/httputil"
	"github.com/matzehuels/statcard/pkg/integrations"
)

// DefaultBaseURL is the LeetCode origin used for the handshake and GraphQL.
const DefaultBaseURL = "https://leetcode.com"

const query = `query UserInfo($id: String!) {
  problems: allQuestionsCount { difficulty count }
  matchedUser(username: $id) {
    username
    profile { realname: realName country: countryName ranking }
    submitStats: submitStatsGlobal { acSubmissionNum { difficulty count submissions } }
    userCalendar { streak }
  }
}`

// Client fetches public profile statistics from LeetCode's GraphQL API.
//
// The csrftoken obtained by the first handshake is reused by later calls
// until the GraphQL endpoint rejects it with 401 or 403; the next call then
// handshakes again. Client is safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
	session string
	logger  *log.Logger

	mu   sync.Mutex
	csrf string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another origin, such as a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithSession sets the LEETCODE_SESSION cookie value. Public profiles need none.
func WithSession(s string) Option {
	return func(c *Client) { c.session = s }
}

// WithLogger sets the logger for handshake diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a LeetCode client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		Client:  integrations.NewClient(nil, map[string]string{"User-Agent": integrations.BrowserUserAgent}),
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// FetchProfile retrieves the statistics of username.
//
// Returns a NOT_FOUND error when the user does not exist, INVALID_DIFFICULTY
// when the response carries an unknown bucket, and the classified transport
// error otherwise. Context cancellation is returned unchanged.
func (c *Client) FetchProfile(ctx context.Context, username string) (*stats.Profile, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	var resp response
	err := httputil.RetryWithBackoff(ctx, func() error {
		token, err := c.token(ctx)
		if err != nil {
			return err
		}
		body := request{Query: query, Variables: variables{ID: username}}
		err = c.PostJSON(ctx, c.baseURL+"/graphql", c.graphQLHeaders(token), body, &resp)
		if stderrors.Is(err, integrations.ErrForbidden) {
			c.dropToken(token)
		}
		return err
	})
	if err != nil {
		return nil, integrations.Classify(err, "fetch profile %q", username)
	}
	if len(resp.Errors) > 0 && resp.Data.MatchedUser == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "user %q: %s", username, resp.Errors[0].Message)
	}
	return resp.Data.profile(username)
}

func (c *Client) graphQLHeaders(token string) map[string]string {
	return map[string]string{
		"x-csrftoken": token,
		"Referer":     c.baseURL,
		"Origin":      c.baseURL,
		"Cookie":      "csrftoken=" + token + "; LEETCODE_SESSION=" + c.session,
	}
}

// token returns the cached csrftoken, performing the handshake on first use.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.csrf != "" {
		return c.csrf, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.Send(req, nil)
	if err != nil {
		return "", err
	}
	resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "csrftoken" {
			c.csrf = cookie.Value
		}
	}
	if c.csrf == "" {
		c.logger.Debug("handshake returned no csrftoken", "origin", c.baseURL)
	}
	return c.csrf, nil
}

// dropToken forgets token so the next call repeats the handshake. A token
// already replaced by another goroutine is kept.
func (c *Client) dropToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.csrf == token {
		c.csrf = ""
	}
}
