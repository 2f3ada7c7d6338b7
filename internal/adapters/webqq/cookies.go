package webqq

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"golang.org/x/net/publicsuffix"

	"github.com/bnema/qqbot-cli/internal/domain"
)

// sessionJar is a cookie jar that can be swapped for an empty one while the
// http.Client keeps pointing at it.
type sessionJar struct {
	mu  sync.RWMutex
	jar *cookiejar.Jar
}

func newSessionJar() (*sessionJar, error) {
	jar, err := newCookieJar()
	if err != nil {
		return nil, err
	}
	return &sessionJar{jar: jar}, nil
}

func newCookieJar() (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return jar, nil
}

func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	j.jar.SetCookies(u, cookies)
}

func (j *sessionJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.jar.Cookies(u)
}

func (j *sessionJar) reset() error {
	jar, err := newCookieJar()
	if err != nil {
		return err
	}
	j.mu.Lock()
	j.jar = jar
	j.mu.Unlock()
	return nil
}

// seedCookies are the browser cookies the login page expects to already
// exist; qrsig is only needed for the first status probe.
var seedCookies = []*http.Cookie{
	{Name: "RK", Value: "OfeLBai4FB"},
	{Name: "pgv_pvi", Value: "911366144"},
	{Name: "pgv_info", Value: "ssid pgv_pvid=1051433466"},
	{Name: "ptcz", Value: "ad3bf14f9da2738e09e498bfeb93dd9da7540dea2b7a71acfb97ed4d3da4e277"},
	{Name: "qrsig", Value: "hJ9GvNx*oIvLjP5I5dQ19KPa3zwxNI62eALLO*g2JLbKPYsZIRsnbJIxNe74NzQQ"},
}

const qrsigCookie = "qrsig"

func (c *Client) loginURLs() ([]*url.URL, error) {
	return parseURLs(c.endpoints.UILogin+"/", c.endpoints.SSLLogin+"/")
}

func (c *Client) seedLoginCookies() error {
	targets, err := c.loginURLs()
	if err != nil {
		return err
	}
	for _, target := range targets {
		c.jar.SetCookies(target, cloneCookies(seedCookies))
	}
	return nil
}

func (c *Client) dropCookie(name string) error {
	targets, err := c.loginURLs()
	if err != nil {
		return err
	}
	for _, target := range targets {
		c.jar.SetCookies(target, []*http.Cookie{{Name: name, Value: "", MaxAge: -1}})
	}
	return nil
}

// cookieValue returns the first cookie called name visible to any of the
// given URLs.
func (c *Client) cookieValue(name string, rawURLs ...string) (string, bool) {
	targets, err := parseURLs(rawURLs...)
	if err != nil {
		return "", false
	}
	for _, target := range targets {
		for _, cookie := range c.jar.Cookies(target) {
			if cookie.Name == name {
				return cookie.Value, true
			}
		}
	}
	return "", false
}

// ExportCookies snapshots the cookies each protocol host would receive.
func (c *Client) ExportCookies() []domain.Cookie {
	targets, err := parseURLs(c.endpoints.cookieHosts()...)
	if err != nil {
		return nil
	}

	var cookies []domain.Cookie
	seen := make(map[string]bool, len(targets))
	for _, target := range targets {
		if seen[target.String()] {
			continue
		}
		seen[target.String()] = true
		for _, cookie := range c.jar.Cookies(target) {
			cookies = append(cookies, domain.Cookie{
				URL:   target.String(),
				Name:  cookie.Name,
				Value: cookie.Value,
			})
		}
	}
	return cookies
}

// ResetCookies drops every cookie, including ones restored by ImportCookies.
func (c *Client) ResetCookies() error {
	return c.jar.reset()
}

func (c *Client) ImportCookies(cookies []domain.Cookie) error {
	byURL := make(map[string][]*http.Cookie)
	order := make([]string, 0)
	for _, cookie := range cookies {
		if _, seen := byURL[cookie.URL]; !seen {
			order = append(order, cookie.URL)
		}
		byURL[cookie.URL] = append(byURL[cookie.URL], &http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}

	for _, rawURL := range order {
		target, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("parse cookie url %q: %w", rawURL, err)
		}
		c.jar.SetCookies(target, byURL[rawURL])
	}
	return nil
}

func parseURLs(rawURLs ...string) ([]*url.URL, error) {
	parsed := make([]*url.URL, 0, len(rawURLs))
	for _, rawURL := range rawURLs {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse url %q: %w", rawURL, err)
		}
		parsed = append(parsed, u)
	}
	return parsed, nil
}

func cloneCookies(cookies []*http.Cookie) []*http.Cookie {
	cloned := make([]*http.Cookie, 0, len(cookies))
	for _, cookie := range cookies {
		copied := *cookie
		cloned = append(cloned, &copied)
	}
	return cloned
}
