package webqq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

var _ ports.LoginAPI = (*Client)(nil)

const (
	ptwebqqCookie  = "ptwebqq"
	superuinCookie = "superuin"
)

// PrepareLogin loads the login page, seeds the browser cookies and performs
// the initial status probe that registers them.
func (c *Client) PrepareLogin(ctx context.Context) error {
	if _, err := c.Get(ctx, c.endpoints.loginPage(), ""); err != nil {
		return fmt.Errorf("load login page: %w", err)
	}
	if err := c.seedLoginCookies(); err != nil {
		return fmt.Errorf("seed login cookies: %w", err)
	}
	if _, err := c.FetchAuthStatus(ctx); err != nil {
		return fmt.Errorf("probe login status: %w", err)
	}
	if err := c.dropCookie(qrsigCookie); err != nil {
		return fmt.Errorf("drop %s cookie: %w", qrsigCookie, err)
	}
	return nil
}

func (c *Client) FetchQRCode(ctx context.Context) ([]byte, error) {
	png, err := c.Get(ctx, c.endpoints.qrShow(), "")
	if err != nil {
		return nil, fmt.Errorf("fetch qr code: %w", err)
	}
	return png, nil
}

func (c *Client) FetchAuthStatus(ctx context.Context) (string, error) {
	body, err := c.Get(ctx, c.endpoints.qrLogin(), c.endpoints.loginPage())
	if err != nil {
		return "", fmt.Errorf("fetch qr status: %w", err)
	}
	return string(body), nil
}

// FetchPtwebqq follows the redirect from the authorized status line. The
// redirect sets the ptwebqq cookie; the account number comes from the
// superuin cookie, or the redirect's uin parameter when that is absent.
func (c *Client) FetchPtwebqq(ctx context.Context, redirectURL string) (string, int64, error) {
	if _, err := c.Get(ctx, redirectURL, ""); err != nil {
		return "", 0, fmt.Errorf("follow login redirect: %w", err)
	}

	hosts := append([]string{redirectURL}, c.endpoints.cookieHosts()...)
	ptwebqq, ok := c.cookieValue(ptwebqqCookie, hosts...)
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", domain.ErrMissingCookie, ptwebqqCookie)
	}

	qq, err := c.accountNumber(redirectURL, hosts)
	if err != nil {
		return "", 0, err
	}

	return ptwebqq, qq, nil
}

func (c *Client) accountNumber(redirectURL string, hosts []string) (int64, error) {
	if superuin, ok := c.cookieValue(superuinCookie, hosts...); ok {
		qq, err := strconv.ParseInt(strings.TrimPrefix(superuin, "o"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: superuin cookie %q", domain.ErrProtocol, superuin)
		}
		return qq, nil
	}

	parsed, err := url.Parse(redirectURL)
	if err == nil {
		if qq, err := strconv.ParseInt(parsed.Query().Get("uin"), 10, 64); err == nil {
			return qq, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", domain.ErrMissingCookie, superuinCookie)
}

func (c *Client) FetchVFWebQQ(ctx context.Context, ptwebqq string) (string, error) {
	result, err := c.SmartRequest(ctx, Request{
		URL:              c.endpoints.vfwebqq(ptwebqq, domain.ClientID),
		Referer:          c.endpoints.sProxy(),
		Origin:           c.endpoints.S,
		DeniedRetryLimit: DefaultDeniedRetryLimit,
	})
	if err != nil {
		return "", fmt.Errorf("fetch vfwebqq: %w", err)
	}

	var payload struct {
		VFWebQQ string `json:"vfwebqq"`
	}
	if err := json.Unmarshal(result, &payload); err != nil || payload.VFWebQQ == "" {
		return "", fmt.Errorf("%w: vfwebqq missing from response", domain.ErrMalformedEnvelope)
	}
	return payload.VFWebQQ, nil
}

type login2Params struct {
	PTWebQQ    string `json:"ptwebqq"`
	ClientID   int64  `json:"clientid"`
	PSessionID string `json:"psessionid"`
	Status     string `json:"status"`
}

func (c *Client) FetchUinAndPsessionid(ctx context.Context, ptwebqq string) (int64, string, error) {
	form, err := encodeR(login2Params{PTWebQQ: ptwebqq, ClientID: domain.ClientID, Status: "online"})
	if err != nil {
		return 0, "", err
	}

	result, err := c.SmartRequest(ctx, Request{
		URL:              c.endpoints.login2(),
		Form:             form,
		Referer:          c.endpoints.d1Proxy(),
		Origin:           c.endpoints.D1,
		DeniedRetryLimit: DefaultDeniedRetryLimit,
	})
	if err != nil {
		return 0, "", fmt.Errorf("fetch uin and psessionid: %w", err)
	}

	var payload struct {
		UIN        int64  `json:"uin"`
		PSessionID string `json:"psessionid"`
	}
	if err := json.Unmarshal(result, &payload); err != nil || payload.PSessionID == "" {
		return 0, "", fmt.Errorf("%w: uin or psessionid missing from login2 response", domain.ErrMalformedEnvelope)
	}
	return payload.UIN, payload.PSessionID, nil
}

// TestLogin calibrates a fresh or restored session. The remote side answers
// later calls with error 103 unless this call has succeeded first, so a
// single denial is fatal.
func (c *Client) TestLogin(ctx context.Context, session domain.Session) error {
	_, err := c.SmartRequest(ctx, Request{
		URL:              c.endpoints.onlineBuddies(session.VFWebQQ, session.ClientID, session.PSessionID),
		Referer:          c.endpoints.d1Proxy(),
		Origin:           c.endpoints.D1,
		DeniedRetryLimit: 0,
	})
	if err != nil {
		return fmt.Errorf("test login: %w", err)
	}
	return nil
}

// encodeR wraps a JSON payload in the single r form field the channel and
// api endpoints expect.
func encodeR(payload any) (url.Values, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request payload: %w", err)
	}
	return url.Values{"r": []string{string(encoded)}}, nil
}
