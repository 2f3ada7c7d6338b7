package webqq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

var _ ports.ContactAPI = (*Client)(nil)

const (
	accountKindBuddy = 1
	accountKindGroup = 4
)

type listParams struct {
	VFWebQQ string `json:"vfwebqq"`
	Hash    string `json:"hash"`
}

func (c *Client) ListBuddies(ctx context.Context, session domain.Session) ([]domain.Contact, error) {
	form, err := encodeR(listParams{VFWebQQ: session.VFWebQQ, Hash: session.Hash})
	if err != nil {
		return nil, err
	}

	result, err := c.SmartRequest(ctx, c.d1Request(c.endpoints.userFriends(), form))
	if err != nil {
		return nil, fmt.Errorf("list buddies: %w", err)
	}

	var payload struct {
		Info []struct {
			UIN  int64  `json:"uin"`
			Nick string `json:"nick"`
		} `json:"info"`
	}
	if err := json.Unmarshal(result, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode buddy list: %v", domain.ErrMalformedEnvelope, err)
	}

	contacts := make([]domain.Contact, 0, len(payload.Info))
	for _, info := range payload.Info {
		contacts = append(contacts, domain.Contact{UIN: info.UIN, Name: info.Nick})
	}
	return contacts, nil
}

func (c *Client) ListGroups(ctx context.Context, session domain.Session) ([]domain.Contact, error) {
	form, err := encodeR(listParams{VFWebQQ: session.VFWebQQ, Hash: session.Hash})
	if err != nil {
		return nil, err
	}

	result, err := c.SmartRequest(ctx, c.d1Request(c.endpoints.groupNameList(), form))
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	var payload struct {
		GNameList []struct {
			GID  int64  `json:"gid"`
			Name string `json:"name"`
		} `json:"gnamelist"`
	}
	if err := json.Unmarshal(result, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode group list: %v", domain.ErrMalformedEnvelope, err)
	}

	contacts := make([]domain.Contact, 0, len(payload.GNameList))
	for _, info := range payload.GNameList {
		contacts = append(contacts, domain.Contact{UIN: info.GID, Name: info.Name})
	}
	return contacts, nil
}

func (c *Client) ListDiscusses(ctx context.Context, session domain.Session) ([]domain.Contact, error) {
	endpoint := c.endpoints.discussList(session.ClientID, session.PSessionID, session.VFWebQQ)
	result, err := c.SmartRequest(ctx, c.d1Request(endpoint, nil))
	if err != nil {
		return nil, fmt.Errorf("list discussion groups: %w", err)
	}

	var payload struct {
		DNameList []struct {
			DID  int64  `json:"did"`
			Name string `json:"name"`
		} `json:"dnamelist"`
	}
	if err := json.Unmarshal(result, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode discussion group list: %v", domain.ErrMalformedEnvelope, err)
	}

	contacts := make([]domain.Contact, 0, len(payload.DNameList))
	for _, info := range payload.DNameList {
		contacts = append(contacts, domain.Contact{UIN: info.DID, Name: info.Name})
	}
	return contacts, nil
}

// ResolveAccount maps a buddy or group uin to its public number.
func (c *Client) ResolveAccount(ctx context.Context, session domain.Session, category domain.Category, uin int64) (int64, error) {
	var kind int
	switch category {
	case domain.CategoryBuddy:
		kind = accountKindBuddy
	case domain.CategoryGroup:
		kind = accountKindGroup
	default:
		return 0, fmt.Errorf("%w: %s has no public number", domain.ErrUnknownCategory, category)
	}

	result, err := c.SmartRequest(ctx, c.d1Request(c.endpoints.friendUIN(uin, kind, session.VFWebQQ), nil))
	if err != nil {
		return 0, fmt.Errorf("resolve %s %d: %w", category, uin, err)
	}

	var payload struct {
		Account int64 `json:"account"`
	}
	if err := json.Unmarshal(result, &payload); err != nil {
		return 0, fmt.Errorf("%w: decode account of %s %d: %v", domain.ErrMalformedEnvelope, category, uin, err)
	}
	return payload.Account, nil
}

func (c *Client) FetchNick(ctx context.Context, session domain.Session, uin int64) (string, error) {
	result, err := c.SmartRequest(ctx, Request{
		URL:              c.endpoints.friendInfo(uin, session.VFWebQQ, session.ClientID, session.PSessionID),
		Referer:          c.endpoints.sProxy(),
		DeniedRetryLimit: DefaultDeniedRetryLimit,
	})
	if err != nil {
		return "", fmt.Errorf("fetch nickname of %d: %w", uin, err)
	}

	var payload struct {
		Nick string `json:"nick"`
	}
	if err := json.Unmarshal(result, &payload); err != nil {
		return "", fmt.Errorf("%w: decode friend info: %v", domain.ErrMalformedEnvelope, err)
	}
	return payload.Nick, nil
}

func (c *Client) d1Request(rawURL string, form url.Values) Request {
	return Request{
		URL:              rawURL,
		Form:             form,
		Referer:          c.endpoints.d1Proxy(),
		DeniedRetryLimit: DefaultDeniedRetryLimit,
	}
}
