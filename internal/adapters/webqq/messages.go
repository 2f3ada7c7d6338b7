package webqq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

var _ ports.MessageAPI = (*Client)(nil)

var pollTypes = map[string]domain.Category{
	"message":       domain.CategoryBuddy,
	"group_message": domain.CategoryGroup,
	"discu_message": domain.CategoryDiscuss,
}

type pollParams struct {
	PTWebQQ    string `json:"ptwebqq"`
	ClientID   int64  `json:"clientid"`
	PSessionID string `json:"psessionid"`
	Key        string `json:"key"`
}

type pollItem struct {
	PollType string `json:"poll_type"`
	Value    struct {
		FromUIN int64             `json:"from_uin"`
		SendUIN *int64            `json:"send_uin"`
		Content []json.RawMessage `json:"content"`
	} `json:"value"`
}

// Poll long-polls for the next message. A poll that times out without
// traffic yields domain.NoMessage.
func (c *Client) Poll(ctx context.Context, session domain.Session) (domain.PollEvent, error) {
	form, err := encodeR(pollParams{
		PTWebQQ:    session.PTWebQQ,
		ClientID:   session.ClientID,
		PSessionID: session.PSessionID,
	})
	if err != nil {
		return domain.NoMessage, err
	}

	result, err := c.SmartRequest(ctx, c.d1Request(c.endpoints.poll(), form))
	if err != nil {
		return domain.NoMessage, fmt.Errorf("poll: %w", err)
	}

	return decodePoll(result)
}

func decodePoll(result json.RawMessage) (domain.PollEvent, error) {
	trimmed := bytes.TrimSpace(result)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			if _, ok := envelope["errmsg"]; ok {
				return domain.NoMessage, nil
			}
		}
		return domain.NoMessage, fmt.Errorf("%w: unexpected poll object %s", domain.ErrMalformedEnvelope, abbreviate(trimmed))
	}

	var items []pollItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return domain.NoMessage, fmt.Errorf("%w: decode poll result: %v", domain.ErrMalformedEnvelope, err)
	}
	if len(items) == 0 {
		return domain.NoMessage, nil
	}

	item := items[0]
	category, ok := pollTypes[item.PollType]
	if !ok {
		return domain.NoMessage, fmt.Errorf("%w: unknown poll_type %q", domain.ErrMalformedEnvelope, item.PollType)
	}

	sender := item.Value.FromUIN
	if item.Value.SendUIN != nil {
		sender = *item.Value.SendUIN
	}

	return domain.PollEvent{
		Category:  category,
		FromUIN:   item.Value.FromUIN,
		SenderUIN: sender,
		Text:      renderContent(item.Value.Content),
	}, nil
}

// renderContent joins the message segments after the leading font segment.
// Face segments such as ["face", 14] become "[face14]".
func renderContent(content []json.RawMessage) string {
	if len(content) < 2 {
		return ""
	}

	var b strings.Builder
	for _, segment := range content[1:] {
		var text string
		if err := json.Unmarshal(segment, &text); err == nil {
			b.WriteString(text)
			continue
		}

		var marker []json.RawMessage
		if err := json.Unmarshal(segment, &marker); err == nil && len(marker) >= 2 {
			var face int64
			if err := json.Unmarshal(marker[1], &face); err == nil {
				b.WriteString("[face" + strconv.FormatInt(face, 10) + "]")
				continue
			}
		}

		b.Write(segment)
	}
	return b.String()
}

type fontSpec struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Style [3]int `json:"style"`
	Color string `json:"color"`
}

var defaultFont = fontSpec{Name: "宋体", Size: 10, Color: "000000"}

const defaultFace = 522

// Send delivers one fragment of at most domain.MaxMessageBytes bytes. Rate
// limiting and chunking are the caller's concern.
func (c *Client) Send(ctx context.Context, session domain.Session, category domain.Category, toUIN int64, msgID int64, text string) error {
	endpoint, recipientKey, err := c.sendTarget(category)
	if err != nil {
		return err
	}

	content, err := json.Marshal([]any{text, []any{"font", defaultFont}})
	if err != nil {
		return fmt.Errorf("encode message content: %w", err)
	}

	form, err := encodeR(map[string]any{
		recipientKey: toUIN,
		"content":    string(content),
		"face":       defaultFace,
		"clientid":   session.ClientID,
		"msg_id":     msgID,
		"psessionid": session.PSessionID,
	})
	if err != nil {
		return err
	}

	if _, err := c.SmartRequest(ctx, c.d1Request(endpoint, form)); err != nil {
		return fmt.Errorf("send to %s %d: %w", category, toUIN, err)
	}

	c.metrics.ObserveSent(string(category))
	c.logger.Info("message sent", "category", category, "to_uin", toUIN, "msg_id", msgID)
	return nil
}

func (c *Client) sendTarget(category domain.Category) (string, string, error) {
	switch category {
	case domain.CategoryBuddy:
		return c.endpoints.sendBuddy(), "to", nil
	case domain.CategoryGroup:
		return c.endpoints.sendGroup(), "group_uin", nil
	case domain.CategoryDiscuss:
		return c.endpoints.sendDiscuss(), "did", nil
	default:
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
}
