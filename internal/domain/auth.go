package domain

import (
	"fmt"
	"strings"
)

type AuthState string

const (
	AuthStateNotStarted  AuthState = "not_started"
	AuthStatePendingScan AuthState = "pending_scan"
	AuthStateScanned     AuthState = "scanned"
	AuthStateAuthorized  AuthState = "authorized"
	AuthStateExpired     AuthState = "expired"
	AuthStateFailed      AuthState = "failed"
)

// Status phrases returned by the ptqrlogin endpoint. They are protocol
// constants, not localized UI text, and the remote side may change them
// without notice; an unknown phrase fails the login on purpose.
const (
	qrStatusValid      = "二维码未失效"
	qrStatusScanned    = "二维码认证中"
	qrStatusExpired    = "二维码已失效"
	qrStatusAuthorized = "登录成功"
)

func (s AuthState) Terminal() bool {
	return s == AuthStateAuthorized || s == AuthStateFailed
}

func (s AuthState) Label() string {
	switch s {
	case AuthStateNotStarted:
		return "starting login"
	case AuthStatePendingScan:
		return "waiting for QR code scan"
	case AuthStateScanned:
		return "QR code scanned, waiting for confirmation"
	case AuthStateAuthorized:
		return "authorized"
	case AuthStateExpired:
		return "QR code expired, issuing a new one"
	case AuthStateFailed:
		return "login failed"
	default:
		return string(s)
	}
}

// ClassifyAuthStatus maps the raw ptqrlogin response to the next state.
func ClassifyAuthStatus(text string) AuthState {
	switch {
	case strings.Contains(text, qrStatusValid):
		return AuthStatePendingScan
	case strings.Contains(text, qrStatusScanned):
		return AuthStateScanned
	case strings.Contains(text, qrStatusExpired):
		return AuthStateExpired
	case strings.Contains(text, qrStatusAuthorized):
		return AuthStateAuthorized
	default:
		return AuthStateFailed
	}
}

// Authorization holds what the authorized status line carries.
type Authorization struct {
	Nick        string
	RedirectURL string
}

// ParseAuthorization extracts the nickname and the ptwebqq redirect URL from
// a status line such as
// ptuiCB('0','0','http://…/check_sig?…','0','登录成功！', 'nick');
func ParseAuthorization(text string) (Authorization, error) {
	items := strings.Split(text, ",")
	if len(items) < 3 {
		return Authorization{}, fmt.Errorf("%w: authorized status has %d fields", ErrProtocol, len(items))
	}

	redirectURL := strings.Trim(strings.TrimSpace(items[2]), "'")
	if redirectURL == "" {
		return Authorization{}, fmt.Errorf("%w: authorized status has no redirect url", ErrProtocol)
	}

	quoted := strings.Split(items[len(items)-1], "'")
	if len(quoted) < 2 {
		return Authorization{}, fmt.Errorf("%w: authorized status has no nickname", ErrProtocol)
	}

	return Authorization{Nick: quoted[1], RedirectURL: redirectURL}, nil
}
