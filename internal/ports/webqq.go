package ports

import (
	"context"

	"github.com/bnema/qqbot-cli/internal/domain"
)

// LoginAPI is the remote side of the QR login handshake. Calls share one
// cookie jar, so they must run in handshake order.
type LoginAPI interface {
	PrepareLogin(ctx context.Context) error
	FetchQRCode(ctx context.Context) ([]byte, error)
	FetchAuthStatus(ctx context.Context) (string, error)
	// FetchPtwebqq follows the authorized redirect and returns the ptwebqq
	// cookie plus the account number taken from the superuin cookie.
	FetchPtwebqq(ctx context.Context, redirectURL string) (ptwebqq string, qq int64, err error)
	FetchVFWebQQ(ctx context.Context, ptwebqq string) (string, error)
	FetchUinAndPsessionid(ctx context.Context, ptwebqq string) (uin int64, psessionid string, err error)
	TestLogin(ctx context.Context, session domain.Session) error
	ExportCookies() []domain.Cookie
	ImportCookies(cookies []domain.Cookie) error
	// ResetCookies empties the jar so a handshake starts from nothing.
	ResetCookies() error
}

// ContactAPI lists contacts. The list calls return contacts with UIN and Name
// only; public numbers come from ResolveAccount.
type ContactAPI interface {
	ListBuddies(ctx context.Context, session domain.Session) ([]domain.Contact, error)
	ListGroups(ctx context.Context, session domain.Session) ([]domain.Contact, error)
	ListDiscusses(ctx context.Context, session domain.Session) ([]domain.Contact, error)
	ResolveAccount(ctx context.Context, session domain.Session, category domain.Category, uin int64) (int64, error)
	FetchNick(ctx context.Context, session domain.Session, uin int64) (string, error)
}

type MessageAPI interface {
	Poll(ctx context.Context, session domain.Session) (domain.PollEvent, error)
	Send(ctx context.Context, session domain.Session, category domain.Category, toUIN int64, msgID int64, text string) error
}

// QRPresenter shows a login QR code to a human. Present is called once per
// issued code; Close releases whatever Present set up and is always called
// when the handshake ends.
type QRPresenter interface {
	Present(ctx context.Context, code domain.QRCode) error
	Close() error
}
