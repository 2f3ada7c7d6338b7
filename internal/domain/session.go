package domain

import "time"

const (
	// ClientID is the fixed device identifier every WebQQ call carries.
	ClientID int64 = 53999199
	// InitialMsgID seeds the outgoing message counter.
	InitialMsgID int64 = 6000000
)

type Cookie struct {
	URL   string
	Name  string
	Value string
}

// Session is the authenticated state produced by a login. Only MsgID changes
// after login.
type Session struct {
	ClientID   int64
	MsgID      int64
	Cookies    []Cookie
	PTWebQQ    string
	VFWebQQ    string
	UIN        int64
	PSessionID string
	Hash       string
	QQ         int64
	Nick       string
	CreatedAt  time.Time
}

func NewSession() Session {
	return Session{ClientID: ClientID, MsgID: InitialMsgID}
}

// NextMsgID advances the outgoing message counter and returns the new value.
func (s *Session) NextMsgID() int64 {
	s.MsgID++
	return s.MsgID
}

// QRCode is one issued login code. Name is fixed for a whole handshake, so
// reissued codes replace their predecessor; Seq counts issuances.
type QRCode struct {
	Seq  int
	Name string
	PNG  []byte
}
