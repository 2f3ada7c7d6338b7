package qr

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"

	"github.com/bnema/qqbot-cli/internal/domain"
)

const (
	mailSubjectPrefix = "QQBot二维码"
	mailRecipientName = "QQBot管理员"
	mailBody          = "<p>您的QQBot正在登录，请尽快用手机QQ扫描下面的二维码。" +
		"若二维码已过期，请将本邮件删除，删除后QQBot会在3分钟内将最新的二维码发送到本邮箱</p>"
	smtpsPort = "465"
)

// MailConfig describes the mailbox that receives QR codes. The same account
// sends the mail and is checked over IMAP.
type MailConfig struct {
	Account  string
	Name     string
	SMTPAddr string
	IMAPAddr string
	Password string
}

type (
	mailSender        func(ctx context.Context, cfg MailConfig, msg []byte) error
	lastSubjectReader func(ctx context.Context, cfg MailConfig) (string, error)
)

// MailPresenter mails each QR code as a PNG attachment. It skips the mail when
// the newest message in the inbox already carries the same subject. Delivery
// problems are logged, never returned, so a broken mailbox cannot fail a login.
type MailPresenter struct {
	cfg         MailConfig
	send        mailSender
	lastSubject lastSubjectReader
	now         func() time.Time
	logger      *slog.Logger
}

func NewMailPresenter(cfg MailConfig, logger *slog.Logger) *MailPresenter {
	if logger == nil {
		logger = slog.Default()
	}

	return &MailPresenter{
		cfg:         cfg,
		send:        sendSMTP,
		lastSubject: readLastSubject,
		now:         time.Now,
		logger:      logger,
	}
}

func mailSubject(name string) string {
	return fmt.Sprintf("%s[%s]", mailSubjectPrefix, name)
}

func (p *MailPresenter) Present(ctx context.Context, code domain.QRCode) error {
	subject := mailSubject(code.Name)

	if p.cfg.IMAPAddr != "" {
		last, err := p.lastSubject(ctx, p.cfg)
		if err != nil {
			p.logger.Warn("could not read the latest mail subject", "account", p.cfg.Account, "error", err)
		} else {
			p.logger.Debug("latest mail", "subject", last)
			if last == subject {
				return nil
			}
		}
	}

	msg, err := p.compose(subject, code)
	if err != nil {
		p.logger.Warn("could not compose QR code mail", "error", err)
		return nil
	}
	if err := p.send(ctx, p.cfg, msg); err != nil {
		p.logger.Warn("could not mail the QR code", "account", p.cfg.Account, "error", err)
		return nil
	}

	p.logger.Info("QR code mailed", "account", p.cfg.Account, "subject", subject)
	return nil
}

func (p *MailPresenter) Close() error {
	return nil
}

func (p *MailPresenter) compose(subject string, code domain.QRCode) ([]byte, error) {
	var header mail.Header
	header.SetDate(p.now())
	header.SetSubject(subject)
	header.SetAddressList("From", []*mail.Address{{Name: p.cfg.Name, Address: p.cfg.Account}})
	header.SetAddressList("To", []*mail.Address{{Name: mailRecipientName, Address: p.cfg.Account}})
	if err := header.GenerateMessageID(); err != nil {
		return nil, fmt.Errorf("generate message id: %w", err)
	}

	var buf bytes.Buffer
	writer, err := mail.CreateWriter(&buf, header)
	if err != nil {
		return nil, fmt.Errorf("create mail writer: %w", err)
	}

	var inline mail.InlineHeader
	inline.SetContentType("text/html", map[string]string{"charset": "utf-8"})
	body, err := writer.CreateSingleInline(inline)
	if err != nil {
		return nil, fmt.Errorf("create mail body: %w", err)
	}
	if _, err := io.WriteString(body, mailBody); err != nil {
		return nil, fmt.Errorf("write mail body: %w", err)
	}
	if err := body.Close(); err != nil {
		return nil, fmt.Errorf("close mail body: %w", err)
	}

	var attachment mail.AttachmentHeader
	attachment.SetContentType("image/png", nil)
	attachment.SetFilename(code.Name)
	part, err := writer.CreateAttachment(attachment)
	if err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}
	if _, err := part.Write(code.PNG); err != nil {
		return nil, fmt.Errorf("write attachment: %w", err)
	}
	if err := part.Close(); err != nil {
		return nil, fmt.Errorf("close attachment: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close mail writer: %w", err)
	}

	return buf.Bytes(), nil
}

// sendSMTP uses implicit TLS on port 465 and STARTTLS elsewhere when the
// server offers it.
func sendSMTP(ctx context.Context, cfg MailConfig, msg []byte) error {
	host, port, err := net.SplitHostPort(cfg.SMTPAddr)
	if err != nil {
		return fmt.Errorf("parse smtp address: %w", err)
	}

	dialer := &net.Dialer{Timeout: 30 * time.Second}
	var conn net.Conn
	if port == smtpsPort {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: host}}).DialContext(ctx, "tcp", cfg.SMTPAddr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", cfg.SMTPAddr)
	}
	if err != nil {
		return fmt.Errorf("connect to smtp server: %w", err)
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("start smtp session: %w", err)
	}
	defer client.Close()

	if port != smtpsPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
				return fmt.Errorf("start tls: %w", err)
			}
		}
	}

	if cfg.Password != "" {
		if err := client.Auth(smtp.PlainAuth("", cfg.Account, cfg.Password, host)); err != nil {
			return fmt.Errorf("smtp authentication failed: %w", err)
		}
	}
	if err := client.Mail(cfg.Account); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(cfg.Account); err != nil {
		return fmt.Errorf("set recipient %s: %w", cfg.Account, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("initiate data transfer: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data transfer: %w", err)
	}

	return client.Quit()
}

// readLastSubject returns the subject of the newest INBOX message, or an
// empty string for an empty mailbox.
func readLastSubject(_ context.Context, cfg MailConfig) (string, error) {
	client, err := imapclient.DialTLS(cfg.IMAPAddr, &imapclient.Options{
		WordDecoder: &mime.WordDecoder{CharsetReader: charset.Reader},
	})
	if err != nil {
		return "", fmt.Errorf("connect to imap server: %w", err)
	}
	defer client.Close()

	if err := client.Login(cfg.Account, cfg.Password).Wait(); err != nil {
		return "", fmt.Errorf("imap login: %w", err)
	}

	selected, err := client.Select("INBOX", &imap.SelectOptions{ReadOnly: true}).Wait()
	if err != nil {
		return "", fmt.Errorf("select inbox: %w", err)
	}
	if selected.NumMessages == 0 {
		return "", nil
	}

	messages, err := client.Fetch(imap.SeqSetNum(selected.NumMessages), &imap.FetchOptions{Envelope: true}).Collect()
	if err != nil {
		return "", fmt.Errorf("fetch latest envelope: %w", err)
	}
	if err := client.Logout().Wait(); err != nil {
		return "", fmt.Errorf("imap logout: %w", err)
	}
	if len(messages) == 0 || messages[0].Envelope == nil {
		return "", nil
	}

	return messages[0].Envelope.Subject, nil
}
