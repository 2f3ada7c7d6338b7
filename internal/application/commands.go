package application

import (
	"fmt"

	"github.com/bnema/qqbot-cli/internal/domain"
)

// Replies sent back to the controller account.
const (
	helpReply = "欢迎使用QQBot，使用方法：\n" +
		"    -help\n" +
		"    -list buddy|group|discuss\n" +
		"    -send buddy|group|discuss {qq_or_uin} message\n" +
		"    -refetch\n" +
		"    -stop\n"
	unknownRecipientReply = "接收者账号错误"
	sentReply             = "消息发送成功"
	refetchedReply        = "重新获取 好友/群/讨论组 成功"
	stoppedReply          = "QQBot已关闭"
	malformedReply        = "命令格式错误，请发送 -help 查看用法"
)

// CommandError is a failure confined to one controller command. It never
// stops the bot; a non-empty Reply is sent to the controller instead of the
// command's normal reply.
type CommandError struct {
	Kind  domain.CommandKind
	Reply string
	Err   error
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("command %s failed", e.Kind)
	}
	return fmt.Sprintf("command %s failed: %v", e.Kind, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
