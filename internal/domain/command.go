package domain

import (
	"strconv"
	"strings"
)

type CommandKind string

const (
	CommandHelp         CommandKind = "help"
	CommandList         CommandKind = "list"
	CommandSend         CommandKind = "send"
	CommandRefetch      CommandKind = "refetch"
	CommandStop         CommandKind = "stop"
	CommandMalformed    CommandKind = "malformed"
	CommandUnrecognized CommandKind = "unrecognized"
)

const (
	listPrefix = "-list "
	sendPrefix = "-send "
)

// Command is a controller directive parsed from message text. For List the
// Category may be empty when the target was not a known category.
type Command struct {
	Kind     CommandKind
	Category Category
	PublicID int64
	Text     string
}

func ParseCommand(text string) Command {
	switch {
	case text == "-help":
		return Command{Kind: CommandHelp}
	case text == "-refetch":
		return Command{Kind: CommandRefetch}
	case text == "-stop":
		return Command{Kind: CommandStop}
	case strings.HasPrefix(text, listPrefix):
		category, err := ParseCategory(text[len(listPrefix):])
		if err != nil {
			return Command{Kind: CommandList}
		}
		return Command{Kind: CommandList, Category: category}
	case strings.HasPrefix(text, sendPrefix):
		return parseSend(text[len(sendPrefix):])
	default:
		return Command{Kind: CommandUnrecognized}
	}
}

func parseSend(args string) Command {
	parts := strings.SplitN(args, " ", 3)
	if len(parts) != 3 || !isDigits(parts[1]) {
		return Command{Kind: CommandMalformed}
	}

	category, err := ParseCategory(parts[0])
	if err != nil || string(category) != parts[0] {
		return Command{Kind: CommandMalformed}
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Command{Kind: CommandMalformed}
	}

	return Command{
		Kind:     CommandSend,
		Category: category,
		PublicID: id,
		Text:     strings.TrimSpace(parts[2]),
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
