package domain

// PollEvent is one long-poll result. An empty Category means the poll
// returned no message. FromUIN is the conversation (buddy, group or
// discussion group) and SenderUIN the buddy who wrote the message.
type PollEvent struct {
	Category  Category
	FromUIN   int64
	SenderUIN int64
	Text      string
}

// NoMessage is the event for a poll that timed out without traffic.
var NoMessage = PollEvent{}

func (e PollEvent) Empty() bool {
	return e.Category == ""
}
