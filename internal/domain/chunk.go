package domain

// MaxMessageBytes is the largest fragment the send endpoints accept.
const MaxMessageBytes = 600

// SplitUTF8 cuts text into a head of at most maxBytes bytes and the rest,
// moving the cut backwards so it never lands on a continuation byte.
// head+rest always equals text.
func SplitUTF8(text string, maxBytes int) (string, string) {
	if maxBytes < 0 {
		maxBytes = 0
	}
	if maxBytes >= len(text) {
		return text, ""
	}

	n := maxBytes
	for n > 0 && text[n]>>6 == 2 {
		n--
	}

	return text[:n], text[n:]
}

// ChunkMessage breaks text into sequential fragments of at most maxBytes
// bytes. A single rune wider than maxBytes is emitted whole.
func ChunkMessage(text string, maxBytes int) []string {
	var chunks []string
	for text != "" {
		head, rest := SplitUTF8(text, maxBytes)
		if head == "" {
			head, rest = firstRune(rest)
		}
		chunks = append(chunks, head)
		text = rest
	}

	return chunks
}

func firstRune(text string) (string, string) {
	n := 1
	for n < len(text) && text[n]>>6 == 2 {
		n++
	}

	return text[:n], text[n:]
}
