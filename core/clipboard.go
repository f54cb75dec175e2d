package core

import "fmt"

// Clipboard holds the last copied line. It lives as long as the session and
// is never persisted. When a sink is set, every copy is mirrored to it.
type Clipboard struct {
	text string
	sink ClipboardSink
}

func NewClipboard(sink ClipboardSink) *Clipboard {
	return &Clipboard{sink: sink}
}

// CopyLine stores and returns the full text of a line. The text is kept even
// when mirroring to the sink fails; that failure wraps ErrClipboardWrite.
func (c *Clipboard) CopyLine(buffer *Buffer, lineNum int) (string, error) {
	text, err := buffer.LineText(lineNum)
	if err != nil {
		return "", err
	}

	c.text = text

	if c.sink != nil {
		if err := c.sink.Write(text); err != nil {
			return text, fmt.Errorf("%w: %w", ErrClipboardWrite, err)
		}
	}

	return text, nil
}

func (c *Clipboard) Text() string {
	return c.text
}
