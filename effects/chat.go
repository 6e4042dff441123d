package effects

import (
	"time"

	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/easing"
	"github.com/tanema/gween/ease"
)

var chatFadeCurve = easing.FromTween(ease.InQuad)

// ChatBubble shows the latest chat line above a player for a fixed time.
// Text and timestamp are always set and cleared together.
type ChatBubble struct {
	tuning *config.ChatConfig
	text   string
	at     time.Time
}

type ChatFrame struct {
	Text    string
	Opacity float64
}

// Set replaces any current message. An empty text clears the bubble.
func (c *ChatBubble) Set(now time.Time, text string) {
	if text == "" {
		c.clear()
		return
	}
	c.text = text
	c.at = now
}

func (c *ChatBubble) clear() {
	c.text = ""
	c.at = time.Time{}
}

// Message returns the current text, or false when there is none.
func (c *ChatBubble) Message() (string, bool) {
	return c.text, c.text != ""
}

// Advance drops the message once strictly more than the duration has passed.
func (c *ChatBubble) Advance(now time.Time) {
	if c.text != "" && now.Sub(c.at) > c.tuning.Duration {
		c.clear()
	}
}

// Frame returns the bubble text and its opacity. The bubble is opaque until
// the last Fade of its life, then eases out.
func (c *ChatBubble) Frame(now time.Time) (ChatFrame, bool) {
	if c.text == "" {
		return ChatFrame{}, false
	}
	opacity := 1.0
	if fade := c.tuning.Fade; fade > 0 {
		into := now.Sub(c.at) - (c.tuning.Duration - fade)
		if into > 0 {
			opacity = 1 - chatFadeCurve(easing.Progress(into, fade))
		}
	}
	return ChatFrame{Text: c.text, Opacity: opacity}, true
}
