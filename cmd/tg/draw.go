package main

import (
	"context"

	"github.com/paul-nameless/tg/internal/controller"
	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/view"
)

// chatColumnWidth is the fixed left-column width; the message pane takes
// whatever is left.
const chatColumnWidth = 30

// renderFrame paints one full frame of the three-pane layout (chat list,
// message pane, status line) onto surf, matching the column split from
// spec §4.7.
func renderFrame(surf domain.Surface, c *controller.Controller) {
	rows, cols := surf.GetMaxYX()
	if rows < 2 || cols < 2 {
		return
	}
	surf.Erase()

	msgRows := rows - 1
	msgCols := cols - chatColumnWidth - 1
	if msgCols < 1 {
		msgCols = 1
	}

	chats := c.Model.Chats.Active()
	chatLines := view.ChatPane(chats, c.Model.Users, c.Model.CurrentChatIndex(), chatColumnWidth)
	for y := 0; y < msgRows; y++ {
		surf.Move(y, 0)
		if y < len(chatLines) {
			attr := domain.Attr(0)
			if chatLines[y].Selected {
				attr = domain.AttrReverse
			}
			surf.AddstrAttr(view.PadRight(chatLines[y].Text, chatColumnWidth), attr, 0)
		} else {
			surf.Addstr(view.PadRight("", chatColumnWidth))
		}
		surf.Vline(y, chatColumnWidth, 1)
	}

	if chatID, ok := currentChatID(c); ok {
		msgs := c.Model.Messages.Fetch(context.Background(), chatID, 0, msgRows)
		lines := view.MsgPane(msgs, c.Model.Users, nil, msgCols)
		start := 0
		if len(lines) > msgRows {
			start = len(lines) - msgRows
		}
		for y := 0; y < msgRows; y++ {
			surf.Move(y, chatColumnWidth+1)
			idx := start + y
			if idx < len(lines) {
				surf.Addstr(view.PadRight(lines[idx].Text, msgCols))
			} else {
				surf.Addstr(view.PadRight("", msgCols))
			}
		}
	}

	kind := view.StatusNone
	if c.StatusText() != "" {
		kind = view.StatusInfo
	}
	surf.Move(rows-1, 0)
	surf.Addstr(view.StatusLine(kind, c.StatusText(), "", cols))

	surf.Refresh()
}

func currentChatID(c *controller.Controller) (int64, bool) {
	return c.Model.Chats.IDByIndex(c.Model.CurrentChatIndex())
}
