package controller

import (
	"fmt"
	"strings"

	"github.com/paul-nameless/tg/internal/domain"
)

// registerChatCommands wires the chat-mode key table per spec §4.5's
// navigation and chat-action command groups.
func registerChatCommands(c *Controller) {
	t := c.ChatTable

	t.Bind("j", Command{WantsRepeat: true, Run: func(n int) Outcome { return c.NextChat(n) }})
	t.Bind("k", Command{WantsRepeat: true, Run: func(n int) Outcome { return c.PrevChat(n) }})
	t.Bind("gg", Command{Run: func(int) Outcome { return c.FirstChat() }})
	t.Bind("G", Command{Run: func(int) Outcome { return c.NextChat(10) }})
	t.Bind("K", Command{Run: func(int) Outcome { return c.PrevChat(10) }})
	t.Bind("\n", Command{Run: func(int) Outcome { return c.EnterMessageMode() }})
	t.Bind("q", Command{Run: func(int) Outcome { return c.Quit() }})

	t.Bind("u", Command{Run: func(int) Outcome { return c.ToggleUnread() }})
	t.Bind("p", Command{Run: func(int) Outcome { return c.TogglePinned() }})
	t.Bind("m", Command{Run: func(int) Outcome { return c.ToggleMute() }})
	t.Bind("/", Command{Run: func(int) Outcome { return c.SearchContactsPrompt() }})
	t.Bind("n", Command{Run: func(int) Outcome { return c.JumpNextFound() }})
	t.Bind("N", Command{Run: func(int) Outcome { return c.JumpPrevFound() }})

	t.Bind("dd", Command{Run: func(int) Outcome { return c.DeleteChatPrompt() }})
	t.Bind("ns", Command{Run: func(int) Outcome { return c.NewSecretChat() }})
	t.Bind("ng", Command{Run: func(int) Outcome { return c.NewBasicGroup() }})
	t.Bind("c", Command{Run: func(int) Outcome { return c.ViewContacts() }})
	t.Bind("J", Command{Run: func(int) Outcome { return c.JoinChatByIDPrompt() }})
	t.Bind("?", Command{Run: func(int) Outcome { return c.ShowHelp(t) }})
}

// NextChat moves the chat cursor forward by n (bounded by list length).
func (c *Controller) NextChat(n int) Outcome {
	c.Enqueue(func() {
		c.Model.SetCurrentChatIndex(c.Model.CurrentChatIndex() + n)
	})
	return Continue
}

// PrevChat moves the chat cursor back by n.
func (c *Controller) PrevChat(n int) Outcome {
	c.Enqueue(func() {
		c.Model.SetCurrentChatIndex(c.Model.CurrentChatIndex() - n)
	})
	return Continue
}

// FirstChat jumps the cursor to index 0.
func (c *Controller) FirstChat() Outcome {
	c.Enqueue(func() { c.Model.SetCurrentChatIndex(0) })
	return Continue
}

// EnterMessageMode switches the dispatch table to message-mode.
func (c *Controller) EnterMessageMode() Outcome {
	c.Enqueue(func() { c.Mode = ModeMessage })
	return Continue
}

// BackToChatMode returns to chat-mode, per the dispatcher's Back outcome.
func (c *Controller) BackToChatMode() Outcome {
	c.Enqueue(func() { c.Mode = ModeChat })
	return Back
}

// ToggleUnread flips the current chat's is_marked_as_unread flag.
func (c *Controller) ToggleUnread() Outcome {
	chatID, ok := c.currentChatID()
	if !ok {
		return Continue
	}
	ch, _ := c.Model.Chats.ChatByID(chatID)
	next := true
	if ch != nil {
		next = !ch.IsMarkedAsUnread
	}
	res := c.MP.ToggleChatIsMarkedAsUnread(c.ctx(), chatID, next)
	c.Enqueue(func() {
		if err := res.Wait(); err != nil {
			c.PresentError("Can't toggle unread flag")
			return
		}
		c.Model.Chats.Update(chatID, func(ch *domain.Chat) { ch.IsMarkedAsUnread = next })
	})
	return Continue
}

// TogglePinned flips the current chat's pinned flag.
func (c *Controller) TogglePinned() Outcome {
	chatID, ok := c.currentChatID()
	if !ok {
		return Continue
	}
	ch, _ := c.Model.Chats.ChatByID(chatID)
	next := true
	if ch != nil {
		next = !ch.IsPinned
	}
	res := c.MP.ToggleChatIsPinned(c.ctx(), chatID, next)
	c.Enqueue(func() {
		if err := res.Wait(); err != nil {
			c.PresentError("Can't toggle pinned flag")
			return
		}
		c.Model.Chats.Update(chatID, func(ch *domain.Chat) { ch.IsPinned = next })
	})
	return Continue
}

// ToggleMute mutes (MuteForever) or unmutes (0) the current chat. Muting
// the self chat ("Saved Messages") is refused per spec §4.5/§7.
func (c *Controller) ToggleMute() Outcome {
	chatID, ok := c.currentChatID()
	if !ok {
		return Continue
	}
	ch, ok := c.Model.Chats.ChatByID(chatID)
	if !ok {
		return Continue
	}
	if ch.IsSelfChat(c.Config.MyUserID) {
		c.PresentError("Can't mute Saved Messages")
		return Continue
	}
	next := domain.NotificationSettings{MuteFor: domain.MuteForever}
	if ch.Notification.MuteFor != 0 {
		next = domain.NotificationSettings{MuteFor: 0}
	}
	res := c.MP.SetChatNotificationSettings(c.ctx(), chatID, next)
	c.Enqueue(func() {
		if err := res.Wait(); err != nil {
			c.PresentError("Can't update notification settings")
			return
		}
		c.Model.Chats.Update(chatID, func(ch *domain.Chat) { ch.Notification = next })
	})
	return Continue
}

// MarkAllRead issues a force-read ViewMessages for the current chat's last
// message and, on success, sets the chat's unread count to 0.
func (c *Controller) MarkAllRead() Outcome {
	chatID, ok := c.currentChatID()
	if !ok {
		return Continue
	}
	ch, ok := c.Model.Chats.ChatByID(chatID)
	if !ok || ch.LastMessage == nil {
		return Continue
	}
	res := c.MP.ViewMessages(c.ctx(), chatID, []int64{ch.LastMessage.ID}, true)
	c.Enqueue(func() {
		if err := res.Wait(); err != nil {
			c.PresentError("Can't mark chat read")
			return
		}
		c.Model.Chats.Update(chatID, func(ch *domain.Chat) { ch.UnreadCount = 0 })
		c.PresentInfo("Chat marked as read")
	})
	return Continue
}

// DeleteChat leaves (group/channel), asks revoke (private), or closes
// (secret) the current chat, per spec §4.5. confirmed gates the action
// behind the caller's own y/N prompt — the command itself never blocks.
func (c *Controller) DeleteChat(confirmed, revokeForAll bool) Outcome {
	if !confirmed {
		return Continue
	}
	chatID, ok := c.currentChatID()
	if !ok {
		return Continue
	}
	ch, ok := c.Model.Chats.ChatByID(chatID)
	if !ok {
		return Continue
	}

	var res *domain.AsyncResult
	switch ch.Type {
	case domain.ChatTypeBasicGroup, domain.ChatTypeSupergroup, domain.ChatTypeChannel:
		res = c.MP.LeaveChat(c.ctx(), chatID)
	case domain.ChatTypeSecret:
		res = c.MP.CloseSecretChat(c.ctx(), chatID)
	default:
		res = c.MP.DeleteChatHistory(c.ctx(), chatID, true, revokeForAll)
	}

	c.Enqueue(func() {
		if err := res.Wait(); err != nil {
			c.PresentError("Can't delete chat")
			return
		}
		c.Model.Chats.Delete(chatID)
		c.PresentInfo("Chat deleted")
	})
	return Continue
}

// SearchContactsPrompt reads the search text on the status line, prefixed
// with "/" as the original does, then hands off to SearchContacts.
func (c *Controller) SearchContactsPrompt() Outcome {
	query, ok := c.GetInput("/", "")
	if !ok || query == "" {
		c.Enqueue(func() { c.PresentInfo("Search discarded") })
		return Continue
	}
	return c.SearchContacts(query)
}

// SearchContacts calls MP.SearchContacts and jumps to the first returned
// chat id only if it is already present in ChatStore — it never joins a
// chat on the caller's behalf. This mirrors controllers.py's search_contacts
// exactly: `rv = self.tg.search_contacts(msg); chat_ids =
// rv.update["chat_ids"]; if chat_id not in self.model.chats.chat_ids:
// present_info("Chat not loaded")`.
func (c *Controller) SearchContacts(query string) Outcome {
	res := c.MP.SearchContacts(c.ctx(), query, 10)
	c.Enqueue(func() {
		if err := res.Wait(); err != nil {
			c.PresentError("Can't search contacts")
			return
		}
		ids := int64Slice(res.Update()["chat_ids"])
		if len(ids) == 0 {
			c.PresentInfo("Chat not found")
			return
		}
		chatID := ids[0]
		if _, ok := c.Model.Chats.ChatByID(chatID); !ok {
			c.PresentInfo("Chat not loaded")
			return
		}
		if idx, ok := c.Model.Chats.IndexByID(chatID); ok {
			c.Model.SetCurrentChatIndex(idx)
		}
	})
	return Continue
}

// int64Slice decodes an AsyncResult update field that may come back as
// []int64 (from a hand-written fake/adapter) or []any (the generic shape a
// JSON-decoded wire payload would take).
func int64Slice(v any) []int64 {
	switch vv := v.(type) {
	case []int64:
		return vv
	case []any:
		out := make([]int64, 0, len(vv))
		for _, e := range vv {
			if id, ok := e.(int64); ok {
				out = append(out, id)
			}
		}
		return out
	default:
		return nil
	}
}

// DeleteChatPrompt confirms before calling DeleteChat, gating the
// revoke-for-all question on private/secret chats per spec §4.5.
func (c *Controller) DeleteChatPrompt() Outcome {
	chatID, ok := c.currentChatID()
	if !ok {
		return Continue
	}
	ch, ok := c.Model.Chats.ChatByID(chatID)
	if !ok {
		return Continue
	}
	switch ch.Type {
	case domain.ChatTypeBasicGroup, domain.ChatTypeSupergroup, domain.ChatTypeChannel:
		if !c.confirm("Are you sure you want to leave this group/channel?[y/N] ", false) {
			c.Enqueue(func() { c.PresentInfo("Not leaving group/channel") })
			return Continue
		}
		return c.DeleteChat(true, false)
	default:
		if !c.confirm("Are you sure you want to delete this chat?[y/N] ", false) {
			c.Enqueue(func() { c.PresentInfo("Not deleting chat") })
			return Continue
		}
		revoke := c.confirm("Revoke for all members too?[y/N] ", false)
		return c.DeleteChat(true, revoke)
	}
}

// ViewContacts runs the fuzzy contact picker purely to display it; unlike
// NewSecretChat/NewBasicGroup it does nothing with the chosen id(s), per
// controllers.py's view_contacts (`self._get_user_ids()`).
func (c *Controller) ViewContacts() Outcome {
	c.pickUserIDs(false)
	return Continue
}

// NewSecretChat picks one contact and opens a secret chat with them.
func (c *Controller) NewSecretChat() Outcome {
	ids, ok := c.pickUserIDs(false)
	if !ok || len(ids) == 0 {
		return Continue
	}
	res := c.MP.CreateNewSecretChat(c.ctx(), ids[0])
	c.Enqueue(func() {
		if err := res.Wait(); err != nil {
			c.PresentError("Can't create secret chat")
			return
		}
		c.PresentInfo("Secret chat created")
	})
	return Continue
}

// NewBasicGroup picks one or more contacts and prompts for a title, then
// creates the group.
func (c *Controller) NewBasicGroup() Outcome {
	ids, ok := c.pickUserIDs(true)
	if !ok || len(ids) == 0 {
		return Continue
	}
	title, ok := c.GetInput("Group name: ", "")
	if !ok {
		c.Enqueue(func() { c.PresentInfo("Cancelling creating group") })
		return Continue
	}
	if title == "" {
		c.Enqueue(func() { c.PresentError("Group name should not be empty") })
		return Continue
	}
	res := c.MP.CreateNewBasicGroupChat(c.ctx(), ids, title)
	c.Enqueue(func() {
		if err := res.Wait(); err != nil {
			c.PresentError("Can't create group")
			return
		}
		c.PresentInfo("Group created")
	})
	return Continue
}

// JoinChatByIDPrompt reads a chat id on the status line and joins it. This
// is a deliberate addition beyond the original (which has no standalone
// "join by id" command): it is the only place JoinChat is reachable from,
// since SearchContacts is explicitly forbidden from auto-joining.
func (c *Controller) JoinChatByIDPrompt() Outcome {
	text, ok := c.GetInput("join chat id: ", "")
	if !ok || text == "" {
		return Continue
	}
	id, ok := parseInt64(text)
	if !ok {
		c.Enqueue(func() { c.PresentError("Invalid chat id") })
		return Continue
	}
	res := c.MP.JoinChat(c.ctx(), id)
	c.Enqueue(func() {
		if err := res.Wait(); err != nil {
			c.PresentError("Can't join chat")
			return
		}
		c.PresentInfo("Joined chat")
	})
	return Continue
}

// pickUserIDs shells out to FZF over every known contact ("id\tlabel |
// status" lines, per _get_user_ids), returning the chosen id(s) parsed off
// the front of each chosen line.
func (c *Controller) pickUserIDs(multi bool) ([]int64, bool) {
	contacts := c.Model.Users.Contacts()
	if len(contacts) == 0 {
		c.Enqueue(func() { c.PresentError("No contacts loaded") })
		return nil, false
	}
	var b strings.Builder
	for _, u := range contacts {
		fmt.Fprintf(&b, "%d\t%s | %s\n", u.ID, c.Model.Users.Label(u.ID), c.Model.Users.StatusLabel(u.ID))
	}
	cmd := c.Config.FZF + " -n 2"
	if multi {
		cmd += " -m"
	}
	out, err := c.Shell.RunCapturing(c.ctx(), cmd, b.String())
	if err != nil {
		c.Enqueue(func() { c.PresentError("Contact picker failed") })
		return nil, false
	}
	var ids []int64
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if id, ok := parseInt64(fields[0]); ok {
			ids = append(ids, id)
		}
	}
	return ids, len(ids) > 0
}

func parseInt64(s string) (int64, bool) {
	var n int64
	neg := false
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i, r := range s {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int64(r-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

// ShowHelp lists every bound key sequence and its command name through the
// configured pager, matching show_chat_help/show_msg_help.
func (c *Controller) ShowHelp(table *KeyMap) Outcome {
	help := table.Describe()
	cmd := c.Config.ViewTextCmd
	if cmd == "" {
		cmd = "less"
	}
	if err := c.Shell.RunWithInput(c.ctx(), cmd, help); err != nil {
		c.Enqueue(func() { c.PresentError("Can't show help") })
	}
	return Continue
}

// JumpNextFound / JumpPrevFound rotate through the last search's matches.
func (c *Controller) JumpNextFound() Outcome { return c.jumpFound(false) }
func (c *Controller) JumpPrevFound() Outcome { return c.jumpFound(true) }

func (c *Controller) jumpFound(backwards bool) Outcome {
	c.Enqueue(func() {
		id, ok := c.Model.Chats.NextFound(backwards)
		if !ok {
			return
		}
		if idx, ok := c.Model.Chats.IndexByID(id); ok {
			c.Model.SetCurrentChatIndex(idx)
		}
	})
	return Continue
}
