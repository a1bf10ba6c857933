package engine

// Notifications returns a newest-first copy of the notification feed.
func (e *Engine) Notifications() []Notification {
	return append([]Notification(nil), e.state.Notifications...)
}

// UnreadCount returns how many notifications are still unread.
func (e *Engine) UnreadCount() int {
	n := 0
	for i := range e.state.Notifications {
		if !e.state.Notifications[i].Read {
			n++
		}
	}
	return n
}

// MarkRead flips one notification to read. Unknown ids are a no-op;
// read never transitions back to unread.
func (e *Engine) MarkRead(id string) {
	for i := range e.state.Notifications {
		if e.state.Notifications[i].ID == id {
			if !e.state.Notifications[i].Read {
				e.state.Notifications[i].Read = true
				e.save(keyNotifications, e.state.Notifications)
			}
			return
		}
	}
}

// MarkAllRead flips every notification to read.
func (e *Engine) MarkAllRead() {
	changed := false
	for i := range e.state.Notifications {
		if !e.state.Notifications[i].Read {
			e.state.Notifications[i].Read = true
			changed = true
		}
	}
	if changed {
		e.save(keyNotifications, e.state.Notifications)
	}
}
