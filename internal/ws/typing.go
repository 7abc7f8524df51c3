// internal/ws/typing.go
package ws

// TypingRelay forwards ephemeral typing signals. No state, no acknowledgment,
// no persistence: if the receiver is not present the signal is dropped.
type TypingRelay struct {
	presence *PresenceRegistry
}

func NewTypingRelay(presence *PresenceRegistry) *TypingRelay {
	return &TypingRelay{presence: presence}
}

func (t *TypingRelay) Start(p TypingPayload) {
	if receiver, ok := t.presence.Lookup(p.ReceiverID); ok {
		receiver.Emit(EventUserTyping, UserTypingPayload{UserID: p.UserID})
	}
}

func (t *TypingRelay) Stop(p TypingPayload) {
	if receiver, ok := t.presence.Lookup(p.ReceiverID); ok {
		receiver.Emit(EventUserStoppedTyping, UserTypingPayload{UserID: p.UserID})
	}
}
