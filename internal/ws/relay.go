// internal/ws/relay.go
package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chat-relay-service/internal/client"
	"chat-relay-service/internal/model"
	"chat-relay-service/internal/service"
)

// Broadcaster fans an event out to every live connection.
type Broadcaster interface {
	Broadcast(event string, data interface{})
}

// Relay resolves message targets against the presence registry and roster
// cache and dispatches payloads plus acknowledgments. The messageSent ack
// means the router accepted the message, not that it was delivered.
type Relay struct {
	presence *PresenceRegistry
	roster   *RosterCache
	typing   *TypingRelay
	groups   service.GroupService
	messages service.MessageService
	users    client.IdentityClient
	mirror   *service.PresenceMirror

	broadcaster Broadcaster
	logger      *zap.Logger
}

func NewRelay(
	presence *PresenceRegistry,
	roster *RosterCache,
	typing *TypingRelay,
	groups service.GroupService,
	messages service.MessageService,
	users client.IdentityClient,
	mirror *service.PresenceMirror,
	logger *zap.Logger,
) *Relay {
	return &Relay{
		presence: presence,
		roster:   roster,
		typing:   typing,
		groups:   groups,
		messages: messages,
		users:    users,
		mirror:   mirror,
		logger:   logger,
	}
}

func (r *Relay) broadcast(event string, data interface{}) {
	if r.broadcaster != nil {
		r.broadcaster.Broadcast(event, data)
	}
}

// HandleOnline registers the connection as the authoritative one for its user
// and broadcasts the updated presence list to everyone.
func (r *Relay) HandleOnline(ctx context.Context, c *Client) {
	snapshot := r.presence.SetOnline(c)
	r.mirror.SetOnline(ctx, c.UserID)
	r.broadcast(EventUpdateUsers, snapshot)

	r.logger.Info("user online",
		zap.String("userId", c.UserID),
		zap.String("socketId", c.SocketID))
}

// HandleSendMessage routes a text message. Direct messages to an offline peer
// are dropped silently; the sender still gets a messageSent ack either way.
func (r *Relay) HandleSendMessage(c *Client, raw json.RawMessage) {
	var p SendMessagePayload
	if err := json.Unmarshal(raw, &p); err != nil || p.Receiver == "" || p.Content == "" {
		c.Emit(EventError, ErrorPayload{Message: "Failed to send message"})
		return
	}
	if p.Type == "" {
		p.Type = model.TargetDirect
	}

	msg := RelayedMessage{
		ID:         uuid.NewString(),
		Sender:     c.UserID,
		SenderName: c.DisplayName,
		Receiver:   p.Receiver,
		Type:       p.Type,
		Content:    p.Content,
		Timestamp:  time.Now().UnixMilli(),
	}

	r.persistMessage(&msg, model.PayloadText, nil, nil)

	if p.Type == model.TargetGroup {
		// Delivery requires the group to exist at delivery time; otherwise it
		// silently fails for all recipients. The ack is emitted regardless.
		if r.roster.Resolve(p.Receiver) != nil {
			for _, target := range r.roster.RoomTargets(p.Receiver) {
				if target != c {
					target.Emit(EventReceiveMessage, msg)
				}
			}
		}
	} else {
		if target, ok := r.presence.Lookup(p.Receiver); ok {
			target.Emit(EventReceiveMessage, msg)
		}
	}

	relayMessagesTotal.Inc()
	c.Emit(EventMessageSent, MessageSentPayload{Status: "sent", Message: msg})
}

// HandleTyping and HandleStopTyping forward best-effort typing signals.
func (r *Relay) HandleTyping(raw json.RawMessage) {
	var p TypingPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return
	}
	r.typing.Start(p)
}

func (r *Relay) HandleStopTyping(raw json.RawMessage) {
	var p TypingPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return
	}
	r.typing.Stop(p)
}

// HandleCreateGroup persists a new group, seeds the roster cache, joins the
// creator to the routing room and broadcasts groupCreated to everyone.
func (r *Relay) HandleCreateGroup(ctx context.Context, c *Client, raw json.RawMessage) {
	var p CreateGroupPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.GroupName == "" {
		c.Emit(EventError, ErrorPayload{Message: "Failed to create group"})
		return
	}

	members := r.resolveMemberDetails(ctx, p.Members)
	createdBy := model.GroupMember{UserID: c.UserID, DisplayName: c.DisplayName}

	group, err := r.groups.CreateGroup(p.GroupName, members, createdBy)
	if err != nil {
		r.logger.Error("group creation failed",
			zap.String("userId", c.UserID),
			zap.Error(err))
		c.Emit(EventError, ErrorPayload{Message: "Failed to create group"})
		return
	}

	groupID := group.GroupID.String()
	r.roster.Seed(group)
	r.roster.Join(groupID, c)

	r.broadcast(EventGroupCreated, GroupCreatedPayload{
		GroupID: groupID,
		Name:    group.Name,
		Members: group.Members,
	})
}

// HandleJoinGroup adds the connection to the routing room after validating
// the group exists. Routing-room membership is not durable membership: the
// durable members set is untouched.
func (r *Relay) HandleJoinGroup(c *Client, raw json.RawMessage) {
	var p JoinGroupPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.GroupID == "" {
		c.Emit(EventError, ErrorPayload{Message: "Group not found"})
		return
	}

	if r.roster.Resolve(p.GroupID) == nil {
		c.Emit(EventError, ErrorPayload{Message: "Group not found"})
		return
	}

	r.roster.Join(p.GroupID, c)
}

// HandleSendFile validates an inline file payload and routes it. Unlike text
// messages, a direct file to an unresolvable recipient surfaces a fileError
// to the sender.
func (r *Relay) HandleSendFile(c *Client, raw json.RawMessage) {
	var p SendFilePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.Emit(EventFileError, FileErrorPayload{Error: msgInvalidFileData, Status: "error"})
		relayFilesRejectedTotal.Inc()
		return
	}

	size, violation := validateFilePayload(&p)
	if violation != "" {
		c.Emit(EventFileError, FileErrorPayload{Error: violation, Status: "error"})
		relayFilesRejectedTotal.Inc()
		return
	}
	if p.Type == "" {
		p.Type = model.TargetDirect
	}

	file := RelayedFile{
		ID:         uuid.NewString(),
		Sender:     c.UserID,
		SenderName: c.DisplayName,
		Receiver:   p.Receiver,
		Type:       p.Type,
		File:       p.File,
		FileSize:   size,
		Timestamp:  time.Now().UnixMilli(),
		Status:     "success",
	}

	fileName := p.File.Name
	r.persistMessage(&RelayedMessage{
		ID:         file.ID,
		Sender:     file.Sender,
		SenderName: file.SenderName,
		Receiver:   file.Receiver,
		Type:       file.Type,
		Timestamp:  file.Timestamp,
	}, model.PayloadFile, &fileName, &size)

	if p.Type == model.TargetGroup {
		for _, target := range r.roster.RoomTargets(p.Receiver) {
			if target != c {
				target.Emit(EventReceiveFile, file)
			}
		}
	} else {
		target, ok := r.presence.Lookup(p.Receiver)
		if !ok {
			c.Emit(EventFileError, FileErrorPayload{Error: msgRecipientOffline, Status: "error"})
			relayFilesRejectedTotal.Inc()
			return
		}
		target.Emit(EventReceiveFile, file)
	}

	relayFilesTotal.Inc()
	c.Emit(EventFileSent, FileSentPayload{Status: "success", Message: file})
}

// HandleDisconnect reaps a severed connection: presence entry removed, rooms
// cleaned up, remaining connections told about the departure.
func (r *Relay) HandleDisconnect(ctx context.Context, c *Client) {
	snapshot := r.presence.Remove(c.UserID)
	r.roster.RemoveClient(c)
	r.mirror.SetOffline(ctx, c.UserID)
	r.broadcast(EventUpdateUsers, snapshot)

	r.logger.Info("user disconnected",
		zap.String("userId", c.UserID),
		zap.String("socketId", c.SocketID))
}

// persistMessage records the durable copy. Persistence and relay are
// independent paths: a store failure is logged, never retried, and not
// surfaced to the sender.
func (r *Relay) persistMessage(msg *RelayedMessage, kind model.PayloadKind, fileName *string, fileSize *int64) {
	id, err := uuid.Parse(msg.ID)
	if err != nil {
		id = uuid.New()
	}

	record := &model.Message{
		MessageID:   id,
		SenderID:    msg.Sender,
		SenderName:  msg.SenderName,
		TargetKind:  msg.Type,
		TargetID:    msg.Receiver,
		Content:     msg.Content,
		PayloadKind: kind,
		FileName:    fileName,
		FileSize:    fileSize,
	}

	if err := r.messages.RecordMessage(record); err != nil {
		r.logger.Error("failed to persist message",
			zap.String("messageId", msg.ID),
			zap.String("sender", msg.Sender),
			zap.Error(err))
	}
}

// resolveMemberDetails looks each member up in the identity store to attach a
// display name, deduplicating by userId. A failed lookup falls back to the
// raw id rather than failing group creation.
func (r *Relay) resolveMemberDetails(ctx context.Context, memberIDs []string) model.GroupMembers {
	members := make(model.GroupMembers, 0, len(memberIDs))
	for _, id := range memberIDs {
		displayName := id
		if user, err := r.users.GetUser(ctx, id); err == nil {
			if user.ProfileName != "" {
				displayName = user.ProfileName
			} else if user.Username != "" {
				displayName = user.Username
			}
		}
		members = append(members, model.GroupMember{UserID: id, DisplayName: displayName})
	}
	return members.Dedupe()
}
