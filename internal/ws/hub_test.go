// internal/ws/hub_test.go
package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chat-relay-service/internal/service"
)

func newTestHub(relay *Relay) *Hub {
	hub := &Hub{
		relay:   relay,
		clients: make(map[*Client]bool),
		logger:  zap.NewNop(),
	}
	relay.broadcaster = hub
	return hub
}

func TestBroadcastReachesAllConnections(t *testing.T) {
	f := newRelayFixture()
	hub := newTestHub(f.relay)

	u1 := testClient("u1", "Alice")
	u2 := testClient("u2", "Bob")
	hub.clients[u1] = true
	hub.clients[u2] = true

	hub.Broadcast(EventUpdateUsers, []PresenceUser{{UserID: "u1"}})

	for _, c := range []*Client{u1, u2} {
		events := drain(c)
		require.Len(t, events, 1)
		assert.Equal(t, EventUpdateUsers, events[0].Event)
	}
}

func TestDispatchInvalidFrameEmitsError(t *testing.T) {
	f := newRelayFixture()
	hub := newTestHub(f.relay)

	u1 := testClient("u1", "Alice")
	hub.dispatch(u1, []byte("not json"))

	events := drain(u1)
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Event)
}

func TestDispatchUnknownEventIgnored(t *testing.T) {
	f := newRelayFixture()
	hub := newTestHub(f.relay)

	u1 := testClient("u1", "Alice")
	hub.dispatch(u1, []byte(`{"event":"selfDestruct"}`))

	assert.Empty(t, drain(u1))
}

func TestDispatchRoutesEvents(t *testing.T) {
	f := newRelayFixture()
	hub := newTestHub(f.relay)

	u1 := testClient("u1", "Alice")
	hub.clients[u1] = true

	hub.dispatch(u1, []byte(`{"event":"online"}`))

	events := drain(u1)
	require.Len(t, events, 1)
	assert.Equal(t, EventUpdateUsers, events[0].Event)

	var users []PresenceUser
	require.NoError(t, json.Unmarshal(events[0].Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].UserID)
}

// A fault inside one handler must not crash the process or sever the
// connection: the dispatcher recovers and reports an error to that sender.
func TestDispatchRecoversFromHandlerPanic(t *testing.T) {
	f := newRelayFixture()
	// A relay wired without a typing component panics on typing events.
	broken := NewRelay(f.presence, f.roster, nil,
		service.NewGroupService(f.groupRepo),
		service.NewMessageService(f.msgRepo),
		&fakeIdentity{}, nil, zap.NewNop())
	hub := newTestHub(broken)

	u1 := testClient("u1", "Alice")

	assert.NotPanics(t, func() {
		hub.dispatch(u1, []byte(`{"event":"typing","data":{"userId":"u1","receiverId":"u2"}}`))
	})

	events := drain(u1)
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Event)
}
