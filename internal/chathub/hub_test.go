package chathub_test

import (
	"testing"
	"time"

	"agrismart/backend/internal/chathub"
	"agrismart/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// settle gives the hub goroutine time to drain its channels.
func settle() { time.Sleep(100 * time.Millisecond) }

func startHub(store chathub.Store) *chathub.Hub {
	hub := chathub.NewHub(store, chathub.NewRoster())
	go hub.Run()
	return hub
}

func receive(t *testing.T, c *mockClient) models.Notice {
	t.Helper()
	select {
	case n := <-c.recv:
		return n
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("client %s did not receive a notice", c.id)
		return models.Notice{}
	}
}

func assertNothingReceived(t *testing.T, c *mockClient) {
	t.Helper()
	select {
	case n := <-c.recv:
		t.Fatalf("client %s unexpectedly received %+v", c.id, n)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := startHub(new(MockStore))
	clientA := newMockClient("conn_A")

	hub.RegisterCh <- clientA
	settle()
	assert.Contains(t, hub.Clients, "conn_A")

	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: "conn_A"}
	settle()

	hub.UnregisterCh <- clientA
	settle()
	assert.NotContains(t, hub.Clients, "conn_A")
	assert.Empty(t, hub.Roster.Members("general"), "disconnect must clear presence")
	assert.True(t, clientA.closed)
}

func TestHub_JoinBroadcastsToWholeRoom(t *testing.T) {
	hub := startHub(new(MockStore))
	clientA := newMockClient("conn_A")
	clientB := newMockClient("conn_B")
	hub.RegisterCh <- clientA
	hub.RegisterCh <- clientB

	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: "conn_A"}
	settle()

	// The joiner itself gets the notice: broadcast is room-wide.
	n := receive(t, clientA)
	assert.Equal(t, models.NoticeUserJoined, n.Event)
	assert.Equal(t, "User joined general", n.Message)

	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: "conn_B"}
	settle()
	assert.Equal(t, models.NoticeUserJoined, receive(t, clientA).Event)
	assert.Equal(t, models.NoticeUserJoined, receive(t, clientB).Event)
}

func TestHub_MissingRoomDefaultsToGeneral(t *testing.T) {
	hub := startHub(new(MockStore))
	clientA := newMockClient("conn_A")
	hub.RegisterCh <- clientA

	hub.IncomingCh <- models.Event{Type: models.EventJoin, ClientID: "conn_A"}
	settle()

	assert.ElementsMatch(t, []string{"conn_A"}, hub.Roster.Members(models.DefaultRoom))
}

func TestHub_LeaveBroadcastsToRemainingMembers(t *testing.T) {
	hub := startHub(new(MockStore))
	clientA := newMockClient("conn_A")
	clientB := newMockClient("conn_B")
	hub.RegisterCh <- clientA
	hub.RegisterCh <- clientB
	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: "conn_A"}
	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: "conn_B"}
	settle()
	drain(clientA)
	drain(clientB)

	hub.IncomingCh <- models.Event{Type: models.EventLeave, Room: "general", ClientID: "conn_A"}
	settle()

	n := receive(t, clientB)
	assert.Equal(t, models.NoticeUserLeft, n.Event)
	assert.Equal(t, "User left general", n.Message)
	assert.ElementsMatch(t, []string{"conn_B"}, hub.Roster.Members("general"))
}

func TestHub_MessagePersistsBeforePublishing(t *testing.T) {
	store := new(MockStore)
	var order []string
	store.On("SaveChatMessage", mock.AnythingOfType("*models.ChatMessage")).
		Run(func(args mock.Arguments) {
			order = append(order, "save")
			msg := args.Get(0).(*models.ChatMessage)
			assert.Equal(t, "Hello", msg.Message)
			assert.Equal(t, "general", msg.Room)
			assert.NotEmpty(t, msg.Language)
		}).Return(nil)
	store.On("UserDisplayInfo", uint(7)).Return("Asha", "asha.png", nil)
	store.On("PublishNotice", "general", mock.AnythingOfType("models.Notice")).
		Run(func(mock.Arguments) { order = append(order, "publish") }).Return(nil)

	hub := startHub(store)
	hub.IncomingCh <- models.Event{
		Type:     models.EventMessage,
		Room:     "general",
		Message:  "Hello",
		UserID:   7,
		ClientID: "conn_A",
	}
	settle()

	store.AssertNumberOfCalls(t, "SaveChatMessage", 1)
	store.AssertNumberOfCalls(t, "PublishNotice", 1)
	assert.Equal(t, []string{"save", "publish"}, order)
}

func TestHub_MessageDelivery(t *testing.T) {
	store := new(MockStore)
	var published models.Notice
	store.On("SaveChatMessage", mock.AnythingOfType("*models.ChatMessage")).Return(nil)
	store.On("UserDisplayInfo", uint(7)).Return("Asha", "asha.png", nil)
	store.On("PublishNotice", "general", mock.AnythingOfType("models.Notice")).
		Run(func(args mock.Arguments) { published = args.Get(1).(models.Notice) }).Return(nil)

	hub := startHub(store)
	clientA := newMockClient("conn_A")
	clientB := newMockClient("conn_B")
	hub.RegisterCh <- clientA
	hub.RegisterCh <- clientB
	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: "conn_A"}
	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: "conn_B"}
	hub.IncomingCh <- models.Event{
		Type:     models.EventMessage,
		Room:     "general",
		Message:  "Hello",
		UserID:   7,
		ClientID: "conn_A",
	}
	settle()
	drain(clientA)
	drain(clientB)

	// The bridge loops published notices back in for local fan-out.
	hub.PubSubCh <- published
	settle()

	n := receive(t, clientB)
	assert.Equal(t, models.NoticeNewMessage, n.Event)
	assert.Equal(t, "Hello", n.Message)
	assert.Equal(t, "general", n.Room)
	assert.Equal(t, "Asha", n.Username)
	assert.Equal(t, "asha.png", n.ProfileImage)
	assert.Equal(t, uint(7), n.UserID)
	assert.NotEmpty(t, n.Timestamp)

	// Broadcast is room-wide: the sender's connection gets it too.
	assert.Equal(t, models.NoticeNewMessage, receive(t, clientA).Event)
}

func TestHub_RoomIsolation(t *testing.T) {
	hub := startHub(new(MockStore))
	clientA := newMockClient("conn_A")
	clientB := newMockClient("conn_B")
	hub.RegisterCh <- clientA
	hub.RegisterCh <- clientB
	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: "conn_A"}
	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "crops", ClientID: "conn_B"}
	settle()
	drain(clientA)
	drain(clientB)

	hub.PubSubCh <- models.Notice{Event: models.NoticeNewMessage, Room: "general", Message: "Hello"}
	settle()

	assert.Equal(t, "Hello", receive(t, clientA).Message)
	assertNothingReceived(t, clientB)
}

func TestHub_TypingExcludesSenderAndSkipsPersistence(t *testing.T) {
	store := new(MockStore)
	hub := startHub(store)
	clientA := newMockClient("conn_A")
	clientB := newMockClient("conn_B")
	clientC := newMockClient("conn_C")
	for _, c := range []*mockClient{clientA, clientB, clientC} {
		hub.RegisterCh <- c
		hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: c.id}
	}
	settle()
	drain(clientA)
	drain(clientB)
	drain(clientC)

	hub.IncomingCh <- models.Event{
		Type:     models.EventTyping,
		Room:     "general",
		Username: "Asha",
		ClientID: "conn_A",
	}
	settle()

	for _, c := range []*mockClient{clientB, clientC} {
		n := receive(t, c)
		assert.Equal(t, models.NoticeUserTyping, n.Event)
		assert.Equal(t, "Asha", n.Username)
	}
	assertNothingReceived(t, clientA)
	store.AssertNotCalled(t, "SaveChatMessage", mock.Anything)
	store.AssertNotCalled(t, "PublishNotice", mock.Anything, mock.Anything)
}

func TestHub_UnknownSenderFallsBackToAnonymous(t *testing.T) {
	store := new(MockStore)
	var published models.Notice
	store.On("SaveChatMessage", mock.AnythingOfType("*models.ChatMessage")).Return(nil)
	store.On("UserDisplayInfo", uint(99)).Return("", "", assert.AnError)
	store.On("PublishNotice", "general", mock.AnythingOfType("models.Notice")).
		Run(func(args mock.Arguments) { published = args.Get(1).(models.Notice) }).Return(nil)

	hub := startHub(store)
	hub.IncomingCh <- models.Event{
		Type:     models.EventMessage,
		Room:     "general",
		Message:  "Hello",
		UserID:   99,
		ClientID: "conn_A",
	}
	settle()

	assert.Equal(t, "Anonymous", published.Username)
	assert.Empty(t, published.ProfileImage)
}

func TestHub_PersistFailureStillBroadcasts(t *testing.T) {
	store := new(MockStore)
	store.On("SaveChatMessage", mock.AnythingOfType("*models.ChatMessage")).Return(assert.AnError)
	store.On("UserDisplayInfo", uint(7)).Return("Asha", "", nil)
	store.On("PublishNotice", "general", mock.AnythingOfType("models.Notice")).Return(nil)

	hub := startHub(store)
	hub.IncomingCh <- models.Event{
		Type:     models.EventMessage,
		Room:     "general",
		Message:  "Hello",
		UserID:   7,
		ClientID: "conn_A",
	}
	settle()

	store.AssertCalled(t, "PublishNotice", "general", mock.AnythingOfType("models.Notice"))
}

func TestHub_PublishFailureFallsBackToLocalDelivery(t *testing.T) {
	store := new(MockStore)
	store.On("SaveChatMessage", mock.AnythingOfType("*models.ChatMessage")).Return(nil)
	store.On("UserDisplayInfo", uint(7)).Return("Asha", "", nil)
	store.On("PublishNotice", "general", mock.AnythingOfType("models.Notice")).Return(assert.AnError)

	hub := startHub(store)
	clientB := newMockClient("conn_B")
	hub.RegisterCh <- clientB
	hub.IncomingCh <- models.Event{Type: models.EventJoin, Room: "general", ClientID: "conn_B"}
	settle()
	drain(clientB)

	hub.IncomingCh <- models.Event{
		Type:     models.EventMessage,
		Room:     "general",
		Message:  "Hello",
		UserID:   7,
		ClientID: "conn_A",
	}
	settle()

	assert.Equal(t, "Hello", receive(t, clientB).Message)
}

func TestHub_BroadcastToEmptyRoomIsNoop(t *testing.T) {
	hub := startHub(new(MockStore))

	assert.NotPanics(t, func() {
		hub.PubSubCh <- models.Notice{Event: models.NoticeNewMessage, Room: "ghost-town", Message: "anyone?"}
		settle()
	})
}

// drain empties a client's receive buffer.
func drain(c *mockClient) {
	for {
		select {
		case <-c.recv:
		default:
			return
		}
	}
}
