package e2e

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testChatFlowSuite struct {
	BaseWsSuite
}

func TestChatFlowSuite(t *testing.T) {
	suite.Run(t, &testChatFlowSuite{})
}

type messageFrame struct {
	To       string `json:"to"`
	Username string `json:"username"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (s *testChatFlowSuite) TestFullChatFlow() {
	alice, aliceName := s.Username("alice")
	bob, bobName := s.Username("bob")
	room := "arcade-" + uuid.NewString()[:8]

	s.Run("Step 1: Landing in the default room publishes presence", func() {
		alice.Emit("set_default_room", nil)
		var presence struct {
			Users []string `json:"users"`
		}
		alice.Await("set_users", &presence)
		s.Require().Contains(presence.Users, aliceName)
	})

	s.Run("Step 2: Creating a room returns the updated list", func() {
		alice.Emit("create_room", map[string]string{"name": room})
		var chats struct {
			Rooms []string `json:"rooms"`
		}
		alice.Await("set_chats", &chats)
		s.Require().Contains(chats.Rooms, room)
		s.Require().Contains(chats.Rooms, "default")
	})

	s.Run("Step 3: Both users join the room", func() {
		alice.Emit("join_room", room)
		var joined struct {
			Username string `json:"username"`
			Room     string `json:"room"`
		}
		alice.Await("joined_room", &joined)
		s.Require().Equal(aliceName, joined.Username)
		s.Require().Equal(room, joined.Room)

		bob.Emit("join_room", room)
		bob.Await("joined_room", &joined)
		s.Require().Equal(bobName, joined.Username)
	})

	s.Run("Step 4: A broadcast reaches the whole room", func() {
		alice.Emit("message", map[string]string{
			"to": "all", "room": room, "text": "hello room",
			"date": "01/02", "time": "15:04",
		})
		var msg messageFrame
		bob.Await("message", &msg)
		s.Require().Equal(aliceName, msg.Username)
		s.Require().Equal("hello room", msg.Text)
	})

	s.Run("Step 5: A whisper reaches the target and echoes to the sender", func() {
		bob.Emit("message", map[string]string{
			"to": aliceName, "room": room, "text": "psst",
			"date": "01/02", "time": "15:04",
		})
		var pm messageFrame
		alice.Await("PM", &pm)
		s.Require().Equal(bobName, pm.Username)
		s.Require().Equal("psst", pm.Text)
		bob.Await("PM", &pm)
		s.Require().Equal(aliceName, pm.To)
	})

	s.Run("Step 6: Typing indicators relay to the rest of the room", func() {
		alice.Emit("currently_writing", room)
		var typing struct {
			Username string `json:"username"`
		}
		bob.Await("writing", &typing)
		s.Require().Equal(aliceName, typing.Username)

		alice.Emit("done_writing", room)
		bob.Await("not_writing", nil)
	})

	s.Run("Step 7: History holds the broadcast but never the whisper", func() {
		alice.Emit("get_messages", room)
		var history struct {
			Messages []messageFrame `json:"messages"`
		}
		alice.Await("set_messages", &history)
		s.Require().Len(history.Messages, 1)
		s.Require().Equal("hello room", history.Messages[0].Text)
	})

	s.Run("Step 8: Deleting the room evicts occupants and purges history", func() {
		alice.Emit("delete_chat", map[string]string{"name": room})

		var joined struct {
			Username string `json:"username"`
			Room     string `json:"room"`
		}
		bob.Await("joined_room", &joined)
		s.Require().Equal(bobName, joined.Username)
		s.Require().Equal("default", joined.Room)

		var chats struct {
			Rooms []string `json:"rooms"`
		}
		alice.Await("set_chats", &chats)
		s.Require().NotContains(chats.Rooms, room)

		alice.Emit("get_messages", room)
		var history struct {
			Messages []messageFrame `json:"messages"`
		}
		alice.Await("set_messages", &history)
		s.Require().Empty(history.Messages)
	})
}

func (s *testChatFlowSuite) TestUsernameConflict() {
	claimer, name := s.Username("carol")
	defer claimer.Close()

	rival := s.Dial("carol rival")
	rival.Emit("set_username", name)
	rival.Await("user_error", nil)
}

func (s *testChatFlowSuite) TestJoinRequiresUsername() {
	anonymous := s.Dial("anonymous visitor")
	anonymous.Emit("join_room", "anywhere")
	anonymous.Await("no_username", nil)
}

func (s *testChatFlowSuite) TestDefaultRoomCannotBeDeleted() {
	client, _ := s.Username("dave")
	client.Emit("delete_chat", map[string]string{"name": "default"})
	client.Await("room_error", nil)
}

func (s *testChatFlowSuite) TestModerationCensorsBroadcasts() {
	client, name := s.Username("frank")
	client.Emit("set_default_room", nil)

	client.Emit("message", map[string]string{
		"to": "all", "room": "default", "text": "what a troll!",
		"date": "01/02", "time": "15:04",
	})
	var msg messageFrame
	client.Await("message", &msg)
	s.Require().Equal(name, msg.Username)
	s.Require().Equal("what a *****!", msg.Text)
}

func (s *testChatFlowSuite) TestMessageRejections() {
	client, _ := s.Username("eve")

	client.Emit("message", map[string]string{
		"to": "all", "room": "default", "text": "",
		"date": "01/02", "time": "15:04",
	})
	client.Await("message_error", nil)

	client.Emit("message", map[string]string{
		"to": "all", "room": "no-such-room-" + uuid.NewString()[:8], "text": "hi",
		"date": "01/02", "time": "15:04",
	})
	client.Await("message_error", nil)
}
