package services

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

func (s *ServiceSuite) TestConversations() {
	resp, err := s.messages.Conversations("c2")
	s.Require().NoError(err)
	s.Require().Len(resp.Conversations, 1)
	conv := resp.Conversations[0]
	s.Equal("f2", conv.With.ID)
	s.Equal(1, conv.Unread)
	s.Equal(1, resp.Unread)
	s.Require().NotNil(conv.LastMessage)
	s.Equal("m4", conv.LastMessage.ID)
}

func (s *ServiceSuite) TestThreadMarksRead() {
	thread, err := s.messages.Thread("c2", "f2", utils.NewPaginationParams(1, 20))
	s.Require().NoError(err)
	s.Equal("f2", thread.With.ID)
	s.Len(thread.Messages, 2)
	s.Equal(int64(2), thread.Pagination.Total)

	resp, err := s.messages.Conversations("c2")
	s.Require().NoError(err)
	s.Zero(resp.Unread)

	_, err = s.messages.Thread("c2", "missing", utils.NewPaginationParams(1, 20))
	s.ErrorIs(err, ErrRecipientNotFound)
}

func (s *ServiceSuite) TestSendMessage() {
	msg, err := s.messages.Send("f3", SendMessageInput{ReceiverID: "c3", Content: "  Hello Michael  "})
	s.Require().NoError(err)
	s.Equal("Hello Michael", msg.Content)
	s.False(msg.Read)

	resp, err := s.messages.Conversations("c3")
	s.Require().NoError(err)
	s.Require().Len(resp.Conversations, 1)
	s.Equal("f3", resp.Conversations[0].With.ID)
	s.Equal(1, resp.Unread)

	_, err = s.messages.Send("f3", SendMessageInput{ReceiverID: "f3", Content: "me"})
	s.ErrorIs(err, ErrMessageToSelf)

	_, err = s.messages.Send("f3", SendMessageInput{ReceiverID: "nobody", Content: "hi"})
	s.ErrorIs(err, ErrRecipientNotFound)

	_, err = s.messages.Send("f3", SendMessageInput{ReceiverID: "c3", Content: "   "})
	s.ErrorIs(err, ErrInvalidInput)
}
