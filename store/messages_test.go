package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
)

func newTestMessages(t *testing.T) (*MessageStore, *KV) {
	t.Helper()
	kv := newTestKV(t)
	messages, err := NewMessageStore(kv, NewBus())
	require.NoError(t, err)
	return messages, kv
}

func TestAppendMessage(t *testing.T) {
	messages, _ := newTestMessages(t)

	msg, err := messages.Append("Maria", "maria@example.com", "Do you stock insulin pens?")
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, models.MessageStatusUnread, msg.Status)
	assert.Empty(t, msg.AdminReply)
	assert.Nil(t, msg.ReplyTimestamp)
}

func TestListNewestFirst(t *testing.T) {
	messages, _ := newTestMessages(t)

	_, err := messages.Append("First", "a@example.com", "first")
	require.NoError(t, err)
	_, err = messages.Append("Second", "b@example.com", "second")
	require.NoError(t, err)

	list := messages.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].CustomerName)
	assert.Equal(t, "First", list[1].CustomerName)
}

func TestMarkRead(t *testing.T) {
	messages, _ := newTestMessages(t)

	msg, err := messages.Append("Maria", "maria@example.com", "hello")
	require.NoError(t, err)

	read, err := messages.MarkRead(msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusRead, read.Status)
}

func TestReply(t *testing.T) {
	messages, _ := newTestMessages(t)

	msg, err := messages.Append("Maria", "maria@example.com", "hello")
	require.NoError(t, err)

	replied, err := messages.Reply(msg.ID, "text")
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusReplied, replied.Status)
	assert.Equal(t, "text", replied.AdminReply)
	require.NotNil(t, replied.ReplyTimestamp)

	// replied is final
	_, err = messages.Reply(msg.ID, "again")
	assert.ErrorIs(t, err, ErrMessageReplied)
	_, err = messages.MarkRead(msg.ID)
	assert.ErrorIs(t, err, ErrMessageReplied)
}

func TestReplyFromRead(t *testing.T) {
	messages, _ := newTestMessages(t)

	msg, err := messages.Append("Maria", "maria@example.com", "hello")
	require.NoError(t, err)
	_, err = messages.MarkRead(msg.ID)
	require.NoError(t, err)

	replied, err := messages.Reply(msg.ID, "answer")
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusReplied, replied.Status)
}

func TestMessageUnknownID(t *testing.T) {
	messages, _ := newTestMessages(t)

	_, err := messages.MarkRead("missing")
	assert.ErrorIs(t, err, ErrMessageNotFound)
	_, err = messages.Reply("missing", "text")
	assert.ErrorIs(t, err, ErrMessageNotFound)
	_, err = messages.Get("missing")
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMessagesSurviveReload(t *testing.T) {
	messages, kv := newTestMessages(t)

	msg, err := messages.Append("Maria", "maria@example.com", "hello")
	require.NoError(t, err)
	_, err = messages.Reply(msg.ID, "answer")
	require.NoError(t, err)

	reloaded, err := NewMessageStore(kv, NewBus())
	require.NoError(t, err)
	got, err := reloaded.Get(msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusReplied, got.Status)
	assert.Equal(t, "answer", got.AdminReply)
}
