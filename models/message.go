package models

import "time"

type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// Message is one customer inbox entry. Once replied it is final: the
// reply fields are set together with the status and never change again.
type Message struct {
	ID             string        `json:"id"`
	CustomerName   string        `json:"customerName"`
	CustomerEmail  string        `json:"customerEmail"`
	Message        string        `json:"message"`
	Timestamp      time.Time     `json:"timestamp"`
	Status         MessageStatus `json:"status"`
	AdminReply     string        `json:"adminReply,omitempty"`
	ReplyTimestamp *time.Time    `json:"replyTimestamp,omitempty"`
}
