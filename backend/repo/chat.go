package repo

import (
	"encoding/json"
	"time"

	"vidyabandhan/backend/models"
	"vidyabandhan/backend/store"
)

// Chat keeps one append-only message log per course under "chat:{courseId}".
type Chat struct {
	RS store.RecordStore
}

func NewChat(rs store.RecordStore) *Chat {
	return &Chat{RS: rs}
}

func (r *Chat) Messages(courseID string) ([]models.ChatMessage, error) {
	raw, err := r.RS.Get(store.ChatKey(courseID))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.ChatMessage{}, nil
	}
	var msgs []models.ChatMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *Chat) Append(courseID, userName, text string) (models.ChatMessage, error) {
	if text == "" {
		return models.ChatMessage{}, ErrEmptyField
	}
	msgs, err := r.Messages(courseID)
	if err != nil {
		return models.ChatMessage{}, err
	}
	msg := models.ChatMessage{User: userName, Text: text, T: time.Now().UnixMilli()}
	msgs = append(msgs, msg)
	raw, err := json.Marshal(msgs)
	if err != nil {
		return models.ChatMessage{}, err
	}
	if err := r.RS.Set(store.ChatKey(courseID), raw); err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}
