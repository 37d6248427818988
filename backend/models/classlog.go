package models

// ChatMessage is appended to the per-course "chat:{courseId}" collection.
// User is a display name, not a User id; there is no edit or delete.
type ChatMessage struct {
	User string `json:"user"`
	Text string `json:"text"`
	T    int64  `json:"t"`
}

// AttendanceRecord is appended to the per-course "attendance:{courseId}"
// collection every time a participant marks themselves present.
type AttendanceRecord struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	T      int64  `json:"t"`
}
