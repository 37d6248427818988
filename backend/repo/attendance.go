package repo

import (
	"encoding/json"
	"time"

	"vidyabandhan/backend/models"
	"vidyabandhan/backend/store"
)

// Attendance keeps one append-only log per course under
// "attendance:{courseId}". Marking present twice produces two records;
// there is no dedup.
type Attendance struct {
	RS store.RecordStore
}

func NewAttendance(rs store.RecordStore) *Attendance {
	return &Attendance{RS: rs}
}

func (r *Attendance) List(courseID string) ([]models.AttendanceRecord, error) {
	raw, err := r.RS.Get(store.AttendanceKey(courseID))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.AttendanceRecord{}, nil
	}
	var records []models.AttendanceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Attendance) Mark(courseID string, user models.User) (models.AttendanceRecord, error) {
	records, err := r.List(courseID)
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	record := models.AttendanceRecord{UserID: user.ID, Name: user.Name, T: time.Now().UnixMilli()}
	records = append(records, record)
	raw, err := json.Marshal(records)
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	if err := r.RS.Set(store.AttendanceKey(courseID), raw); err != nil {
		return models.AttendanceRecord{}, err
	}
	return record, nil
}
