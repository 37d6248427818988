package store

import (
	"context"

	"vidyabandhan/backend/models"
)

// Record store keys. Each key holds one JSON-serialized collection (or a
// single pointer record); there is no partial update, every mutation is a
// read-modify-write of the whole value.
const (
	KeyUsers         = "users"
	KeyCourses       = "courses"
	KeyCurrentUser   = "current-user"
	KeyCurrentCourse = "current-course"
	KeyOpenResource  = "open-resource"
)

func ChatKey(courseID string) string       { return "chat:" + courseID }
func AttendanceKey(courseID string) string { return "attendance:" + courseID }

// RecordStore is a synchronous string-keyed store for small JSON values.
// Get returns (nil, nil) when the key is absent. There are no transactional
// guarantees across keys.
type RecordStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// BlobStore holds uploaded resource payloads, keyed by Resource.ID. It is
// deliberately distinct from the record store: payloads are much larger than
// record collections. Put upserts; ListAll returns every resource ever
// stored, across all courses — callers filter by CourseID themselves.
type BlobStore interface {
	Put(ctx context.Context, res models.Resource) error
	ListAll(ctx context.Context) ([]models.Resource, error)
}
