package repo

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"

	"vidyabandhan/backend/models"
	"vidyabandhan/backend/store"
)

// Playback modes for the classroom player, selected by MIME type.
const (
	PlayVideo    = "video"
	PlayDocument = "document"
	PlayNone     = "none"
)

type Resources struct {
	Blobs   store.BlobStore
	Courses *Courses
}

func NewResources(blobs store.BlobStore, courses *Courses) *Resources {
	return &Resources{Blobs: blobs, Courses: courses}
}

// Upload encodes the payload as a self-contained data URL, stores it in the
// blob store, then links the resource id to the course. The two writes are
// sequential, not atomic: if the blob write fails the course record is left
// untouched.
func (r *Resources) Upload(ctx context.Context, course models.Course, filename, mimeType string, payload []byte) (models.Resource, error) {
	if filename == "" {
		return models.Resource{}, ErrEmptyField
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	res := models.Resource{
		ID:        uuid.NewString(),
		CourseID:  course.ID,
		Title:     filename,
		Type:      mimeType,
		Data:      "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(payload),
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := r.Blobs.Put(ctx, res); err != nil {
		return models.Resource{}, err
	}
	if _, err := r.Courses.AppendResource(course.ID, res.ID); err != nil {
		return models.Resource{}, err
	}
	return res, nil
}

func (r *Resources) All(ctx context.Context) ([]models.Resource, error) {
	return r.Blobs.ListAll(ctx)
}

// ByCourse filters the full blob listing client-side; the blob store has no
// per-course query.
func (r *Resources) ByCourse(ctx context.Context, courseID string) ([]models.Resource, error) {
	all, err := r.Blobs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Resource{}
	for _, res := range all {
		if res.CourseID == courseID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *Resources) ByID(ctx context.Context, id string) (models.Resource, error) {
	all, err := r.Blobs.ListAll(ctx)
	if err != nil {
		return models.Resource{}, err
	}
	for _, res := range all {
		if res.ID == id {
			return res, nil
		}
	}
	return models.Resource{}, ErrNotFound
}

// Decode recovers the original uploaded bytes from a resource's data URL.
func Decode(res models.Resource) ([]byte, error) {
	data := res.Data
	if i := strings.Index(data, "base64,"); i >= 0 {
		data = data[i+len("base64,"):]
	}
	return base64.StdEncoding.DecodeString(data)
}

// PlaybackMode picks the player branch by MIME type: any "video/*" type gets
// the video player, PDFs get a document frame, everything else has no
// preview.
func PlaybackMode(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "video"):
		return PlayVideo
	case mimeType == "application/pdf":
		return PlayDocument
	default:
		return PlayNone
	}
}
