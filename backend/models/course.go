package models

// Course as stored in the "courses" record collection. TeacherID references
// the authoring User; ResourceIDs references blob-store Resources in upload
// order. Courses are never deleted.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TeacherID   string   `json:"teacherId"`
	ResourceIDs []string `json:"resourceIds"`
}
