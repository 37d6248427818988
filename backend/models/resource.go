package models

// Resource lives in the blob store, not the record store, and has its own
// lifetime: a Course only references it by id. Data is a self-contained
// data URL ("data:<type>;base64,...") so a resource can be rendered without
// any further lookup. Immutable after upload.
type Resource struct {
	ID        string `json:"id" gorm:"primaryKey"`
	CourseID  string `json:"courseId" gorm:"index"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Data      string `json:"data" gorm:"type:text"`
	CreatedAt int64  `json:"createdAt" gorm:"autoCreateTime:false"`
}
