package repo

import (
	"encoding/json"

	"github.com/google/uuid"

	"vidyabandhan/backend/models"
	"vidyabandhan/backend/store"
)

type Courses struct {
	RS       store.RecordStore
	Users    *Users
	Sessions *Sessions
}

func NewCourses(rs store.RecordStore, users *Users, sessions *Sessions) *Courses {
	return &Courses{RS: rs, Users: users, Sessions: sessions}
}

func (r *Courses) All() ([]models.Course, error) {
	raw, err := r.RS.Get(store.KeyCourses)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.Course{}, nil
	}
	var courses []models.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *Courses) save(courses []models.Course) error {
	raw, err := json.Marshal(courses)
	if err != nil {
		return err
	}
	return r.RS.Set(store.KeyCourses, raw)
}

func (r *Courses) ByID(id string) (models.Course, error) {
	courses, err := r.All()
	if err != nil {
		return models.Course{}, err
	}
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Course{}, ErrNotFound
}

// Create appends a new course, links it to the authoring teacher and
// re-persists the current-user pointer so the stored session stays
// consistent with the users collection.
func (r *Courses) Create(teacher models.User, title, description string) (models.Course, error) {
	if title == "" {
		return models.Course{}, ErrEmptyField
	}
	if teacher.Role != models.RoleTeacher {
		return models.Course{}, ErrNotTeacher
	}

	course := models.Course{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		TeacherID:   teacher.ID,
		ResourceIDs: []string{},
	}

	courses, err := r.All()
	if err != nil {
		return models.Course{}, err
	}
	courses = append(courses, course)
	if err := r.save(courses); err != nil {
		return models.Course{}, err
	}

	updated, err := r.Users.AppendCourse(teacher.ID, course.ID)
	if err != nil {
		return models.Course{}, err
	}
	if err := r.Sessions.SetCurrentUser(updated); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// Join enrolls a user and returns the refreshed user record. The course must
// exist; joining twice is a no-op (see Users.AppendCourse).
func (r *Courses) Join(userID, courseID string) (models.User, error) {
	if _, err := r.ByID(courseID); err != nil {
		return models.User{}, err
	}
	updated, err := r.Users.AppendCourse(userID, courseID)
	if err != nil {
		return models.User{}, err
	}
	if err := r.Sessions.SetCurrentUser(updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// Joined and Available partition the whole course collection by membership
// in the user's CourseIDs.
func (r *Courses) Joined(user models.User) ([]models.Course, error) {
	return r.partition(user, true)
}

func (r *Courses) Available(user models.User) ([]models.Course, error) {
	return r.partition(user, false)
}

func (r *Courses) partition(user models.User, member bool) ([]models.Course, error) {
	courses, err := r.All()
	if err != nil {
		return nil, err
	}
	out := []models.Course{}
	for _, c := range courses {
		if user.HasCourse(c.ID) == member {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *Courses) ByTeacher(teacherID string) ([]models.Course, error) {
	courses, err := r.All()
	if err != nil {
		return nil, err
	}
	out := []models.Course{}
	for _, c := range courses {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out, nil
}

// AppendResource links an uploaded resource id to its course.
func (r *Courses) AppendResource(courseID, resourceID string) (models.Course, error) {
	courses, err := r.All()
	if err != nil {
		return models.Course{}, err
	}
	for i, c := range courses {
		if c.ID != courseID {
			continue
		}
		courses[i].ResourceIDs = append(courses[i].ResourceIDs, resourceID)
		if err := r.save(courses); err != nil {
			return models.Course{}, err
		}
		return courses[i], nil
	}
	return models.Course{}, ErrNotFound
}
