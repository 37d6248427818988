package models

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// User as stored in the "users" record collection. Password holds a bcrypt
// hash, never the plain text. CourseIDs keeps enrollment order: a student's
// joins and a teacher's own courses both append here.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	CourseIDs []string `json:"courseIds"`
}

func (u User) HasCourse(courseID string) bool {
	for _, id := range u.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
