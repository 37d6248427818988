package repo

import (
	"encoding/json"

	"vidyabandhan/backend/models"
	"vidyabandhan/backend/store"
)

// Sessions manages the hand-off pointers between pages: the current user,
// the course being opened in the classroom view, and the one-shot resource
// handed to the viewer. Each pointer is overwritten on the next selection
// and never explicitly cleared (there is no logout flow).
type Sessions struct {
	RS store.RecordStore
}

func NewSessions(rs store.RecordStore) *Sessions {
	return &Sessions{RS: rs}
}

func (r *Sessions) SetCurrentUser(u models.User) error {
	return r.set(store.KeyCurrentUser, u)
}

func (r *Sessions) CurrentUser() (models.User, error) {
	var u models.User
	if err := r.get(store.KeyCurrentUser, &u, ErrNotLoggedIn); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *Sessions) SetCurrentCourse(c models.Course) error {
	return r.set(store.KeyCurrentCourse, c)
}

func (r *Sessions) CurrentCourse() (models.Course, error) {
	var c models.Course
	if err := r.get(store.KeyCurrentCourse, &c, ErrNoCourseSelected); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

func (r *Sessions) SetOpenResource(res models.Resource) error {
	return r.set(store.KeyOpenResource, res)
}

func (r *Sessions) OpenResource() (models.Resource, error) {
	var res models.Resource
	if err := r.get(store.KeyOpenResource, &res, ErrNoOpenResource); err != nil {
		return models.Resource{}, err
	}
	return res, nil
}

func (r *Sessions) set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.RS.Set(key, raw)
}

func (r *Sessions) get(key string, v interface{}, missing error) error {
	raw, err := r.RS.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return missing
	}
	return json.Unmarshal(raw, v)
}
