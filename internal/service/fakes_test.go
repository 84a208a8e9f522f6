package service

import (
	"context"
	"errors"

	"github.com/v7s7/DaresniCheckUpdated/internal/cache"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository"
)

type fakeTutors struct {
	tutors    []*model.Tutor
	slots     map[int64][]model.AvailabilitySlot
	listCalls int
	err       error
	replaced  map[int64][]model.AvailabilitySlot
	updates   map[int64]model.ProfileUpdate
	nextSubj  int64
}

func newFakeTutors(tutors ...*model.Tutor) *fakeTutors {
	f := &fakeTutors{
		tutors:   tutors,
		slots:    make(map[int64][]model.AvailabilitySlot),
		replaced: make(map[int64][]model.AvailabilitySlot),
		updates:  make(map[int64]model.ProfileUpdate),
		nextSubj: 100,
	}
	for _, t := range tutors {
		f.slots[t.ID] = t.Availability
	}
	return f
}

func (f *fakeTutors) ListTutors(context.Context) ([]*model.Tutor, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tutors, nil
}

func (f *fakeTutors) GetTutor(_ context.Context, id int64) (*model.Tutor, error) {
	for _, t := range f.tutors {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrTutorNotFound
}

func (f *fakeTutors) GetByTelegramID(_ context.Context, telegramID int64) (*model.Tutor, error) {
	for _, t := range f.tutors {
		if t.TelegramID == telegramID {
			return t, nil
		}
	}
	return nil, repository.ErrTutorNotFound
}

func (f *fakeTutors) GetWeekly(_ context.Context, tutorID int64) ([]model.AvailabilitySlot, error) {
	return f.slots[tutorID], nil
}

func (f *fakeTutors) ReplaceWeekly(_ context.Context, tutorID int64, slots []model.AvailabilitySlot) error {
	if f.err != nil {
		return f.err
	}
	f.replaced[tutorID] = slots
	f.slots[tutorID] = slots
	return nil
}

func (f *fakeTutors) UpdateProfile(_ context.Context, tutorID int64, upd model.ProfileUpdate) error {
	if f.err != nil {
		return f.err
	}
	f.updates[tutorID] = upd
	return nil
}

func (f *fakeTutors) Create(_ context.Context, subject *model.Subject) error {
	t, err := f.GetTutor(context.Background(), subject.TutorID)
	if err != nil {
		return err
	}
	subject.ID = f.nextSubj
	f.nextSubj++
	t.Subjects = append(t.Subjects, *subject)
	return nil
}

func (f *fakeTutors) GetByTutorID(_ context.Context, tutorID int64) ([]model.Subject, error) {
	t, err := f.GetTutor(context.Background(), tutorID)
	if err != nil {
		return nil, err
	}
	return t.Subjects, nil
}

func (f *fakeTutors) Delete(_ context.Context, tutorID, subjectID int64) error {
	t, err := f.GetTutor(context.Background(), tutorID)
	if err != nil {
		return err
	}
	for i, s := range t.Subjects {
		if s.ID == subjectID {
			t.Subjects = append(t.Subjects[:i], t.Subjects[i+1:]...)
			return nil
		}
	}
	return repository.ErrSubjectNotFound
}

type fakeCache struct {
	list        []*model.Tutor
	single      map[int64]*model.Tutor
	err         error
	invalidated []int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{single: make(map[int64]*model.Tutor)}
}

func (c *fakeCache) GetTutors(context.Context) ([]*model.Tutor, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.list == nil {
		return nil, cache.ErrCacheMiss
	}
	return c.list, nil
}

func (c *fakeCache) SetTutors(_ context.Context, tutors []*model.Tutor) error {
	if c.err != nil {
		return c.err
	}
	c.list = tutors
	return nil
}

func (c *fakeCache) GetTutor(_ context.Context, id int64) (*model.Tutor, error) {
	if t, ok := c.single[id]; ok {
		return t, nil
	}
	return nil, cache.ErrCacheMiss
}

func (c *fakeCache) SetTutor(_ context.Context, tutor *model.Tutor) error {
	c.single[tutor.ID] = tutor
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, tutorID int64) error {
	c.invalidated = append(c.invalidated, tutorID)
	if c.err != nil {
		return c.err
	}
	delete(c.single, tutorID)
	c.list = nil
	return nil
}

type fakeUsers struct {
	byTelegram map[int64]*model.User
	nextID     int64
	profiles   []int64
	updates    int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byTelegram: make(map[int64]*model.User), nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byTelegram[user.TelegramID] = user
	return nil
}

func (f *fakeUsers) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	return f.byTelegram[telegramID], nil
}

func (f *fakeUsers) Update(_ context.Context, user *model.User) error {
	if _, ok := f.byTelegram[user.TelegramID]; !ok {
		return errors.New("user not found")
	}
	f.updates++
	f.byTelegram[user.TelegramID] = user
	return nil
}

func (f *fakeUsers) CreateProfile(_ context.Context, userID int64) error {
	f.profiles = append(f.profiles, userID)
	return nil
}
