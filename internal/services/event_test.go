package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"eventdesk/internal/domain"
	"eventdesk/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory implementation of all six repositories sharing
// one backing state, so locale resolution and meeting joins behave like the
// real gateway.
type fakeStore struct {
	events     map[string]*domain.Event
	localized  map[string]*domain.EventLocalized // eventID|locale
	categories map[string][]string
	learners   map[string]map[string]bool
	meetings   map[string]string
	tagDeletes int

	insertEventErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:     make(map[string]*domain.Event),
		localized:  make(map[string]*domain.EventLocalized),
		categories: make(map[string][]string),
		learners:   make(map[string]map[string]bool),
		meetings:   make(map[string]string),
	}
}

func localizedKey(eventID, locale string) string { return eventID + "|" + locale }

func (f *fakeStore) Insert(ctx context.Context, e *domain.Event) error {
	if f.insertEventErr != nil {
		return f.insertEventErr
	}
	stored := *e
	f.events[e.ID] = &stored
	return nil
}

// resolve copies the stored row and joins the meeting URL, like the SQL
// projection does.
func (f *fakeStore) resolve(id string) (*domain.Event, error) {
	stored, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e := *stored
	if u, ok := f.meetings[id]; ok {
		url := u
		e.MeetingURL = &url
	}
	return &e, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.resolve(id)
}

// GetByIDLocalized mirrors the repository's overlay resolution: only an
// overlay for the requested locale overrides fields, and an absent or
// different-locale overlay leaves the canonical event untouched.
func (f *fakeStore) GetByIDLocalized(ctx context.Context, id, locale string) (*domain.Event, error) {
	e, err := f.resolve(id)
	if err != nil {
		return nil, err
	}
	if l, ok := f.localized[localizedKey(id, locale)]; ok {
		if l.Title != nil {
			e.Title = *l.Title
		}
		if l.Description != nil {
			e.Description = *l.Description
		}
	}
	return e, nil
}

func (f *fakeStore) Update(ctx context.Context, id, owner string, draft *domain.Event) error {
	stored, ok := f.events[id]
	if !ok || stored.CreatedBy != owner {
		return domain.ErrNotFound
	}
	stored.Title = draft.Title
	stored.Description = draft.Description
	stored.EventDate = draft.EventDate
	stored.ModifiedBy = &owner
	now := time.Now()
	stored.ModifiedAt = &now
	return nil
}

func (f *fakeStore) TouchModified(ctx context.Context, id, owner string) error {
	stored, ok := f.events[id]
	if !ok || stored.CreatedBy != owner {
		return domain.ErrNotFound
	}
	stored.ModifiedBy = &owner
	now := time.Now()
	stored.ModifiedAt = &now
	return nil
}

func (f *fakeStore) ListAccessible(ctx context.Context, user, locale string) ([]*domain.Event, error) {
	var out []*domain.Event
	now := time.Now()
	for id, stored := range f.events {
		if !stored.EventDate.After(now) {
			continue
		}
		if stored.CreatedBy != user && !f.learners[id][user] {
			continue
		}
		e, _ := f.localizedOrCanonical(id, locale)
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) ListByCategories(ctx context.Context, locale string, categories []string) ([]*domain.Event, error) {
	var out []*domain.Event
	now := time.Now()
	for id, stored := range f.events {
		if !stored.EventDate.After(now) {
			continue
		}
		tagged := make(map[string]bool)
		for _, c := range f.categories[id] {
			tagged[c] = true
		}
		all := true
		for _, c := range categories {
			if !tagged[c] {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		e, _ := f.localizedOrCanonical(id, locale)
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) localizedOrCanonical(id, locale string) (*domain.Event, error) {
	if locale == "" {
		return f.resolve(id)
	}
	return f.GetByIDLocalized(context.Background(), id, locale)
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeStore) DeleteAll(ctx context.Context) error {
	f.events = make(map[string]*domain.Event)
	return nil
}

// EventLocalizedRepository

type fakeLocalizedRepo struct{ *fakeStore }

func (f fakeLocalizedRepo) Insert(ctx context.Context, l *domain.EventLocalized) error {
	f.localized[localizedKey(l.EventID, l.Locale)] = l
	return nil
}

func (f fakeLocalizedRepo) Update(ctx context.Context, eventID, locale, title, description string) error {
	l, ok := f.localized[localizedKey(eventID, locale)]
	if !ok {
		return domain.ErrNotFound
	}
	l.Title = &title
	l.Description = &description
	return nil
}

func (f fakeLocalizedRepo) DeleteByEventID(ctx context.Context, eventID string) error {
	for key, l := range f.localized {
		if l.EventID == eventID {
			delete(f.localized, key)
		}
	}
	return nil
}

func (f fakeLocalizedRepo) DeleteAll(ctx context.Context) error {
	f.fakeStore.localized = make(map[string]*domain.EventLocalized)
	return nil
}

// EventCategoryRepository

type fakeCategoryRepo struct{ *fakeStore }

func (f fakeCategoryRepo) Attach(ctx context.Context, c *domain.EventCategory) error {
	f.categories[c.EventID] = append(f.categories[c.EventID], c.CategoryID)
	return nil
}

func (f fakeCategoryRepo) DeleteByEventID(ctx context.Context, eventID string) error {
	delete(f.categories, eventID)
	return nil
}

func (f fakeCategoryRepo) DeleteAll(ctx context.Context) error {
	f.fakeStore.categories = make(map[string][]string)
	return nil
}

// EventTagRepository

type fakeTagRepo struct{ *fakeStore }

func (f fakeTagRepo) DeleteByEventID(ctx context.Context, eventID string) error {
	f.tagDeletes++
	return nil
}

func (f fakeTagRepo) DeleteAll(ctx context.Context) error {
	f.tagDeletes++
	return nil
}

// EventLearnerRepository

type fakeLearnerRepo struct{ *fakeStore }

func (f fakeLearnerRepo) Insert(ctx context.Context, l *domain.EventLearner) error {
	if f.learners[l.EventID][l.UserHandle] {
		return domain.ErrAlreadyRegistered
	}
	if f.learners[l.EventID] == nil {
		f.learners[l.EventID] = make(map[string]bool)
	}
	f.learners[l.EventID][l.UserHandle] = true
	return nil
}

func (f fakeLearnerRepo) Exists(ctx context.Context, eventID, userHandle string) (bool, error) {
	return f.learners[eventID][userHandle], nil
}

func (f fakeLearnerRepo) DeleteByEventID(ctx context.Context, eventID string) error {
	delete(f.learners, eventID)
	return nil
}

func (f fakeLearnerRepo) DeleteAll(ctx context.Context) error {
	f.fakeStore.learners = make(map[string]map[string]bool)
	return nil
}

// EventMeetingRepository

type fakeMeetingRepo struct{ *fakeStore }

func (f fakeMeetingRepo) Insert(ctx context.Context, m *domain.EventMeeting) error {
	if _, ok := f.meetings[m.EventID]; ok {
		return domain.ErrMeetingExists
	}
	f.meetings[m.EventID] = m.MeetingURL
	return nil
}

func (f fakeMeetingRepo) GetByEventID(ctx context.Context, eventID string) (*domain.EventMeeting, error) {
	u, ok := f.meetings[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return domain.NewEventMeeting(eventID, u), nil
}

func (f fakeMeetingRepo) DeleteByEventID(ctx context.Context, eventID string) error {
	delete(f.meetings, eventID)
	return nil
}

func (f fakeMeetingRepo) DeleteAll(ctx context.Context) error {
	f.fakeStore.meetings = make(map[string]string)
	return nil
}

// fakeEmailService records confirmation sends.
type fakeEmailService struct {
	sent []*domain.RegistrationConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}

func newService(store *fakeStore, email domain.EmailService) domain.EventService {
	return NewEventService(
		store,
		fakeLocalizedRepo{store},
		fakeCategoryRepo{store},
		fakeTagRepo{store},
		fakeLearnerRepo{store},
		fakeMeetingRepo{store},
		validation.New(),
		email,
		5*time.Second,
	)
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and resolves the event", func(t *testing.T) {
		store := newFakeStore()
		svc := newService(store, nil)

		date := time.Now().Add(48 * time.Hour)
		got, err := svc.Create(ctx, []string{"c1", "c2"}, "hari", "", domain.NewEvent("HariEvent", "HariDescription", date))
		require.NoError(t, err)
		require.NotEmpty(t, got.ID)
		assert.Equal(t, "HariEvent", got.Title)
		assert.Equal(t, "hari", got.CreatedBy)
		assert.Equal(t, date.Truncate(time.Second), got.EventDate)
		assert.Zero(t, got.EventDate.Nanosecond())
		assert.ElementsMatch(t, []string{"c1", "c2"}, store.categories[got.ID])
	})

	t.Run("locale write creates an overlay", func(t *testing.T) {
		store := newFakeStore()
		svc := newService(store, nil)

		got, err := svc.Create(ctx, []string{"c1"}, "hari", "de", domain.NewEvent("HariEvent", "HariDescription", time.Now().Add(48*time.Hour)))
		require.NoError(t, err)
		_, ok := store.localized[localizedKey(got.ID, "de")]
		assert.True(t, ok)
	})

	t.Run("rejects past and far-future dates", func(t *testing.T) {
		store := newFakeStore()
		svc := newService(store, nil)

		for _, date := range []time.Time{
			time.Now().Add(-time.Hour),
			time.Now().AddDate(0, 0, domain.MaxDaysInAdvance+1),
		} {
			_, err := svc.Create(ctx, nil, "hari", "", domain.NewEvent("t", "d", date))
			var violations domain.Violations
			require.ErrorAs(t, err, &violations)
			require.Len(t, violations, 1)
			assert.Equal(t, "event_date", violations[0].Field)
		}
		assert.Empty(t, store.events)
	})

	t.Run("collects every field violation", func(t *testing.T) {
		svc := newService(newFakeStore(), nil)

		_, err := svc.Create(ctx, nil, "hari", "", domain.NewEvent("", "", time.Time{}))
		var violations domain.Violations
		require.ErrorAs(t, err, &violations)
		assert.Len(t, violations, 3)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		store := newFakeStore()
		store.insertEventErr = errors.New("boom")
		svc := newService(store, nil)

		_, err := svc.Create(ctx, nil, "hari", "", domain.NewEvent("t", "d", time.Now().Add(time.Hour)))
		require.Error(t, err)
	})
}

func TestEventService_Read(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newService(store, nil)

	created, err := svc.Create(ctx, nil, "hari", "de", domain.NewEvent("HariEvent", "HariDescription", time.Now().Add(48*time.Hour)))
	require.NoError(t, err)

	t.Run("owner reads canonical", func(t *testing.T) {
		got, err := svc.Read(ctx, "hari", created.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "HariEvent", got.Title)
	})

	t.Run("locale read returns overlay title", func(t *testing.T) {
		// Overwrite the overlay so locale and canonical differ.
		title := "HariEreignis"
		store.localized[localizedKey(created.ID, "de")].Title = &title

		got, err := svc.Read(ctx, "hari", created.ID, "de")
		require.NoError(t, err)
		assert.Equal(t, "HariEreignis", got.Title)

		got, err = svc.Read(ctx, "hari", created.ID, "fr")
		require.NoError(t, err)
		assert.Equal(t, "HariEvent", got.Title)
	})

	t.Run("per-field fallback keeps canonical description", func(t *testing.T) {
		store.localized[localizedKey(created.ID, "de")].Description = nil

		got, err := svc.Read(ctx, "hari", created.ID, "de")
		require.NoError(t, err)
		assert.Equal(t, "HariDescription", got.Description)
	})

	t.Run("non-owner never sees the meeting url", func(t *testing.T) {
		store.meetings[created.ID] = "https://meet.example.com/abc"

		got, err := svc.Read(ctx, "other", created.ID, "")
		require.NoError(t, err)
		assert.Nil(t, got.MeetingURL)

		got, err = svc.Read(ctx, "hari", created.ID, "")
		require.NoError(t, err)
		require.NotNil(t, got.MeetingURL)
		assert.Equal(t, "https://meet.example.com/abc", *got.MeetingURL)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Read(ctx, "hari", "missing", "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newService(store, nil)

	created, err := svc.Create(ctx, nil, "hari", "", domain.NewEvent("HariEvent", "HariDescription", time.Now().Add(48*time.Hour)))
	require.NoError(t, err)

	t.Run("owner updates canonical fields", func(t *testing.T) {
		newDate := time.Now().Add(72 * time.Hour)
		got, err := svc.Update(ctx, created.ID, "hari", "", domain.NewEvent("Renamed", "NewDescription", newDate))
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		assert.Equal(t, newDate.Truncate(time.Second), got.EventDate)
		require.NotNil(t, got.ModifiedBy)
		assert.Equal(t, "hari", *got.ModifiedBy)
	})

	t.Run("locale update upserts the overlay", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, "hari", "de", domain.NewEvent("Ereignis", "Beschreibung", time.Now().Add(48*time.Hour)))
		require.NoError(t, err)
		require.Contains(t, store.localized, localizedKey(created.ID, "de"))

		// Second localized update hits the existing row.
		got, err := svc.Update(ctx, created.ID, "hari", "de", domain.NewEvent("Ereignis2", "Beschreibung2", time.Now().Add(48*time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, "Ereignis2", got.Title)

		// Canonical title is untouched by localized writes.
		canonical, err := svc.Read(ctx, "hari", created.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", canonical.Title)
	})

	t.Run("wrong owner or wrong id is not found", func(t *testing.T) {
		draft := domain.NewEvent("t", "d", time.Now().Add(48*time.Hour))
		_, err := svc.Update(ctx, created.ID, "mallory", "", draft)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = svc.Update(ctx, "missing", "hari", "", draft)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = svc.Update(ctx, created.ID, "mallory", "de", draft)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid draft fails before any write", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, "hari", "", domain.NewEvent("", "d", time.Now().Add(time.Hour)))
		var violations domain.Violations
		assert.ErrorAs(t, err, &violations)
	})
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newService(store, &fakeEmailService{})

	owned, err := svc.Create(ctx, []string{"c1"}, "hari", "", domain.NewEvent("Owned", "d", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	other, err := svc.Create(ctx, []string{"c1", "c2"}, "guru", "", domain.NewEvent("Other", "d", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = svc.Create(ctx, []string{"c3"}, "guru", "", domain.NewEvent("Unrelated", "d", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	t.Run("accessible list covers owned and registered", func(t *testing.T) {
		got, err := svc.List(ctx, "hari", "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, owned.ID, got[0].ID)

		_, err = svc.Register(ctx, "hari", other.ID)
		require.NoError(t, err)

		got, err = svc.List(ctx, "hari", "")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("category filter is strict AND", func(t *testing.T) {
		got, err := svc.ListByCategories(ctx, "hari", "", []string{"c1"})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = svc.ListByCategories(ctx, "hari", "", []string{"c1", "c2"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, other.ID, got[0].ID)
	})

	t.Run("category list masks non-owned entries", func(t *testing.T) {
		store.meetings[other.ID] = "https://meet.example.com/xyz"

		got, err := svc.ListByCategories(ctx, "hari", "", []string{"c1", "c2"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].MeetingURL)
	})

	t.Run("empty category set is rejected", func(t *testing.T) {
		_, err := svc.ListByCategories(ctx, "hari", "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newService(store, &fakeEmailService{})

	created, err := svc.Create(ctx, []string{"c1"}, "hari", "de", domain.NewEvent("HariEvent", "HariDescription", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = svc.Register(ctx, "guru", created.ID)
	require.NoError(t, err)

	t.Run("non-owner delete is not found", func(t *testing.T) {
		_, err := svc.Delete(ctx, "guru", created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner delete cascades", func(t *testing.T) {
		ok, err := svc.Delete(ctx, "hari", created.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = svc.Read(ctx, "hari", created.ID, "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, store.categories[created.ID])
		assert.Empty(t, store.learners[created.ID])
		assert.NotContains(t, store.localized, localizedKey(created.ID, "de"))
		assert.Positive(t, store.tagDeletes)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		_, err := svc.Delete(ctx, "hari", created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_Register(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	email := &fakeEmailService{}
	svc := newService(store, email)

	created, err := svc.Create(ctx, nil, "hari", "", domain.NewEvent("HariEvent", "HariDescription", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	t.Run("owner cannot register", func(t *testing.T) {
		_, err := svc.Register(ctx, "hari", created.ID)
		assert.ErrorIs(t, err, domain.ErrOwnEvent)
	})

	t.Run("registration succeeds once", func(t *testing.T) {
		ok, err := svc.Register(ctx, "guru", created.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		registered, err := svc.IsRegistered(ctx, "guru", created.ID)
		require.NoError(t, err)
		assert.True(t, registered)

		require.Len(t, email.sent, 1)
		assert.Equal(t, "guru", email.sent[0].UserHandle)
		assert.Equal(t, "HariEvent", email.sent[0].EventTitle)
	})

	t.Run("duplicate registration is an error", func(t *testing.T) {
		_, err := svc.Register(ctx, "guru", created.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("failed confirmation never unwinds the registration", func(t *testing.T) {
		email.err = errors.New("ses down")
		ok, err := svc.Register(ctx, "mani", created.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.Register(ctx, "guru", "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unregistered user is not registered", func(t *testing.T) {
		registered, err := svc.IsRegistered(ctx, "nobody", created.ID)
		require.NoError(t, err)
		assert.False(t, registered)
	})
}

func TestEventService_StartAndJoin(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newService(store, &fakeEmailService{})

	const meetingURL = "https://meet.example.com/room-1"

	farOut, err := svc.Create(ctx, nil, "hari", "", domain.NewEvent("Later", "d", time.Now().Add(48*time.Hour)))
	require.NoError(t, err)
	soon, err := svc.Create(ctx, nil, "hari", "", domain.NewEvent("Soon", "d", time.Now().Add(4*time.Minute)))
	require.NoError(t, err)
	_, err = svc.Register(ctx, "guru", soon.ID)
	require.NoError(t, err)

	t.Run("start outside the window", func(t *testing.T) {
		_, err := svc.Start(ctx, "hari", farOut.ID, meetingURL)
		assert.ErrorIs(t, err, domain.ErrNotReadyToStart)
	})

	t.Run("start requires a usable url", func(t *testing.T) {
		for _, bad := range []string{"", "not a url", "ftp://example.com/x"} {
			_, err := svc.Start(ctx, "hari", soon.ID, bad)
			var violations domain.Violations
			require.ErrorAs(t, err, &violations, "url %q", bad)
		}
	})

	t.Run("only the owner can start", func(t *testing.T) {
		_, err := svc.Start(ctx, "guru", soon.ID, meetingURL)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("join before start", func(t *testing.T) {
		_, err := svc.Join(ctx, "hari", soon.ID)
		assert.ErrorIs(t, err, domain.ErrMeetingNotStarted)
	})

	t.Run("start within the window succeeds once", func(t *testing.T) {
		ok, err := svc.Start(ctx, "hari", soon.ID, meetingURL)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = svc.Start(ctx, "hari", soon.ID, meetingURL)
		assert.ErrorIs(t, err, domain.ErrMeetingExists)
	})

	t.Run("join rules", func(t *testing.T) {
		got, err := svc.Join(ctx, "hari", soon.ID)
		require.NoError(t, err)
		assert.Equal(t, meetingURL, got)

		got, err = svc.Join(ctx, "guru", soon.ID)
		require.NoError(t, err)
		assert.Equal(t, meetingURL, got)

		_, err = svc.Join(ctx, "stranger", soon.ID)
		assert.ErrorIs(t, err, domain.ErrJoinNotAllowed)

		_, err = svc.Join(ctx, "hari", "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("read masks what join reveals", func(t *testing.T) {
		e, err := svc.Read(ctx, "guru", soon.ID, "")
		require.NoError(t, err)
		assert.Nil(t, e.MeetingURL)
	})
}

func TestEventService_Reset(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newService(store, &fakeEmailService{})

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, []string{"c1"}, "hari", "de",
			domain.NewEvent(fmt.Sprintf("Event %d", i), "d", time.Now().Add(24*time.Hour)))
		require.NoError(t, err)
	}

	require.NoError(t, svc.Reset(ctx))
	assert.Empty(t, store.events)
	assert.Empty(t, store.localized)
	assert.Empty(t, store.categories)
	assert.Empty(t, store.learners)
	assert.Empty(t, store.meetings)
}
