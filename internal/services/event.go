package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"eventdesk/internal/domain"

	"github.com/google/uuid"
)

type eventService struct {
	events         domain.EventRepository
	localized      domain.EventLocalizedRepository
	categories     domain.EventCategoryRepository
	tags           domain.EventTagRepository
	learners       domain.EventLearnerRepository
	meetings       domain.EventMeetingRepository
	validator      domain.EventValidator
	emailService   domain.EmailService
	contextTimeout time.Duration
}

// NewEventService builds the event lifecycle service. emailService may be nil;
// registration confirmations are then skipped.
func NewEventService(
	events domain.EventRepository,
	localized domain.EventLocalizedRepository,
	categories domain.EventCategoryRepository,
	tags domain.EventTagRepository,
	learners domain.EventLearnerRepository,
	meetings domain.EventMeetingRepository,
	validator domain.EventValidator,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		events:         events,
		localized:      localized,
		categories:     categories,
		tags:           tags,
		learners:       learners,
		meetings:       meetings,
		validator:      validator,
		emailService:   emailService,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, categories []string, user, locale string, draft *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if violations := s.validateDraft(draft); len(violations) > 0 {
		return nil, violations
	}

	now := time.Now()
	e := &domain.Event{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		EventDate:   draft.EventDate.Truncate(time.Second),
		CreatedBy:   user,
		CreatedAt:   now,
	}
	if err := s.events.Insert(ctx, e); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	if locale != "" {
		if err := s.localized.Insert(ctx, domain.NewEventLocalized(e.ID, locale, e)); err != nil {
			return nil, fmt.Errorf("insert localized event: %w", err)
		}
	}
	for _, category := range categories {
		if err := s.categories.Attach(ctx, domain.NewEventCategory(e.ID, category)); err != nil {
			return nil, fmt.Errorf("attach category %q: %w", category, err)
		}
	}
	return s.read(ctx, user, e.ID, locale)
}

func (s *eventService) Read(ctx context.Context, user, id, locale string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.read(ctx, user, id, locale)
}

// read fetches the resolved event and applies the visibility mask.
func (s *eventService) read(ctx context.Context, user, id, locale string) (*domain.Event, error) {
	var e *domain.Event
	var err error
	if locale == "" {
		e, err = s.events.GetByID(ctx, id)
	} else {
		e, err = s.events.GetByIDLocalized(ctx, id, locale)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e.Masked(user), nil
}

func (s *eventService) Update(ctx context.Context, id, user, locale string, draft *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if violations := s.validateDraft(draft); len(violations) > 0 {
		return nil, violations
	}

	truncated := *draft
	truncated.EventDate = draft.EventDate.Truncate(time.Second)

	var err error
	if locale == "" {
		err = s.events.Update(ctx, id, user, &truncated)
	} else {
		// The owner-scoped touch doubles as the existence and ownership
		// check before the overlay upsert.
		err = s.events.TouchModified(ctx, id, user)
		if err == nil {
			err = s.localized.Update(ctx, id, locale, truncated.Title, truncated.Description)
			if errors.Is(err, domain.ErrNotFound) {
				err = s.localized.Insert(ctx, domain.NewEventLocalized(id, locale, &truncated))
			}
		}
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return s.read(ctx, user, id, locale)
}

func (s *eventService) List(ctx context.Context, user, locale string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.events.ListAccessible(ctx, user, locale)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return maskAll(events, user), nil
}

func (s *eventService) ListByCategories(ctx context.Context, user, locale string, categories []string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(categories) == 0 {
		return nil, domain.ErrInvalidInput
	}
	events, err := s.events.ListByCategories(ctx, locale, categories)
	if err != nil {
		return nil, fmt.Errorf("list events by categories: %w", err)
	}
	return maskAll(events, user), nil
}

func (s *eventService) Delete(ctx context.Context, user, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get event: %w", err)
	}
	if e.CreatedBy != user {
		return false, domain.ErrNotFound
	}

	// Child rows go first so the canonical row never outlives them.
	if err := s.meetings.DeleteByEventID(ctx, id); err != nil {
		return false, fmt.Errorf("delete meeting: %w", err)
	}
	if err := s.learners.DeleteByEventID(ctx, id); err != nil {
		return false, fmt.Errorf("delete learners: %w", err)
	}
	if err := s.categories.DeleteByEventID(ctx, id); err != nil {
		return false, fmt.Errorf("delete categories: %w", err)
	}
	if err := s.tags.DeleteByEventID(ctx, id); err != nil {
		return false, fmt.Errorf("delete tags: %w", err)
	}
	if err := s.localized.DeleteByEventID(ctx, id); err != nil {
		return false, fmt.Errorf("delete localized: %w", err)
	}
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete event: %w", err)
	}
	return true, nil
}

func (s *eventService) Register(ctx context.Context, user, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get event: %w", err)
	}
	if e.CreatedBy == user {
		return false, domain.ErrOwnEvent
	}
	if err := s.learners.Insert(ctx, domain.NewEventLearner(id, user)); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return false, domain.ErrAlreadyRegistered
		}
		return false, fmt.Errorf("insert learner: %w", err)
	}
	if s.emailService != nil {
		// Confirmation is best effort; a failed send never unwinds the
		// registration.
		_ = s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationConfirmationEmailData{
			UserHandle: user,
			EventTitle: e.Title,
			EventDate:  e.EventDate,
		})
	}
	return true, nil
}

func (s *eventService) IsRegistered(ctx context.Context, user, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	registered, err := s.learners.Exists(ctx, id, user)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}
	return registered, nil
}

func (s *eventService) Start(ctx context.Context, user, id, meetingURL string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if violations := validateMeetingURL(meetingURL); len(violations) > 0 {
		return false, violations
	}
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get event: %w", err)
	}
	if e.CreatedBy != user {
		return false, domain.ErrNotFound
	}
	if !domain.WithinStartWindow(time.Now(), e.EventDate) {
		return false, domain.ErrNotReadyToStart
	}
	if err := s.meetings.Insert(ctx, domain.NewEventMeeting(id, meetingURL)); err != nil {
		if errors.Is(err, domain.ErrMeetingExists) {
			return false, domain.ErrMeetingExists
		}
		return false, fmt.Errorf("insert meeting: %w", err)
	}
	return true, nil
}

func (s *eventService) Join(ctx context.Context, user, id string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get event: %w", err)
	}
	meeting, err := s.meetings.GetByEventID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrMeetingNotStarted
		}
		return "", fmt.Errorf("get meeting: %w", err)
	}
	if e.CreatedBy != user {
		registered, err := s.learners.Exists(ctx, id, user)
		if err != nil {
			return "", fmt.Errorf("check registration: %w", err)
		}
		if !registered {
			return "", domain.ErrJoinNotAllowed
		}
	}
	return meeting.MeetingURL, nil
}

func (s *eventService) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.meetings.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete meetings: %w", err)
	}
	if err := s.learners.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete learners: %w", err)
	}
	if err := s.categories.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	if err := s.tags.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete tags: %w", err)
	}
	if err := s.localized.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete localized: %w", err)
	}
	if err := s.events.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}
	return nil
}

// validateDraft runs the field validator and, only when the fields pass, the
// domain date-window rule. All failures travel together.
func (s *eventService) validateDraft(draft *domain.Event) domain.Violations {
	violations := s.validator.Validate(draft)
	if len(violations) > 0 {
		return violations
	}
	now := time.Now()
	if !draft.EventDate.After(now) || draft.EventDate.After(now.AddDate(0, 0, domain.MaxDaysInAdvance)) {
		violations = append(violations, domain.NewViolation("event_date",
			fmt.Sprintf("must lie in the future and within %d days from now", domain.MaxDaysInAdvance)))
	}
	return violations
}

func validateMeetingURL(meetingURL string) domain.Violations {
	if meetingURL == "" {
		return domain.Violations{domain.NewViolation("meeting_url", "is required")}
	}
	u, err := url.ParseRequestURI(meetingURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return domain.Violations{domain.NewViolation("meeting_url", "must be a valid http(s) url")}
	}
	return nil
}

func maskAll(events []*domain.Event, user string) []*domain.Event {
	masked := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		masked = append(masked, e.Masked(user))
	}
	return masked
}
