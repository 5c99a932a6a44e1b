package usecase_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/microlend/lending-console/internal/domain/event"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockRecordRepository struct {
	saveFunc     func(ctx context.Context, rec model.ApplicationRecord) error
	findByIDFunc func(ctx context.Context, id string) (model.ApplicationRecord, error)
	savedRecords []model.ApplicationRecord
}

func (m *mockRecordRepository) Save(ctx context.Context, rec model.ApplicationRecord) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, rec)
	}
	m.savedRecords = append(m.savedRecords, rec)
	return nil
}

func (m *mockRecordRepository) FindByID(ctx context.Context, id string) (model.ApplicationRecord, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.ApplicationRecord{}, port.ErrRecordNotFound
}

func (m *mockRecordRepository) FindByStage(_ context.Context, _ valueobject.PipelineStage) ([]model.ApplicationRecord, error) {
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// memoryDraftStore is an in-memory DraftStore for usecase tests.
type memoryDraftStore struct {
	mu   sync.Mutex
	data map[string]map[port.DraftKey][]byte
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{data: make(map[string]map[port.DraftKey][]byte)}
}

func (s *memoryDraftStore) Put(_ context.Context, sessionID string, key port.DraftKey, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[sessionID] == nil {
		s.data[sessionID] = make(map[port.DraftKey][]byte)
	}
	s.data[sessionID][key] = value
	return nil
}

func (s *memoryDraftStore) Get(_ context.Context, sessionID string, key port.DraftKey) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[sessionID][key]
	if !ok {
		return nil, port.ErrDraftKeyNotFound
	}
	return v, nil
}

func (s *memoryDraftStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

type mockChallengeStore struct {
	mu         sync.Mutex
	challenges map[string]model.StepUpChallenge
}

func newMockChallengeStore() *mockChallengeStore {
	return &mockChallengeStore{challenges: make(map[string]model.StepUpChallenge)}
}

func (s *mockChallengeStore) Put(_ context.Context, c model.StepUpChallenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[c.Token] = c
	return nil
}

func (s *mockChallengeStore) Take(_ context.Context, token string) (model.StepUpChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.challenges[token]
	if !ok {
		return model.StepUpChallenge{}, port.ErrChallengeNotFound
	}
	delete(s.challenges, token)
	return c, nil
}

type mockIdentityVerifier struct {
	verifyFunc func(ctx context.Context, nationalID string) (port.IdentityDetails, error)
	calls      int
}

func (m *mockIdentityVerifier) VerifyIdentity(ctx context.Context, nationalID string) (port.IdentityDetails, error) {
	m.calls++
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, nationalID)
	}
	return port.IdentityDetails{FirstName: "Ada", LastName: "Obi", MaskedPhone: "0803***4567"}, nil
}

type mockEmploymentVerifier struct {
	verifyFunc func(ctx context.Context, ref string) (port.EmploymentDetails, error)
	calls      int
}

func (m *mockEmploymentVerifier) VerifyEmployment(ctx context.Context, ref string) (port.EmploymentDetails, error) {
	m.calls++
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, ref)
	}
	return port.EmploymentDetails{
		Organization:  "ACME LTD",
		MonthlyNetPay: decimal.NewFromInt(200_000),
	}, nil
}

type mockPasscodeVerifier struct {
	verifyFunc func(ctx context.Context, profileID, passcode string) error
	calls      int
}

func (m *mockPasscodeVerifier) VerifyPasscode(ctx context.Context, profileID, passcode string) error {
	m.calls++
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, profileID, passcode)
	}
	return nil
}
