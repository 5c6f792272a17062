package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	_interface "github.com/sh5080/utm-checker/pkg/interfaces"
	model "github.com/sh5080/utm-checker/pkg/types/models"
)

const (
	// DefaultMaxChecks는 인메모리 저장소가 보관하는 최대 검사 결과 수입니다
	DefaultMaxChecks = 100000
	// sweepInterval은 만료 항목 정리 최소 간격입니다
	sweepInterval = time.Minute
)

// ErrStoreFull은 저장소가 최대 보관 수에 도달한 경우입니다
var ErrStoreFull = errors.New("검사 결과 저장소가 가득 찼습니다")

// InMemoryCheckRepository는 인메모리 검사 결과 저장소입니다.
// 만료 항목은 저장 시 sweepInterval 간격으로만 정리합니다.
type InMemoryCheckRepository struct {
	checks    map[string]*model.CheckRecord
	lock      sync.RWMutex
	now       func() time.Time
	maxChecks int
	lastSweep time.Time
}

// 인터페이스 구현 확인
var _ _interface.CheckRepository = (*InMemoryCheckRepository)(nil)

// NewInMemoryCheckRepository는 새 인메모리 검사 저장소를 생성합니다
func NewInMemoryCheckRepository() *InMemoryCheckRepository {
	return NewInMemoryCheckRepositoryWithLimit(DefaultMaxChecks)
}

// NewInMemoryCheckRepositoryWithLimit는 최대 보관 수를 지정해 저장소를 생성합니다
func NewInMemoryCheckRepositoryWithLimit(maxChecks int) *InMemoryCheckRepository {
	if maxChecks <= 0 {
		maxChecks = DefaultMaxChecks
	}
	return &InMemoryCheckRepository{
		checks:    make(map[string]*model.CheckRecord),
		now:       time.Now,
		maxChecks: maxChecks,
	}
}

// SaveCheck는 검사 결과를 저장합니다. 정리 간격이 지났으면 만료 항목을 먼저 정리합니다
func (r *InMemoryCheckRepository) SaveCheck(_ context.Context, record *model.CheckRecord) error {
	if record == nil || record.CheckID == "" {
		return fmt.Errorf("검사 ID가 비어 있습니다")
	}

	now := r.now()

	// 쓰기 잠금 획득
	r.lock.Lock()
	defer r.lock.Unlock()

	if now.Sub(r.lastSweep) >= sweepInterval {
		r.sweep(now)
	}

	// 가득 찬 상태는 다음 정리 시점까지 유지됨
	if _, exists := r.checks[record.CheckID]; !exists && len(r.checks) >= r.maxChecks {
		return ErrStoreFull
	}

	stored := *record
	r.checks[record.CheckID] = &stored
	return nil
}

// GetCheck는 검사 결과를 조회합니다
func (r *InMemoryCheckRepository) GetCheck(_ context.Context, id string) (*model.CheckRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("검사 ID가 비어 있습니다")
	}

	// 읽기 잠금 획득
	r.lock.RLock()
	defer r.lock.RUnlock()

	record, exists := r.checks[id]
	if !exists || record.IsExpired(r.now()) {
		return nil, nil // 없음 (에러 아님)
	}

	found := *record
	return &found, nil
}

// sweep은 만료된 항목을 삭제합니다. 쓰기 잠금을 보유한 상태에서 호출해야 합니다.
func (r *InMemoryCheckRepository) sweep(now time.Time) {
	for id, existing := range r.checks {
		if existing.IsExpired(now) {
			delete(r.checks, id)
		}
	}
	r.lastSweep = now
}

// Len은 저장된 검사 결과 수를 반환합니다 (만료 항목 포함)
func (r *InMemoryCheckRepository) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.checks)
}
