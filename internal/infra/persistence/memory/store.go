// Package memory is an in-process implementation of the persistence layer.
// Transactions work on a copy of the data that replaces the live copy on commit,
// so a failed or abandoned transaction leaves nothing behind.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tempo/internal/domain/entity"
	"tempo/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type dailyKey struct {
	deviceID uuid.UUID
	date     string
}

type usageKey struct {
	dailyActivityID uuid.UUID
	appID           uuid.UUID
}

// state is one consistent snapshot of every table.
type state struct {
	devices          map[uuid.UUID]*entity.Device
	deviceByExternal map[string]uuid.UUID
	apps             map[uuid.UUID]*entity.App
	appByName        map[string]uuid.UUID
	daily            map[uuid.UUID]*entity.DailyActivity
	dailyByKey       map[dailyKey]uuid.UUID
	usages           map[uuid.UUID]*entity.AppUsage
	usageByKey       map[usageKey]uuid.UUID
	timelines        map[uuid.UUID]*entity.UsageTimeline
}

func newState() *state {
	return &state{
		devices:          make(map[uuid.UUID]*entity.Device),
		deviceByExternal: make(map[string]uuid.UUID),
		apps:             make(map[uuid.UUID]*entity.App),
		appByName:        make(map[string]uuid.UUID),
		daily:            make(map[uuid.UUID]*entity.DailyActivity),
		dailyByKey:       make(map[dailyKey]uuid.UUID),
		usages:           make(map[uuid.UUID]*entity.AppUsage),
		usageByKey:       make(map[usageKey]uuid.UUID),
		timelines:        make(map[uuid.UUID]*entity.UsageTimeline),
	}
}

func cloneMap[K comparable, V any](src map[K]*V) map[K]*V {
	dst := make(map[K]*V, len(src))
	for k, v := range src {
		copied := *v
		dst[k] = &copied
	}

	return dst
}

func cloneIndex[K comparable](src map[K]uuid.UUID) map[K]uuid.UUID {
	dst := make(map[K]uuid.UUID, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}

func (s *state) clone() *state {
	devices := cloneMap(s.devices)
	for _, device := range devices {
		if device.UserID != nil {
			owner := *device.UserID
			device.UserID = &owner
		}
	}

	return &state{
		devices:          devices,
		deviceByExternal: cloneIndex(s.deviceByExternal),
		apps:             cloneMap(s.apps),
		appByName:        cloneIndex(s.appByName),
		daily:            cloneMap(s.daily),
		dailyByKey:       cloneIndex(s.dailyByKey),
		usages:           cloneMap(s.usages),
		usageByKey:       cloneIndex(s.usageByKey),
		timelines:        cloneMap(s.timelines),
	}
}

// Store holds the live data shared by every repository.
type Store struct {
	txMu  sync.Mutex   // serializes writers
	mu    sync.RWMutex // guards data
	data  *state
	nowFn func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		data:  newState(),
		nowFn: time.Now,
	}
}

func (s *Store) now() time.Time {
	return s.nowFn().UTC()
}

// backend gives repositories read and write access to a state.
type backend interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
	now() time.Time
}

// storeBackend applies every write as its own transaction.
type storeBackend struct {
	store *Store
}

func (b storeBackend) read(fn func(st *state) error) error {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	return fn(b.store.data)
}

func (b storeBackend) write(fn func(st *state) error) error {
	b.store.txMu.Lock()
	defer b.store.txMu.Unlock()

	b.store.mu.RLock()
	working := b.store.data.clone()
	b.store.mu.RUnlock()

	if err := fn(working); err != nil {
		return err
	}

	b.store.mu.Lock()
	b.store.data = working
	b.store.mu.Unlock()

	return nil
}

func (b storeBackend) now() time.Time {
	return b.store.now()
}

// txBackend works on the private copy of a running transaction.
type txBackend struct {
	working *state
	clock   func() time.Time
}

func (b txBackend) read(fn func(st *state) error) error {
	return fn(b.working)
}

func (b txBackend) write(fn func(st *state) error) error {
	return fn(b.working)
}

func (b txBackend) now() time.Time {
	return b.clock()
}

// transactionManager implements the domain's TransactionManager interface.
type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn against a copy of the store and publishes the copy only if fn succeeds
// before ctx expires. Transactions run one at a time.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	tm.store.mu.RLock()
	working := tm.store.data.clone()
	tm.store.mu.RUnlock()

	if err := fn(&repositoryFactory{b: txBackend{working: working, clock: tm.store.now}}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction aborted: %w", err)
	}

	tm.store.mu.Lock()
	tm.store.data = working
	tm.store.mu.Unlock()

	return nil
}

// repositoryFactory binds repositories to one transaction.
type repositoryFactory struct {
	b backend
}

func (f *repositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return &deviceRepository{b: f.b}
}

func (f *repositoryFactory) NewAppRepository() repository.AppRepository {
	return &appRepository{b: f.b}
}

func (f *repositoryFactory) NewUsageRepository() repository.UsageRepository {
	return &usageRepository{b: f.b}
}

func (f *repositoryFactory) NewTimelineRepository() repository.TimelineRepository {
	return &timelineRepository{b: f.b}
}

func (f *repositoryFactory) NewUserLocker() repository.UserLocker {
	return userLocker{}
}

// userLocker relies on Execute already running transactions one at a time.
type userLocker struct{}

func (userLocker) LockUser(ctx context.Context, _ uuid.UUID) error {
	return ctx.Err()
}

// NewDeviceRepository returns a device repository outside any transaction.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{b: storeBackend{store: store}}
}

// NewAppRepository returns an app repository outside any transaction.
func NewAppRepository(store *Store) repository.AppRepository {
	return &appRepository{b: storeBackend{store: store}}
}

// NewUsageRepository returns a usage repository outside any transaction.
func NewUsageRepository(store *Store) repository.UsageRepository {
	return &usageRepository{b: storeBackend{store: store}}
}

// NewTimelineRepository returns a timeline repository outside any transaction.
func NewTimelineRepository(store *Store) repository.TimelineRepository {
	return &timelineRepository{b: storeBackend{store: store}}
}

// Module provides the in-memory repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewTransactionManager,
		NewDeviceRepository,
		NewAppRepository,
		NewUsageRepository,
		NewTimelineRepository,
	),
)

// AppUsages returns a copy of every AppUsage row, for consistency checks.
func (s *Store) AppUsages() []*entity.AppUsage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usages := make([]*entity.AppUsage, 0, len(s.data.usages))
	for _, usage := range s.data.usages {
		copied := *usage
		usages = append(usages, &copied)
	}

	return usages
}
