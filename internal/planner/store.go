// Package planner holds the authoritative in-memory copy of the lesson plan.
// Every mutation is applied in memory, written to local persistence and, when
// a remote endpoint is configured, pushed in the background.
package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/alexanderramin/lessonplan/internal/persist"
	"github.com/alexanderramin/lessonplan/internal/remote"
	"github.com/alexanderramin/lessonplan/internal/seed"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Remote is the sync transport the store drives.
type Remote interface {
	Pull(ctx context.Context, endpoint string) (*remote.PullResult, error)
	Push(ctx context.Context, endpoint string, snap domain.Snapshot) (*remote.Dispatch, error)
}

// Options configures a Store. Persist and Remote are required.
type Options struct {
	Persist *persist.Store
	Remote  Remote
	Logger  *zap.Logger

	// Seed supplies the dataset used when local persistence has none.
	// Defaults to the built-in sample plan.
	Seed func() domain.Snapshot

	Now func() time.Time
}

// Store is the application state store. It is safe for concurrent use.
type Store struct {
	persist *persist.Store
	remote  Remote
	logger  *zap.Logger
	now     func() time.Time

	mu        sync.RWMutex
	lessons   []domain.Lesson
	units     []domain.Unit
	remoteURL string
	syncState SyncState
	closed    bool

	subMu  sync.Mutex
	subs   map[int]func()
	nextID int

	ctx    context.Context
	cancel context.CancelFunc
	tasks  errgroup.Group
}

// New hydrates a Store from local persistence, falling back to the seed
// dataset for any record that is missing or unreadable.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Persist == nil {
		return nil, errors.New("planner: persist store is required")
	}
	if opts.Remote == nil {
		return nil, errors.New("planner: remote client is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	seedFn := opts.Seed
	if seedFn == nil {
		seedFn = func() domain.Snapshot {
			return domain.Snapshot{Lessons: seed.Lessons(), Units: seed.Units()}
		}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	def := seedFn()
	s := &Store{
		persist: opts.Persist,
		remote:  opts.Remote,
		logger:  logger.Named("planner"),
		now:     now,
		subs:    make(map[int]func()),
	}
	s.lessons = domain.CloneLessons(persist.Load(ctx, opts.Persist, persist.KeyLessons, def.Lessons))
	s.units = domain.CloneUnits(persist.Load(ctx, opts.Persist, persist.KeyUnits, def.Units))
	s.remoteURL = strings.TrimSpace(opts.Persist.LoadString(ctx, persist.KeyRemoteURL, ""))
	s.syncState.Configured = s.remoteURL != ""

	s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))

	s.logger.Debug("store hydrated",
		zap.Int("lessons", len(s.lessons)),
		zap.Int("units", len(s.units)),
		zap.Bool("remote", s.syncState.Configured),
	)
	return s, nil
}

// Start triggers the initial pull when a remote endpoint is configured.
// Interactive front ends call it once; one-shot commands skip it so a pull
// cannot overwrite the mutation they are about to make.
func (s *Store) Start() {
	if s.RemoteURL() == "" {
		return
	}
	s.goSync("startup pull", s.pull)
}

// Close stops accepting background work and waits for in-flight syncs until
// ctx is done, then cancels them. It returns the first background sync
// failure, if any.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- s.tasks.Wait() }()

	select {
	case err := <-done:
		s.cancel()
		return err
	case <-ctx.Done():
		s.cancel()
		<-done
		return fmt.Errorf("waiting for background sync: %w", ctx.Err())
	}
}

// Wait blocks until every background sync started so far has finished.
func (s *Store) Wait() error {
	return s.tasks.Wait()
}

// Subscribe registers fn to run after every state or sync change. fn runs
// on the goroutine that made the change and must not block. The returned
// func unregisters it.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Lessons returns a copy of the current lessons.
func (s *Store) Lessons() []domain.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneLessons(s.lessons)
}

// Units returns a copy of the current units.
func (s *Store) Units() []domain.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneUnits(s.units)
}

// Snapshot returns a copy of the whole dataset.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Lessons: domain.CloneLessons(s.lessons),
		Units:   domain.CloneUnits(s.units),
	}
}

// RemoteURL returns the configured endpoint, or "" when offline.
func (s *Store) RemoteURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remoteURL
}

// SyncState returns the current sync status.
func (s *Store) SyncState() SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncState
}

// UpdateLessonStatus sets the status of lesson id. It reports whether the
// lesson exists; an unknown id changes nothing.
func (s *Store) UpdateLessonStatus(id string, status domain.Status) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	return s.mutateLesson(id, "status", func(l *domain.Lesson) { l.Status = status }), nil
}

// UpdateLessonObservation replaces the observations of lesson id.
func (s *Store) UpdateLessonObservation(id, text string) bool {
	return s.mutateLesson(id, "observations", func(l *domain.Lesson) { l.Observations = text })
}

// UpdateLessonLink replaces the material link of lesson id.
func (s *Store) UpdateLessonLink(id, link string) bool {
	return s.mutateLesson(id, "link", func(l *domain.Lesson) { l.Link = link })
}

func (s *Store) mutateLesson(id, field string, apply func(*domain.Lesson)) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.lessons {
		if s.lessons[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Debug("lesson not found, nothing to update", zap.String("id", id), zap.String("field", field))
		return false
	}

	next := domain.CloneLessons(s.lessons)
	apply(&next[idx])
	s.lessons = next
	snap := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("lesson updated", zap.String("id", id), zap.String("field", field))
	s.afterCommit(snap)
	return true
}

// AddUnit appends u. An empty id is replaced with a generated one; an id
// already in use is rejected with ErrDuplicateUnit.
func (s *Store) AddUnit(u domain.Unit) (domain.Unit, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := u.Validate(); err != nil {
		return domain.Unit{}, err
	}

	s.mu.Lock()
	for _, existing := range s.units {
		if existing.ID == u.ID {
			s.mu.Unlock()
			return domain.Unit{}, fmt.Errorf("%w: %s", ErrDuplicateUnit, u.ID)
		}
	}
	next := make([]domain.Unit, 0, len(s.units)+1)
	next = append(next, s.units...)
	s.units = append(next, u)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("unit added", zap.String("id", u.ID))
	s.afterCommit(snap)
	return u, nil
}

// UpdateUnit replaces the unit with u.ID. It reports whether one existed.
func (s *Store) UpdateUnit(u domain.Unit) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.units {
		if s.units[i].ID == u.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Debug("unit not found, nothing to update", zap.String("id", u.ID))
		return false
	}
	next := domain.CloneUnits(s.units)
	next[idx] = u
	s.units = next
	snap := s.commitLocked()
	s.mu.Unlock()

	s.afterCommit(snap)
	return true
}

// DeleteUnit removes unit id. Lessons that reference it are kept and simply
// stop matching any unit.
func (s *Store) DeleteUnit(id string) bool {
	s.mu.Lock()
	next := make([]domain.Unit, 0, len(s.units))
	for _, u := range s.units {
		if u.ID != id {
			next = append(next, u)
		}
	}
	if len(next) == len(s.units) {
		s.mu.Unlock()
		s.logger.Debug("unit not found, nothing to delete", zap.String("id", id))
		return false
	}
	s.units = next
	snap := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("unit deleted", zap.String("id", id))
	s.afterCommit(snap)
	return true
}

// ReplaceAll swaps in a whole dataset, as a pull does, then persists and
// pushes it like any other mutation. Every entry is validated first; on
// error nothing changes.
func (s *Store) ReplaceAll(snap domain.Snapshot) error {
	for _, l := range snap.Lessons {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	for _, u := range snap.Units {
		if err := u.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.lessons = domain.CloneLessons(snap.Lessons)
	s.units = domain.CloneUnits(snap.Units)
	committed := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("dataset replaced",
		zap.Int("lessons", len(committed.Lessons)),
		zap.Int("units", len(committed.Units)),
	)
	s.afterCommit(committed)
	return nil
}

// SetRemoteURL stores the endpoint address. An empty value switches the
// store offline. A non-empty value is persisted as given, without
// validation, and triggers a background pull.
func (s *Store) SetRemoteURL(url string) {
	url = strings.TrimSpace(url)

	s.mu.Lock()
	s.remoteURL = url
	s.syncState.Configured = url != ""
	if url == "" {
		s.syncState.Err = ""
	}
	if err := s.persist.Save(s.ctx, persist.KeyRemoteURL, url); err != nil {
		s.logger.Error("persisting remote url failed", zap.Error(err))
	}
	s.mu.Unlock()

	s.notify()
	if url != "" {
		s.goSync("pull after url change", s.pull)
	}
}

// ManualPull fetches the remote dataset and waits for the outcome. It is a
// no-op when no endpoint is configured.
func (s *Store) ManualPull(ctx context.Context) error {
	if s.isClosed() {
		return ErrClosed
	}
	return s.pull(ctx)
}

// ManualPush sends the current snapshot and waits for the dispatch. It is a
// no-op returning nil, nil when no endpoint is configured.
func (s *Store) ManualPush(ctx context.Context) (*remote.Dispatch, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}
	url := s.RemoteURL()
	if url == "" {
		return nil, nil
	}
	return s.push(ctx, url, s.Snapshot())
}

func (s *Store) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// commitLocked writes the current collections to local persistence and
// returns the snapshot to push. A write failure is logged; the in-memory
// change stands. Callers hold s.mu.
func (s *Store) commitLocked() domain.Snapshot {
	snap := s.snapshotLocked()
	err := s.persist.SaveMany(s.ctx,
		persist.Entry{Key: persist.KeyLessons, Value: snap.Lessons},
		persist.Entry{Key: persist.KeyUnits, Value: snap.Units},
	)
	if err != nil {
		s.logger.Error("persisting snapshot failed", zap.Error(err))
	}
	return snap
}

func (s *Store) afterCommit(snap domain.Snapshot) {
	s.notify()

	url := s.RemoteURL()
	if url == "" {
		return
	}
	s.goSync("push after change", func(ctx context.Context) error {
		_, err := s.push(ctx, url, snap)
		return err
	})
}

// goSync runs fn in the background unless the store is closed.
func (s *Store) goSync(name string, fn func(context.Context) error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.logger.Warn("store closed, background sync skipped", zap.String("task", name))
		return
	}

	// Registered under the read lock so Close cannot start waiting between
	// the closed check and the Add.
	s.tasks.Go(func() error {
		if err := fn(s.ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	})
}

func (s *Store) pull(ctx context.Context) error {
	url := s.RemoteURL()
	if url == "" {
		return nil
	}
	if err := remote.ValidateURL(url); err != nil {
		s.setSyncOutcome(false, MsgInvalidURL, nil)
		return err
	}

	s.setSyncOutcome(true, "", nil)
	res, err := s.remote.Pull(ctx, url)
	if err != nil {
		s.logger.Warn("pull failed", zap.Error(err))
		s.setSyncOutcome(false, MsgPullFailed, nil)
		return err
	}

	s.mu.Lock()
	changed := false
	if res.Lessons != nil {
		s.lessons = domain.CloneLessons(res.Lessons)
		changed = true
	}
	if res.Units != nil {
		s.units = domain.CloneUnits(res.Units)
		changed = true
	}
	if changed {
		s.commitLocked()
	}
	s.mu.Unlock()

	s.setSyncOutcome(false, "", func(st *SyncState) { st.LastPull = s.now() })
	return nil
}

func (s *Store) push(ctx context.Context, url string, snap domain.Snapshot) (*remote.Dispatch, error) {
	s.setSyncOutcome(true, "", nil)
	d, err := s.remote.Push(ctx, url, snap)
	if err != nil {
		msg := MsgPushFailed
		if errors.Is(err, remote.ErrInvalidURL) {
			msg = MsgInvalidURL
		}
		s.logger.Warn("push failed", zap.Error(err))
		s.setSyncOutcome(false, msg, nil)
		return nil, err
	}
	s.setSyncOutcome(false, "", func(st *SyncState) { st.LastPush = s.now() })
	return d, nil
}

func (s *Store) setSyncOutcome(syncing bool, msg string, extra func(*SyncState)) {
	s.mu.Lock()
	s.syncState.Syncing = syncing
	s.syncState.Err = msg
	if extra != nil {
		extra(&s.syncState)
	}
	s.mu.Unlock()
	s.notify()
}
