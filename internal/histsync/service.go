package histsync

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/histwatch/histwatch/internal/pkg/logger"
	"github.com/histwatch/histwatch/internal/pkg/resilience/retry"
	"github.com/histwatch/histwatch/internal/pkg/validator"
	"github.com/histwatch/histwatch/internal/synccursor"
	"github.com/histwatch/histwatch/internal/txrecord"
)

// ErrNoAdapterForParadigm is returned when no source adapter is registered
// for the account's paradigm.
var ErrNoAdapterForParadigm = errors.New("no source adapter registered for account paradigm")

// ErrContactSyncUnsupported is returned by SyncContactHistory when none of
// the account's adapters support the between-two-addresses query shape.
var ErrContactSyncUnsupported = errors.New("contact sync not supported for account paradigm")

// ErrRestoreUnsupported is returned by RestoreAccountHistory when none of
// the account's adapters support a bulk history restore.
var ErrRestoreUnsupported = errors.New("history restore not supported for account paradigm")

// defaultMaxProcessingTime bounds how long a distributed sync claim is held
// before it expires and becomes re-acquirable.
const defaultMaxProcessingTime = 5 * time.Minute

// SyncOutcome is the result of one sync attempt. Updated is false when the
// run produced no net change to the stored log (Log is nil in that case).
type SyncOutcome struct {
	Updated bool
	Log     []txrecord.TransactionRecord
}

// statusConflictHandler receives confirmation evidence that contradicts an
// already settled status. It is diagnostic only: the stored status is never
// overwritten.
type statusConflictHandler func(ctx context.Context, conflict txrecord.StatusConflict)

// Service is the per-account synchronization entrypoint.
type Service interface {
	// SyncAccountHistory runs one incremental sync for the account:
	// fetch → normalize → merge → reconcile → commit → publish.
	SyncAccountHistory(ctx context.Context, account Account) (SyncOutcome, error)

	// SyncContactHistory merges activity between the account's address and
	// one counterparty address into the log. It does not advance cursors.
	SyncContactHistory(ctx context.Context, account Account, contactAddress string) (SyncOutcome, error)

	// RestoreAccountHistory performs the bulk-import path: the account's
	// complete provider-side history is fetched, merged with the stored
	// log, and the result is re-sorted newest-first by creation time.
	RestoreAccountHistory(ctx context.Context, account Account) (SyncOutcome, error)
}

type service struct {
	mu       sync.Mutex
	inflight map[string]struct{}

	adapters       map[Paradigm][]SourceAdapter
	historyStorage HistoryStorage
	cursors        *synccursor.Tracker

	chainInfo             ChainInfo
	syncGuard             SyncGuard
	notifier              HistoryUpdatedNotifier
	retry                 retry.Retry
	statusConflictHandler statusConflictHandler
	fetchTimeout          time.Duration
	maxProcessingTime     time.Duration
}

var _ Service = (*service)(nil)

// cursorID scopes an account's cursor to one adapter kind, since each
// adapter interprets the cursor differently (offset, timestamp, last id).
func cursorID(accountID, adapterKind string) string {
	return accountID + ":" + adapterKind
}

// SyncAccountHistory runs one sync for the account.
//
// Concurrency: syncs for the same account are never interleaved. A trigger
// arriving while a sync for the same account is in flight (locally, or in
// another process holding the distributed claim) is coalesced: it returns an
// unchanged outcome and relies on the in-flight run, which the idempotent
// merge makes safe. Syncs for different accounts run independently.
//
// Failure semantics: an adapter fetch failure or a persistence failure
// aborts the attempt with the stored log and cursors untouched.
func (s *service) SyncAccountHistory(ctx context.Context, account Account) (SyncOutcome, error) {
	if err := validator.Validate(account); err != nil {
		return SyncOutcome{}, err
	}

	release, ok, err := s.acquire(ctx, account.ID)
	if err != nil {
		return SyncOutcome{}, err
	}
	if !ok {
		return SyncOutcome{}, nil
	}
	defer release()

	adapters, ok := s.adapters[account.Paradigm]
	if !ok || len(adapters) == 0 {
		return SyncOutcome{}, fmt.Errorf("%w: %s", ErrNoAdapterForParadigm, account.Paradigm)
	}

	var (
		batches       []Batch
		cursorCommits []CursorCommit
	)
	for _, adapter := range adapters {
		id := cursorID(account.ID, adapter.Kind())

		stored, err := s.cursors.Get(ctx, id)
		if err != nil {
			return SyncOutcome{}, err
		}

		batch, err := s.fetch(ctx, adapter, account, stored)
		if err != nil {
			return SyncOutcome{}, err
		}

		if batch.Empty() {
			continue
		}

		batches = append(batches, batch)
		if next := synccursor.Latest(stored, batch.NextCursor); next.After(stored) {
			cursorCommits = append(cursorCommits, CursorCommit{CursorID: id, Cursor: next})
		}
	}

	if len(batches) == 0 {
		return SyncOutcome{}, nil
	}

	existing, err := s.loadHistory(ctx, account.ID)
	if err != nil {
		return SyncOutcome{}, err
	}

	merged := existing
	for _, batch := range batches {
		merged = txrecord.Merge(merged, batch.Records)

		var conflicts []txrecord.StatusConflict
		merged, _, conflicts = txrecord.Reconcile(merged, batch.Updates)
		for _, conflict := range conflicts {
			s.statusConflictHandler(ctx, conflict)
		}
	}

	if s.chainInfo != nil && account.Paradigm == ParadigmExplorer {
		merged, _ = s.confirmPending(ctx, merged)
	}

	return s.commit(ctx, account.ID, existing, merged, cursorCommits)
}

// SyncContactHistory fetches activity between the account address and the
// counterparty through the first adapter supporting the query shape, always
// from the start of the window, and merges it in. Cursors are untouched.
func (s *service) SyncContactHistory(ctx context.Context, account Account, contactAddress string) (SyncOutcome, error) {
	if err := validator.Validate(account); err != nil {
		return SyncOutcome{}, err
	}

	var source ContactSource
	for _, adapter := range s.adapters[account.Paradigm] {
		if cs, ok := adapter.(ContactSource); ok {
			source = cs
			break
		}
	}
	if source == nil {
		return SyncOutcome{}, fmt.Errorf("%w: %s", ErrContactSyncUnsupported, account.Paradigm)
	}

	release, ok, err := s.acquire(ctx, account.ID)
	if err != nil {
		return SyncOutcome{}, err
	}
	if !ok {
		return SyncOutcome{}, nil
	}
	defer release()

	fetchCtx, cancel := s.fetchContext(ctx)
	batch, err := source.FetchActivityWith(fetchCtx, account, contactAddress, 0)
	cancel()
	if err != nil {
		return SyncOutcome{}, err
	}
	if batch.Empty() {
		return SyncOutcome{}, nil
	}

	existing, err := s.loadHistory(ctx, account.ID)
	if err != nil {
		return SyncOutcome{}, err
	}

	merged := txrecord.Merge(existing, batch.Records)
	return s.commit(ctx, account.ID, existing, merged, nil)
}

// RestoreAccountHistory rebuilds the log from a full provider-side fetch.
// This is the only path that re-sorts the log, newest-first by creation
// time.
func (s *service) RestoreAccountHistory(ctx context.Context, account Account) (SyncOutcome, error) {
	if err := validator.Validate(account); err != nil {
		return SyncOutcome{}, err
	}

	var restorer HistoryRestorer
	for _, adapter := range s.adapters[account.Paradigm] {
		if hr, ok := adapter.(HistoryRestorer); ok {
			restorer = hr
			break
		}
	}
	if restorer == nil {
		return SyncOutcome{}, fmt.Errorf("%w: %s", ErrRestoreUnsupported, account.Paradigm)
	}

	release, ok, err := s.acquire(ctx, account.ID)
	if err != nil {
		return SyncOutcome{}, err
	}
	if !ok {
		return SyncOutcome{}, nil
	}
	defer release()

	fetchCtx, cancel := s.fetchContext(ctx)
	records, err := restorer.RestoreHistory(fetchCtx, account)
	cancel()
	if err != nil {
		return SyncOutcome{}, err
	}
	if len(records) == 0 {
		return SyncOutcome{}, nil
	}

	existing, err := s.loadHistory(ctx, account.ID)
	if err != nil {
		return SyncOutcome{}, err
	}

	merged := txrecord.Merge(existing, records)
	txrecord.SortByCreatedAtDesc(merged)
	return s.commit(ctx, account.ID, existing, merged, nil)
}

// acquire serializes syncs for the account: first within the process via the
// in-flight set, then across processes via the sync guard. The second return
// value is false when the trigger was coalesced onto an in-flight run.
func (s *service) acquire(ctx context.Context, accountID string) (func(), bool, error) {
	s.mu.Lock()
	if _, inflight := s.inflight[accountID]; inflight {
		s.mu.Unlock()
		return nil, false, nil
	}
	s.inflight[accountID] = struct{}{}
	s.mu.Unlock()

	localRelease := func() {
		s.mu.Lock()
		delete(s.inflight, accountID)
		s.mu.Unlock()
	}

	if err := s.syncGuard.ClaimAccountSync(ctx, accountID, s.maxProcessingTime); err != nil {
		localRelease()
		if errors.Is(err, ErrSyncInProgress) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return func() {
		if err := s.syncGuard.ReleaseAccountSync(ctx, accountID); err != nil {
			logger.Error(ctx, "error releasing account sync claim",
				"account.id", accountID,
				"error", err,
			)
		}
		localRelease()
	}, true, nil
}

// fetch runs one adapter fetch under the configured timeout.
func (s *service) fetch(ctx context.Context, adapter SourceAdapter, account Account, cursor synccursor.Cursor) (Batch, error) {
	fetchCtx, cancel := s.fetchContext(ctx)
	defer cancel()

	return adapter.FetchNewActivity(fetchCtx, account, cursor)
}

func (s *service) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.fetchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.fetchTimeout)
}

// loadHistory returns the stored log, treating a never-synced account as an
// empty log.
func (s *service) loadHistory(ctx context.Context, accountID string) ([]txrecord.TransactionRecord, error) {
	log, err := s.historyStorage.LoadAccountHistory(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNoHistoryFound) {
			return nil, nil
		}
		return nil, err
	}
	return log, nil
}

// commit persists the merged log and the advanced cursors as one logical
// write, and publishes the update when the log changed. A cursor-only
// advance is committed but not published.
func (s *service) commit(ctx context.Context, accountID string, existing, merged []txrecord.TransactionRecord, cursorCommits []CursorCommit) (SyncOutcome, error) {
	changed := !reflect.DeepEqual(existing, merged)
	if !changed && len(cursorCommits) == 0 {
		return SyncOutcome{}, nil
	}

	if err := s.historyStorage.CommitAccountHistory(ctx, accountID, merged, cursorCommits); err != nil {
		return SyncOutcome{}, err
	}

	if !changed {
		return SyncOutcome{}, nil
	}

	if err := s.notifier.NotifyHistoryUpdated(ctx, accountID, merged); err != nil {
		logger.Error(ctx, "error publishing history update",
			"account.id", accountID,
			"error", err,
		)
	}

	return SyncOutcome{Updated: true, Log: merged}, nil
}

type config struct {
	chainInfo             ChainInfo
	syncGuard             SyncGuard
	notifier              HistoryUpdatedNotifier
	retry                 retry.Retry
	statusConflictHandler statusConflictHandler
	fetchTimeout          time.Duration
	maxProcessingTime     time.Duration
}

// Option configures the sync service.
type Option func(*config)

// WithChainInfo enables the confirmation-check pass for explorer-paradigm
// accounts.
func WithChainInfo(ci ChainInfo) Option {
	return func(c *config) {
		c.chainInfo = ci
	}
}

// WithSyncGuard installs a distributed per-account sync claim, extending the
// in-process serialization across instances.
func WithSyncGuard(g SyncGuard) Option {
	return func(c *config) {
		c.syncGuard = g
	}
}

// WithHistoryUpdatedNotifier wires the subscriber published to after every
// sync with a net change.
func WithHistoryUpdatedNotifier(n HistoryUpdatedNotifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithRetry applies a retry policy to receipt fetches during the
// confirmation pass.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithStatusConflictHandler replaces the default conflict diagnostic (an
// error log) with a custom handler.
func WithStatusConflictHandler(f func(ctx context.Context, conflict txrecord.StatusConflict)) Option {
	return func(c *config) {
		c.statusConflictHandler = f
	}
}

// WithFetchTimeout bounds each provider fetch. Zero disables the bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *config) {
		c.fetchTimeout = d
	}
}

// WithMaxProcessingTime sets the TTL on the distributed sync claim.
func WithMaxProcessingTime(d time.Duration) Option {
	return func(c *config) {
		c.maxProcessingTime = d
	}
}

func defaultOnStatusConflict(ctx context.Context, conflict txrecord.StatusConflict) {
	logger.Error(ctx, "transaction status conflict",
		"tx.hash", conflict.Hash,
		"tx.status", conflict.Existing,
		"tx.proposed_status", conflict.Proposed,
	)
}

// New creates the sync service. adapters maps each account paradigm to the
// ordered adapter set run for it (the paradigm's primary source first, the
// notification feed layered after it when wired).
func New(historyStorage HistoryStorage, cursors *synccursor.Tracker, adapters map[Paradigm][]SourceAdapter, opts ...Option) *service {
	cfg := config{
		syncGuard:             nopSyncGuard{},
		notifier:              nopHistoryUpdatedNotifier{},
		statusConflictHandler: defaultOnStatusConflict,
		fetchTimeout:          30 * time.Second,
		maxProcessingTime:     defaultMaxProcessingTime,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		inflight:              make(map[string]struct{}),
		adapters:              adapters,
		historyStorage:        historyStorage,
		cursors:               cursors,
		chainInfo:             cfg.chainInfo,
		syncGuard:             cfg.syncGuard,
		notifier:              cfg.notifier,
		retry:                 cfg.retry,
		statusConflictHandler: cfg.statusConflictHandler,
		fetchTimeout:          cfg.fetchTimeout,
		maxProcessingTime:     cfg.maxProcessingTime,
	}
}
