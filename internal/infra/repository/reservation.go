package repository

import (
	"context"
	"log/slog"
	"sync"

	"booking-calendar/internal/domain/reservation"
	"booking-calendar/internal/infra"
	"booking-calendar/internal/infra/converter"
	"booking-calendar/internal/infra/filestore"

	"github.com/google/uuid"
)

// ReservationRepository holds the authoritative reservation collection
// in memory and mirrors it to the file store after every mutation.
// Mutations apply optimistically: a failed flush is logged and the
// in-memory state kept, so memory and disk may diverge until the next
// successful write.
type ReservationRepository struct {
	mu      sync.RWMutex
	store   *filestore.Store
	logger  *slog.Logger
	records []*reservation.Reservation
}

// NewReservationRepository hydrates the collection from the store. A
// failed read is surfaced as a retryable warning and the repository
// starts empty rather than refusing to boot.
func NewReservationRepository(store *filestore.Store, logger *slog.Logger) *ReservationRepository {
	repo := &ReservationRepository{
		store:  store,
		logger: logger,
	}

	recs, err := store.Load()
	if err != nil {
		logger.Warn("failed to load reservation store, starting empty",
			"file", store.Path(), "error", err)
		return repo
	}

	records := make([]*reservation.Reservation, 0, len(recs))
	for _, rec := range recs {
		r, convErr := converter.RecordToReservation(rec)
		if convErr != nil {
			logger.Warn("skipping unreadable reservation record",
				"id", rec.ID, "error", convErr)
			continue
		}
		records = append(records, r)
	}
	repo.records = records
	return repo
}

// All returns a copy of the current collection. Insertion order is not
// meaningful; consumers sort for display.
func (p *ReservationRepository) All(_ context.Context) []*reservation.Reservation {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*reservation.Reservation, len(p.records))
	copy(out, p.records)
	return out
}

func (p *ReservationRepository) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, r := range p.records {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
}

func (p *ReservationRepository) Create(_ context.Context, r *reservation.Reservation) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.records = append(p.records, r)
	p.flushLocked()
	return nil
}

func (p *ReservationRepository) Replace(_ context.Context, r *reservation.Reservation) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, existing := range p.records {
		if existing.ID() == r.ID() {
			p.records[i] = r
			p.flushLocked()
			return nil
		}
	}
	return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
}

// Remove deletes the matching record. Absent ids are ignored.
func (p *ReservationRepository) Remove(ctx context.Context, id uuid.UUID) error {
	return p.RemoveMany(ctx, []uuid.UUID{id})
}

func (p *ReservationRepository) RemoveMany(_ context.Context, ids []uuid.UUID) error {
	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.records[:0]
	for _, r := range p.records {
		if _, ok := drop[r.ID()]; !ok {
			kept = append(kept, r)
		}
	}
	p.records = kept
	p.flushLocked()
	return nil
}

func (p *ReservationRepository) Clear(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.records = nil
	p.flushLocked()
	return nil
}

// ReplaceAll swaps in a whole new collection, used by import.
func (p *ReservationRepository) ReplaceAll(_ context.Context, rs []*reservation.Reservation) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.records = rs
	p.flushLocked()
	return nil
}

// Snapshot returns the collection in wire form, for export and for the
// flush itself.
func (p *ReservationRepository) Snapshot(_ context.Context) []filestore.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked()
}

func (p *ReservationRepository) snapshotLocked() []filestore.Record {
	recs := make([]filestore.Record, len(p.records))
	for i, r := range p.records {
		recs[i] = converter.ReservationToRecord(r)
	}
	return recs
}

// flushLocked mirrors the in-memory collection to disk. Caller holds
// the write lock. Failures are logged, never propagated: the mutation
// stays applied and durability catches up on the next flush.
func (p *ReservationRepository) flushLocked() {
	if err := p.store.Write(p.snapshotLocked()); err != nil {
		p.logger.Error("failed to flush reservations, in-memory state may diverge from store",
			"file", p.store.Path(), "error", err)
	}
}
