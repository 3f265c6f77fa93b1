// Package fake provides an in-memory unit of work for use case tests.
// Within runs one transaction at a time and discards every write of a failed transaction.
package fake

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/infra"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Store struct {
	mu sync.Mutex

	resources    map[string]*resource.Resource
	semesters    calendar.Table
	schedule     []shared.ScheduleEntry
	reservations map[uuid.UUID]shared.ReservationRow
	seatUsages   map[uuid.UUID]occupancy.Usage
	audit        []shared.AuditEntry

	// FailReads makes every read return this error when set.
	FailReads error
}

func NewStore() *Store {
	return &Store{
		resources:    map[string]*resource.Resource{},
		reservations: map[uuid.UUID]shared.ReservationRow{},
		seatUsages:   map[uuid.UUID]occupancy.Usage{},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations := maps.Clone(s.reservations)
	seatUsages := maps.Clone(s.seatUsages)
	audit := slices.Clone(s.audit)

	if err := fn(ctx, &tx{s: s}); err != nil {
		s.reservations = reservations
		s.seatUsages = seatUsages
		s.audit = audit
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &reads{s: s})
}

// Seeding helpers. They are not transactional.

func (s *Store) AddResource(r *resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[r.ID()] = r
}

func (s *Store) AddSemester(sem calendar.Semester) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.semesters = append(s.semesters, sem)
}

func (s *Store) AddScheduleEntry(e shared.ScheduleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = append(s.schedule, e)
}

func (s *Store) AddReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID()] = s.rowOf(r)
}

func (s *Store) AddSeatUsage(u occupancy.Usage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seatUsages[u.ID] = u
}

// Inspection helpers.

func (s *Store) Reservation(id uuid.UUID) (shared.ReservationRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	return r, ok
}

func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *Store) OpenSeatUsages() []occupancy.Usage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []occupancy.Usage
	for _, u := range s.seatUsages {
		if u.Open() {
			out = append(out, u)
		}
	}
	return out
}

func (s *Store) Audit() []shared.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.audit)
}

func (s *Store) rowOf(r *reservation.Reservation) shared.ReservationRow {
	row := shared.ReservationRow{
		ID:         r.ID(),
		ResourceID: r.ResourceID(),
		UserID:     r.UserID(),
		UserName:   r.UserName(),
		Date:       r.Date(),
		StartAt:    r.Interval().Start,
		EndAt:      r.Interval().End,
		Purpose:    r.Purpose(),
		Attendees:  r.Attendees(),
		Status:     r.Status(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
	if res, ok := s.resources[r.ResourceID()]; ok {
		row.ResourceName = res.Name()
		row.ResourceKind = res.Kind()
	}
	return row
}

type tx struct {
	s *Store
}

func (t *tx) Reservations() shared.ReservationRepository { return reservationRepo{t.s} }
func (t *tx) SeatUsages() shared.SeatUsageRepository { return seatUsageRepo{t.s} }
func (t *tx) AuditLog() shared.AuditLogRepository { return auditRepo{t.s} }
func (t *tx) Reads() shared.Reads { return &reads{s: t.s} }

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.s.resources[res.ResourceID()]; !ok {
		return infra.WrapRepoErr("failed to create reservation", &pgconn.PgError{
			Code:           "23503",
			ConstraintName: "reservations_resource_id_fkey",
		})
	}
	r.s.reservations[res.ID()] = r.s.rowOf(res)
	return nil
}

func (r reservationRepo) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	row, ok := r.s.reservations[res.ID()]
	if !ok {
		return infra.NotFound("reservation not found")
	}
	row.Status = res.Status()
	row.UpdatedAt = res.UpdatedAt()
	r.s.reservations[res.ID()] = row
	return nil
}

type seatUsageRepo struct{ s *Store }

// Open enforces the same uniqueness as the partial indexes over open usages.
func (r seatUsageRepo) Open(_ context.Context, u occupancy.Usage) error {
	for _, existing := range r.s.seatUsages {
		if !existing.Open() {
			continue
		}
		if existing.SeatNumber == u.SeatNumber {
			return duplicate("seat_usages_open_seat_idx")
		}
		if existing.UserID == u.UserID {
			return duplicate("seat_usages_open_user_idx")
		}
	}
	r.s.seatUsages[u.ID] = u
	return nil
}

func (r seatUsageRepo) Close(_ context.Context, u occupancy.Usage) error {
	existing, ok := r.s.seatUsages[u.ID]
	if !ok || !existing.Open() {
		return infra.NotFound("open seat usage not found")
	}
	existing.EndAt = u.EndAt
	r.s.seatUsages[u.ID] = existing
	return nil
}

func duplicate(constraint string) error {
	return infra.WrapRepoErr("failed to open seat usage", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

type auditRepo struct{ s *Store }

func (r auditRepo) Append(_ context.Context, e shared.AuditEntry) error {
	r.s.audit = append(r.s.audit, e)
	return nil
}

type reads struct {
	s *Store
}

func (r *reads) Resource(_ context.Context, id string) (*resource.Resource, error) {
	if r.s.FailReads != nil {
		return nil, r.s.FailReads
	}
	res, ok := r.s.resources[id]
	if !ok {
		return nil, infra.NotFound("resource not found")
	}
	return res, nil
}

func (r *reads) SeatResource(_ context.Context, seatNumber int) (*resource.Resource, error) {
	if r.s.FailReads != nil {
		return nil, r.s.FailReads
	}
	for _, res := range r.s.resources {
		if res.Kind() == resource.KindReadingSeat && res.SeatNumber() != nil && *res.SeatNumber() == seatNumber {
			return res, nil
		}
	}
	return nil, infra.NotFound("seat not found")
}

func (r *reads) Resources(_ context.Context, filter shared.ResourceFilter) ([]*resource.Resource, error) {
	if r.s.FailReads != nil {
		return nil, r.s.FailReads
	}
	var out []*resource.Resource
	for _, res := range r.s.resources {
		if filter.Kind != "" && res.Kind() != filter.Kind {
			continue
		}
		if len(filter.IDs) > 0 && !slices.Contains(filter.IDs, res.ID()) {
			continue
		}
		out = append(out, res)
	}
	slices.SortFunc(out, func(a, b *resource.Resource) int {
		if a.Kind() != b.Kind() {
			return cmp.Compare(string(a.Kind()), string(b.Kind()))
		}
		return cmp.Compare(a.ID(), b.ID())
	})
	return out, nil
}

func (r *reads) Semesters(_ context.Context, date time.Time) (calendar.Table, error) {
	if r.s.FailReads != nil {
		return nil, r.s.FailReads
	}
	var out calendar.Table
	for _, sem := range r.s.semesters {
		if sem.Contains(date) {
			out = append(out, sem)
		}
	}
	slices.SortStableFunc(out, func(a, b calendar.Semester) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return out, nil
}

func (r *reads) ClassSchedule(_ context.Context, filter shared.ScheduleFilter) ([]shared.ScheduleEntry, error) {
	if r.s.FailReads != nil {
		return nil, r.s.FailReads
	}
	var out []shared.ScheduleEntry
	for _, e := range r.s.schedule {
		if len(filter.ResourceIDs) > 0 && !slices.Contains(filter.ResourceIDs, e.ResourceID) {
			continue
		}
		if filter.DayOfWeek != "" && e.DayOfWeek != filter.DayOfWeek {
			continue
		}
		if filter.SemesterCode != "" && e.SemesterCode != filter.SemesterCode {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *reads) Reservations(_ context.Context, filter shared.ReservationFilter) ([]shared.ReservationRow, error) {
	if r.s.FailReads != nil {
		return nil, r.s.FailReads
	}
	var out []shared.ReservationRow
	for _, row := range r.s.reservations {
		if len(filter.ResourceIDs) > 0 && !slices.Contains(filter.ResourceIDs, row.ResourceID) {
			continue
		}
		if filter.Date != nil && !sameDay(row.Date, *filter.Date) {
			continue
		}
		if filter.FromDate != nil && row.Date.Before(calendar.StartOfDay(*filter.FromDate)) {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, row.Status) {
			continue
		}
		if filter.UserID != "" && row.UserID != filter.UserID {
			continue
		}
		out = append(out, row)
	}
	slices.SortFunc(out, func(a, b shared.ReservationRow) int {
		if c := a.StartAt.Compare(b.StartAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ResourceID, b.ResourceID)
	})
	return out, nil
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationRow, error) {
	if r.s.FailReads != nil {
		return nil, r.s.FailReads
	}
	row, ok := r.s.reservations[id]
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return &row, nil
}

func (r *reads) ReservationUsage(_ context.Context, filter shared.UsageFilter) (shared.UsageTotals, error) {
	if r.s.FailReads != nil {
		return shared.UsageTotals{}, r.s.FailReads
	}
	var totals shared.UsageTotals
	for _, row := range r.s.reservations {
		if row.UserID != filter.UserID || row.ResourceKind != filter.Kind {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, row.Status) {
			continue
		}
		if row.StartAt.Before(filter.From) || !row.StartAt.Before(filter.To) {
			continue
		}
		totals.Duration += row.EndAt.Sub(row.StartAt)
		totals.Count++
	}
	return totals, nil
}

func (r *reads) OpenSeatUsages(_ context.Context, filter shared.SeatUsageFilter) ([]occupancy.Usage, error) {
	if r.s.FailReads != nil {
		return nil, r.s.FailReads
	}
	var out []occupancy.Usage
	for _, u := range r.s.seatUsages {
		if !u.Open() {
			continue
		}
		if filter.SeatNumber != nil && u.SeatNumber != *filter.SeatNumber {
			continue
		}
		if filter.UserID != "" && u.UserID != filter.UserID {
			continue
		}
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b occupancy.Usage) int { return a.SeatNumber - b.SeatNumber })
	return out, nil
}

func (r *reads) SeatUsagesSince(_ context.Context, userID string, since time.Time) ([]occupancy.Usage, error) {
	if r.s.FailReads != nil {
		return nil, r.s.FailReads
	}
	var out []occupancy.Usage
	for _, u := range r.s.seatUsages {
		if u.UserID == userID && !u.StartAt.Before(since) {
			out = append(out, u)
		}
	}
	slices.SortFunc(out, func(a, b occupancy.Usage) int { return a.StartAt.Compare(b.StartAt) })
	return out, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
