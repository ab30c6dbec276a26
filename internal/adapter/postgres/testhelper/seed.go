package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates an active user with the given role and department.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, department string) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	u := domain.User{
		ID:         uuid.New(),
		Username:   "user-" + suffix,
		Email:      "user-" + suffix + "@example.edu",
		Name:       "Test User " + suffix,
		Department: department,
		Role:       role,
		IsActive:   true,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, name, department, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Username, u.Email, u.Name, u.Department, string(u.Role), u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedProgram creates a training program with a unique name.
func SeedProgram(t *testing.T, pool *pgxpool.Pool) domain.Program {
	t.Helper()

	p := domain.Program{
		ID:        uuid.New(),
		Name:      "Program " + uniqueSuffix(),
		CreatedAt: now(),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO programs (id, name, created_at) VALUES ($1, $2, $3)`,
		p.ID, p.Name, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgram: %v", err)
	}
	return p
}

// SeedCampusEvent creates a campus event starting tomorrow. capacity 0 means unlimited.
func SeedCampusEvent(t *testing.T, pool *pgxpool.Pool, programID *uuid.UUID, capacity int) domain.CampusEvent {
	t.Helper()

	ts := now()
	e := domain.CampusEvent{
		ID:        uuid.New(),
		ProgramID: programID,
		Title:     "Workshop " + uniqueSuffix(),
		Location:  "Room 101",
		StartsAt:  ts.Add(24 * time.Hour),
		EndsAt:    ts.Add(26 * time.Hour),
		Hours:     2,
		Capacity:  capacity,
		CreatedAt: ts,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO campus_events (id, program_id, title, location, starts_at, ends_at, hours, capacity, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.ProgramID, e.Title, e.Location, e.StartsAt, e.EndsAt, e.Hours, e.Capacity, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCampusEvent: %v", err)
	}
	return e
}

// SeedOffCampusEvent creates an off-campus event reported by createdBy.
func SeedOffCampusEvent(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.OffCampusEvent {
	t.Helper()

	ts := now()
	e := domain.OffCampusEvent{
		ID:        uuid.New(),
		Title:     "Conference " + uniqueSuffix(),
		Organizer: "Regional Board",
		Location:  "City Hall",
		StartsAt:  ts.Add(-48 * time.Hour),
		EndsAt:    ts.Add(-40 * time.Hour),
		Hours:     8,
		CreatedBy: createdBy,
		CreatedAt: ts,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO off_campus_events (id, title, organizer, location, starts_at, ends_at, hours, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Title, e.Organizer, e.Location, e.StartsAt, e.EndsAt, e.Hours, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOffCampusEvent: %v", err)
	}
	return e
}

// SeedEnrollment enrolls userID in the campus event.
func SeedEnrollment(t *testing.T, pool *pgxpool.Pool, userID, eventID uuid.UUID) domain.Enrollment {
	t.Helper()

	en := domain.Enrollment{
		ID:            uuid.New(),
		UserID:        userID,
		CampusEventID: eventID,
		CreatedAt:     now(),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO enrollments (id, user_id, campus_event_id, created_at) VALUES ($1, $2, $3, $4)`,
		en.ID, en.UserID, en.CampusEventID, en.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEnrollment: %v", err)
	}
	return en
}

// SeedRecord creates a SUBMITTED record for userID against a fresh off-campus event.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Record {
	t.Helper()

	ev := SeedOffCampusEvent(t, pool, userID)
	ts := now()
	r := domain.Record{
		ID:               uuid.New(),
		UserID:           userID,
		OffCampusEventID: &ev.ID,
		Content:          "Attended " + ev.Title,
		Status:           domain.RecordStatusSubmitted,
		Version:          1,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO records (id, user_id, off_campus_event_id, content, status, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.UserID, r.OffCampusEventID, r.Content, string(r.Status), r.Version, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}
	return r
}
