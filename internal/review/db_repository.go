package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/vocabreview/internal/database"
)

const planColumns = "id, user_id, word_id, mastery_level, review_count, last_review_at, next_review_at, is_mastered, version, created_at, updated_at"

const outcomeColumns = "id, user_id, word_id, is_correct, time_spent, reviewed_at"

// DBPlanRepository implements PlanRepository using MySQL or PostgreSQL.
type DBPlanRepository struct {
	db *sqlx.DB
}

// NewDBPlanRepository creates a new DBPlanRepository.
func NewDBPlanRepository(db *sqlx.DB) *DBPlanRepository {
	return &DBPlanRepository{db: db}
}

// Get returns the plan of the pair.
func (r *DBPlanRepository) Get(ctx context.Context, userID, wordID int64) (ReviewPlan, error) {
	return getPlan(ctx, r.db, userID, wordID, false)
}

// CreateIfAbsent inserts a due-now plan unless one exists and returns the stored plan.
// Concurrent calls for the same pair leave exactly one row and none of them fails on the unique key.
func (r *DBPlanRepository) CreateIfAbsent(ctx context.Context, userID, wordID int64, now time.Time) (ReviewPlan, bool, error) {
	plan := NewReviewPlan(userID, wordID, now)
	query := "INSERT INTO review_plans (user_id, word_id, mastery_level, review_count, last_review_at, next_review_at, is_mastered, version, created_at, updated_at) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) " +
		database.OnConflictDoNothing(r.db.DriverName(), "user_id", "word_id")

	created := false
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		plan.UserID, plan.WordID, plan.MasteryLevel, plan.ReviewCount, plan.LastReviewAt, plan.NextReviewAt,
		plan.IsMastered, 1, plan.CreatedAt, plan.UpdatedAt)
	switch {
	case err == nil:
		affected, err := result.RowsAffected()
		if err != nil {
			return ReviewPlan{}, false, fmt.Errorf("get review plan rows affected: %w", err)
		}
		created = affected == 1
	case database.IsDuplicateKey(err):
	default:
		return ReviewPlan{}, false, fmt.Errorf("insert review plan: %w", err)
	}

	stored, err := getPlan(ctx, r.db, userID, wordID, false)
	if err != nil {
		return ReviewPlan{}, false, err
	}
	return stored, created, nil
}

// Upsert inserts or version-checked updates the plan outside of a submission transaction.
func (r *DBPlanRepository) Upsert(ctx context.Context, plan *ReviewPlan) error {
	return upsertPlan(ctx, r.db, plan)
}

// FindDue returns every unmastered plan of the user whose next review is at or before now.
func (r *DBPlanRepository) FindDue(ctx context.Context, userID int64, now time.Time) ([]ReviewPlan, error) {
	query := "SELECT " + planColumns + " FROM review_plans WHERE user_id = ? AND is_mastered = ? AND next_review_at <= ? ORDER BY next_review_at, id"

	var plans []ReviewPlan
	if err := r.db.SelectContext(ctx, &plans, r.db.Rebind(query), userID, false, now.UTC()); err != nil {
		return nil, fmt.Errorf("load due review plans: %w", err)
	}
	for i := range plans {
		plans[i] = plans[i].inUTC()
	}
	return plans, nil
}

// Summarize counts the plans of the user by state.
func (r *DBPlanRepository) Summarize(ctx context.Context, userID int64, now time.Time) (Overview, error) {
	query := "SELECT COUNT(*) AS total_words, " +
		"COALESCE(SUM(CASE WHEN is_mastered THEN 1 ELSE 0 END), 0) AS mastered, " +
		"COALESCE(SUM(CASE WHEN is_mastered THEN 0 ELSE 1 END), 0) AS learning, " +
		"COALESCE(SUM(CASE WHEN NOT is_mastered AND next_review_at <= ? THEN 1 ELSE 0 END), 0) AS to_review " +
		"FROM review_plans WHERE user_id = ?"

	var overview Overview
	if err := r.db.GetContext(ctx, &overview, r.db.Rebind(query), now.UTC(), userID); err != nil {
		return Overview{}, fmt.Errorf("summarize review plans: %w", err)
	}
	return overview, nil
}

// DBOutcomeRepository implements OutcomeRepository using MySQL or PostgreSQL.
type DBOutcomeRepository struct {
	db *sqlx.DB
}

// NewDBOutcomeRepository creates a new DBOutcomeRepository.
func NewDBOutcomeRepository(db *sqlx.DB) *DBOutcomeRepository {
	return &DBOutcomeRepository{db: db}
}

// FindByPair returns the outcomes of the pair, newest first.
func (r *DBOutcomeRepository) FindByPair(ctx context.Context, userID, wordID int64, limit int) ([]OutcomeRecord, error) {
	query := "SELECT " + outcomeColumns + " FROM review_outcomes WHERE user_id = ? AND word_id = ? ORDER BY reviewed_at DESC, id DESC"
	args := []interface{}{userID, wordID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var records []OutcomeRecord
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load review outcomes: %w", err)
	}
	for i := range records {
		records[i].ReviewedAt = records[i].ReviewedAt.UTC()
	}
	return records, nil
}

// DBStore implements Store on a single database transaction.
type DBStore struct {
	db *sqlx.DB
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// RunInTx runs fn in a transaction that is committed only when fn succeeds.
func (s *DBStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, &dbTx{tx: tx})
	})
}

type dbTx struct {
	tx *sqlx.Tx
}

func (t *dbTx) GetForUpdate(ctx context.Context, userID, wordID int64) (ReviewPlan, error) {
	return getPlan(ctx, t.tx, userID, wordID, true)
}

func (t *dbTx) Upsert(ctx context.Context, plan *ReviewPlan) error {
	return upsertPlan(ctx, t.tx, plan)
}

func (t *dbTx) AppendOutcome(ctx context.Context, record *OutcomeRecord) error {
	query := "INSERT INTO review_outcomes (user_id, word_id, is_correct, time_spent, reviewed_at) VALUES (?, ?, ?, ?, ?)"
	result, err := t.tx.ExecContext(ctx, t.tx.Rebind(query),
		record.UserID, record.WordID, record.IsCorrect, record.TimeSpent, record.ReviewedAt.UTC())
	if err != nil {
		return classifyWriteError("insert review outcome", err)
	}
	// pgx does not report insert IDs.
	if id, err := result.LastInsertId(); err == nil {
		record.ID = id
	}
	return nil
}

func getPlan(ctx context.Context, q sqlx.ExtContext, userID, wordID int64, forUpdate bool) (ReviewPlan, error) {
	query := "SELECT " + planColumns + " FROM review_plans WHERE user_id = ? AND word_id = ?"
	if forUpdate {
		query += " FOR UPDATE"
	}

	var plan ReviewPlan
	if err := sqlx.GetContext(ctx, q, &plan, q.Rebind(query), userID, wordID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReviewPlan{}, fmt.Errorf("user %d, word %d: %w", userID, wordID, ErrPlanNotFound)
		}
		return ReviewPlan{}, classifyWriteError("load review plan", err)
	}
	return plan.inUTC(), nil
}

func upsertPlan(ctx context.Context, q sqlx.ExtContext, plan *ReviewPlan) error {
	if plan.Version == 0 {
		return insertPlan(ctx, q, plan)
	}

	query := "UPDATE review_plans SET mastery_level = ?, review_count = ?, last_review_at = ?, next_review_at = ?, is_mastered = ?, version = version + 1, updated_at = ? " +
		"WHERE user_id = ? AND word_id = ? AND version = ?"
	result, err := q.ExecContext(ctx, q.Rebind(query),
		plan.MasteryLevel, plan.ReviewCount, utcOrNil(plan.LastReviewAt), utcOrNil(plan.NextReviewAt), plan.IsMastered, plan.UpdatedAt.UTC(),
		plan.UserID, plan.WordID, plan.Version)
	if err != nil {
		return classifyWriteError("update review plan", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get review plan rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %d, word %d, version %d: %w", plan.UserID, plan.WordID, plan.Version, ErrConcurrentConflict)
	}
	plan.Version++
	return nil
}

func insertPlan(ctx context.Context, q sqlx.ExtContext, plan *ReviewPlan) error {
	query := "INSERT INTO review_plans (user_id, word_id, mastery_level, review_count, last_review_at, next_review_at, is_mastered, version, created_at, updated_at) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	if _, err := q.ExecContext(ctx, q.Rebind(query),
		plan.UserID, plan.WordID, plan.MasteryLevel, plan.ReviewCount, utcOrNil(plan.LastReviewAt), utcOrNil(plan.NextReviewAt),
		plan.IsMastered, 1, plan.CreatedAt.UTC(), plan.UpdatedAt.UTC()); err != nil {
		if database.IsDuplicateKey(err) {
			return fmt.Errorf("user %d, word %d: %w", plan.UserID, plan.WordID, ErrConcurrentConflict)
		}
		return classifyWriteError("insert review plan", err)
	}

	stored, err := getPlan(ctx, q, plan.UserID, plan.WordID, false)
	if err != nil {
		return err
	}
	plan.ID = stored.ID
	plan.Version = stored.Version
	return nil
}

func classifyWriteError(action string, err error) error {
	if database.IsSerializationFailure(err) {
		return fmt.Errorf("%s: %w: %w", action, ErrConcurrentConflict, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (p ReviewPlan) inUTC() ReviewPlan {
	p.LastReviewAt = utcOrNil(p.LastReviewAt)
	p.NextReviewAt = utcOrNil(p.NextReviewAt)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p
}
