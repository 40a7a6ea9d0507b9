// Package candidates stores submitted applications in PostgreSQL.
package candidates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/dmitrijs2005/candidatetracker/internal/dbx"
	"github.com/dmitrijs2005/candidatetracker/internal/server/models"
)

// columns is the select list shared by List and Get, in scan order.
const columns = `id, name, email, mobile_number, current_location, pan_number,
		 highest_education, passed_out_year, skill, is_fresher, total_experience,
		 relevant_experience, current_company, previous_companies, is_currently_working,
		 career_gaps, current_ctc, expected_ctc, notice_period, has_form16, has_pf,
		 overlaps, referred_by, status, submitted_at, is_viewed, resume_key, submitted_by`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Application) error {
	query :=
		`INSERT INTO candidates (` + columns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		 $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		 `

	c := &a.Candidate
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.MobileNumber, c.CurrentLocation, c.PANNumber,
		c.HighestEducation, c.PassedOutYear, c.Skill, c.IsFresher, c.TotalExperience,
		c.RelevantExperience, c.CurrentCompany, c.PreviousCompanies, c.IsCurrentlyWorking,
		c.CareerGaps, c.CurrentCTC, c.ExpectedCTC, c.NoticePeriod, c.HasForm16, c.HasPF,
		c.Overlaps, c.ReferredBy, c.Status, c.SubmittedAt, c.IsViewed, c.ResumeKey, nullable(a.SubmittedBy))

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(s scanner) (*models.Application, error) {
	a := &models.Application{}
	c := &a.Candidate
	var by sql.NullString

	err := s.Scan(
		&c.ID, &c.Name, &c.Email, &c.MobileNumber, &c.CurrentLocation, &c.PANNumber,
		&c.HighestEducation, &c.PassedOutYear, &c.Skill, &c.IsFresher, &c.TotalExperience,
		&c.RelevantExperience, &c.CurrentCompany, &c.PreviousCompanies, &c.IsCurrentlyWorking,
		&c.CareerGaps, &c.CurrentCTC, &c.ExpectedCTC, &c.NoticePeriod, &c.HasForm16, &c.HasPF,
		&c.Overlaps, &c.ReferredBy, &c.Status, &c.SubmittedAt, &c.IsViewed, &c.ResumeKey, &by)
	if err != nil {
		return nil, err
	}
	a.SubmittedBy = by.String
	return a, nil
}

// List returns every application, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Application, error) {
	query :=
		`SELECT ` + columns + ` FROM candidates
		 ORDER BY submitted_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Application, error) {
	query :=
		`SELECT ` + columns + ` FROM candidates
		 WHERE id = $1
		 `

	a, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// exec runs a single-row statement and maps zero affected rows to
// common.ErrorNotFound.
func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) MarkViewed(ctx context.Context, id string) error {
	return r.exec(ctx, `UPDATE candidates SET is_viewed = TRUE WHERE id = $1`, id)
}

func (r *PostgresRepository) SetResumeKey(ctx context.Context, id, key string) error {
	return r.exec(ctx, `UPDATE candidates SET resume_key = $2 WHERE id = $1`, id, key)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
}
