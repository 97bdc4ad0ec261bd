package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/harshmriduhash/Cold-Emailer/pkg/model"
)

// Store keeps a history of dispatched campaigns. Drafts are never stored.
type Store struct {
	DB *sql.DB
}

type SubmissionRow struct {
	ID          int64          `json:"id"`
	JobTitle    string         `json:"jobTitle"`
	CompanyName string         `json:"companyName"`
	Status      string         `json:"status"`
	LastError   sql.NullString `json:"-"`
	Recipients  int            `json:"recipients"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func New(db *sql.DB) *Store { return &Store{DB: db} }

func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) InsertSubmission(ctx context.Context, tx *sql.Tx, p model.Payload) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `
	INSERT INTO submissions (job_title,job_description,company_name,status)
	VALUES ($1,$2,$3,'pending') RETURNING id`, p.JobTitle, p.JobDescription, p.CompanyName).Scan(&id)
	return id, err
}

func (s *Store) InsertSubmissionRecipient(ctx context.Context, tx *sql.Tx, submissionID int64, position int, person model.Person) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO submission_recipients (submission_id, position, recipient_id, name, email)
		VALUES ($1,$2,$3,$4,$5)
	`, submissionID, position, person.ID, person.Name, person.Email)
	return err
}

// Begin records a dispatch attempt and its recipients in one transaction.
func (s *Store) Begin(ctx context.Context, p model.Payload) (int64, error) {
	var id int64
	err := s.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.InsertSubmission(ctx, tx, p)
		if err != nil {
			return err
		}
		for i, person := range p.People {
			if err := s.InsertSubmissionRecipient(ctx, tx, id, i, person); err != nil {
				return err
			}
		}
		return nil
	})
	return id, err
}

// Finish stores the outcome of the attempt started by Begin.
func (s *Store) Finish(ctx context.Context, id int64, dispatchErr error) error {
	if dispatchErr == nil {
		return s.MarkSubmissionSent(ctx, id)
	}
	return s.MarkSubmissionFailed(ctx, id, dispatchErr.Error())
}

func (s *Store) MarkSubmissionSent(ctx context.Context, id int64) error {
	_, err := s.DB.ExecContext(ctx, `
		UPDATE submissions
		   SET status='sent', finished_at=NOW(), last_error=NULL
		 WHERE id=$1
	`, id)
	return err
}

func (s *Store) MarkSubmissionFailed(ctx context.Context, id int64, lastErr string) error {
	_, err := s.DB.ExecContext(ctx, `
		UPDATE submissions
		   SET status='failed', finished_at=NOW(), last_error=$1
		 WHERE id=$2
	`, lastErr, id)
	return err
}

func (s *Store) ListSubmissions(ctx context.Context, limit, offset int) ([]SubmissionRow, error) {
	if limit <= 0 || limit > 1000 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT s.id, s.job_title, s.company_name, s.status, s.last_error, s.created_at,
		       (SELECT COUNT(*) FROM submission_recipients r WHERE r.submission_id = s.id) AS recipients
		FROM submissions s
		ORDER BY s.id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SubmissionRow{}
	for rows.Next() {
		var r SubmissionRow
		if err := rows.Scan(&r.ID, &r.JobTitle, &r.CompanyName, &r.Status, &r.LastError, &r.CreatedAt, &r.Recipients); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
