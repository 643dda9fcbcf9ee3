package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/santaan/crm-api/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

const contactColumns = `
	id, name, email, phone, role, status, lead_score,
	utm_source, utm_medium, utm_campaign, utm_term, utm_content, landing_path,
	newsletter_subscribed, seminar_registered, at_home_test,
	seminar_score, seminar_signal, seminar_question,
	message, submitted_at, created_at`

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		nullString(c.Name),
		c.Email,
		nullString(c.Phone),
		c.Role,
		c.Status,
		c.LeadScore,
		nullString(c.UTM.Source),
		nullString(c.UTM.Medium),
		nullString(c.UTM.Campaign),
		nullString(c.UTM.Term),
		nullString(c.UTM.Content),
		nullString(c.UTM.LandingPath),
		c.NewsletterSubscribed,
		c.SeminarRegistered,
		c.AtHomeTest,
		c.SeminarScore,
		nullString(c.SeminarSignal),
		nullString(c.SeminarQuestion),
		nullString(c.Message),
		c.SubmittedAt,
		c.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}

		log.Printf("contact insert failed: %v", err)
		return err
	}

	return nil
}

// FindByEmail matches against the normalized (lowercased) email. Returns
// entity.ErrContactNotFound when no row matches.
func (r *ContactRepository) FindByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE email = lower($1) LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, email)
	contact, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) CountByRole(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT role, COUNT(*) FROM contacts GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var role string
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		counts[role] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*entity.Contact, error) {
	var c entity.Contact
	var name, phone, utmSource, utmMedium, utmCampaign, utmTerm, utmContent sql.NullString
	var landingPath, seminarSignal, seminarQuestion, message sql.NullString
	var leadScore, seminarScore sql.NullInt64

	err := row.Scan(
		&c.ID, &name, &c.Email, &phone, &c.Role, &c.Status, &leadScore,
		&utmSource, &utmMedium, &utmCampaign, &utmTerm, &utmContent, &landingPath,
		&c.NewsletterSubscribed, &c.SeminarRegistered, &c.AtHomeTest,
		&seminarScore, &seminarSignal, &seminarQuestion,
		&message, &c.SubmittedAt, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Name = name.String
	c.Phone = phone.String
	c.UTM = entity.UTMParams{
		Source:      utmSource.String,
		Medium:      utmMedium.String,
		Campaign:    utmCampaign.String,
		Term:        utmTerm.String,
		Content:     utmContent.String,
		LandingPath: landingPath.String,
	}
	c.SeminarSignal = seminarSignal.String
	c.SeminarQuestion = seminarQuestion.String
	c.Message = message.String
	if leadScore.Valid {
		v := int(leadScore.Int64)
		c.LeadScore = &v
	}
	if seminarScore.Valid {
		v := int(seminarScore.Int64)
		c.SeminarScore = &v
	}

	return &c, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
