package store

import (
	"context"
	"errors"

	"librarydb/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberPG struct {
	db *pgxpool.Pool
}

func NewMemberPG(db *pgxpool.Pool) *MemberPG {
	return &MemberPG{db: db}
}

func (r *MemberPG) Create(ctx context.Context, member *entity.Member) error {
	const query = `
	INSERT INTO members (member_name, email)
	VALUES ($1, $2)
	RETURNING member_id, join_date
	`
	err := r.db.QueryRow(ctx, query,
		member.MemberName,
		member.Email,
	).Scan(&member.MemberID, &member.JoinDate)
	return mapPgError(err)
}

func (r *MemberPG) GetByID(ctx context.Context, memberID int64) (entity.Member, error) {
	const query = `
	SELECT member_id, member_name, email, join_date
	FROM members
	WHERE member_id = $1
	`
	var m entity.Member
	err := r.db.QueryRow(ctx, query, memberID).Scan(
		&m.MemberID,
		&m.MemberName,
		&m.Email,
		&m.JoinDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Member{}, ErrNotFound
		}
		return entity.Member{}, err
	}
	return m, nil
}

func (r *MemberPG) List(ctx context.Context) ([]entity.Member, error) {
	const query = `
	SELECT member_id, member_name, email, join_date
	FROM members
	ORDER BY member_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Member
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(&m.MemberID, &m.MemberName, &m.Email, &m.JoinDate); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
