package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/pkg/entity"
)

const selectGroup = `SELECT g.id, g.name, g.description, g.category, g.icon, g.created_by, g.created_by_name, g.created_at,
COALESCE(array_agg(m.user_id ORDER BY m.joined_at) FILTER (WHERE m.user_id IS NOT NULL), '{}')
FROM groups g LEFT JOIN group_members m ON m.group_id = g.id`

type GroupsRepository struct {
	conn PgConnection
}

func NewGroupsRepoWithConn(conn PgConnection) *GroupsRepository {
	mustPing(conn, "groupsRepo")
	return &GroupsRepository{
		conn: conn,
	}
}

func (gr *GroupsRepository) Create(ctx context.Context, group *entity.Group) (uuid.UUID, error) {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("beginning group creation error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO groups (name, description, category, icon, created_by, created_by_name) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		group.Name,
		group.Description,
		group.Category,
		group.Icon,
		group.CreatedBy,
		group.CreatedByName,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating group error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `INSERT INTO group_members (group_id, user_id) VALUES ($1, $2);`, id, group.CreatedBy)
	if err != nil {
		return uuid.UUID{}, errors.New("adding group creator error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing group creation error: " + err.Error())
	}
	return id, nil
}

func (gr *GroupsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	row := gr.conn.QueryRow(ctx, selectGroup+` WHERE g.id = $1 GROUP BY g.id;`, id)
	group, err := scanGroup(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGroupNotFound
		}
		return nil, errors.New("getting group by id error: " + err.Error())
	}
	return group, nil
}

func (gr *GroupsRepository) List(ctx context.Context, uid uuid.UUID, category, search string) ([]*entity.Group, error) {
	rows, err := gr.conn.Query(ctx,
		selectGroup+`
WHERE NOT EXISTS (SELECT 1 FROM hidden_groups h WHERE h.group_id = g.id AND h.user_id = $1)
AND ($2 = '' OR g.category = $2)
AND ($3 = '' OR g.name ILIKE '%' || $3 || '%' OR g.description ILIKE '%' || $3 || '%')
GROUP BY g.id ORDER BY g.created_at DESC;`,
		uid,
		category,
		search,
	)
	if err != nil {
		return nil, errors.New("listing groups error: " + err.Error())
	}
	defer rows.Close()
	groups := make([]*entity.Group, 0)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, errors.New("group row parsing error: " + err.Error())
		}
		groups = append(groups, g)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected group rows error: " + err.Error())
	}
	return groups, nil
}

func scanGroup(row pgx.Row) (*entity.Group, error) {
	var g entity.Group
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Category, &g.Icon, &g.CreatedBy, &g.CreatedByName, &g.CreatedAt, &g.Members)
	if err != nil {
		return nil, err
	}
	g.MemberCount = len(g.Members)
	return &g, nil
}

func (gr *GroupsRepository) AddMember(ctx context.Context, groupID, uid uuid.UUID) error {
	_, err := gr.conn.Exec(ctx, `INSERT INTO group_members (group_id, user_id) VALUES ($1, $2);`, groupID, uid)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAlreadyMember
			// FK violation
			case "23503":
				return errorvalues.ErrGroupNotFound
			}
		}
		return errors.New("adding group member error: " + err.Error())
	}
	return nil
}

func (gr *GroupsRepository) RemoveMember(ctx context.Context, groupID, uid uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2;`, groupID, uid)
	if err != nil {
		return errors.New("removing group member error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotGroupMember
	}
	return nil
}

func (gr *GroupsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning group deletion error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	if _, err = tx.Exec(ctx, `DELETE FROM group_messages WHERE group_id = $1;`, id); err != nil {
		return errors.New("deleting group messages error: " + err.Error())
	}
	if _, err = tx.Exec(ctx, `DELETE FROM hidden_groups WHERE group_id = $1;`, id); err != nil {
		return errors.New("deleting hidden group marks error: " + err.Error())
	}
	if _, err = tx.Exec(ctx, `DELETE FROM group_members WHERE group_id = $1;`, id); err != nil {
		return errors.New("deleting group members error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `DELETE FROM groups WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting group error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGroupNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing group deletion error: " + err.Error())
	}
	return nil
}
