package store

import (
	"context"

	"nexus-backend-go/internal/models"
)

const insertAdmin = `
INSERT INTO admins (id, email, name, password_hash, created_at, updated_at)
VALUES (:id, :email, :name, :password_hash, :created_at, :updated_at)`

func (s *Store) prepareAdmin(admin *models.Admin) {
	now := s.timestamp()
	if admin.ID == "" {
		admin.ID = newID()
	}
	admin.CreatedAt = now
	admin.UpdatedAt = now
}

// CreateAdmin returns ErrConflict when the email is taken.
func (s *Store) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	s.prepareAdmin(admin)
	return s.insert(ctx, insertAdmin, admin)
}

// EnsureAdmin inserts the admin unless the email already exists. It never
// overwrites an existing row.
func (s *Store) EnsureAdmin(ctx context.Context, admin *models.Admin) (bool, error) {
	s.prepareAdmin(admin)
	res, err := s.db.NamedExecContext(ctx, insertAdmin+` ON CONFLICT (email) DO NOTHING`, admin)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return getRow[models.Admin](ctx, s, `SELECT * FROM admins WHERE email = ?`, email)
}

func (s *Store) AdminByID(ctx context.Context, id string) (*models.Admin, error) {
	return getRow[models.Admin](ctx, s, `SELECT * FROM admins WHERE id = ?`, id)
}

func (s *Store) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	return listRows[models.Admin](ctx, s, `SELECT * FROM admins ORDER BY created_at DESC`)
}
