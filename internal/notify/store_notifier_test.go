package notify

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
)

type stubUserRepo struct {
	active  []model.User
	listErr error
}

func (s *stubUserRepo) Create(context.Context, *model.User) error { return nil }
func (s *stubUserRepo) GetByID(context.Context, string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) GetByUsername(context.Context, string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) GetActiveByCardID(context.Context, string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) Update(context.Context, *model.User) error { return nil }
func (s *stubUserRepo) List(context.Context, string, int, int) ([]model.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUserRepo) ListActiveByRoles(_ context.Context, roles []string) ([]model.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}
	var result []model.User
	for _, u := range s.active {
		if roleSet[u.Role] {
			result = append(result, u)
		}
	}
	return result, nil
}

type stubNotificationRepo struct {
	rows      []model.Notification
	createErr error
}

func (s *stubNotificationRepo) CreateBatch(_ context.Context, notifications []model.Notification) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.rows = append(s.rows, notifications...)
	return nil
}
func (s *stubNotificationRepo) ListByUser(context.Context, string, bool, int, int) ([]model.Notification, int64, error) {
	return nil, 0, nil
}
func (s *stubNotificationRepo) MarkRead(context.Context, string, string) error { return nil }
func (s *stubNotificationRepo) MarkAllRead(context.Context, string) error      { return nil }
func (s *stubNotificationRepo) CountUnread(context.Context, string) (int64, error) {
	return 0, nil
}

func TestStoreNotifier_ResolvesRolesAtDispatch(t *testing.T) {
	users := &stubUserRepo{active: []model.User{
		{UserID: "admin-1", Role: model.RoleAdmin},
		{UserID: "admin-2", Role: model.RoleAdmin},
		{UserID: "guru-1", Role: model.RoleGuru},
	}}
	store := &stubNotificationRepo{}
	n := NewStoreNotifier(users, store, zap.NewNop())

	n.Dispatch(context.Background(), []Event{{
		Type:     model.NotifRegistration,
		Title:    "Pengguna baru",
		Message:  "Budi terdaftar",
		Audience: Audience{Roles: []string{model.RoleAdmin}},
	}})

	if len(store.rows) != 2 {
		t.Fatalf("rows = %d, ingin 2 admin", len(store.rows))
	}
	for _, row := range store.rows {
		if row.Type != model.NotifRegistration || row.Title != "Pengguna baru" {
			t.Errorf("row = %+v", row)
		}
	}
}

func TestStoreNotifier_DedupesExplicitAndRoleRecipients(t *testing.T) {
	users := &stubUserRepo{active: []model.User{
		{UserID: "admin-1", Role: model.RoleAdmin},
	}}
	store := &stubNotificationRepo{}
	n := NewStoreNotifier(users, store, zap.NewNop())

	n.Dispatch(context.Background(), []Event{{
		Type:    model.NotifCardScan,
		Title:   "Scan",
		Message: "...",
		Audience: Audience{
			UserIDs: []string{"admin-1"},
			Roles:   []string{model.RoleAdmin},
		},
	}})

	if len(store.rows) != 1 {
		t.Errorf("rows = %d, ingin 1 setelah dedup", len(store.rows))
	}
}

func TestStoreNotifier_SwallowsFailures(t *testing.T) {
	users := &stubUserRepo{listErr: errors.New("db down")}
	store := &stubNotificationRepo{createErr: errors.New("db down")}
	n := NewStoreNotifier(users, store, zap.NewNop())

	// Neither a resolver failure nor a write failure may panic or surface.
	n.Dispatch(context.Background(), []Event{
		{Type: model.NotifAttendance, Audience: Audience{Roles: []string{model.RoleAdmin}}},
		{Type: model.NotifCardScan, Audience: Audience{UserIDs: []string{"guru-1"}}},
	})

	if len(store.rows) != 0 {
		t.Errorf("rows = %d, ingin 0", len(store.rows))
	}
}
