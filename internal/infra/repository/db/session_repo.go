package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
)

type SessionRepo struct {
	db *DbDao
}

func NewSessionRepo(db *DbDao) *SessionRepo {
	return &SessionRepo{db: db}
}

func (s *SessionRepo) CreateSession(ctx context.Context, session *model.UserSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *SessionRepo) GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*model.UserSession, error) {
	var session model.UserSession
	err := s.db.WithContext(ctx).First(&session, "refresh_token = ?", refreshToken).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionRepo) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&model.UserSession{}).Error
}

// ForceClearAllSessions 清空所有會話  for server意外關閉情況
func (s *SessionRepo) ForceClearAllSessions(ctx context.Context) error {
	return s.db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(&model.UserSession{}).Error
}
