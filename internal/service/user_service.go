package service

import (
	"context"
	"log"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// UsageStore es el log de uso por usuario.
type UsageStore interface {
	LogUsage(ctx context.Context, username string) error
	ListUsernames(ctx context.Context) ([]string, error)
	UsageMetrics(ctx context.Context) (numUsers, totalUses int, err error)
}

// UserService registra qué usuarios usan el sistema.
type UserService struct {
	store UsageStore
}

func NewUserService(store UsageStore) *UserService {
	return &UserService{store: store}
}

// LogUsage registra el uso en background. Nunca bloquea ni falla el request
// que lo disparó.
func (s *UserService) LogUsage(username string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.store.LogUsage(ctx, username); err != nil {
			log.Printf("[users] no pude loggear el uso de %s: %v", username, err)
		}
	}()
}

// ListUsers devuelve todos los usernames que pasaron por el sistema.
func (s *UserService) ListUsers(ctx context.Context) ([]string, error) {
	return s.store.ListUsernames(ctx)
}

// ApplicationMetrics agrega el log de uso: usuarios distintos y usos
// totales acumulados.
func (s *UserService) ApplicationMetrics(ctx context.Context) (*models.ApplicationMetrics, error) {
	numUsers, totalUses, err := s.store.UsageMetrics(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ApplicationMetrics{NumUsers: numUsers, TotalUses: totalUses}, nil
}
