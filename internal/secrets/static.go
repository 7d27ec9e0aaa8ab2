package secrets

import (
	"context"
	"sync"
	"time"
)

// StaticProvider is a Provider holding fixed values, populated from
// configuration. It serves tests and local development runs where no
// Parameter Store is available. SetAdminPassword mutates the in-memory copy
// only.
type StaticProvider struct {
	mu sync.Mutex

	adminUsername string
	adminPassword string
	jwtSecret     string
	jwtLifetime   time.Duration
	tableName     string
}

// NewStaticProvider constructs a StaticProvider with the given fixed values.
func NewStaticProvider(adminUsername, adminPassword, jwtSecret string, jwtLifetime time.Duration, tableName string) *StaticProvider {
	return &StaticProvider{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
		jwtLifetime:   jwtLifetime,
		tableName:     tableName,
	}
}

func (p *StaticProvider) AdminUsername(context.Context) (string, error) {
	return p.adminUsername, nil
}

func (p *StaticProvider) AdminPassword(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.adminPassword, nil
}

func (p *StaticProvider) JWTSecret(context.Context) (string, error) {
	return p.jwtSecret, nil
}

func (p *StaticProvider) JWTLifetime(context.Context) (time.Duration, error) {
	return p.jwtLifetime, nil
}

func (p *StaticProvider) TableName(context.Context) (string, error) {
	return p.tableName, nil
}

func (p *StaticProvider) SetAdminPassword(_ context.Context, password string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.adminPassword = password
	return nil
}
