package secrets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_Values(t *testing.T) {
	ctx := context.Background()
	p := NewStaticProvider("admin", "pa55word", "signing-key", 30*time.Minute, "users-table")

	username, err := p.AdminUsername(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)

	password, err := p.AdminPassword(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pa55word", password)

	secret, err := p.JWTSecret(ctx)
	require.NoError(t, err)
	assert.Equal(t, "signing-key", secret)

	lifetime, err := p.JWTLifetime(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, lifetime)

	table, err := p.TableName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "users-table", table)
}

func TestStaticProvider_SetAdminPassword(t *testing.T) {
	ctx := context.Background()
	p := NewStaticProvider("admin", "old", "signing-key", time.Minute, "users-table")

	require.NoError(t, p.SetAdminPassword(ctx, "new"))

	password, err := p.AdminPassword(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", password)
}
