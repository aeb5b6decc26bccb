package repo

import (
	"testing"

	"github.com/GlebRadaev/lwcoin/internal/pg"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB, pg.NewMockTXManager(ctrl))

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.SubscriptionRepo)
	assert.NotNil(t, repo.PurchaseRepo)
	assert.NotNil(t, repo.GoalRepo)
	assert.NotNil(t, repo.ActivityRepo)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
