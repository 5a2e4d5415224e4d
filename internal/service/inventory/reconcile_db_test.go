package inventory_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/heartmarshall/returns-backend/internal/adapter/postgres"
	"github.com/heartmarshall/returns-backend/internal/adapter/postgres/audit"
	inventoryrepo "github.com/heartmarshall/returns-backend/internal/adapter/postgres/inventory"
	"github.com/heartmarshall/returns-backend/internal/adapter/postgres/returns"
	"github.com/heartmarshall/returns-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/service/inventory"
)

func TestReceive_LinksEarliestDueReturn(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	returnRepo := returns.New(pool)
	auditRepo := audit.New(pool)
	txm := postgres.NewTxManager(pool)
	svc := inventory.NewService(log,
		inventoryrepo.New(pool),
		inventory.NewReconciler(log, returnRepo, auditRepo, txm),
		auditRepo,
		txm,
	)

	product := testhelper.SeedProduct(t, pool, "Reconcile Humidifier", "")
	clientID := testhelper.SeedClient(t, pool)
	later := testhelper.SeedReturn(t, pool, &product.ID,
		testhelper.WithReturnByDate(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
	earlier := testhelper.SeedReturn(t, pool, &product.ID,
		testhelper.WithReturnByDate(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))

	first, err := svc.Receive(ctx, inventory.ReceiveInput{ProductID: product.ID, ClientID: &clientID})
	require.NoError(t, err)
	require.NotNil(t, first.MatchedReturn)
	assert.Equal(t, earlier, first.MatchedReturn.ID)

	stored, err := returnRepo.GetByID(ctx, earlier)
	require.NoError(t, err)
	assert.Equal(t, domain.ReturnStatusMatched, stored.Status)
	require.NotNil(t, stored.InventoryItemID)
	assert.Equal(t, first.Item.ID, *stored.InventoryItemID)
	require.NotNil(t, stored.ClientID)
	assert.Equal(t, clientID, *stored.ClientID)

	records, err := auditRepo.GetByEntity(ctx, domain.EntityTypeReturn, earlier, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.AuditActionMatchInventory, records[0].Action)

	second, err := svc.Receive(ctx, inventory.ReceiveInput{ProductID: product.ID})
	require.NoError(t, err)
	require.NotNil(t, second.MatchedReturn)
	assert.Equal(t, later, second.MatchedReturn.ID)

	third, err := svc.Receive(ctx, inventory.ReceiveInput{ProductID: product.ID})
	require.NoError(t, err)
	assert.Nil(t, third.MatchedReturn)
}

func TestReceive_UnknownProductStoresNothing(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	returnRepo := returns.New(pool)
	auditRepo := audit.New(pool)
	txm := postgres.NewTxManager(pool)
	svc := inventory.NewService(log,
		inventoryrepo.New(pool),
		inventory.NewReconciler(log, returnRepo, auditRepo, txm),
		auditRepo,
		txm,
	)

	_, err := svc.Receive(context.Background(), inventory.ReceiveInput{ProductID: 1 << 40})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
