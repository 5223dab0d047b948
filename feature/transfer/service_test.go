package transfer

import (
	"context"
	"errors"
	"testing"

	"ingredient-manager/core/database"
	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/inventory"
	"ingredient-manager/core/journal"
	"ingredient-manager/core/objectstore/mocks"
	"ingredient-manager/feature/containers"
	"ingredient-manager/feature/containers/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	containers *containers.Service
	transfers  *Service
	client     *mocks.Client
}

// setup creates "pantry" (30 flour, 12 brown sugar), an empty "bin" (both
// slotless, capacity 100, rate 10) and an empty three-slot "shelf".
func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	repo := containers.NewRepository(db)
	require.NoError(t, repo.Migrate())

	defaults := inventory.Config{DefaultCapacity: 100, DefaultRateLimit: 10}
	svc := containers.NewService(repo, defaults, zap.NewNop())

	_, err = svc.Create(ctx, containers.CreateRequest{Name: "pantry", RateLimit: ptr(int64(100))})
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, "pantry", itemstack.Stack{Item: "flour", Count: 30})
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, "pantry", itemstack.Stack{Item: "sugar", Meta: "brown", Count: 12})
	require.NoError(t, err)

	_, err = svc.Create(ctx, containers.CreateRequest{Name: "bin"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, containers.CreateRequest{Name: "shelf", Slots: ptr(3), Capacity: ptr(int64(16)), RateLimit: ptr(int64(64))})
	require.NoError(t, err)

	client := new(mocks.Client)
	j := journal.New(client, "ingredients", journal.Config{Enabled: true})

	return &fixture{
		db:         db,
		containers: svc,
		transfers:  NewService(repo, j, zap.NewNop()),
		client:     client,
	}
}

func ptr[V any](v V) *V {
	return &v
}

func (f *fixture) expectJournal() {
	f.client.On("PutObject", mock.Anything, "ingredients", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
}

func (f *fixture) total(t *testing.T, name string) int64 {
	t.Helper()
	c, err := f.containers.Show(context.Background(), name)
	require.NoError(t, err)
	return c.Total()
}

func TestExecute_Commit(t *testing.T) {
	f := setup(t)
	f.expectJournal()

	res, err := f.transfers.Execute(context.Background(), Request{Source: "pantry", Destination: "bin", Count: 25})
	require.NoError(t, err)

	// bin accepts at most its rate limit in one insert
	assert.Equal(t, itemstack.Stack{Item: "flour", Count: 10}, res.Moved)
	assert.False(t, res.Simulated)
	assert.NotEmpty(t, res.JournalID)
	assert.Equal(t, int64(32), f.total(t, "pantry"))
	assert.Equal(t, int64(10), f.total(t, "bin"))
	f.client.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestExecute_Simulate(t *testing.T) {
	f := setup(t)

	res, err := f.transfers.Execute(context.Background(), Request{Source: "pantry", Destination: "bin", Mode: ModeIterative, Count: 25, Simulate: true})
	require.NoError(t, err)

	assert.Equal(t, int64(10), res.Moved.Count)
	assert.True(t, res.Simulated)
	assert.Equal(t, int64(42), f.total(t, "pantry"))
	assert.Equal(t, int64(0), f.total(t, "bin"))
	f.client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_Modes(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantMoved itemstack.Stack
		wantBin   int64
		wantShelf int64
	}{
		{
			name:      "Iterative moves past the rate limit",
			req:       Request{Mode: ModeIterative, Count: 25},
			wantMoved: itemstack.Stack{Item: "flour", Count: 25},
			wantBin:   25,
		},
		{
			name:      "Iterative matching",
			req:       Request{Mode: ModeIterativeMatching, Item: "sugar", Meta: "brown", Count: 12},
			wantMoved: itemstack.Stack{Item: "sugar", Meta: "brown", Count: 12},
			wantBin:   12,
		},
		{
			name:      "Single clipped",
			req:       Request{Mode: ModeSingle, Item: "flour", Count: 15},
			wantMoved: itemstack.Stack{Item: "flour", Count: 10},
			wantBin:   10,
		},
		{
			name:      "Single exact refuses clipping",
			req:       Request{Mode: ModeSingle, Item: "flour", Count: 15, Exact: true},
			wantMoved: itemstack.Stack{},
		},
		{
			name:      "Matching wrong variant",
			req:       Request{Mode: ModeMatching, Item: "sugar", Count: 5},
			wantMoved: itemstack.Stack{},
		},
		{
			name:      "Predicate",
			req:       Request{Mode: ModePredicate, Count: 4, Filter: Filter{Meta: "brown"}},
			wantMoved: itemstack.Stack{Item: "sugar", Meta: "brown", Count: 4},
			wantBin:   4,
		},
		{
			name:      "Slotted prototype into fixed slot",
			req:       Request{Destination: "shelf", DestinationSlot: ptr(2), Mode: ModeMatching, Item: "flour", Count: 20},
			wantMoved: itemstack.Stack{Item: "flour", Count: 16},
			wantShelf: 16,
		},
		{
			name:      "Slotted predicate",
			req:       Request{Destination: "shelf", DestinationSlot: ptr(0), Mode: ModePredicate, Count: 5, Filter: Filter{Items: []string{"sugar"}}},
			wantMoved: itemstack.Stack{Item: "sugar", Meta: "brown", Count: 5},
			wantShelf: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			f.expectJournal()

			req := tt.req
			req.Source = "pantry"
			if req.Destination == "" {
				req.Destination = "bin"
			}

			res, err := f.transfers.Execute(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMoved, res.Moved)
			assert.Equal(t, 42-tt.wantMoved.Count, f.total(t, "pantry"))
			assert.Equal(t, tt.wantBin, f.total(t, "bin"))
			assert.Equal(t, tt.wantShelf, f.total(t, "shelf"))

			if tt.wantMoved.Count == 0 {
				f.client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestExecute_SlotToSlot(t *testing.T) {
	f := setup(t)
	f.expectJournal()
	ctx := context.Background()

	_, err := f.transfers.Execute(ctx, Request{Source: "pantry", Destination: "shelf", DestinationSlot: ptr(1), Mode: ModeMatching, Item: "flour", Count: 12})
	require.NoError(t, err)

	res, err := f.transfers.Execute(ctx, Request{Source: "shelf", SourceSlot: ptr(1), Destination: "bin", Mode: ModeSingle, Item: "flour", Count: 8})
	require.NoError(t, err)
	assert.Equal(t, itemstack.Stack{Item: "flour", Count: 8}, res.Moved)

	shelf, err := f.containers.Show(ctx, "shelf")
	require.NoError(t, err)
	require.Len(t, shelf.Contents, 1)
	assert.Equal(t, 1, shelf.Contents[0].Position)
	assert.Equal(t, int64(4), shelf.Contents[0].Count)
}

func TestExecute_Errors(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.transfers.Execute(ctx, Request{Source: "pantry", Destination: "cellar", Count: 1})
	assert.ErrorIs(t, err, containers.ErrNotFound)

	_, err = f.transfers.Execute(ctx, Request{Source: "pantry", Destination: "pantry", Count: 1})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Equal(t, int64(42), f.total(t, "pantry"))
}

func TestExecute_CorruptContentsAreKept(t *testing.T) {
	tests := []struct {
		name string
		rows []models.ContainerSlot
	}{
		{"Position outside the shelf", []models.ContainerSlot{{Position: 7, Item: "egg", Count: 9}}},
		{"Position stored twice", []models.ContainerSlot{
			{Position: 1, Item: "egg", Count: 9},
			{Position: 1, Item: "milk", Count: 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			f.expectJournal()
			ctx := context.Background()

			var shelf models.Container
			require.NoError(t, f.db.Where("name = ?", "shelf").First(&shelf).Error)
			for i := range tt.rows {
				tt.rows[i].ContainerID = shelf.ID
			}
			require.NoError(t, f.db.Create(&tt.rows).Error)
			before := f.total(t, "shelf")

			_, err := f.transfers.Execute(ctx, Request{Source: "pantry", Destination: "shelf", Count: 5})
			assert.ErrorIs(t, err, containers.ErrCorrupt)

			_, err = f.containers.Deposit(ctx, "shelf", itemstack.Stack{Item: "flour", Count: 1})
			assert.ErrorIs(t, err, containers.ErrCorrupt)

			assert.Equal(t, before, f.total(t, "shelf"))
			assert.Equal(t, int64(42), f.total(t, "pantry"))
			f.client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_JournalFailureKeepsCommit(t *testing.T) {
	f := setup(t)
	f.client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))

	res, err := f.transfers.Execute(context.Background(), Request{Source: "pantry", Destination: "bin", Count: 5})
	require.NoError(t, err)
	assert.Empty(t, res.JournalID)
	assert.Equal(t, int64(5), f.total(t, "bin"))
}

func TestExecute_WithoutJournal(t *testing.T) {
	f := setup(t)
	svc := NewService(f.transfers.repo, nil, zap.NewNop())

	res, err := svc.Execute(context.Background(), Request{Source: "pantry", Destination: "bin", Count: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Moved.Count)
	assert.Empty(t, res.JournalID)

	records, err := svc.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
