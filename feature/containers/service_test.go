package containers

import (
	"context"
	"strings"
	"testing"

	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupService(t *testing.T) *Service {
	defaults := inventory.Config{DefaultSlots: 0, DefaultCapacity: 100, DefaultRateLimit: 10}
	return NewService(setupRepository(t), defaults, zap.NewNop())
}

func ptr[V any](v V) *V {
	return &v
}

func TestService_Create(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
		check   func(t *testing.T, slots int, capacity, rate int64)
	}{
		{
			name: "Defaults",
			req:  CreateRequest{Name: "pantry"},
			check: func(t *testing.T, slots int, capacity, rate int64) {
				assert.Equal(t, 0, slots)
				assert.Equal(t, int64(100), capacity)
				assert.Equal(t, int64(10), rate)
			},
		},
		{
			name: "Overrides",
			req:  CreateRequest{Name: "shelf", Slots: ptr(9), Capacity: ptr(int64(64)), RateLimit: ptr(int64(0))},
			check: func(t *testing.T, slots int, capacity, rate int64) {
				assert.Equal(t, 9, slots)
				assert.Equal(t, int64(64), capacity)
				assert.Equal(t, int64(0), rate)
			},
		},
		{name: "Missing name", req: CreateRequest{}, wantErr: ErrInvalid},
		{name: "Negative slots", req: CreateRequest{Name: "x", Slots: ptr(-1)}, wantErr: ErrInvalid},
		{name: "Zero capacity", req: CreateRequest{Name: "x", Capacity: ptr(int64(0))}, wantErr: ErrInvalid},
		{name: "Duplicate", req: CreateRequest{Name: "pantry"}, wantErr: ErrExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := svc.Create(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, c.Slots, c.Capacity, c.RateLimit)
		})
	}
}

func TestService_Deposit(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, CreateRequest{Name: "pantry"})
	require.NoError(t, err)

	t.Run("Rate limited", func(t *testing.T) {
		res, err := svc.Deposit(ctx, "pantry", itemstack.Stack{Item: "flour", Count: 25})
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{Item: "flour", Count: 10}, res.Accepted)
		assert.Equal(t, itemstack.Stack{Item: "flour", Count: 15}, res.Remainder)

		c, err := svc.Show(ctx, "pantry")
		require.NoError(t, err)
		assert.Equal(t, int64(10), c.Total())
	})

	t.Run("Unknown container", func(t *testing.T) {
		_, err := svc.Deposit(ctx, "cellar", itemstack.Stack{Item: "flour", Count: 1})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Empty stack", func(t *testing.T) {
		_, err := svc.Deposit(ctx, "pantry", itemstack.Stack{Item: "flour"})
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

const fixtureYAML = `
containers:
  - name: pantry
    capacity: 200
    rate_limit: 50
    contents:
      - item: flour
        count: 30
      - item: sugar
        meta: brown
        count: 80
  - name: shelf
    slots: 2
    capacity: 16
    rate_limit: 64
    contents:
      - item: egg
        count: 40
`

func TestService_Import(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	defaults := inventory.Config{DefaultCapacity: 100, DefaultRateLimit: 10}
	svc := NewService(setupRepository(t), defaults, zap.New(core))
	ctx := context.Background()

	fixture, err := ReadFixture(strings.NewReader(fixtureYAML))
	require.NoError(t, err)
	require.Len(t, fixture.Containers, 2)

	created, err := svc.Import(ctx, fixture)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	pantry, err := svc.Show(ctx, "pantry")
	require.NoError(t, err)
	// 80 sugar arrives in rate limited deposits of 50
	assert.Equal(t, int64(110), pantry.Total())

	shelf, err := svc.Show(ctx, "shelf")
	require.NoError(t, err)
	assert.Equal(t, int64(32), shelf.Total())

	// only the eggs beyond the shelf's two slots are reported
	warnings := logs.FilterMessage("Fixture contents did not fit").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "shelf", warnings[0].ContextMap()["container"])
	assert.Equal(t, "egg x8", warnings[0].ContextMap()["remainder"])

	created, err = svc.Import(ctx, fixture)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestReadFixture_UnknownField(t *testing.T) {
	_, err := ReadFixture(strings.NewReader("containers:\n  - name: x\n    colour: red\n"))
	assert.ErrorContains(t, err, "failed to decode fixture")
}
