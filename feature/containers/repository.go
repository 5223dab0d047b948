package containers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ingredient-manager/core/database"
	"ingredient-manager/core/ingredient"
	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/inventory"
	"ingredient-manager/feature/containers/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when no container has the requested name.
	ErrNotFound = errors.New("container not found")
	// ErrExists is returned when creating a container whose name is taken.
	ErrExists = errors.New("container already exists")
	// ErrSchema is returned when the database lacks required columns.
	ErrSchema = errors.New("container schema mismatch")
	// ErrCorrupt is returned when stored contents cannot be rebuilt without
	// dropping stock: a slot outside the layout, a slot stored twice, a
	// negative count or a counted row without an item.
	ErrCorrupt = errors.New("container contents corrupt")
)

// Inventory is the storage view of a persisted container.
type Inventory = ingredient.Storage[itemstack.Stack, itemstack.Condition]

// Repository persists containers and their contents.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new container repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the container tables.
func (r *Repository) Migrate() error {
	return database.Migrate(r.db, &models.Container{}, &models.ContainerSlot{})
}

// CheckSchema verifies that both container tables carry the expected columns.
func (r *Repository) CheckSchema(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	for _, model := range models.Tables {
		var want []string
		for _, col := range models.Columns(model) {
			want = append(want, col.Name)
		}

		table := model.TableName()
		missing, err := database.MissingColumns(db, table, want)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", table, err)
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s is missing %v", ErrSchema, table, missing)
		}
	}
	return nil
}

// List returns every container with its contents, ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Container, error) {
	var list []models.Container
	err := r.db.WithContext(ctx).
		Preload("Contents", orderByPosition).
		Order("name").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	return list, nil
}

// Get returns the named container with its contents.
func (r *Repository) Get(ctx context.Context, name string) (*models.Container, error) {
	return find(r.db.WithContext(ctx), name)
}

// Create inserts a new, empty container.
func (r *Repository) Create(ctx context.Context, c *models.Container) error {
	db := r.db.WithContext(ctx)
	var count int64
	if err := db.Model(&models.Container{}).Where("name = ?", c.Name).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check container %s: %w", c.Name, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrExists, c.Name)
	}
	if err := db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create container %s: %w", c.Name, err)
	}
	return nil
}

// Transaction runs fn inside a database transaction. Returning an error from fn
// rolls the transaction back.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// Load reads the named container within tx and rebuilds its storage. The
// container row stays locked until tx ends; SQLite has no row locks and
// serializes writers on the database instead.
func (r *Repository) Load(tx *gorm.DB, name string) (*models.Container, Inventory, error) {
	c, err := find(tx.Clauses(clause.Locking{Strength: "UPDATE"}), name)
	if err != nil {
		return nil, nil, err
	}
	inv, err := Build(c)
	if err != nil {
		return nil, nil, err
	}
	return c, inv, nil
}

// Save replaces the persisted contents of c with the current state of inv.
func (r *Repository) Save(tx *gorm.DB, c *models.Container, inv Inventory) error {
	if err := tx.Where("container_id = ?", c.ID).Delete(&models.ContainerSlot{}).Error; err != nil {
		return fmt.Errorf("failed to clear contents of %s: %w", c.Name, err)
	}

	rows := Snapshot(c.ID, inv)
	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save contents of %s: %w", c.Name, err)
		}
	}
	c.Contents = rows

	if err := tx.Model(c).Update("updated_at", time.Now()).Error; err != nil {
		return fmt.Errorf("failed to touch %s: %w", c.Name, err)
	}
	return nil
}

// Build creates the storage for a container: slots when it is slotted, a
// merging collection otherwise. Rows that would be lost on the next Save are
// rejected with ErrCorrupt.
func Build(c *models.Container) (Inventory, error) {
	if c.Slotted() {
		slots := inventory.NewSlots(c.Name, itemstack.Component, c.Slots, c.Capacity, c.RateLimit)
		seen := make(map[int]bool, len(c.Contents))
		for _, row := range c.Contents {
			if err := checkRow(c, row); err != nil {
				return nil, err
			}
			if row.Position < 0 || row.Position >= c.Slots {
				return nil, fmt.Errorf("%w: %s position %d outside %d slots", ErrCorrupt, c.Name, row.Position, c.Slots)
			}
			if seen[row.Position] {
				return nil, fmt.Errorf("%w: %s position %d stored twice", ErrCorrupt, c.Name, row.Position)
			}
			seen[row.Position] = true
			slots.SetSlot(row.Position, row.Stack())
		}
		return slots, nil
	}

	collection := inventory.NewCollection(c.Name, itemstack.Component, c.Capacity, c.RateLimit)
	for _, row := range c.Contents {
		if err := checkRow(c, row); err != nil {
			return nil, err
		}
		collection.Put(row.Stack())
	}
	return collection, nil
}

func checkRow(c *models.Container, row models.ContainerSlot) error {
	switch {
	case row.Count < 0:
		return fmt.Errorf("%w: %s position %d has count %d", ErrCorrupt, c.Name, row.Position, row.Count)
	case row.Count > 0 && row.Item == "":
		return fmt.Errorf("%w: %s position %d has no item", ErrCorrupt, c.Name, row.Position)
	}
	return nil
}

// Snapshot converts the state of inv into rows owned by containerID.
func Snapshot(containerID uint, inv Inventory) []models.ContainerSlot {
	m := inv.Component().Matcher
	var rows []models.ContainerSlot
	add := func(position int, s itemstack.Stack) {
		if m.IsEmpty(s) {
			return
		}
		rows = append(rows, models.ContainerSlot{
			ContainerID: containerID,
			Position:    position,
			Item:        s.Item,
			Meta:        s.Meta,
			Count:       s.Count,
		})
	}

	if slotted, ok := ingredient.AsSlotted(inv); ok {
		for i := range slotted.Slots() {
			add(i, slotted.SlotContents(i))
		}
		return rows
	}

	position := 0
	for s := range inv.All() {
		add(position, s)
		position++
	}
	return rows
}

func find(db *gorm.DB, name string) (*models.Container, error) {
	var c models.Container
	err := db.Preload("Contents", orderByPosition).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load container %s: %w", name, err)
	}
	return &c, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
