package models

import (
	"reflect"
	"strings"
	"time"

	"ingredient-manager/core/ingredient/itemstack"
)

// Container represents the 'containers' table. A container with zero slots is
// slotless; Capacity is then its total capacity, otherwise the per-slot one.
type Container struct {
	ID        uint            `gorm:"column:id;primaryKey" json:"-"`
	Name      string          `gorm:"column:name;type:varchar(64);uniqueIndex;not null" json:"name"`
	Slots     int             `gorm:"column:slots;not null;default:0" json:"slots"`
	Capacity  int64           `gorm:"column:capacity;not null" json:"capacity"`
	RateLimit int64           `gorm:"column:rate_limit;not null" json:"rate_limit"`
	CreatedAt time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at" json:"updated_at"`
	Contents  []ContainerSlot `gorm:"foreignKey:ContainerID;constraint:OnDelete:CASCADE" json:"contents"`
}

// TableName overrides the table name.
func (Container) TableName() string {
	return "containers"
}

// Slotted reports whether the container is addressed by slot.
func (c Container) Slotted() bool {
	return c.Slots > 0
}

// Total returns the summed count of the container's contents.
func (c Container) Total() int64 {
	var total int64
	for _, row := range c.Contents {
		total += row.Count
	}
	return total
}

// ContainerSlot represents the 'container_slots' table. For slotted containers
// Position is the slot index; for slotless ones it is the entry order.
type ContainerSlot struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"-"`
	ContainerID uint   `gorm:"column:container_id;index;not null" json:"-"`
	Position    int    `gorm:"column:position;not null" json:"position"`
	Item        string `gorm:"column:item;type:varchar(128);not null" json:"item"`
	Meta        string `gorm:"column:meta;type:varchar(128)" json:"meta,omitempty"`
	Count       int64  `gorm:"column:count;not null" json:"count"`
}

// TableName overrides the table name.
func (ContainerSlot) TableName() string {
	return "container_slots"
}

// Stack converts the row to an item stack.
func (s ContainerSlot) Stack() itemstack.Stack {
	return itemstack.Stack{Item: s.Item, Meta: s.Meta, Count: s.Count}
}

// Tables lists the persisted models.
var Tables = []Tabler{Container{}, ContainerSlot{}}

// Tabler is a model with an explicit table name.
type Tabler interface {
	TableName() string
}

// Column is a column declared by a model's gorm tags.
type Column struct {
	Name string
	// Type is the declared column type, empty when gorm picks it.
	Type string
}

// Columns returns the columns declared by model.
func Columns(model Tabler) []Column {
	t := reflect.TypeOf(model)
	var columns []Column
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		name := tagValue(tag, "column")
		if name == "" {
			continue
		}
		columns = append(columns, Column{Name: name, Type: tagValue(tag, "type")})
	}
	return columns
}

func tagValue(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if value, ok := strings.CutPrefix(part, key+":"); ok {
			return value
		}
	}
	return ""
}

// Fixture is the YAML document accepted by the seed command.
type Fixture struct {
	Containers []FixtureContainer `yaml:"containers"`
}

// FixtureContainer declares one container and its initial contents.
type FixtureContainer struct {
	Name      string            `yaml:"name"`
	Slots     *int              `yaml:"slots,omitempty"`
	Capacity  *int64            `yaml:"capacity,omitempty"`
	RateLimit *int64            `yaml:"rate_limit,omitempty"`
	Contents  []itemstack.Stack `yaml:"contents,omitempty"`
}
