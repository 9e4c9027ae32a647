package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Indicator struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index" json:"projectId"`
	Name         string    `gorm:"type:varchar(200);not null;index" json:"name"`
	CurrentValue float64   `gorm:"not null;default:0" json:"currentValue"`
	Threshold    float64   `gorm:"not null;default:0" json:"threshold"`
	Unit         *string   `gorm:"type:varchar(50)" json:"unit"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Indicator <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (Indicator) TableName() string { return "indicators" }

// Critical reports whether the indicator sits below its threshold. Derived,
// never stored.
func (i *Indicator) Critical() bool { return i.CurrentValue < i.Threshold }

func (i *Indicator) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
