package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityStatus string

const (
	ActivityStatusPending    ActivityStatus = "PENDING"
	ActivityStatusInProgress ActivityStatus = "IN_PROGRESS"
	ActivityStatusCompleted  ActivityStatus = "COMPLETED"
)

type Activity struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID       `gorm:"type:uuid;not null;index" json:"projectId"`
	Name      string          `gorm:"type:varchar(200);not null" json:"name"`
	Status    ActivityStatus  `gorm:"type:varchar(16);not null;default:'PENDING';index;check:status IN ('PENDING','IN_PROGRESS','COMPLETED')" json:"status"`
	Progress  float64         `gorm:"not null;default:0" json:"progress"`
	StartDate *datatypes.Date `json:"startDate"`
	EndDate   *datatypes.Date `json:"endDate"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Activity <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (Activity) TableName() string { return "activities" }

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
