package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "ACTIVE"
	ProjectStatusInactive ProjectStatus = "INACTIVE"
)

type Project struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(200);not null;index" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	Status      ProjectStatus   `gorm:"type:varchar(16);not null;default:'ACTIVE';index;check:status IN ('ACTIVE','INACTIVE')" json:"status"`
	StartDate   *datatypes.Date `json:"startDate"`
	EndDate     *datatypes.Date `json:"endDate"`
	Progress    float64         `gorm:"not null;default:0" json:"progress"`
	Performance float64         `gorm:"not null;default:0" json:"performance"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Project <-> Activity / Indicator / Report, children removed with the project
	Activities []Activity  `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"activities,omitempty"`
	Indicators []Indicator `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"indicators,omitempty"`
	Reports    []Report    `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"reports,omitempty"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
