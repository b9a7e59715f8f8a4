// file: internals/features/people/parent/model/parent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Parent tidak punya field role-specific; hanya identitas + alamat.
type ParentModel struct {
	ParentID uuid.UUID `gorm:"type:uuid;primaryKey;column:parent_id" json:"parent_id"`

	ParentName     string `gorm:"type:varchar(100);not null;column:parent_name" json:"parent_name"`
	ParentEmail    string `gorm:"type:varchar(255);not null;uniqueIndex;column:parent_email" json:"parent_email"`
	ParentMobile   string `gorm:"type:varchar(20);not null;column:parent_mobile" json:"parent_mobile"`
	ParentPassword string `gorm:"not null;column:parent_password" json:"-"`

	ParentAddress string  `gorm:"type:varchar(255);not null;column:parent_address" json:"parent_address"`
	ParentCity    string  `gorm:"type:varchar(100);not null;column:parent_city" json:"parent_city"`
	ParentState   string  `gorm:"type:varchar(100);not null;column:parent_state" json:"parent_state"`
	ParentCountry string  `gorm:"type:varchar(100);not null;column:parent_country" json:"parent_country"`
	ParentZipCode *string `gorm:"type:varchar(20);column:parent_zip_code" json:"parent_zip_code,omitempty"`

	ParentStatus string `gorm:"type:varchar(10);not null;default:'Live';column:parent_status" json:"parent_status"`

	ParentCreatedAt time.Time `gorm:"column:parent_created_at;not null;autoCreateTime" json:"parent_created_at"`
	ParentUpdatedAt time.Time `gorm:"column:parent_updated_at;not null;autoUpdateTime" json:"parent_updated_at"`
}

func (ParentModel) TableName() string { return "parents" }

func (m *ParentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParentID == uuid.Nil {
		m.ParentID = uuid.New()
	}
	return nil
}
