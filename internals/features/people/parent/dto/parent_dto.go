// file: internals/features/people/parent/dto/parent_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/people/parent/model"
)

type CreateParentRequest struct {
	ParentName     string  `json:"parent_name" validate:"required,min=2,max=100"`
	ParentEmail    string  `json:"parent_email" validate:"required,email"`
	ParentMobile   string  `json:"parent_mobile" validate:"required,min=6,max=20"`
	ParentPassword string  `json:"parent_password" validate:"required,min=8"`
	ParentAddress  string  `json:"parent_address" validate:"required,max=255"`
	ParentCity     string  `json:"parent_city" validate:"required,max=100"`
	ParentState    string  `json:"parent_state" validate:"required,max=100"`
	ParentCountry  string  `json:"parent_country" validate:"required,max=100"`
	ParentZipCode  *string `json:"parent_zip_code" validate:"omitempty,max=20"`

	ParentStatus *string `json:"parent_status" validate:"omitempty,oneof=Live Archived"`
}

type UpdateParentRequest struct {
	ParentName    *string `json:"parent_name" validate:"omitempty,min=2,max=100"`
	ParentMobile  *string `json:"parent_mobile" validate:"omitempty,min=6,max=20"`
	ParentAddress *string `json:"parent_address" validate:"omitempty,max=255"`
	ParentCity    *string `json:"parent_city" validate:"omitempty,max=100"`
	ParentState   *string `json:"parent_state" validate:"omitempty,max=100"`
	ParentCountry *string `json:"parent_country" validate:"omitempty,max=100"`
	ParentZipCode *string `json:"parent_zip_code" validate:"omitempty,max=20"`
}

func (r CreateParentRequest) ToModel(passwordHash string) model.ParentModel {
	m := model.ParentModel{
		ParentName:     strings.TrimSpace(r.ParentName),
		ParentEmail:    strings.ToLower(strings.TrimSpace(r.ParentEmail)),
		ParentMobile:   strings.TrimSpace(r.ParentMobile),
		ParentPassword: passwordHash,
		ParentAddress:  strings.TrimSpace(r.ParentAddress),
		ParentCity:     strings.TrimSpace(r.ParentCity),
		ParentState:    strings.TrimSpace(r.ParentState),
		ParentCountry:  strings.TrimSpace(r.ParentCountry),
		ParentZipCode:  trimPtr(r.ParentZipCode),
		ParentStatus:   constants.StatusLive,
	}
	if r.ParentStatus != nil {
		m.ParentStatus = *r.ParentStatus
	}
	return m
}

func (r UpdateParentRequest) Apply(m *model.ParentModel) {
	if r.ParentName != nil {
		m.ParentName = strings.TrimSpace(*r.ParentName)
	}
	if r.ParentMobile != nil {
		m.ParentMobile = strings.TrimSpace(*r.ParentMobile)
	}
	if r.ParentAddress != nil {
		m.ParentAddress = strings.TrimSpace(*r.ParentAddress)
	}
	if r.ParentCity != nil {
		m.ParentCity = strings.TrimSpace(*r.ParentCity)
	}
	if r.ParentState != nil {
		m.ParentState = strings.TrimSpace(*r.ParentState)
	}
	if r.ParentCountry != nil {
		m.ParentCountry = strings.TrimSpace(*r.ParentCountry)
	}
	if r.ParentZipCode != nil {
		m.ParentZipCode = trimPtr(r.ParentZipCode)
	}
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
