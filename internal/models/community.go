package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Levantado is a free-form vocation candidate record. The shape is decided by
// the client; the server stores it opaquely.
type Levantado map[string]any

// LevantadoList is stored as a JSON text column. Malformed stored text decodes
// to an empty list instead of failing the read.
type LevantadoList []Levantado

// CarismaRef associates a community with a carisma by id. No foreign key is
// enforced against the carismas table.
type CarismaRef struct {
	CarismaID uint `json:"carisma_id"`
}

// CarismaRefList is stored as a JSON text column with the same lenient decode
// behavior as LevantadoList.
type CarismaRefList []CarismaRef

type Comunidade struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Diocese      string         `json:"diocese"`
	Bispo        string         `json:"bispo"`
	Cidade       string         `json:"cidade"`
	Paroquia     string         `json:"paroquia"`
	Paroco       string         `json:"paroco"`
	Vigario      string         `json:"vigario"`
	QtdMembros   int            `gorm:"not null;default:0" json:"qtd_membros"`
	QtdJovens    int            `gorm:"not null;default:0" json:"qtd_jovens"`
	EtapaID      uint           `gorm:"index" json:"etapa_id"`
	DataFundacao string         `json:"data_fundacao"`
	DataEtapa    string         `json:"data_etapa"`
	Levantados   LevantadoList  `gorm:"type:text" json:"levantados"`
	Carismas     CarismaRefList `gorm:"type:text" json:"carismas"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// EtapaNome is populated by list queries that join the etapas table.
	EtapaNome string `gorm:"->" json:"etapa,omitempty"`
}

func (list LevantadoList) Value() (driver.Value, error) {
	return encodeListColumn(list)
}

func (list *LevantadoList) Scan(src any) error {
	decoded := make(LevantadoList, 0)
	if raw := rawListColumn(src); raw != nil {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			decoded = make(LevantadoList, 0)
		}
	}
	*list = decoded
	return nil
}

func (list CarismaRefList) Value() (driver.Value, error) {
	return encodeListColumn(list)
}

func (list *CarismaRefList) Scan(src any) error {
	decoded := make(CarismaRefList, 0)
	if raw := rawListColumn(src); raw != nil {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			decoded = make(CarismaRefList, 0)
		}
	}
	*list = decoded
	return nil
}

func encodeListColumn(list any) (driver.Value, error) {
	encoded, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode list column: %w", err)
	}
	if string(encoded) == "null" {
		return "[]", nil
	}
	return string(encoded), nil
}

func rawListColumn(src any) []byte {
	switch value := src.(type) {
	case string:
		if value == "" {
			return nil
		}
		return []byte(value)
	case []byte:
		if len(value) == 0 {
			return nil
		}
		return value
	default:
		return nil
	}
}
