package models

import "github.com/shopspring/decimal"

// TipoCartera is one of a fixed set of portfolio categories. The set is
// seeded once and never changes afterwards.
type TipoCartera struct {
	ID     uint   `gorm:"primaryKey"`
	Nombre string `gorm:"size:255;uniqueIndex;not null"`
}

func (TipoCartera) TableName() string { return "tipocartera" }

// Cartera is a single priced, dated portfolio entry. Column names keep the
// legacy schema so the store file stays compatible with existing data.
type Cartera struct {
	Codigo      uint            `gorm:"column:CODCAR;primaryKey"`
	Descripcion string          `gorm:"column:DESCRIPCAR;size:255;not null"`
	Precio      decimal.Decimal `gorm:"column:PRECIOCAR;type:decimal(12,2);not null"`
	Fecha       string          `gorm:"column:FECHACAR;size:32;not null"`
	TipoID      uint            `gorm:"column:CODTIPCAR;not null"`
	Tipo        TipoCartera     `gorm:"foreignKey:TipoID"`
}

func (Cartera) TableName() string { return "cartera" }
