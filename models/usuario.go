package models

// Usuario is a login account. Accounts are created only by the seed data;
// there is no registration flow.
type Usuario struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:255;uniqueIndex;not null"`
	Password string `gorm:"size:255;not null"`
}

func (Usuario) TableName() string { return "usuario" }
