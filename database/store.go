package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cartera-web/models"
)

// Store is the data-access layer. Every method binds positional parameters
// and runs as its own implicit transaction; failures surface to the caller
// unrecovered.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// UserByCredentials looks up a user by exact username and password match.
// It returns nil when no row matches.
func (s *Store) UserByCredentials(username, password string) (*models.Usuario, error) {
	var u models.Usuario
	err := s.db.Where("username = ? AND password = ?", username, password).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// PortfolioTypes returns all tipocartera rows.
func (s *Store) PortfolioTypes() ([]models.TipoCartera, error) {
	var tipos []models.TipoCartera
	if err := s.db.Find(&tipos).Error; err != nil {
		return nil, err
	}
	return tipos, nil
}

// InsertItem stores one cartera row. The code is auto-assigned by the store
// and written back into c.
func (s *Store) InsertItem(c *models.Cartera) error {
	return s.db.Omit(clause.Associations).Create(c).Error
}

// ItemsByType returns the cartera rows of one type, newest date first. Ties
// keep the store's natural row order.
func (s *Store) ItemsByType(tipoID int) ([]models.Cartera, error) {
	var items []models.Cartera
	err := s.db.Raw(`
		SELECT CODCAR, DESCRIPCAR, PRECIOCAR, FECHACAR, CODTIPCAR
		FROM cartera
		WHERE CODTIPCAR = ?
		ORDER BY FECHACAR DESC
	`, tipoID).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
