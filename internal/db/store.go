// exposes a Store interface that is passed to API modules
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/tvardar/vakitd/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)

	// configuration functions
	GetSettings() (model.Settings, error)
	UpdateSettings(s model.Settings) error
	UpdateLocation(subareaID, subareaName, localityName, regionName string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}

func (s *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}

func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	return GetUserByEmail(email)
}

func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	return GetUserByID(id)
}

func (s *pgStore) GetSettings() (model.Settings, error) {
	return GetSettings()
}

func (s *pgStore) UpdateSettings(settings model.Settings) error {
	return UpdateSettings(settings)
}

func (s *pgStore) UpdateLocation(subareaID, subareaName, localityName, regionName string) error {
	return UpdateLocation(subareaID, subareaName, localityName, regionName)
}
