package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	EmployeeRepository  *EmployeeRepository
	StudentRepository   *StudentRepository
	TimeSheetRepository *TimeSheetRepository
	CareRepository      *CareRepository
	TokenRepository     *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		EmployeeRepository:  NewEmployeeRepository(db),
		StudentRepository:   NewStudentRepository(db),
		TimeSheetRepository: NewTimeSheetRepository(db),
		CareRepository:      NewCareRepository(db),
		TokenRepository:     NewTokenRepository(db),
	}
}
