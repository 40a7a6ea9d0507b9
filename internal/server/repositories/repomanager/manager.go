package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/candidatetracker/internal/dbx"
	"github.com/dmitrijs2005/candidatetracker/internal/server/repositories/candidates"
	"github.com/dmitrijs2005/candidatetracker/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Candidates(db dbx.DBTX) candidates.Repository
}
