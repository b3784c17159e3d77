package repo

import (
	"github.com/GlebRadaev/bonusledger/internal/pg"
	entryrepo "github.com/GlebRadaev/bonusledger/internal/repo/entry-repo"
	userrepo "github.com/GlebRadaev/bonusledger/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo  *userrepo.Repository
	EntryRepo *entryrepo.Repository
	TXManager pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:  userrepo.New(conn),
		EntryRepo: entryrepo.New(conn),
		TXManager: txManager,
	}
}
