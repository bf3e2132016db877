// SPDX-License-Identifier: GPL-3.0-or-later
package favorites

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/driftbox/go-driftbox/domain"
	"github.com/driftbox/go-driftbox/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_favorites",
			Up: []string{`
				CREATE TABLE favorites (
					address   TEXT PRIMARY KEY,
					password  TEXT NOT NULL,
					token     TEXT NOT NULL,
					accountid TEXT NOT NULL,
					position  INTEGER NOT NULL
				)`,
			},
			Down: []string{`DROP TABLE favorites`},
		},
	},
}

type Store struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewStore(datasource string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_FAVORITES)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Store{
		db: db,
		l:  l,
	}, nil
}

func (s *Store) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	s.l.Info("Disconnected")
	return nil
}

// All returns the stored accounts in insertion order.
func (s *Store) All() ([]*domain.Account, error) {
	dbFavorites := []struct {
		Address   string
		Password  string
		Token     string
		AccountId string `db:"accountid"`
	}{}

	err := s.db.Select(
		&dbFavorites,
		`SELECT address, password, token, accountid FROM favorites ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	accounts := []*domain.Account{}
	for _, f := range dbFavorites {
		accounts = append(
			accounts,
			&domain.Account{
				Address:  f.Address,
				Password: f.Password,
				Token:    f.Token,
				ID:       f.AccountId,
			},
		)
	}

	s.l.WithField("Count", len(accounts)).Debug("Found favorites")

	return accounts, nil
}

// Add stores an account keyed by address. Re-adding an address updates its
// credentials but keeps its original insertion position.
func (s *Store) Add(account *domain.Account) error {
	res, err := s.db.Exec(
		`UPDATE favorites SET password = ?, token = ?, accountid = ? WHERE address = ?`,
		account.Password, account.Token, account.ID, account.Address,
	)
	if err != nil {
		return fmt.Errorf("could not update favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get num of affected rows: %w", err)
	}

	if affected == 0 {
		_, err = s.db.Exec(
			`INSERT INTO favorites (address, password, token, accountid, position)
			 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM favorites))`,
			account.Address, account.Password, account.Token, account.ID,
		)
		if err != nil {
			return fmt.Errorf("could not save favorite: %w", err)
		}
	}

	s.l.WithFields(logrus.Fields{"Address": account.Address}).Info("Persisted favorite")
	return nil
}

func (s *Store) Remove(address string) error {
	_, err := s.db.Exec(
		`DELETE FROM favorites WHERE address = ?`,
		address,
	)
	if err != nil {
		return fmt.Errorf("could not remove favorite: %w", err)
	}

	s.l.WithFields(logrus.Fields{"Address": address}).Info("Removed favorite")
	return nil
}

func (s *Store) Contains(address string) (bool, error) {
	var stored string
	err := s.db.Get(
		&stored,
		`SELECT address FROM favorites WHERE address = ?`,
		address,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not query db: %w", err)
	}

	return true, nil
}
