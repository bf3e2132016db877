// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/favorites.go -package=mocks . FavoriteStore
type FavoriteStore interface {
	Close() error
	All() ([]*Account, error)
	Add(account *Account) error
	Remove(address string) error
	Contains(address string) (bool, error)
}
