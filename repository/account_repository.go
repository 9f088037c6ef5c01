package repository

import (
	"errors"
	"fmt"
	"io/fs"

	"go-bank-console/logger"
	"go-bank-console/model"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// IAccountRepository defines the contract for loading and saving the full account set.
type IAccountRepository interface {
	LoadAccounts() ([]model.Account, error)
	SaveAccounts(accounts []model.Account) error
}

// malformedSuffix is appended to the path of an accounts file that failed to decode.
const malformedSuffix = ".bad"

// AccountRepository keeps accounts in a line-oriented text file.
type AccountRepository struct {
	FS          afero.Fs
	Path        string
	AtomicWrite bool
}

func NewAccountRepository(fsys afero.Fs, path string, atomicWrite bool) *AccountRepository {
	return &AccountRepository{FS: fsys, Path: path, AtomicWrite: atomicWrite}
}

// LoadAccounts reads and decodes the accounts file. A missing file yields no
// accounts; an undecodable one is moved aside.
func (r *AccountRepository) LoadAccounts() ([]model.Account, error) {
	log := logger.Log.WithField("path", r.Path)
	log.Debug("Loading accounts file")

	raw, err := afero.ReadFile(r.FS, r.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("Accounts file not found, starting with an empty store")
			return nil, nil
		}
		log.WithError(err).Error("Failed to read accounts file")
		return nil, fmt.Errorf("could not read %s: %w", r.Path, err)
	}

	accounts, err := Decode(string(raw))
	if err != nil {
		log.WithError(err).Error("Failed to decode accounts file")
		return nil, r.setAside(err)
	}

	log.WithField("accounts", len(accounts)).Info("Accounts loaded")
	return accounts, nil
}

// setAside renames an undecodable file to "<path>.bad" so the next save
// cannot overwrite the records it still holds.
func (r *AccountRepository) setAside(decodeErr error) error {
	backup := r.Path + malformedSuffix
	if err := r.FS.Rename(r.Path, backup); err != nil {
		logger.Log.WithError(err).WithField("path", r.Path).Error("Failed to move malformed accounts file aside")
		return errors.Join(decodeErr, fmt.Errorf("could not move %s aside: %w", r.Path, err))
	}
	logger.Log.WithField("backup", backup).Warn("Malformed accounts file moved aside")
	return fmt.Errorf("%w (file moved to %s)", decodeErr, backup)
}

// SaveAccounts rewrites the whole accounts file. With AtomicWrite the data goes
// to "<path>.tmp" first and is renamed over the target.
func (r *AccountRepository) SaveAccounts(accounts []model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"path":     r.Path,
		"accounts": len(accounts),
		"atomic":   r.AtomicWrite,
	})
	log.Debug("Saving accounts file")

	data := []byte(Encode(accounts))

	if !r.AtomicWrite {
		if err := afero.WriteFile(r.FS, r.Path, data, 0o644); err != nil {
			log.WithError(err).Error("Failed to write accounts file")
			return fmt.Errorf("could not write %s: %w", r.Path, err)
		}
		return nil
	}

	tmp := r.Path + ".tmp"
	if err := afero.WriteFile(r.FS, tmp, data, 0o644); err != nil {
		log.WithError(err).Error("Failed to write temporary accounts file")
		return fmt.Errorf("could not write %s: %w", tmp, err)
	}
	if err := r.FS.Rename(tmp, r.Path); err != nil {
		log.WithError(err).Error("Failed to replace accounts file")
		_ = r.FS.Remove(tmp)
		return fmt.Errorf("could not replace %s: %w", r.Path, err)
	}
	return nil
}
