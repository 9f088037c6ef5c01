// file: repository/account_repository_test.go

package repository

import (
	"os"
	"testing"

	"go-bank-console/logger"
	"go-bank-console/model"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/data/accounts.txt"

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestAccountRepository_LoadAccounts(t *testing.T) {
	t.Run("missing file is an empty store", func(t *testing.T) {
		repo := NewAccountRepository(afero.NewMemMapFs(), testPath, true)

		accounts, err := repo.LoadAccounts()

		assert.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("existing file", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, testPath, []byte("Savings 1 Alice 100 2.5\nCurrent 2 Bob -150 200\n"), 0o644))
		repo := NewAccountRepository(fsys, testPath, true)

		accounts, err := repo.LoadAccounts()

		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assertSameAccount(t, model.NewCurrentAccount(2, "Bob", d("-150"), d("200")), accounts[1])
	})

	t.Run("malformed file fails the whole load", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, testPath, []byte("Savings 1 Alice 100 2.5\nSavings 2 Bob Smith 1 1\n"), 0o644))
		repo := NewAccountRepository(fsys, testPath, true)

		accounts, err := repo.LoadAccounts()

		assert.ErrorIs(t, err, ErrMalformedRecord)
		assert.Nil(t, accounts)
	})

	t.Run("malformed file is moved aside", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		original := []byte("Savings 1 Alice 100 2.5\nSavings 2 Bob Smith 1 1\n")
		require.NoError(t, afero.WriteFile(fsys, testPath, original, 0o644))
		repo := NewAccountRepository(fsys, testPath, true)

		_, err := repo.LoadAccounts()
		require.ErrorIs(t, err, ErrMalformedRecord)
		assert.Contains(t, err.Error(), testPath+".bad")

		exists, err := afero.Exists(fsys, testPath)
		require.NoError(t, err)
		assert.False(t, exists)
		backup, err := afero.ReadFile(fsys, testPath+".bad")
		require.NoError(t, err)
		assert.Equal(t, original, backup)

		require.NoError(t, repo.SaveAccounts([]model.Account{model.NewSavingsAccount(1, "Carol", d("5"), d("1"))}))
		backup, err = afero.ReadFile(fsys, testPath+".bad")
		require.NoError(t, err)
		assert.Equal(t, original, backup, "saving after a failed load keeps the old records")
	})

	t.Run("malformed file on a read-only filesystem", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, testPath, []byte("Checking 1 Alice 100 2.5\n"), 0o644))
		repo := NewAccountRepository(afero.NewReadOnlyFs(fsys), testPath, true)

		_, err := repo.LoadAccounts()

		assert.ErrorIs(t, err, ErrMalformedRecord)
		assert.Contains(t, err.Error(), "could not move")
	})
}

func TestAccountRepository_SaveAccounts(t *testing.T) {
	accounts := []model.Account{
		model.NewSavingsAccount(1, "Alice", d("50"), d("2.5")),
		model.NewCurrentAccount(2, "Bob", d("-150"), d("200")),
	}

	for _, atomic := range []bool{true, false} {
		name := "direct write"
		if atomic {
			name = "atomic write"
		}
		t.Run(name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, testPath, []byte("Savings 1 Alice 999 2.5\nSavings 3 Stale 1 1\n"), 0o644))
			repo := NewAccountRepository(fsys, testPath, atomic)

			err := repo.SaveAccounts(accounts)

			require.NoError(t, err)
			raw, err := afero.ReadFile(fsys, testPath)
			require.NoError(t, err)
			assert.Equal(t, "Savings 1 Alice 50 2.5\nCurrent 2 Bob -150 200\n", string(raw), "file is fully rewritten")

			exists, err := afero.Exists(fsys, testPath+".tmp")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}

	t.Run("save then load", func(t *testing.T) {
		repo := NewAccountRepository(afero.NewMemMapFs(), testPath, true)

		require.NoError(t, repo.SaveAccounts(accounts))
		loaded, err := repo.LoadAccounts()

		require.NoError(t, err)
		require.Len(t, loaded, 2)
		for i := range accounts {
			assertSameAccount(t, accounts[i], loaded[i])
		}
	})

	t.Run("read-only filesystem", func(t *testing.T) {
		repo := NewAccountRepository(afero.NewReadOnlyFs(afero.NewMemMapFs()), testPath, true)

		err := repo.SaveAccounts(accounts)

		assert.Error(t, err)
	})
}
