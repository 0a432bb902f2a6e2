// Package jsonfile stores the followed accounts list as a JSON file.
//
// The file is a pretty-printed JSON array of {"name", "id"} objects and is
// rewritten wholesale on every change, keeping its permissions and any extra
// keys on existing records. There is no locking: two concurrent adds against
// the same file may lose one of the updates.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ppx123-web/wechat-article/internal/datasources"
	"github.com/ppx123-web/wechat-article/internal/domain"
)

// defaultFileMode applies when the file does not exist yet. CreateTemp
// alone would leave it 0600.
const defaultFileMode fs.FileMode = 0o644

var _ datasources.FollowedAccountStore = (*AccountStore)(nil)

type AccountStore struct {
	Path string
}

func NewAccountStore(path string) *AccountStore {
	return &AccountStore{Path: path}
}

// ListAccounts returns the stored accounts in file order. A missing file is
// an empty list, and so is an unreadable one: the failure is logged rather
// than returned.
func (s *AccountStore) ListAccounts(ctx context.Context) []domain.Account {
	accounts, err := s.load()
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to load followed accounts, treating as empty",
			"path", s.Path,
			"error", err,
		)
		return []domain.Account{}
	}

	return accounts
}

func (s *AccountStore) AddAccount(ctx context.Context, account domain.Account) (bool, error) {
	accounts, err := s.load()
	if err != nil {
		return false, &domain.StoreCorruptionError{Path: s.Path, Err: err}
	}

	if id := account.FakeID(); id != "" {
		for _, existing := range accounts {
			if existing.FakeID() == id {
				return false, nil
			}
		}
	}

	accounts = append(accounts, account)
	if err := s.save(accounts); err != nil {
		return false, err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "added followed account",
		"name", account.Name,
		"id", account.FakeID(),
		"total", len(accounts),
	)

	return true, nil
}

func (s *AccountStore) load() ([]domain.Account, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}

	var accounts []domain.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.Path, err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}

	return accounts, nil
}

// save writes to a temporary file beside the target and renames it into
// place, so readers never observe a partially written list.
func (s *AccountStore) save(accounts []domain.Account) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(accounts); err != nil {
		return fmt.Errorf("encoding accounts: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	mode := defaultFileMode
	if info, err := os.Stat(s.Path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("setting mode on temporary file: %w", err)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.Path, err)
	}

	return nil
}
