package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/eslsoft/allowdns/internal/entity"
	"github.com/eslsoft/allowdns/internal/infrastructure/config"
	"github.com/eslsoft/allowdns/internal/repository"
	"github.com/eslsoft/allowdns/pkg/allowlist"
)

type staticAllowlistRepository struct{ entries []allowlist.Entry }

// NewStaticAllowlistRepository serves a fixed slice of entries.
func NewStaticAllowlistRepository(entries []allowlist.Entry) repository.AllowlistRepository {
	return &staticAllowlistRepository{entries: entries}
}

func (r *staticAllowlistRepository) List(ctx context.Context) ([]allowlist.Entry, error) {
	out := make([]allowlist.Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

type fileAllowlistRepository struct{ path string }

// NewFileAllowlistRepository reads one entry per line from path. Lines whose first
// non-blank character is '#' are comments. "-" reads standard input.
func NewFileAllowlistRepository(path string) repository.AllowlistRepository {
	return &fileAllowlistRepository{path: path}
}

func (r *fileAllowlistRepository) List(ctx context.Context) ([]allowlist.Entry, error) {
	if r.path == "-" {
		return readEntries(os.Stdin)
	}
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entity.ErrSourceNotFound, r.path)
		}
		return nil, fmt.Errorf("open allow-list file: %w", err)
	}
	defer f.Close()
	return readEntries(f)
}

func readEntries(in io.Reader) ([]allowlist.Entry, error) {
	var entries []allowlist.Entry
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		entries = append(entries, allowlist.String(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read allow-list entries: %w", err)
	}
	return entries, nil
}

type configAllowlistRepository struct {
	cfg *config.Config
}

// NewConfigAllowlistRepository serves allowlist.entries from config followed by the
// lines of allowlist.file when one is configured.
func NewConfigAllowlistRepository(cfg *config.Config) repository.AllowlistRepository {
	return &configAllowlistRepository{cfg: cfg}
}

func (r *configAllowlistRepository) List(ctx context.Context) ([]allowlist.Entry, error) {
	entries := allowlist.Values(r.cfg.Allowlist.Entries)
	if r.cfg.Allowlist.File == "" {
		return entries, nil
	}
	fromFile, err := NewFileAllowlistRepository(r.cfg.Allowlist.File).List(ctx)
	if err != nil {
		return nil, err
	}
	return append(entries, fromFile...), nil
}
