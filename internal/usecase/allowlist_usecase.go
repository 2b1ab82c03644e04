package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/allowdns/internal/entity"
	"github.com/eslsoft/allowdns/internal/infrastructure/config"
	"github.com/eslsoft/allowdns/internal/repository"
	"github.com/eslsoft/allowdns/pkg/allowexpr"
	"github.com/eslsoft/allowdns/pkg/allowlist"
)

// AllowlistUsecase normalizes allow-list entries and checks values against them.
type AllowlistUsecase interface {
	Normalize(ctx context.Context, entries []allowlist.Entry) []string
	Entries(ctx context.Context) ([]string, error)
	Check(ctx context.Context, value string) (*entity.Decision, error)
}

// NewAllowlistUsecase builds the usecase from the configured strip pattern and rule.
func NewAllowlistUsecase(repo repository.AllowlistRepository, cfg *config.Config, logger *logrus.Logger) (AllowlistUsecase, error) {
	strip, err := cfg.StripPattern()
	if err != nil {
		return nil, err
	}
	var rule *allowexpr.Rule
	if strings.TrimSpace(cfg.Allowlist.Rule) != "" {
		rule, err = allowexpr.Compile(cfg.Allowlist.Rule)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidRule, err)
		}
	}
	return &allowlistUsecase{repo: repo, strip: strip, rule: rule, logger: logger}, nil
}

type allowlistUsecase struct {
	repo   repository.AllowlistRepository
	strip  *allowlist.Pattern
	rule   *allowexpr.Rule
	logger *logrus.Logger
}

func (u *allowlistUsecase) Normalize(ctx context.Context, entries []allowlist.Entry) []string {
	return allowlist.Normalize(entries, u.strip)
}

// Entries returns the normalized configured list with duplicates removed.
func (u *allowlistUsecase) Entries(ctx context.Context) ([]string, error) {
	raw, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list allow-list entries: %w", err)
	}
	entries := lo.Uniq(u.Normalize(ctx, raw))
	u.logger.WithField("count", len(entries)).Debug("loaded allow-list")
	return entries, nil
}

func (u *allowlistUsecase) Check(ctx context.Context, value string) (*entity.Decision, error) {
	normalized := u.Normalize(ctx, []allowlist.Entry{allowlist.String(value)})
	if len(normalized) == 0 || normalized[0] == "" {
		return nil, entity.ErrEmptyEntry
	}

	entries, err := u.Entries(ctx)
	if err != nil {
		return nil, err
	}

	d := &entity.Decision{Value: value, Normalized: normalized[0]}
	if lo.Contains(entries, d.Normalized) {
		d.Allowed = true
		d.MatchedEntry = d.Normalized
	} else if u.rule != nil {
		ok, err := u.rule.Allows(d.Normalized)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidRule, err)
		}
		if ok {
			d.Allowed = true
			d.MatchedRule = u.rule.String()
		}
	}

	u.logger.WithFields(logrus.Fields{
		"value":   d.Normalized,
		"allowed": d.Allowed,
	}).Debug("checked allow-list")
	return d, nil
}
