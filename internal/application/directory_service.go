package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

type DirectoryService struct {
	api     ports.ContactAPI
	logger  *slog.Logger
	metrics ports.Metrics
}

func NewDirectoryService(api ports.ContactAPI, logger *slog.Logger, metrics ports.Metrics) *DirectoryService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &DirectoryService{api: api, logger: logger, metrics: metrics}
}

// Fetch lists buddies, groups and discussion groups and resolves the public
// number of every buddy and group with one request each.
func (s *DirectoryService) Fetch(ctx context.Context, session domain.Session) (*domain.Directory, error) {
	buddies, err := s.api.ListBuddies(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list buddies: %w", err)
	}
	if err := s.resolve(ctx, session, domain.CategoryBuddy, buddies); err != nil {
		return nil, err
	}

	groups, err := s.api.ListGroups(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	if err := s.resolve(ctx, session, domain.CategoryGroup, groups); err != nil {
		return nil, err
	}

	discusses, err := s.api.ListDiscusses(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list discussion groups: %w", err)
	}

	directory := domain.NewDirectory(buddies, groups, discusses)
	for _, category := range domain.Categories {
		count := directory.Count(category)
		s.metrics.SetContacts(string(category), count)
		s.logger.Info("contacts fetched", "category", string(category), "count", count)
	}

	return directory, nil
}

func (s *DirectoryService) resolve(ctx context.Context, session domain.Session, category domain.Category, contacts []domain.Contact) error {
	for i := range contacts {
		qq, err := s.api.ResolveAccount(ctx, session, category, contacts[i].UIN)
		if err != nil {
			return fmt.Errorf("resolve %s %d: %w", category, contacts[i].UIN, err)
		}
		contacts[i].QQ = qq
	}

	return nil
}

// FetchNick returns the logged in account's own nickname.
func (s *DirectoryService) FetchNick(ctx context.Context, session domain.Session) (string, error) {
	nick, err := s.api.FetchNick(ctx, session, session.UIN)
	if err != nil {
		return "", fmt.Errorf("fetch nickname: %w", err)
	}

	return nick, nil
}
