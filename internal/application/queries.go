package application

import "github.com/bnema/qqbot-cli/internal/domain"

// DirectorySummary is what the contacts command renders.
type DirectorySummary struct {
	Nick      string
	QQ        int64
	Directory *domain.Directory
}
