// Package cli defines the nsfcwriter command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lxltx2025/nsfcwriter/internal/generation"
	"github.com/lxltx2025/nsfcwriter/internal/literature"
	"github.com/lxltx2025/nsfcwriter/internal/llm"
	"github.com/lxltx2025/nsfcwriter/internal/review"
)

// App holds references to the services used by CLI commands.
type App struct {
	Reviewer   *review.Engine
	Generator  *generation.Generator
	Literature *literature.Store
	Client     llm.Client

	// IsInteractive reports whether stdout is a terminal. Styled
	// summaries are only printed interactively; piped output stays
	// plain markdown.
	IsInteractive func() bool

	Version string
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "nsfcwriter" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "nsfcwriter",
		Short: "国自然申请书撰写与审阅助手",
	}

	root.AddCommand(
		newReviewCmd(app),
		newGenerateCmd(app),
		newRefineCmd(app),
		newLiteratureCmd(app),
		newVersionCmd(app),
	)

	return root
}
