// Package generation drafts proposal sections through the generation
// backend, optionally grounding prompts in the literature store.
package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
	"github.com/lxltx2025/nsfcwriter/internal/llm"
)

// ErrUnknownSection indicates the requested section is not one of the
// six canonical proposal parts.
var ErrUnknownSection = errors.New("unknown proposal section")

// ContextBuilder supplies reference material for a topic. Satisfied by
// *literature.Store.
type ContextBuilder interface {
	BuildContext(ctx context.Context, query string, topK int) string
}

// SectionDraft is the outcome of generating one section. Err is set
// when that section failed; siblings are unaffected.
type SectionDraft struct {
	Name    domain.SectionName
	Content string
	Err     error
}

// Generator drafts proposal sections.
type Generator struct {
	client  llm.Client
	context ContextBuilder
	topK    int
	logw    io.Writer
}

// NewGenerator creates a Generator. contextBuilder may be nil to
// disable literature grounding entirely.
func NewGenerator(client llm.Client, contextBuilder ContextBuilder, topK int, logw io.Writer) *Generator {
	if logw == nil {
		logw = io.Discard
	}
	return &Generator{client: client, context: contextBuilder, topK: topK, logw: logw}
}

// GenerateSection drafts one canonical section for the given research
// topic. With useLiterature, retrieval context for the topic is embedded
// into the prompt; retrieval failures degrade to no context.
func (g *Generator) GenerateSection(ctx context.Context, section domain.SectionName, topic, additionalInfo string, useLiterature bool) (string, error) {
	systemPrompt, ok := sectionPrompts[section]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	var parts []string
	parts = append(parts, "研究主题："+topic)

	if useLiterature && g.context != nil {
		if refs := g.context.BuildContext(ctx, topic, g.topK); refs != "" {
			parts = append(parts, "\n"+refs)
		}
	}

	if additionalInfo != "" {
		parts = append(parts, "\n补充信息："+additionalInfo)
	}

	parts = append(parts, fmt.Sprintf("\n请撰写\"%s\"部分：", section))

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskGenerate,
		SystemPrompt: systemPrompt,
		UserPrompt:   strings.Join(parts, "\n"),
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// GenerateProposal drafts the requested sections sequentially (all six
// when sections is empty). One failed section does not stop the rest.
func (g *Generator) GenerateProposal(ctx context.Context, topic string, sections []domain.SectionName, useLiterature bool) []SectionDraft {
	if len(sections) == 0 {
		sections = domain.CanonicalOrder
	}

	drafts := make([]SectionDraft, 0, len(sections))
	for _, section := range sections {
		fmt.Fprintf(g.logw, "正在生成: %s...\n", section)
		content, err := g.GenerateSection(ctx, section, topic, "", useLiterature)
		if err != nil {
			fmt.Fprintf(g.logw, "✗ %s: %v\n", section, err)
			drafts = append(drafts, SectionDraft{Name: section, Err: err})
			continue
		}
		fmt.Fprintf(g.logw, "✓ %s (%d 字)\n", section, len([]rune(content)))
		drafts = append(drafts, SectionDraft{Name: section, Content: content})
	}
	return drafts
}

// RefineSection rewrites a section draft according to reviewer feedback.
func (g *Generator) RefineSection(ctx context.Context, section domain.SectionName, original, feedback string) (string, error) {
	systemPrompt := fmt.Sprintf(`你是国自然申请书写作专家。
请根据修改意见优化"%s"部分的内容。
保持原有结构的合理部分，针对性地改进不足之处。`, section)

	prompt := fmt.Sprintf(`原始内容：
%s

修改意见：
%s

请输出修改后的完整"%s"内容：`, original, feedback, section)

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRefine,
		SystemPrompt: systemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
