package generation

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
	"github.com/lxltx2025/nsfcwriter/internal/llm"
)

// scriptedClient replays canned responses and records prompts.
type scriptedClient struct {
	responses map[domain.SectionName]string
	failOn    map[domain.SectionName]error
	requests  []llm.GenerateRequest
}

func (c *scriptedClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.requests = append(c.requests, req)
	for name, err := range c.failOn {
		if strings.Contains(req.UserPrompt, string(name)) {
			return nil, err
		}
	}
	for name, text := range c.responses {
		if strings.Contains(req.UserPrompt, string(name)) {
			return &llm.GenerateResponse{Text: text}, nil
		}
	}
	return &llm.GenerateResponse{Text: "默认生成内容"}, nil
}

func (c *scriptedClient) Embed(context.Context, string) ([]float32, error) {
	return nil, llm.ErrEmptyEmbedding
}

func (c *scriptedClient) Available(context.Context) bool { return true }

// fixedContext returns the same reference block for every query.
type fixedContext struct {
	block   string
	queries []string
}

func (f *fixedContext) BuildContext(_ context.Context, query string, _ int) string {
	f.queries = append(f.queries, query)
	return f.block
}

func TestGenerateSection_PromptContainsTopicAndSection(t *testing.T) {
	client := &scriptedClient{responses: map[domain.SectionName]string{
		domain.SectionRationale: "立项依据草稿",
	}}
	gen := NewGenerator(client, nil, 5, nil)

	content, err := gen.GenerateSection(context.Background(), domain.SectionRationale, "蛋白质结构预测", "", false)
	require.NoError(t, err)
	assert.Equal(t, "立项依据草稿", content)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, llm.TaskGenerate, req.Task)
	assert.Contains(t, req.UserPrompt, "研究主题：蛋白质结构预测")
	assert.Contains(t, req.UserPrompt, `请撰写"立项依据"部分：`)
	assert.Contains(t, req.SystemPrompt, "立项依据")
}

func TestGenerateSection_UnknownSection(t *testing.T) {
	gen := NewGenerator(&scriptedClient{}, nil, 5, nil)

	_, err := gen.GenerateSection(context.Background(), domain.SectionName("未知部分"), "主题", "", false)
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestGenerateSection_EmbedsLiteratureContext(t *testing.T) {
	client := &scriptedClient{}
	refs := &fixedContext{block: "【参考文献内容】\n[来源1] paper.md"}
	gen := NewGenerator(client, refs, 3, nil)

	_, err := gen.GenerateSection(context.Background(), domain.SectionContent, "城市交通流量预测", "", true)
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	assert.Contains(t, client.requests[0].UserPrompt, "【参考文献内容】")
	assert.Equal(t, []string{"城市交通流量预测"}, refs.queries)
}

func TestGenerateSection_LiteratureDisabled(t *testing.T) {
	client := &scriptedClient{}
	refs := &fixedContext{block: "【参考文献内容】"}
	gen := NewGenerator(client, refs, 3, nil)

	_, err := gen.GenerateSection(context.Background(), domain.SectionContent, "主题", "", false)
	require.NoError(t, err)

	assert.Empty(t, refs.queries)
	assert.NotContains(t, client.requests[0].UserPrompt, "【参考文献内容】")
}

func TestGenerateSection_AdditionalInfo(t *testing.T) {
	client := &scriptedClient{}
	gen := NewGenerator(client, nil, 3, nil)

	_, err := gen.GenerateSection(context.Background(), domain.SectionPlan, "主题", "已有初步实验数据", false)
	require.NoError(t, err)

	assert.Contains(t, client.requests[0].UserPrompt, "补充信息：已有初步实验数据")
}

func TestGenerateProposal_AllSectionsInCanonicalOrder(t *testing.T) {
	client := &scriptedClient{}
	var log bytes.Buffer
	gen := NewGenerator(client, nil, 5, &log)

	drafts := gen.GenerateProposal(context.Background(), "蛋白质结构预测", nil, false)

	require.Len(t, drafts, len(domain.CanonicalOrder))
	for i, name := range domain.CanonicalOrder {
		assert.Equal(t, name, drafts[i].Name)
		assert.NoError(t, drafts[i].Err)
		assert.NotEmpty(t, drafts[i].Content)
	}
	assert.Contains(t, log.String(), "正在生成: 立项依据")
}

func TestGenerateProposal_FailureIsolation(t *testing.T) {
	client := &scriptedClient{failOn: map[domain.SectionName]error{
		domain.SectionPlan: errors.New("backend down"),
	}}
	var log bytes.Buffer
	gen := NewGenerator(client, nil, 5, &log)

	drafts := gen.GenerateProposal(context.Background(), "主题", nil, false)

	require.Len(t, drafts, len(domain.CanonicalOrder))
	for _, d := range drafts {
		if d.Name == domain.SectionPlan {
			assert.Error(t, d.Err)
			assert.Empty(t, d.Content)
		} else {
			assert.NoError(t, d.Err)
			assert.NotEmpty(t, d.Content)
		}
	}
	assert.Contains(t, log.String(), "✗ 研究方案")
}

func TestGenerateProposal_SubsetOfSections(t *testing.T) {
	gen := NewGenerator(&scriptedClient{}, nil, 5, nil)

	drafts := gen.GenerateProposal(context.Background(), "主题",
		[]domain.SectionName{domain.SectionInnovation}, false)

	require.Len(t, drafts, 1)
	assert.Equal(t, domain.SectionInnovation, drafts[0].Name)
}

func TestRefineSection_PromptCarriesFeedback(t *testing.T) {
	client := &scriptedClient{}
	gen := NewGenerator(client, nil, 5, nil)

	_, err := gen.RefineSection(context.Background(), domain.SectionInnovation,
		"原始创新点内容", "缺乏与现有研究的对比")
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, llm.TaskRefine, req.Task)
	assert.Contains(t, req.UserPrompt, "原始创新点内容")
	assert.Contains(t, req.UserPrompt, "缺乏与现有研究的对比")
	assert.Contains(t, req.SystemPrompt, "创新点")
}
