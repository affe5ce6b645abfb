package document

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse("proposal.xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("paper.PDF"))
	assert.True(t, Supported("paper.docx"))
	assert.True(t, Supported("notes.md"))
	assert.False(t, Supported("image.png"))
}

func TestMarkdownParser_SectionsAndFullText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.md")
	require.NoError(t, os.WriteFile(path, []byte(
		"# 深度学习在蛋白质结构预测中的应用研究\n\n## 研究背景\n蛋白质结构预测是计算生物学的核心问题。\n\n## 方法\n本文提出一种新的图神经网络方法。\n"),
		0644))

	content, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "markdown", content.FileType)
	assert.Equal(t, path, content.SourceFile)
	assert.Equal(t, "深度学习在蛋白质结构预测中的应用研究", content.Title)
	assert.Equal(t, "蛋白质结构预测是计算生物学的核心问题。", content.Sections["研究背景"])
	assert.Equal(t, "本文提出一种新的图神经网络方法。", content.Sections["方法"])
	assert.Contains(t, content.FullText, "图神经网络")
	assert.NotContains(t, content.FullText, "## ")
}

func writeTestDocx(t *testing.T, dir, documentXML string) string {
	t.Helper()

	path := filepath.Join(dir, "paper.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return path
}

func TestDocxParser_HeadingsBecomeSections(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>引言</w:t></w:r></w:p>
    <w:p><w:r><w:t>这是引言的第一段。</w:t></w:r></w:p>
    <w:p><w:r><w:t>这是</w:t></w:r><w:r><w:t>拼接的第二段。</w:t></w:r></w:p>
    <w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>结论</w:t></w:r></w:p>
    <w:p><w:r><w:t>这是结论。</w:t></w:r></w:p>
  </w:body>
</w:document>`

	path := writeTestDocx(t, t.TempDir(), doc)
	content, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "docx", content.FileType)
	assert.Equal(t, "这是引言的第一段。\n这是拼接的第二段。", content.Sections["引言"])
	assert.Equal(t, "这是结论。", content.Sections["结论"])
	assert.Contains(t, content.FullText, "拼接的第二段")
}

func TestDocxParser_MissingDocumentXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, _ = w.Write([]byte("<x/>"))
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = Parse(path)
	assert.ErrorContains(t, err, "word/document.xml")
}

func TestExtractTitle_SkipsShortLines(t *testing.T) {
	text := "短行\n基于多模态数据融合的城市交通流量预测方法研究\n正文开始"
	assert.Equal(t, "基于多模态数据融合的城市交通流量预测方法研究", extractTitle(text))
}

func TestExtractTitle_FallbackWhenNothingPlausible(t *testing.T) {
	assert.Equal(t, "未知标题", extractTitle("a\nb\nc"))
}

func TestExtractAbstract_Chinese(t *testing.T) {
	text := "标题行\n摘要: 本文研究了一种新方法。\n\n关键词: 方法"
	assert.Equal(t, "本文研究了一种新方法。", extractAbstract(text))
}

func TestExtractAbstract_English(t *testing.T) {
	text := "Title\nAbstract: We present a new approach.\n\nIntroduction follows"
	assert.Equal(t, "We present a new approach.", extractAbstract(text))
}
