package review

import "github.com/lxltx2025/nsfcwriter/internal/domain"

// Rubric is the fixed set of review criteria for one canonical section:
// keywords the content is expected to mention, and the requirement list
// embedded into model review prompts.
type Rubric struct {
	Keywords     []string
	Requirements []string
}

var rubrics = map[domain.SectionName]Rubric{
	domain.SectionRationale: {
		Keywords: []string{"研究背景", "国内外", "研究现状", "意义", "必要性", "科学问题"},
		Requirements: []string{
			"是否清晰阐述研究背景",
			"是否全面综述国内外研究现状",
			"是否明确指出研究缺口",
			"是否论证研究的必要性和意义",
			"是否有规范的文献引用",
			"逻辑是否清晰连贯",
		},
	},
	domain.SectionContent: {
		Keywords: []string{"研究内容", "研究问题", "核心问题", "研究要点"},
		Requirements: []string{
			"是否明确核心研究问题",
			"研究内容是否具体可操作",
			"是否有清晰的层次结构",
			"是否紧扣研究目标",
			"研究范围是否适当",
		},
	},
	domain.SectionPlan: {
		Keywords: []string{"技术路线", "研究方法", "实验", "步骤", "进度"},
		Requirements: []string{
			"技术路线是否清晰",
			"研究方法是否科学合理",
			"是否有详细的实施步骤",
			"是否说明关键技术难点",
			"进度安排是否合理",
			"是否论证可行性",
		},
	},
	domain.SectionInnovation: {
		Keywords: []string{"创新", "特色", "首次", "新方法", "新理论"},
		Requirements: []string{
			"创新点是否明确具体",
			"是否区分创新类型",
			"是否与现有研究对比",
			"创新点是否有实质内容",
			"是否避免夸大其词",
		},
	},
	domain.SectionOutcomes: {
		Keywords: []string{"成果", "论文", "专利", "指标", "应用"},
		Requirements: []string{
			"成果指标是否具体可量化",
			"是否包含学术成果",
			"是否说明应用价值",
			"指标是否合理可达",
			"是否有人才培养计划",
		},
	},
	domain.SectionFoundation: {
		Keywords: []string{"基础", "前期", "团队", "条件", "积累"},
		Requirements: []string{
			"是否展示相关研究积累",
			"是否介绍团队构成",
			"是否说明实验条件",
			"是否论证完成能力",
			"前期成果是否相关",
		},
	},
}

// RubricFor returns the rubric for a section. Names outside the six
// canonical sections (including the synthetic full-text section) reuse
// the 立项依据 rubric.
func RubricFor(name domain.SectionName) Rubric {
	if r, ok := rubrics[name]; ok {
		return r
	}
	return rubrics[domain.SectionRationale]
}
