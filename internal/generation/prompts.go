package generation

import "github.com/lxltx2025/nsfcwriter/internal/domain"

// sectionPrompts are the per-section writing personas. Each one fixes
// the structure the model is expected to produce for that part.
var sectionPrompts = map[domain.SectionName]string{
	domain.SectionRationale: `你正在撰写国自然申请书的"立项依据"部分。

要求：
1. 研究背景与意义：阐明研究的科学意义和应用价值
2. 国内外研究现状：客观评述研究进展，指出存在问题
3. 研究缺口：明确指出现有研究的不足
4. 本研究必要性：论证开展研究的必要性和可行性
5. 文献引用：使用[1]、[2]格式标注

确保内容专业、论证严谨、逻辑清晰。`,

	domain.SectionContent: `你正在撰写国自然申请书的"研究内容"部分。

要求：
1. 明确核心研究问题
2. 分点阐述具体研究内容（3-5个方面）
3. 界定研究范围和边界
4. 确保内容紧扣研究目标
5. 体现系统性和可操作性

使用"（1）"、"（2）"格式组织层次。`,

	domain.SectionPlan: `你正在撰写国自然申请书的"研究方案"部分。

要求：
1. 研究方法：说明主要研究方法
2. 技术路线：描述清晰的技术路线
3. 实验步骤：分阶段说明具体步骤
4. 关键技术：指出难点及解决策略
5. 进度安排：合理安排研究进度
6. 可行性：论证方案的科学性`,

	domain.SectionInnovation: `你正在撰写国自然申请书的"创新点"部分。

要求：
1. 提炼2-4个创新点
2. 区分类型：理论创新、方法创新、应用创新
3. 具体说明创新之处
4. 与现有研究对比，说明独特性
5. 避免泛泛而谈

格式：创新点一：...`,

	domain.SectionOutcomes: `你正在撰写国自然申请书的"预期成果"部分。

要求：
1. 学术成果：论文数量和级别
2. 知识产权：专利、软著等
3. 人才培养：研究生培养
4. 应用价值：技术应用前景
5. 指标需具体可量化`,

	domain.SectionFoundation: `你正在撰写国自然申请书的"研究基础"部分。

要求：
1. 前期研究积累
2. 团队构成和专长
3. 实验条件和平台
4. 合作资源
5. 论证具备完成研究的能力`,
}
