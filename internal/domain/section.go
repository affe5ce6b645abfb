package domain

// SectionName identifies one part of an NSFC proposal.
type SectionName string

// The six canonical proposal sections, in submission order.
const (
	SectionRationale  SectionName = "立项依据"
	SectionContent    SectionName = "研究内容"
	SectionPlan       SectionName = "研究方案"
	SectionInnovation SectionName = "创新点"
	SectionOutcomes   SectionName = "预期成果"
	SectionFoundation SectionName = "研究基础"

	// SectionFullText is the synthetic section used when no canonical
	// heading could be located in a document.
	SectionFullText SectionName = "全文"
)

// CanonicalOrder is the fixed section order used when reassembling a
// proposal from per-section results.
var CanonicalOrder = []SectionName{
	SectionRationale,
	SectionContent,
	SectionPlan,
	SectionInnovation,
	SectionOutcomes,
	SectionFoundation,
}

var canonicalSet = map[SectionName]bool{
	SectionRationale:  true,
	SectionContent:    true,
	SectionPlan:       true,
	SectionInnovation: true,
	SectionOutcomes:   true,
	SectionFoundation: true,
}

// IsCanonical returns true if name is one of the six canonical sections.
func IsCanonical(name SectionName) bool {
	return canonicalSet[name]
}

// Section is one contiguous span of proposal text, keyed by section name.
type Section struct {
	Name    SectionName
	Content string
}
