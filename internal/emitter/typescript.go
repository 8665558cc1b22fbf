package emitter

import (
	"fmt"
	"strings"
	"time"

	"sjsage522/aitoolscraper/helpers"
	"sjsage522/aitoolscraper/internal/crawler"
)

const (
	// FixtureDescriptionLimit caps descriptions written into the fixture
	FixtureDescriptionLimit = 150
	// ToolIDLimit caps generated ids
	ToolIDLimit = 20
)

// fixtureTimeLayout formats the generation time in the fixture header
const fixtureTimeLayout = "2006-01-02 15:04:05"

// ToolID derives a stable identifier from name: lowercase ASCII letters and
// digits only, at most ToolIDLimit characters, "tool<index>" when nothing is left.
func ToolID(name string, index int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == ToolIDLimit {
				break
			}
		}
	}
	if b.Len() == 0 {
		return fmt.Sprintf("tool%d", index)
	}
	return b.String()
}

// quote escapes s for a single-quoted TypeScript string literal
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// fixtureDescription flattens line breaks and truncates before escaping
func fixtureDescription(desc string) string {
	desc = strings.NewReplacer("\r", " ", "\n", " ").Replace(desc)
	return helpers.TruncateRunes(desc, FixtureDescriptionLimit)
}

// category falls back to chat for records without a known category
func category(record crawler.ToolRecord) crawler.Category {
	if !record.Category.Valid() {
		return crawler.CategoryChat
	}
	return record.Category
}

// RenderFixture renders records as a TypeScript module exporting scrapedTools
func RenderFixture(records []crawler.ToolRecord, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("import type { AITool } from './ai-tools-mock';\n\n")
	b.WriteString("// 从 ai-bot.cn 抓取的AI工具数据\n")
	fmt.Fprintf(&b, "// 生成时间: %s\n", generatedAt.Format(fixtureTimeLayout))
	fmt.Fprintf(&b, "// 工具数量: %d\n\n", len(records))
	b.WriteString("export const scrapedTools: AITool[] = [\n")

	for i, record := range records {
		b.WriteString("    {\n")
		fmt.Fprintf(&b, "        id: '%s',\n", ToolID(record.Name, i))
		fmt.Fprintf(&b, "        name: '%s',\n", quote(record.Name))
		fmt.Fprintf(&b, "        description: '%s',\n", quote(fixtureDescription(record.Description)))
		fmt.Fprintf(&b, "        icon: '%s',\n", quote(record.Icon))
		fmt.Fprintf(&b, "        category: '%s',\n", category(record))
		b.WriteString("        tags: [],\n")
		fmt.Fprintf(&b, "        url: '%s',\n", quote(record.URL))
		fmt.Fprintf(&b, "        isHot: %t,\n", record.IsHot)
		b.WriteString("    },\n")
	}

	b.WriteString("];\n")
	return b.String()
}
