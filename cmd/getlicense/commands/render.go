package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/getlicense/internal/app"
	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/ui/output"
	"go.trai.ch/getlicense/internal/ui/style"
)

// printer renders command results.
type printer struct {
	w  io.Writer
	r  *lipgloss.Renderer
	st style.Styles
	sb strings.Builder
}

func newPrinter(w io.Writer) *printer {
	r := output.Renderer(w)
	return &printer{w: w, r: r, st: style.New(r)}
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(&p.sb, format, args...)
	p.sb.WriteByte('\n')
}

func (p *printer) flush() error {
	_, err := io.WriteString(p.w, p.sb.String())
	p.sb.Reset()
	return err
}

func (p *printer) ok(format string, args ...any) {
	p.line("%s %s", p.st.Good.Render(style.Check), fmt.Sprintf(format, args...))
}

func (p *printer) newTable(headers ...string) *table.Table {
	cell := p.r.NewStyle().Padding(0, 1)
	head := p.st.Label.Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.st.Border).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return cell
		})
}

func (p *printer) syncReport(r *app.SyncReport) error {
	state := "is up to date"
	if r.Fetched {
		state = "updated"
	}
	p.ok("License cache %s: %d licenses, %d data files", state, r.Licenses, r.DataFiles)
	return p.flush()
}

func (p *printer) licenseList(entries []domain.LicenseEntry) error {
	if len(entries) == 0 {
		p.line("No licenses found.")
		return p.flush()
	}

	width := 0
	for i := range entries {
		width = max(width, len(entries[i].SpdxID))
	}

	p.line("%s", p.st.Label.Render(fmt.Sprintf("Licenses (%d)", len(entries))))
	for i := range entries {
		id := entries[i].SpdxID
		pad := strings.Repeat(" ", width-len(id))
		p.line("  %s%s  %s", p.st.Heading.Render(id), pad, entries[i].Title)
	}
	return p.flush()
}

func (p *printer) detailedList(entries []domain.LicenseEntry) error {
	if len(entries) == 0 {
		p.line("No licenses found.")
		return p.flush()
	}

	t := p.newTable("SPDX ID", "Title", "Nickname", "Permissions", "Conditions", "Limitations")
	for i := range entries {
		e := &entries[i]
		rules := e.InfoComponents.ParsedRules
		t.Row(
			e.SpdxID,
			e.Title,
			e.Nickname,
			joinLabels(rules.Permissions),
			joinLabels(rules.Conditions),
			joinLabels(rules.Limitations),
		)
	}
	p.line("%s", t.Render())
	return p.flush()
}

func joinLabels(details []domain.RuleDetail) string {
	labels := make([]string, 0, len(details))
	for _, d := range details {
		labels = append(labels, d.Label)
	}
	return strings.Join(labels, "\n")
}

func (p *printer) licenseInfo(info *app.LicenseInfo) error {
	e := &info.Entry
	p.line("%s (%s)", p.st.Heading.Render(e.Title), e.SpdxID)
	if e.Nickname != "" {
		p.field("Nickname", e.Nickname)
	}
	if e.Description != "" {
		p.field("Description", e.Description)
	}
	if e.InfoComponents.HowToApplyText != "" {
		p.field("How to apply", e.InfoComponents.HowToApplyText)
	}
	if e.InfoComponents.NoteText != "" {
		p.field("Note", e.InfoComponents.NoteText)
	}

	rules := e.InfoComponents.ParsedRules
	p.rules("Permissions", p.st.Good.Render(style.Check), rules.Permissions)
	p.rules("Conditions", p.st.Warn.Render(style.Warning), rules.Conditions)
	p.rules("Limitations", p.st.Bad.Render(style.Cross), rules.Limitations)

	if len(e.InfoComponents.UsingInfo) > 0 {
		p.line("")
		p.line("%s", p.st.Label.Render("Used by"))
		names := make([]string, 0, len(e.InfoComponents.UsingInfo))
		for name := range e.InfoComponents.UsingInfo {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p.line("  %s: %s", name, p.st.Muted.Render(e.InfoComponents.UsingInfo[name]))
		}
	}

	if len(info.Placeholders) > 0 {
		p.line("")
		p.line("%s", p.st.Label.Render("Placeholders"))
		for _, ph := range info.Placeholders {
			p.line("  %s%s", ph.Token, p.placeholderNote(ph))
		}
	}
	return p.flush()
}

func (p *printer) field(label, value string) {
	p.line("%s %s", p.st.Label.Render(label+":"), value)
}

func (p *printer) rules(title, icon string, details []domain.RuleDetail) {
	if len(details) == 0 {
		return
	}
	p.line("")
	p.line("%s", p.st.Label.Render(title))
	for _, d := range details {
		p.line("  %s %s: %s", icon, d.Label, p.st.Muted.Render(d.Description))
	}
}

func (p *printer) placeholderNote(ph app.PlaceholderInfo) string {
	var parts []string
	if ph.Description != "" {
		parts = append(parts, ph.Description)
	}
	if ph.Hint != "" {
		parts = append(parts, "set with "+ph.Hint)
	}
	if ph.Saved != "" {
		parts = append(parts, "saved: "+ph.Saved)
	}
	if ph.Key == "" {
		parts = append(parts, "not filled automatically")
	}
	return "  " + p.st.Muted.Render(strings.Join(parts, "; "))
}

func (p *printer) placeholderTable(info *app.LicenseInfo) error {
	if len(info.Placeholders) == 0 {
		p.line("%s has no placeholders.", info.Entry.SpdxID)
		return p.flush()
	}

	t := p.newTable("Placeholder", "Key", "Saved value", "Flag")
	for _, ph := range info.Placeholders {
		key, hint := ph.Key, ph.Hint
		if key == "" {
			key, hint = "unknown", "-"
		}
		t.Row(ph.Token, key, ph.Saved, hint)
	}
	p.line("Placeholders in %s", p.st.Heading.Render(info.Entry.SpdxID))
	p.line("%s", t.Render())
	return p.flush()
}

func (p *printer) comparison(cmp *app.Comparison) error {
	ids := make([]string, 0, len(cmp.Licenses))
	for i := range cmp.Licenses {
		ids = append(ids, cmp.Licenses[i].SpdxID)
	}
	p.line("Comparing: %s", p.st.Heading.Render(strings.Join(ids, ", ")))

	headers := append([]string{"SPDX ID"}, cmp.Labels...)
	t := p.newTable(headers...)
	cell := p.r.NewStyle().Padding(0, 1)
	head := p.st.Label.Padding(0, 1)
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return head
		case col == 0:
			return cell
		case cmp.Marks[row][col-1]:
			return p.st.Good.Padding(0, 1)
		default:
			return p.st.Bad.Padding(0, 1)
		}
	})

	for i := range cmp.Licenses {
		row := []string{cmp.Licenses[i].SpdxID}
		for _, has := range cmp.Marks[i] {
			mark := style.Cross
			if has {
				mark = style.Check
			}
			row = append(row, mark)
		}
		t.Row(row...)
	}
	p.line("%s", t.Render())
	return p.flush()
}

func (p *printer) findResult(res *app.FindResult) error {
	p.line("Require:  %s", p.tagList(res.Require))
	p.line("Disallow: %s", p.tagList(res.Disallow))

	if len(res.Matches) == 0 {
		p.line("No licenses match all criteria.")
		return p.flush()
	}
	p.line("Found %d matching license(s):", len(res.Matches))
	for i := range res.Matches {
		p.line("  - %s (%s)", p.st.Heading.Render(res.Matches[i].SpdxID), res.Matches[i].Title)
	}
	return p.flush()
}

func (p *printer) tagList(tags []string) string {
	if len(tags) == 0 {
		return p.st.Muted.Render("none")
	}
	return strings.Join(tags, ", ")
}

func (p *printer) fillResult(res *app.FillResult) error {
	p.ok("Wrote %s using %s (%s)", res.OutputPath, res.Entry.Title, res.Entry.SpdxID)
	if len(res.Unfilled) == 0 {
		return p.flush()
	}

	p.line("%s", p.st.Warn.Render("Unfilled placeholders:"))
	for _, token := range res.Unfilled {
		if hint, ok := res.Hints[token]; ok {
			p.line("  %s  %s", token, p.st.Muted.Render("set with "+hint))
			continue
		}
		p.line("  %s", token)
	}
	return p.flush()
}

func (p *printer) placeholderSet(key, value string) error {
	p.ok("Saved %s = %s", strings.ToLower(strings.TrimSpace(key)), value)
	return p.flush()
}

func (p *printer) placeholderValues(key string, values []app.PlaceholderValue) error {
	if len(values) == 0 {
		if key != "" {
			p.line("No saved value for %s.", key)
		} else {
			p.line("No saved placeholder values.")
		}
		return p.flush()
	}
	for _, v := range values {
		p.line("%s: %s", p.st.Label.Render(v.Key), v.Value)
	}
	return p.flush()
}

func (p *printer) placeholdersCleared(cleared []string) error {
	if len(cleared) == 0 {
		p.line("No saved placeholder values to clear.")
		return p.flush()
	}
	p.ok("Cleared %s", strings.Join(cleared, ", "))
	return p.flush()
}
