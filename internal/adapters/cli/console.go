package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"presensicheck/internal/domain"
	"presensicheck/internal/domain/entities"
	"presensicheck/internal/ports/output"
)

const ruleWidth = 60

var _ output.Confirmer = (*Console)(nil)

// Console writes localized report text and reads the cleanup confirmation.
type Console struct {
	out        io.Writer
	in         *bufio.Reader
	translator output.T
	locale     string
}

func NewConsole(out io.Writer, in io.Reader, translator output.T, locale string) *Console {
	return &Console{
		out:        out,
		in:         bufio.NewReader(in),
		translator: translator,
		locale:     locale,
	}
}

func (c *Console) t(key string, data map[string]any) string {
	return c.translator.T(c.locale, key, data)
}

func (c *Console) line(key string, data map[string]any) {
	fmt.Fprintln(c.out, c.t(key, data))
}

func (c *Console) blank() {
	fmt.Fprintln(c.out)
}

func (c *Console) rule(ch string) {
	fmt.Fprintln(c.out, strings.Repeat(ch, ruleWidth))
}

// orDash renders NULL/empty columns.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// IsConfirmation reports whether answer is "yes" in any letter case.
// Only the line terminator is stripped.
func IsConfirmation(answer string) bool {
	return strings.EqualFold(strings.TrimRight(answer, "\r\n"), "yes")
}

// Confirm prompts with the participant count and reads one line.
// End of input without an answer counts as a refusal.
func (c *Console) Confirm(_ context.Context, total int64) (bool, error) {
	fmt.Fprint(c.out, c.t("cleanup.prompt", map[string]any{"Total": total}))
	answer, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	if errors.Is(err, io.EOF) {
		// Keep the next message off the prompt line.
		c.blank()
	}
	return IsConfirmation(answer), nil
}

func (c *Console) Header() {
	c.rule("=")
	c.line("verify.title", nil)
	c.rule("=")
	c.blank()
}

func (c *Console) NotFound(user, database string) {
	c.line("verify.not_found", nil)
	c.line("verify.not_found_hint", map[string]any{"User": user, "Database": database})
}

func (c *Console) VerifyReport(r *entities.VerifyReport, apiBaseURL string) {
	c.line("verify.event_found", nil)
	c.line("verify.event_id", map[string]any{"ID": r.Event.ID})
	c.line("verify.event_name", map[string]any{"Name": orDash(r.Event.Name)})
	c.line("verify.event_reference", map[string]any{"Reference": r.Event.Reference})
	c.blank()

	c.line("verify.total", map[string]any{"Total": r.Total})
	if r.Mismatch() {
		c.line("verify.mismatch", map[string]any{"Expected": r.Expected, "Total": r.Total})
	}
	c.blank()

	c.line("verify.sample_title", nil)
	c.rule("-")
	for i, p := range r.Sample {
		c.line("verify.sample_name", map[string]any{"Index": i + 1, "Name": orDash(p.FullName)})
		c.line("verify.sample_email", map[string]any{"Email": orDash(p.Email)})
		c.line("verify.sample_unit", map[string]any{"Unit": orDash(p.Unit)})
		c.line("verify.sample_province", map[string]any{"Province": orDash(p.Province)})
		c.line("verify.sample_certificate", map[string]any{"Certificate": orDash(p.CertificateNumber)})
		c.blank()
	}

	c.groups("verify.domains_title", r.EmailDomains)
	c.groups("verify.provinces_title", r.TopProvinces)

	c.rule("=")
	c.line("verify.complete", nil)
	c.blank()
	c.line("verify.next_steps", nil)
	c.line("verify.next_redis", nil)
	c.line("verify.next_backend", nil)
	c.line("verify.next_dashboard", map[string]any{"BaseURL": apiBaseURL})
	c.line("verify.next_generate", map[string]any{"ID": r.Event.ID})
	c.rule("=")
}

func (c *Console) groups(titleKey string, groups []entities.GroupCount) {
	c.line(titleKey, nil)
	if len(groups) == 0 {
		c.line("verify.none", nil)
	}
	for _, g := range groups {
		c.line("verify.group_line", map[string]any{"Key": orDash(g.Key), "Count": g.Count})
	}
	c.blank()
}

func (c *Console) CleanupHint(program string) {
	c.blank()
	c.line("verify.cleanup_hint", map[string]any{"Program": program})
}

func (c *Console) CleanupNotFound() {
	c.line("cleanup.not_found", nil)
}

func (c *Console) CleanupResult(r *entities.CleanupResult) {
	if r.Cancelled {
		c.line("cleanup.cancelled", nil)
		return
	}
	c.line("cleanup.done", map[string]any{"Deleted": r.Deleted})
}

// Error prints err under the database label or the generic one.
func (c *Console) Error(err error) {
	key := "error.generic"
	if domain.IsDatabaseError(err) {
		key = "error.database"
	}
	c.line(key, map[string]any{"Err": err.Error()})
}
