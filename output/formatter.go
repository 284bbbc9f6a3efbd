package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/s0up4200/instantly/models"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const dateFormat = "2006-01-02"

// Formatter writes records to w as an aligned table or as JSON
type Formatter struct {
	w      io.Writer
	format string
}

// NewFormatter creates a formatter. Unknown formats fall back to table.
func NewFormatter(w io.Writer, format string) *Formatter {
	if format != FormatJSON {
		format = FormatTable
	}
	return &Formatter{w: w, format: format}
}

// JSON reports whether the formatter emits JSON
func (f *Formatter) JSON() bool {
	return f.format == FormatJSON
}

// FormatAccounts prints email accounts
func (f *Formatter) FormatAccounts(accounts []models.Account) error {
	return formatList(f, "account", accounts, []string{"EMAIL", "NAME", "STATUS", "DAILY LIMIT", "CREATED"},
		func(a models.Account) []string {
			return []string{a.Email, joinName(a.FirstName, a.LastName), a.Status.String(), intPtr(a.DailyLimit), date(&a.CreatedAt)}
		})
}

// FormatCampaigns prints campaigns
func (f *Formatter) FormatCampaigns(campaigns []models.Campaign) error {
	return formatList(f, "campaign", campaigns, []string{"ID", "NAME", "STATUS", "DAILY LIMIT", "CREATED"},
		func(c models.Campaign) []string {
			return []string{c.ID, c.Name, string(c.Status), intPtr(c.DailyLimit), date(&c.CreatedAt)}
		})
}

// FormatCampaignAnalytics prints per-campaign analytics
func (f *Formatter) FormatCampaignAnalytics(stats []models.CampaignAnalytics) error {
	return formatList(f, "campaign", stats, []string{"CAMPAIGN", "LEADS", "CONTACTED", "SENT", "OPENS"},
		func(s models.CampaignAnalytics) []string {
			name := s.CampaignName
			if name == "" {
				name = s.CampaignID
			}
			if name == "" {
				name = "(all)"
			}
			return []string{name, strconv.Itoa(s.LeadsCount), strconv.Itoa(s.ContactedCount),
				strconv.Itoa(s.EmailsSentCount), strconv.Itoa(s.OpenCount)}
		})
}

// FormatLeads prints leads
func (f *Formatter) FormatLeads(leads []models.Lead) error {
	return formatList(f, "lead", leads, []string{"ID", "EMAIL", "NAME", "COMPANY", "STATUS", "OPENS", "CREATED"},
		func(l models.Lead) []string {
			status := ""
			if l.Status != nil {
				status = l.Status.String()
			}
			return []string{l.ID, l.Email, l.FullName(), l.CompanyName, status,
				strconv.Itoa(l.EmailOpenCount), date(l.CreatedAt)}
		})
}

// FormatBackgroundJobs prints background jobs
func (f *Formatter) FormatBackgroundJobs(jobs []models.BackgroundJob) error {
	return formatList(f, "job", jobs, []string{"ID", "TYPE", "STATUS", "PROGRESS", "CREATED"},
		func(j models.BackgroundJob) []string {
			return []string{j.ID, string(j.Type), string(j.Status), strconv.Itoa(j.Progress) + "%", date(&j.CreatedAt)}
		})
}

// FormatBlockList prints block list entries
func (f *Formatter) FormatBlockList(entries []models.BlockListEntry) error {
	return formatList(f, "block list entry", entries, []string{"ID", "TYPE", "VALUE", "REASON", "EXPIRES"},
		func(e models.BlockListEntry) []string {
			return []string{e.ID, string(e.Type), e.Value, e.Reason, date(e.ExpiresAt)}
		})
}

// FormatCustomTags prints custom tags
func (f *Formatter) FormatCustomTags(tags []models.CustomTag) error {
	return formatList(f, "tag", tags, []string{"ID", "NAME", "COLOR", "RESOURCES"},
		func(t models.CustomTag) []string {
			return []string{t.ID, t.Name, t.Color, strconv.Itoa(len(t.ResourceIDs))}
		})
}

// FormatVerification prints an email verification result
func (f *Formatter) FormatVerification(v *models.EmailVerification) error {
	if f.JSON() {
		return f.encode(v)
	}
	catchAll := "unknown"
	if v.CatchAll != nil {
		catchAll = strconv.FormatBool(*v.CatchAll)
	}
	return f.pairs([][2]string{
		{"Email", v.Email},
		{"Status", v.Status},
		{"Catch-all", catchAll},
	})
}

// FormatWorkspace prints the current workspace
func (f *Formatter) FormatWorkspace(ws *models.Workspace) error {
	if f.JSON() {
		return f.encode(ws)
	}
	return f.pairs([][2]string{
		{"Workspace", ws.Name},
		{"ID", ws.ID.String()},
		{"Plan", ws.Plan},
		{"Timezone", ws.Timezone},
	})
}

// FormatAction prints the acknowledgement of an action endpoint
func (f *Formatter) FormatAction(what string, result *models.ActionResult) error {
	if f.JSON() {
		return f.encode(result)
	}
	mark := "✓"
	if !result.OK() {
		mark = "✗"
	}
	line := fmt.Sprintf("%s %s", mark, what)
	if result.Message != "" {
		line += ": " + result.Message
	}
	_, err := fmt.Fprintln(f.w, line)
	return err
}

// Overview aggregates workspace totals for the overview command
type Overview struct {
	Workspace      *models.Workspace         `json:"workspace"`
	Accounts       int                       `json:"accounts"`
	Campaigns      int                       `json:"campaigns"`
	ActiveJobs     int                       `json:"active_jobs"`
	BlockedEntries int                       `json:"blocked_entries"`
	Analytics      *models.CampaignAnalytics `json:"analytics,omitempty"`
}

// FormatOverview prints workspace totals
func (f *Formatter) FormatOverview(o Overview) error {
	if f.JSON() {
		return f.encode(o)
	}
	rows := make([][2]string, 0, 9)
	if o.Workspace != nil {
		rows = append(rows, [2]string{"Workspace", o.Workspace.Name})
	}
	rows = append(rows,
		[2]string{"Accounts", strconv.Itoa(o.Accounts)},
		[2]string{"Campaigns", strconv.Itoa(o.Campaigns)},
		[2]string{"Active jobs", strconv.Itoa(o.ActiveJobs)},
		[2]string{"Block list entries", strconv.Itoa(o.BlockedEntries)},
	)
	if a := o.Analytics; a != nil {
		rows = append(rows,
			[2]string{"Emails sent", strconv.Itoa(a.EmailsSentCount)},
			[2]string{"Replies", strconv.Itoa(a.ReplyCount)},
			[2]string{"Reply rate", strconv.FormatFloat(a.ReplyRate()*100, 'f', 1, 64) + "%"},
		)
	}
	return f.pairs(rows)
}

func formatList[T any](f *Formatter, noun string, records []T, headers []string, row func(T) []string) error {
	if f.JSON() {
		if records == nil {
			records = []T{}
		}
		return f.encode(records)
	}
	if len(records) == 0 {
		_, err := fmt.Fprintf(f.w, "No %ss found\n", noun)
		return err
	}

	tw := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range records {
		fmt.Fprintln(tw, strings.Join(row(r), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	plural := noun + "s"
	if len(records) == 1 {
		plural = noun
	}
	_, err := fmt.Fprintf(f.w, "\n%d %s\n", len(records), plural)
	return err
}

func (f *Formatter) pairs(rows [][2]string) error {
	tw := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}

func (f *Formatter) encode(v any) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func intPtr(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func date(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return ts.UTC().Format(dateFormat)
}
