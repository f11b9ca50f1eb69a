package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"focusdeck/internal/modules/export/domain"
	exportout "focusdeck/internal/modules/export/port/out"
	"focusdeck/internal/platform/markdown"
)

const timeLayout = "2006-01-02 15:04"

type ExportService struct {
	writer exportout.Writer
}

func NewExportService(writer exportout.Writer) *ExportService {
	return &ExportService{writer: writer}
}

func (s *ExportService) WriteReport(ctx context.Context, path string, report domain.Report) error {
	content, err := renderReport(report)
	if err != nil {
		return err
	}
	return s.writer.Write(ctx, path, []byte(content))
}

func (s *ExportService) WriteCSV(ctx context.Context, path string, sessions []domain.Session) error {
	buf := bytes.Buffer{}
	w := csv.NewWriter(&buf)
	header := []string{"id", "course_id", "course_name", "start_at", "duration_seconds", "target_seconds", "is_partial"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, session := range sessions {
		row := []string{
			session.ID,
			session.CourseID,
			session.CourseName,
			session.StartAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			strconv.Itoa(session.DurationSeconds),
			strconv.Itoa(session.TargetSeconds),
			strconv.FormatBool(session.IsPartial),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return s.writer.Write(ctx, path, buf.Bytes())
}

func renderReport(report domain.Report) (string, error) {
	meta := map[string]any{
		"generated_at":  report.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		"profile":       report.ProfileName,
		"total_seconds": report.Summary.TotalSeconds,
		"sessions":      report.Summary.FullSessions + report.Summary.PartialSessions,
		"streak_days":   report.Summary.StreakDays,
	}

	body := strings.Builder{}
	body.WriteString("# Study report\n\n")
	fmt.Fprintf(&body, "Total study time: **%s** across %d sessions (%d full, %d partial).\n",
		domain.FormatDuration(report.Summary.TotalSeconds),
		report.Summary.FullSessions+report.Summary.PartialSessions,
		report.Summary.FullSessions,
		report.Summary.PartialSessions)
	fmt.Fprintf(&body, "Average session: %s. Current streak: %d day(s).\n\n",
		domain.FormatDuration(report.Summary.AverageSeconds),
		report.Summary.StreakDays)

	body.WriteString("## Per course\n\n")
	if len(report.Summary.Breakdown) == 0 {
		body.WriteString("No study time recorded yet.\n\n")
	} else {
		body.WriteString("| Course | Time | Sessions | Share |\n")
		body.WriteString("| --- | --- | --- | --- |\n")
		for _, share := range report.Summary.Breakdown {
			fmt.Fprintf(&body, "| %s | %s | %d | %.1f%% |\n",
				share.CourseName,
				domain.FormatDuration(share.DurationSeconds),
				share.Sessions,
				share.Percent)
		}
		body.WriteString("\n")
	}

	body.WriteString("## Sessions\n\n")
	if len(report.Sessions) == 0 {
		body.WriteString("None.\n")
	} else {
		sessions := make([]domain.Session, len(report.Sessions))
		copy(sessions, report.Sessions)
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].StartAt.After(sessions[j].StartAt)
		})
		body.WriteString("| Started | Course | Duration | Target | Outcome |\n")
		body.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, session := range sessions {
			outcome := "completed"
			if session.IsPartial {
				outcome = "partial"
			}
			fmt.Fprintf(&body, "| %s | %s | %s | %s | %s |\n",
				session.StartAt.UTC().Format(timeLayout),
				session.CourseName,
				domain.FormatDuration(session.DurationSeconds),
				domain.FormatDuration(session.TargetSeconds),
				outcome)
		}
	}

	return markdown.RenderFrontmatter(meta, body.String())
}
