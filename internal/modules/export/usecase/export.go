package usecase

import (
	"context"
	"fmt"

	coursein "focusdeck/internal/modules/course/port/in"
	"focusdeck/internal/modules/export/domain"
	exportdto "focusdeck/internal/modules/export/dto"
	exportin "focusdeck/internal/modules/export/port/in"
	"focusdeck/internal/modules/export/service"
	sessionin "focusdeck/internal/modules/session/port/in"
	settingsin "focusdeck/internal/modules/settings/port/in"
	statsin "focusdeck/internal/modules/stats/port/in"
	"focusdeck/internal/platform/clock"
	"focusdeck/internal/platform/slug"
)

type Interactor struct {
	svc      *service.ExportService
	courses  coursein.Usecase
	sessions sessionin.Usecase
	stats    statsin.Usecase
	settings settingsin.Usecase
	clock    clock.Clock
}

func NewInteractor(
	svc *service.ExportService,
	courses coursein.Usecase,
	sessions sessionin.Usecase,
	stats statsin.Usecase,
	settings settingsin.Usecase,
	clk clock.Clock,
) exportin.Usecase {
	return &Interactor{
		svc:      svc,
		courses:  courses,
		sessions: sessions,
		stats:    stats,
		settings: settings,
		clock:    clk,
	}
}

func (i *Interactor) Report(ctx context.Context, input exportdto.ReportInput) (exportdto.ReportOutput, error) {
	sessions, err := i.loadSessions(ctx)
	if err != nil {
		return exportdto.ReportOutput{}, err
	}
	overview, err := i.stats.Overview(ctx)
	if err != nil {
		return exportdto.ReportOutput{}, err
	}
	profile, err := i.settings.Profile(ctx)
	if err != nil {
		return exportdto.ReportOutput{}, err
	}

	breakdown := make([]domain.CourseShare, 0, len(overview.Breakdown))
	for _, share := range overview.Breakdown {
		breakdown = append(breakdown, domain.CourseShare{
			CourseName:      share.CourseName,
			DurationSeconds: share.DurationSeconds,
			Sessions:        share.Sessions,
			Percent:         share.Percent,
		})
	}
	report := domain.Report{
		GeneratedAt: i.clock.Now(),
		ProfileName: profile.Name,
		Summary: domain.Summary{
			TotalSeconds:    overview.TotalSeconds,
			FullSessions:    overview.FullSessions,
			PartialSessions: overview.PartialSessions,
			AverageSeconds:  overview.AverageSeconds,
			StreakDays:      overview.StreakDays,
			Breakdown:       breakdown,
		},
		Sessions: sessions,
	}

	path := input.OutPath
	if path == "" {
		path = i.defaultPath(profile.Name, "md")
	}
	if err := i.svc.WriteReport(ctx, path, report); err != nil {
		return exportdto.ReportOutput{}, err
	}
	return exportdto.ReportOutput{Path: path, Sessions: len(sessions)}, nil
}

func (i *Interactor) CSV(ctx context.Context, input exportdto.CSVInput) (exportdto.CSVOutput, error) {
	sessions, err := i.loadSessions(ctx)
	if err != nil {
		return exportdto.CSVOutput{}, err
	}
	path := input.OutPath
	if path == "" {
		profile, err := i.settings.Profile(ctx)
		if err != nil {
			return exportdto.CSVOutput{}, err
		}
		path = i.defaultPath(profile.Name, "csv")
	}
	if err := i.svc.WriteCSV(ctx, path, sessions); err != nil {
		return exportdto.CSVOutput{}, err
	}
	return exportdto.CSVOutput{Path: path, Rows: len(sessions)}, nil
}

// loadSessions joins the session list with course names. Sessions for
// deleted courses cannot occur (deletion cascades), but an unknown id
// still degrades to an empty name rather than failing the export.
func (i *Interactor) loadSessions(ctx context.Context) ([]domain.Session, error) {
	records, err := i.sessions.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := i.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(courses))
	for _, course := range courses {
		names[course.ID] = course.Name
	}
	out := make([]domain.Session, 0, len(records))
	for _, record := range records {
		out = append(out, domain.Session{
			ID:              record.ID,
			CourseID:        record.CourseID,
			CourseName:      names[record.CourseID],
			StartAt:         record.StartAt,
			DurationSeconds: record.DurationSeconds,
			TargetSeconds:   record.TargetSeconds,
			IsPartial:       record.IsPartial,
		})
	}
	return out, nil
}

func (i *Interactor) defaultPath(profileName, ext string) string {
	date := i.clock.Now().Format("2006-01-02")
	return fmt.Sprintf("study-report-%s-%s.%s", slug.Make(profileName), date, ext)
}
