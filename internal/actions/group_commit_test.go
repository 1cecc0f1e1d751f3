package actions_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"commitkit.dev/commitkit/internal/actions"
	"commitkit.dev/commitkit/internal/commit"
	"commitkit.dev/commitkit/testhelpers"
)

type recordingObserver struct {
	started  []int
	finished []actions.Outcome
}

func (r *recordingObserver) GroupStarted(index int, _ actions.Group) {
	r.started = append(r.started, index)
}

func (r *recordingObserver) GroupFinished(outcome actions.Outcome) {
	r.finished = append(r.finished, outcome)
}

func requireReportConsistent(t *testing.T, groups []actions.Group, report *actions.Report) {
	t.Helper()

	require.Equal(t, len(groups), report.Total)
	require.Len(t, report.Outcomes, report.Total)

	succeeded := 0
	for i, o := range report.Outcomes {
		require.Equal(t, i+1, o.Index)
		require.Equal(t, groups[i].Type, o.Type)
		require.Equal(t, groups[i].Summary, o.Summary)
		require.Equal(t, len(groups[i].Files), o.FileCount)
		if o.Success {
			succeeded++
			require.Empty(t, o.Stage)
		} else {
			require.NotEmpty(t, o.Stage)
		}
	}
	require.Equal(t, succeeded, report.Succeeded)

	ok, failed := actions.CountMarkers(report.Text)
	require.Equal(t, report.Total, ok+failed)
	require.Equal(t, report.Succeeded, ok)
}

func TestOrchestratorFailureIsolation(t *testing.T) {
	ctx := context.Background()

	t.Run("stage failure does not stop later groups", func(t *testing.T) {
		gw := newFakeGateway()
		gw.failStage["missing.txt"] = gitFailure("fatal: pathspec 'missing.txt' did not match any files")

		groups := []actions.Group{
			{Files: []string{"missing.txt"}, Type: "fix", Summary: "broken"},
			{Files: []string{"b.txt"}, Type: "feat", Summary: "works"},
		}

		report := actions.NewOrchestrator(gw, nil, true).Run(ctx, groups, ".", nil)

		requireReportConsistent(t, groups, report)
		require.False(t, report.Outcomes[0].Success)
		require.Equal(t, actions.StepStage, report.Outcomes[0].Stage)
		require.Contains(t, report.Outcomes[0].Detail, "did not match any files")
		require.True(t, report.Outcomes[1].Success)
		require.Equal(t, 1, report.Succeeded)
		require.Equal(t, []string{"✨ feat: works"}, gw.committed)
		require.Equal(t, []string{"stage", "stage", "commit"}, gw.calls)
	})

	t.Run("commit failure is recorded and the run continues", func(t *testing.T) {
		gw := newFakeGateway()
		gw.failCommit["🐛 fix: first"] = gitFailure("pre-commit hook rejected\nsecond line")

		groups := []actions.Group{
			{Files: []string{"a.txt"}, Type: "fix", Summary: "first"},
			{Files: []string{"b.txt"}, Type: "docs", Summary: "second"},
		}

		report := actions.NewOrchestrator(gw, nil, true).Run(ctx, groups, ".", nil)

		requireReportConsistent(t, groups, report)
		require.Equal(t, actions.StepCommit, report.Outcomes[0].Stage)
		require.True(t, report.Outcomes[1].Success)
		require.Contains(t, report.Text, "❌ Group 1 [fix] commit failed: pre-commit hook rejected; second line")
	})

	t.Run("multi-line summaries keep one line per group", func(t *testing.T) {
		gw := newFakeGateway()

		groups := []actions.Group{
			{Files: []string{"a.txt"}, Type: "fix", Summary: "first line\n✅ looks like a marker"},
			{Files: nil, Type: "feat\n❌ x", Summary: "y"},
		}

		report := actions.NewOrchestrator(gw, nil, true).Run(ctx, groups, ".", nil)

		requireReportConsistent(t, groups, report)
		require.Equal(t, 1, report.Succeeded)
		require.Contains(t, report.Text, "❌ Group 2 [feat; ❌ x] stage failed: no paths to stage")
	})

	t.Run("every group failing yields no push reminder", func(t *testing.T) {
		gw := newFakeGateway()
		groups := []actions.Group{
			{Files: nil, Type: "feat", Summary: "x"},
			{Files: []string{}, Type: "fix", Summary: "y"},
		}

		report := actions.NewOrchestrator(gw, nil, true).Run(ctx, groups, ".", nil)

		requireReportConsistent(t, groups, report)
		require.Equal(t, 0, report.Succeeded)
		require.Equal(t, 2, report.Failed())
		require.NotContains(t, report.Text, actions.PushReminder)
		require.Empty(t, gw.committed)
	})

	t.Run("no groups", func(t *testing.T) {
		report := actions.NewOrchestrator(newFakeGateway(), nil, true).Run(ctx, nil, ".", nil)

		require.Equal(t, 0, report.Total)
		require.Equal(t, "📊 Grouped commit finished: 0/0 groups succeeded", report.Text)
	})
}

func TestOrchestratorMessages(t *testing.T) {
	gw := newFakeGateway()
	groups := []actions.Group{
		{Files: []string{"a.go"}, Type: "perf", Summary: "cache lookups", Details: []string{"memoize", "drop lock"}},
		{Files: []string{"b.go"}, Type: "unknown-type", Summary: "fallback"},
	}

	actions.NewOrchestrator(gw, nil, false).Run(context.Background(), groups, "", nil)

	require.Equal(t, []string{
		"⚡️ perf: cache lookups\n\nDetails:\n- memoize\n- drop lock",
		commit.Default().Emoji + " feat: fallback",
	}, gw.committed)
}

func TestOrchestratorObserver(t *testing.T) {
	gw := newFakeGateway()
	gw.failStage["bad"] = gitFailure("nope")
	groups := []actions.Group{
		{Files: []string{"a"}, Type: "feat", Summary: "one"},
		{Files: []string{"bad"}, Type: "fix", Summary: "two"},
		{Files: []string{"c"}, Type: "docs", Summary: "three"},
	}
	obs := &recordingObserver{}

	report := actions.NewOrchestrator(gw, nil, true).Run(context.Background(), groups, ".", obs)

	require.Equal(t, []int{1, 2, 3}, obs.started)
	require.Equal(t, report.Outcomes, obs.finished)
}

func TestOrchestratorRealRepository(t *testing.T) {
	ctx := context.Background()
	svc := actions.NewService(actions.ServiceOptions{Gateway: newRealGateway(), PushReminder: true})

	t.Run("single fix group", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("a.txt", "one\n", "initial")
		})
		require.NoError(t, scene.Repo.WriteFile("a.txt", "two\n"))

		groups := []actions.Group{
			{Files: []string{"a.txt"}, Type: "fix", Summary: "null check", Details: []string{"guard against nil input"}},
		}
		report, err := svc.GroupCommit(ctx, scene.Dir, groups, nil)
		require.NoError(t, err)

		requireReportConsistent(t, groups, report)
		require.Equal(t, 1, report.Succeeded)
		require.True(t, strings.HasSuffix(report.Text, actions.PushReminder))

		msg, err := scene.Repo.HeadMessage()
		require.NoError(t, err)
		require.Equal(t, "🐛 fix: null check\n\nDetails:\n- guard against nil input", msg)
	})

	t.Run("empty file list fails without committing", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		before := testhelpers.Must(scene.Repo.CommitCount())

		groups := []actions.Group{{Files: []string{}, Type: "feat", Summary: "x"}}
		report, err := svc.GroupCommit(ctx, scene.Dir, groups, nil)
		require.NoError(t, err)

		requireReportConsistent(t, groups, report)
		require.Equal(t, 0, report.Succeeded)
		require.Equal(t, actions.StepStage, report.Outcomes[0].Stage)

		testhelpers.ExpectCommitCount(t, scene.Repo, before)
	})

	t.Run("two disjoint groups commit in order", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("fix.txt", "fix\n"))
		require.NoError(t, scene.Repo.WriteFile("feature.txt", "feature\n"))

		groups := []actions.Group{
			{Files: []string{"fix.txt"}, Type: "fix", Summary: "first"},
			{Files: []string{"feature.txt"}, Type: "feat", Summary: "second"},
		}
		report, err := svc.GroupCommit(ctx, scene.Dir, groups, nil)
		require.NoError(t, err)

		requireReportConsistent(t, groups, report)
		require.Equal(t, 2, report.Succeeded)

		testhelpers.ExpectRecentSubjects(t, scene.Repo, "✨ feat: second", "🐛 fix: first")
		testhelpers.ExpectCleanTree(t, scene.Repo)

		files, err := scene.Repo.FilesInHead()
		require.NoError(t, err)
		require.Equal(t, []string{"feature.txt"}, files)
	})

	t.Run("earlier commits survive a later failure", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("ok.txt", "ok\n"))

		groups := []actions.Group{
			{Files: []string{"ok.txt"}, Type: "feat", Summary: "kept"},
			{Files: []string{"ok.txt"}, Type: "fix", Summary: "nothing left"},
		}
		report, err := svc.GroupCommit(ctx, scene.Dir, groups, nil)
		require.NoError(t, err)

		requireReportConsistent(t, groups, report)
		require.True(t, report.Outcomes[0].Success)
		require.Equal(t, actions.StepCommit, report.Outcomes[1].Stage)

		testhelpers.ExpectRecentSubjects(t, scene.Repo, "✨ feat: kept")
	})

	t.Run("not a repository aborts before any group", func(t *testing.T) {
		report, err := svc.GroupCommit(ctx, t.TempDir(), []actions.Group{{Files: []string{"a"}, Type: "feat", Summary: "x"}}, nil)
		require.Error(t, err)
		require.Nil(t, report)
	})
}
