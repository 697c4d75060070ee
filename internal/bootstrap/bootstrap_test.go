package bootstrap_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"seedrepo.dev/seedrepo/internal/bootstrap"
	seederrors "seedrepo.dev/seedrepo/internal/errors"
	"seedrepo.dev/seedrepo/internal/git"
	"seedrepo.dev/seedrepo/internal/tui"
	"seedrepo.dev/seedrepo/testhelpers"
)

var jane = git.Signature{Name: "Jane Doe", Email: "jane@example.com"}

type recordingDiagnoser struct {
	urls []string
	hint string
}

func (d *recordingDiagnoser) Diagnose(_ context.Context, remoteURL string) string {
	d.urls = append(d.urls, remoteURL)
	return d.hint
}

func materialize(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
}

func newBootstrapper(scene *testhelpers.Scene, remoteURL string, log *bytes.Buffer, d bootstrap.Diagnoser) *bootstrap.Bootstrapper {
	return bootstrap.New(bootstrap.Options{
		RepoPath:  scene.Dir,
		RemoteURL: remoteURL,
		Author:    jane,
		Splog:     tui.NewSplogWithWriter(log, true),
		Diagnoser: d,
	})
}

func TestRunFreshDirectory(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	materialize(t, scene.Dir, "src/main.py", "docs/readme.md", "docs/license.md")

	var log bytes.Buffer
	report, err := newBootstrapper(scene, scene.Remote.Dir, &log, nil).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, bootstrap.StageAllPushed, report.Stage)
	require.True(t, report.Stage.Done())
	require.True(t, report.Created)
	require.Equal(t, []string{"dev"}, report.Branches)

	repo := scene.Repo()
	testhelpers.ExpectBranches(t, repo, []string{"dev"})
	testhelpers.ExpectCurrentBranch(t, repo, "dev")

	files, err := repo.ListTrackedFiles("dev")
	require.NoError(t, err)
	require.Equal(t, []string{"docs/license.md", "docs/readme.md", "src/main.py"}, files)

	t.Run("the first push fails before origin exists", func(t *testing.T) {
		require.Len(t, report.Pushes, 2)
		require.False(t, report.Pushes[0].OK())
		require.True(t, report.Pushes[0].SetUpstream)
		require.ErrorIs(t, report.Pushes[0].Err, seederrors.ErrPushFailed)
		require.Contains(t, log.String(), "Error pushing to the remote 'origin':")
		require.Contains(t, log.String(), "Please make sure the repository exists and you have the correct access rights.")
		require.Len(t, report.PushFailures(), 1)
	})

	t.Run("the remote is configured and dev is pushed", func(t *testing.T) {
		url, err := repo.GetConfig("remote.origin.url")
		require.NoError(t, err)
		require.Equal(t, scene.Remote.Dir, url)

		require.True(t, report.Pushes[1].OK(), report.Pushes[1].Output)
		require.Equal(t, "dev", report.Pushes[1].Branch)
		testhelpers.ExpectRemoteBranch(t, scene.Remote, "dev", report.Commit.String())
	})
}

func TestRunRecordsAuthor(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	materialize(t, scene.Dir, "a.txt")

	var log bytes.Buffer
	report, err := newBootstrapper(scene, scene.Remote.Dir, &log, nil).Run(context.Background())
	require.NoError(t, err)

	repo := scene.Repo()
	count, err := repo.GetCommitCount("dev")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	for placeholder, want := range map[string]string{
		"%an": "Jane Doe",
		"%ae": "jane@example.com",
		"%s":  bootstrap.CommitMessage,
		"%H":  report.Commit.String(),
	} {
		got, err := repo.GetCommitField("dev", placeholder)
		require.NoError(t, err)
		require.Equal(t, want, got, placeholder)
	}
}

func TestRunOverExistingRepository(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.PreexistingRepoSetup(s); err != nil {
			return err
		}
		repo := s.Repo()
		for _, name := range []string{"stage", "feature", "topic"} {
			if err := repo.CreateBranch(name); err != nil {
				return err
			}
		}
		return repo.AddRemote("origin", s.Remote.Dir)
	})
	materialize(t, scene.Dir, "src/main.py")

	var log bytes.Buffer
	report, err := newBootstrapper(scene, scene.Remote.Dir, &log, nil).Run(context.Background())
	require.NoError(t, err)
	require.False(t, report.Created)
	require.Empty(t, report.PushFailures())

	repo := scene.Repo()
	testhelpers.ExpectBranches(t, repo, []string{"dev"})
	testhelpers.ExpectCurrentBranch(t, repo, "dev")

	count, err := repo.GetCommitCount("dev")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	upstream, err := repo.GetConfig("branch.dev.remote")
	require.NoError(t, err)
	require.Equal(t, "origin", upstream)

	testhelpers.ExpectRemoteBranch(t, scene.Remote, "dev", report.Commit.String())
}

func TestRunWithEveryStandardBranchPresent(t *testing.T) {
	var staleDev string
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.PreexistingRepoSetup(s); err != nil {
			return err
		}
		repo := s.Repo()
		if err := repo.RunGitCommand("checkout", "-b", "dev"); err != nil {
			return err
		}
		if err := repo.CreateChangeAndCommit("work on dev", "dev"); err != nil {
			return err
		}
		sha, err := repo.GetRevision("dev")
		if err != nil {
			return err
		}
		staleDev = sha
		for _, name := range []string{"stage", "feature"} {
			if err := repo.RunGitCommand("branch", name, "main"); err != nil {
				return err
			}
		}
		return repo.RunGitCommand("checkout", "-b", "production", "main")
	})
	testhelpers.ExpectCurrentBranch(t, scene.Repo(), "production")
	materialize(t, scene.Dir, "src/main.py")

	var log bytes.Buffer
	report, err := newBootstrapper(scene, scene.Remote.Dir, &log, nil).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, bootstrap.StageAllPushed, report.Stage)

	repo := scene.Repo()
	testhelpers.ExpectBranches(t, repo, []string{"dev"})
	testhelpers.ExpectCurrentBranch(t, repo, "dev")

	sha, err := repo.GetRevision("dev")
	require.NoError(t, err)
	require.Equal(t, report.Commit.String(), sha)
	require.NotEqual(t, staleDev, sha)

	// the new commit sits on production's tip, not on the old dev history
	parent, err := repo.GetRevision("dev~1")
	require.NoError(t, err)
	mainTip, err := repo.GetRevision(staleDev + "~1")
	require.NoError(t, err)
	require.Equal(t, mainTip, parent)

	files, err := repo.ListTrackedFiles("dev")
	require.NoError(t, err)
	require.Equal(t, []string{"existing_test.txt", "src/main.py"}, files)
}

func TestRunIsRepeatable(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	materialize(t, scene.Dir, "a.txt")

	var log bytes.Buffer
	first, err := newBootstrapper(scene, scene.Remote.Dir, &log, nil).Run(context.Background())
	require.NoError(t, err)

	second, err := newBootstrapper(scene, scene.Remote.Dir, &log, nil).Run(context.Background())
	require.NoError(t, err)
	require.False(t, second.Created)
	require.NotEqual(t, first.Commit, second.Commit)
	require.Empty(t, second.PushFailures())

	testhelpers.ExpectBranches(t, scene.Repo(), []string{"dev"})
	testhelpers.ExpectRemoteBranch(t, scene.Remote, "dev", second.Commit.String())
}

func TestRunUnreachableRemote(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	materialize(t, scene.Dir, "a.txt")
	diagnoser := &recordingDiagnoser{hint: "acme/widgets was not found"}

	var log bytes.Buffer
	report, err := newBootstrapper(scene, scene.MissingRemoteURL(), &log, diagnoser).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, bootstrap.StageAllPushed, report.Stage)
	require.Len(t, report.PushFailures(), 2)

	// origin does not exist during the first push, so only the second is diagnosed
	require.Equal(t, []string{scene.MissingRemoteURL()}, diagnoser.urls)
	require.Contains(t, log.String(), "acme/widgets was not found")

	testhelpers.ExpectBranches(t, scene.Repo(), []string{"dev"})
}

func TestRunFatalStages(t *testing.T) {
	t.Run("empty remote URL stops at remote configuration", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		materialize(t, scene.Dir, "a.txt")

		var log bytes.Buffer
		report, err := newBootstrapper(scene, "", &log, nil).Run(context.Background())
		require.Error(t, err)

		var stageErr *seederrors.StageError
		require.True(t, errors.As(err, &stageErr))
		require.Equal(t, "configure remote", stageErr.Stage)
		require.Equal(t, bootstrap.StageDevPushed, report.Stage)
		require.False(t, report.Stage.Done())
	})

	t.Run("corrupt repository stops at initialization", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, os.MkdirAll(scene.Dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(scene.Dir, ".git"), []byte("garbage"), 0o600))

		var log bytes.Buffer
		report, err := newBootstrapper(scene, scene.Remote.Dir, &log, nil).Run(context.Background())
		require.Error(t, err)
		require.Contains(t, err.Error(), "initialize repository failed")
		require.Equal(t, bootstrap.StageUninitialized, report.Stage)
		require.Empty(t, report.Pushes)
	})
}

func TestStage(t *testing.T) {
	require.Equal(t, "uninitialized", bootstrap.StageUninitialized.String())
	require.Equal(t, "branches normalized", bootstrap.StageBranchesNormalized.String())
	require.Equal(t, "all pushed", bootstrap.StageAllPushed.String())
	require.Equal(t, "unknown", bootstrap.Stage(42).String())

	require.Equal(t, "push dev", bootstrap.StageDevPushed.Step())
	require.Equal(t, "unknown", bootstrap.StageUninitialized.Step())
}
