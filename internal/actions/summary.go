package actions

import (
	"seedrepo.dev/seedrepo/internal/bootstrap"
	"seedrepo.dev/seedrepo/internal/runtime"
	"seedrepo.dev/seedrepo/internal/tui/style"
)

func printSummary(ctx *runtime.Context, target string, files, dirs int, report *bootstrap.Report) {
	ctx.Splog.Newline()
	ctx.Splog.Info("%s %d files and %d directories in %s", style.ColorGreen("Created"), files, dirs, target)
	ctx.Splog.Info("Committed %s on %s", style.ColorDim(report.Commit.String()[:7]), style.ColorDir(bootstrap.DevBranch))

	for _, push := range report.Pushes {
		if push.OK() {
			ctx.Splog.Info("%s %s", style.ColorGreen("✓"), push)
		} else {
			ctx.Splog.Info("%s %s", style.ColorRed("✗"), push)
		}
	}

	if len(report.PushFailures()) == len(report.Pushes) {
		ctx.Splog.Warn("Nothing was pushed. The repository is ready locally; push it with 'git push --set-upstream %s %s'.", bootstrap.RemoteName, bootstrap.DevBranch)
	}
}
