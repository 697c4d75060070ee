package bootstrap

// Stage is the furthest point the bootstrap sequence has reached
type Stage int

const (
	StageUninitialized Stage = iota
	StageInitialized
	StageCommitted
	StageBranchesNormalized
	StageDevCheckedOut
	StagePruned
	StageDevPushed
	StageRemoteConfigured
	StageAllPushed
)

var stageNames = [...]string{
	StageUninitialized:      "uninitialized",
	StageInitialized:        "initialized",
	StageCommitted:          "committed",
	StageBranchesNormalized: "branches normalized",
	StageDevCheckedOut:      "dev checked out",
	StagePruned:             "pruned",
	StageDevPushed:          "dev pushed",
	StageRemoteConfigured:   "remote configured",
	StageAllPushed:          "all pushed",
}

// step names the action that moves the sequence into a stage
var stepNames = [...]string{
	StageInitialized:        "initialize repository",
	StageCommitted:          "commit",
	StageBranchesNormalized: "create branches",
	StageDevCheckedOut:      "checkout dev",
	StagePruned:             "prune branches",
	StageDevPushed:          "push dev",
	StageRemoteConfigured:   "configure remote",
	StageAllPushed:          "push branches",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Step returns the name of the action that reaches s
func (s Stage) Step() string {
	if s <= StageUninitialized || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// Done reports whether the sequence ran to the end
func (s Stage) Done() bool {
	return s == StageAllPushed
}
