package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/babblewitz/internal/core/domain"
)

func TestParseGame(t *testing.T) {
	g, err := domain.ParseGame("Stellaris")
	require.NoError(t, err)
	assert.Equal(t, domain.GameStellaris, g)

	_, err = domain.ParseGame("civ6")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unrecognized game")
}

func TestSortGames(t *testing.T) {
	got := domain.SortGames([]domain.Game{domain.GameVic3, domain.GameCK3, domain.GameVic3, domain.GameEU4})
	assert.Equal(t, []domain.Game{domain.GameCK3, domain.GameEU4, domain.GameVic3}, got)
}

func TestParseTaskName(t *testing.T) {
	task, err := domain.ParseTaskName("my-custom-task")
	require.NoError(t, err)
	assert.Equal(t, domain.KindConformance, task.Kind())

	assert.Equal(t, domain.KindPerformance, domain.TaskDeserialization.Kind())
	assert.Equal(t, domain.KindConformance, domain.TaskCanParse.Kind())

	_, err = domain.ParseTaskName("")
	assert.Error(t, err)
	_, err = domain.ParseTaskName("two words")
	assert.Error(t, err)
}

func TestProjectType_CommandsFor(t *testing.T) {
	tests := []struct {
		project domain.ProjectType
		goos    string
		want    domain.CommandSet
	}{
		{domain.ProjectRust, "linux", domain.CommandSet{Build: "cargo build --release", Run: "cargo run --release --quiet --"}},
		{domain.ProjectGradle, "linux", domain.CommandSet{Build: "./gradlew build", Run: "./gradlew run"}},
		{domain.ProjectGradle, "windows", domain.CommandSet{Build: "gradlew.bat build", Run: "gradlew.bat run"}},
		{domain.ProjectNodejs, "darwin", domain.CommandSet{Build: "npm install", Run: "node main.js"}},
		{domain.ProjectGo, "linux", domain.CommandSet{Build: "go build", Run: "go run"}},
		{domain.ProjectMake, "linux", domain.CommandSet{Build: "make", Run: "make run"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.project)+"/"+tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.project.CommandsFor(tt.goos))
		})
	}
}

func TestParseProjectType(t *testing.T) {
	p, err := domain.ParseProjectType("Rust")
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectRust, p)

	_, err = domain.ParseProjectType("cobol")
	assert.ErrorContains(t, err, "unrecognized project type")
}

func TestImplementation_Commands(t *testing.T) {
	impl := &domain.Implementation{
		Name:        "jomini",
		ProjectType: domain.ProjectRust,
		RunOverride: "./target/release/jomini",
		Tasks: map[domain.TaskName][]domain.Game{
			domain.TaskCanParse:        {domain.GameEU4, domain.GameCK3},
			domain.TaskDeserialization: {domain.GameEU4},
		},
	}

	cmds := impl.Commands()
	assert.Equal(t, "cargo build --release", cmds.Build)
	assert.Equal(t, "./target/release/jomini", cmds.Run)

	assert.True(t, impl.SupportsTask(domain.TaskCanParse))
	assert.False(t, impl.SupportsTask("custom"))
	assert.Equal(t, []domain.Game{domain.GameEU4, domain.GameCK3}, impl.GamesFor(domain.TaskCanParse))
	assert.Equal(t, []domain.TaskName{domain.TaskCanParse, domain.TaskDeserialization}, impl.TaskNames())
}

func TestInvocation_ProtocolArgs(t *testing.T) {
	inv := domain.Invocation{
		Task:  domain.TaskCanParse,
		Games: []domain.Game{domain.GameVic3, domain.GameEU4, domain.GameCK3},
	}
	assert.Equal(t,
		[]string{"--task", "can-parse", "--game", "vic3", "--game", "eu4", "--game", "ck3"},
		inv.ProtocolArgs(),
	)

	assert.Equal(t, []string{"--task", "can-parse"}, domain.Invocation{Task: domain.TaskCanParse}.ProtocolArgs())
}

func TestOutcome_Describe(t *testing.T) {
	assert.Equal(t, "crashed (exit 137)", domain.Outcome{Status: domain.StatusCrashed, ExitCode: 137}.Describe())
	assert.Equal(t, "malformed-output: bad line", domain.Outcome{Status: domain.StatusMalformedOutput, Detail: "bad line"}.Describe())
	assert.Equal(t, "build-failed-upstream", domain.Outcome{Status: domain.StatusBuildFailed}.Describe())
}
