package tray

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveActivationQuit(t *testing.T) {
	assert.Equal(t, Terminate{}, ResolveActivation(QuitToken))
}

func TestResolveActivationIgnoresLabels(t *testing.T) {
	assert.Equal(t, Ignored{Token: "label-project-p1"}, ResolveActivation("label-project-p1"))
	assert.Equal(t, Ignored{Token: ""}, ResolveActivation(""))
}

func TestResolveActivationApply(t *testing.T) {
	token, err := EncodeAction("p1", `C:\proj\a-b\.env`, "g1")
	require.NoError(t, err)

	got := ResolveActivation(token)
	assert.Equal(t, ApplyConfiguration{ProjectID: "p1", EnvFilePath: `C:\proj\a-b\.env`, GroupID: "g1"}, got)
}

func TestResolveActivationFailure(t *testing.T) {
	got := ResolveActivation("tray-config:p1")

	failed, ok := got.(ResolutionFailed)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, "tray-config:p1", failed.Token)
	assert.ErrorIs(t, failed.Err, ErrMalformedToken)
}

func TestResolveActivationEveryBuiltNode(t *testing.T) {
	menu, err := BuildMenu([]Project{demoProject()})
	require.NoError(t, err)

	var applied, terminated, ignored int
	for _, n := range menu.Nodes {
		switch ResolveActivation(n.Token).(type) {
		case ApplyConfiguration:
			applied++
		case Terminate:
			terminated++
		case Ignored:
			ignored++
		case ResolutionFailed:
			t.Fatalf("node %+v failed to resolve", n)
		}
	}
	assert.Equal(t, 1, applied)
	assert.Equal(t, 1, terminated)
	assert.Equal(t, 4, ignored)
}

func TestApplyEventJSON(t *testing.T) {
	event := ApplyConfiguration{ProjectID: "p1", EnvFilePath: "/proj/.env", GroupID: "g1"}.Event()

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{"project_id":"p1","env_file_path":"/proj/.env","group_id":"g1"}`, string(data))
}
