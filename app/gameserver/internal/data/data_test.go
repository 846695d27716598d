package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/hollowzero/pkg/logger"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func writeAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	tplDir := filepath.Join(dir, "TemplateCollections")
	binDir := filepath.Join(dir, "BinOutput")
	require.NoError(t, os.MkdirAll(tplDir, 0o755))
	require.NoError(t, os.MkdirAll(binDir, 0o755))

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(tplDir, name), []byte(content), 0o644))
	}

	write("AvatarConfigTemplateCollection.tsv",
		"ID\tCodeName\tCamp\tHP\tTags\n"+
			"2021\tAnby\t1\t833\ttag_a,tag_b\n"+
			"2011\tBilly\t0\t775\t\n")
	write("UnlockConfigTemplateCollection.tsv",
		"ID\tLockType\tName\n"+
			"12\t0\tMenu\n")
	write("MainCityObjectTemplateCollection.tsv",
		"TagID\tNPCID\tCreatePosition\tCreateType\tDefaultInteractIDs\tInteractName\tInteractShape\tInteractScale\n"+
			"5\t105\tTransformA\t0\t11,12\tCoffee\t2\t1,1,1,0.5,0.5\n"+
			"6\t106\tTransformB_Test\t0\t13\tGhost\t1\t1,1,1,1,1\n")
	write("NPCTransformTemplateCollection.tsv",
		"ID\tSection\n"+
			"TransformA\t2\n"+
			"TransformB_Test\t2\n")

	eventGraphs := `{
		"1000101": {
			"Events": {
				"OnStart": {
					"Actions": [
						{"$type": "Share.CConfigSetMapState", "X": 3, "Y": "5", "ToState": [0], "UsePerform": true},
						{"$type": "Share.CConfigEmpty"}
					]
				},
				"OnEnd": {
					"Actions": [
						{"$type": "Share.CConfigTriggerBattle", "BattleID": 10101001, "EndHollow": true},
						{"$type": "Share.CConfigSomethingNew"}
					]
				}
			}
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "EventGraphCollection.json"), []byte(eventGraphs), 0o644))

	return dir
}

func TestLoadTables(t *testing.T) {
	tables, err := Load(writeAssets(t), logger.NewNoop())
	require.NoError(t, err)

	require.Len(t, tables.AvatarConfigs, 2)
	anby := tables.AvatarConfigs[0]
	assert.Equal(t, int32(2021), anby.ID)
	assert.Equal(t, int32(1), anby.Camp)
	assert.Equal(t, int32(833), anby.HP)
	assert.Equal(t, []string{"tag_a", "tag_b"}, anby.Tags)

	cfg, ok := tables.GetAvatarConfig(2011)
	require.True(t, ok)
	assert.Equal(t, "Billy", cfg.CodeName)

	_, ok = tables.GetAvatarConfig(9999)
	assert.False(t, ok)
}

func TestMainCityObjectLookup(t *testing.T) {
	tables, err := Load(writeAssets(t), logger.NewNoop())
	require.NoError(t, err)

	obj, ok := tables.GetMainCityObject(5, 105)
	require.True(t, ok)
	assert.Equal(t, []int32{11, 12}, obj.DefaultInteractIDs)
	assert.Equal(t, []float64{1, 1, 1, 0.5, 0.5}, obj.InteractScale)

	assert.True(t, tables.IsTransformInSection("TransformA", 2))
	assert.False(t, tables.IsTransformInSection("TransformA", 3))
	assert.False(t, tables.IsTransformInSection("Missing", 2))

	assert.True(t, IsTestPosition("TransformB_Test"))
	assert.False(t, IsTestPosition("TransformA"))
}

func TestEventGraphDecoding(t *testing.T) {
	tables, err := Load(writeAssets(t), logger.NewNoop())
	require.NoError(t, err)

	graph, ok := tables.GetEventGraph(1000101)
	require.True(t, ok)
	assert.Equal(t, int32(1000101), graph.ID)

	start := graph.Events[EventTypeOnStart]
	require.Len(t, start.Actions, 2)

	setState, ok := start.Actions[0].(ActionSetMapState)
	require.True(t, ok)
	assert.Equal(t, int32(3), setState.X.Constant)
	assert.Equal(t, int32(5), setState.Y.Constant)
	assert.Equal(t, []protocol.NodeState{protocol.NodeStateAll}, setState.ToState)
	assert.True(t, setState.UsePerform)

	end := graph.Events[EventTypeOnEnd]
	require.Len(t, end.Actions, 2)

	battle, ok := end.Actions[0].(ActionTriggerBattle)
	require.True(t, ok)
	assert.Equal(t, int32(10101001), battle.BattleID.Constant)
	assert.True(t, battle.EndHollow)

	unknown, ok := end.Actions[1].(ActionUnknown)
	require.True(t, ok)
	assert.Equal(t, "Share.CConfigSomethingNew", unknown.Type)
}

func TestLoadMissingAssets(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), logger.NewNoop())
	assert.Error(t, err)
}
