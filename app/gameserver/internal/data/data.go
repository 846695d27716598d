// 模板资产加载。启动时从 assets/ 全量读入内存，运行期只读。
package data

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/pkg/logger"
)

// Tables 全部模板数据
type Tables struct {
	AvatarConfigs   []AvatarConfigTemplate
	UnlockConfigs   []UnlockConfigTemplate
	MainCityObjects []MainCityObjectTemplate
	NPCTransforms   []NPCTransformTemplate

	EventGraphs map[int32]*ConfigEventGraph
}

// Load 加载 assets 目录下的全部模板表。
func Load(assetsDir string, log logger.Logger) (*Tables, error) {
	if _, err := os.Stat(assetsDir); err != nil {
		return nil, errors.Wrapf(err, "assets directory %s not found, make sure it sits next to the executable", assetsDir)
	}

	t := &Tables{}

	if err := loadTemplate(assetsDir, "AvatarConfig", &t.AvatarConfigs); err != nil {
		return nil, err
	}
	if err := loadTemplate(assetsDir, "UnlockConfig", &t.UnlockConfigs); err != nil {
		return nil, err
	}
	if err := loadTemplate(assetsDir, "MainCityObject", &t.MainCityObjects); err != nil {
		return nil, err
	}
	if err := loadTemplate(assetsDir, "NPCTransform", &t.NPCTransforms); err != nil {
		return nil, err
	}

	if err := t.loadEventGraphs(assetsDir); err != nil {
		return nil, err
	}

	log.Info("assets loaded",
		"avatars", len(t.AvatarConfigs),
		"unlocks", len(t.UnlockConfigs),
		"main_city_objects", len(t.MainCityObjects),
		"event_graphs", len(t.EventGraphs))

	return t, nil
}

func loadTemplate[T any](assetsDir, name string, out *[]T) error {
	path := filepath.Join(assetsDir, "TemplateCollections", name+"TemplateCollection.tsv")
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read template %s", name)
	}
	if err := decodeTSV(string(raw), out); err != nil {
		return errors.Wrapf(err, "decode template %s", name)
	}
	return nil
}

func (t *Tables) loadEventGraphs(assetsDir string) error {
	path := filepath.Join(assetsDir, "BinOutput", "EventGraphCollection.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read event graph collection")
	}

	var graphs map[string]*ConfigEventGraph
	if err := json.Unmarshal(raw, &graphs); err != nil {
		return errors.Wrap(err, "decode event graph collection")
	}

	// 集合以图 ID 为键；个别条目正文缺省 ID 字段，以键为准。
	t.EventGraphs = make(map[int32]*ConfigEventGraph, len(graphs))
	for key, g := range graphs {
		id, err := strconv.ParseInt(key, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "event graph key %q", key)
		}
		g.ID = int32(id)
		t.EventGraphs[g.ID] = g
	}
	return nil
}

// GetMainCityObject 按 tag 与 npc 查找主城交互物。
func (t *Tables) GetMainCityObject(tagID, npcID int32) (*MainCityObjectTemplate, bool) {
	for i := range t.MainCityObjects {
		o := &t.MainCityObjects[i]
		if o.TagID == tagID && o.NPCID == npcID {
			return o, true
		}
	}
	return nil, false
}

// GetAvatarConfig 按角色 ID 查找角色模板。
func (t *Tables) GetAvatarConfig(id int32) (*AvatarConfigTemplate, bool) {
	for i := range t.AvatarConfigs {
		if t.AvatarConfigs[i].ID == id {
			return &t.AvatarConfigs[i], true
		}
	}
	return nil, false
}

// IsTransformInSection 站位点是否属于给定主城分区。
func (t *Tables) IsTransformInSection(transformID string, sectionID int32) bool {
	for i := range t.NPCTransforms {
		if t.NPCTransforms[i].ID == transformID {
			return t.NPCTransforms[i].Section == sectionID
		}
	}
	return false
}

// GetEventGraph 按配置 ID 查找事件图。
func (t *Tables) GetEventGraph(id int32) (*ConfigEventGraph, bool) {
	g, ok := t.EventGraphs[id]
	return g, ok
}

// IsTestPosition 导表遗留的测试站位，不应出现在正式场景。
func IsTestPosition(createPosition string) bool {
	return strings.HasSuffix(createPosition, "_Test")
}
