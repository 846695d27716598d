package data

import (
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// ConfigEventType 事件图的触发阶段。
type ConfigEventType string

const (
	EventTypeOnStart ConfigEventType = "OnStart"
	EventTypeOnEnd   ConfigEventType = "OnEnd"
	EventTypeOnBro   ConfigEventType = "OnBro"
	EventTypeOnSis   ConfigEventType = "OnSis"
)

// ConfigEventGraph 一张事件图：按触发阶段组织的动作序列。
type ConfigEventGraph struct {
	ID     int32                           `json:"ID"`
	Events map[ConfigEventType]ConfigEvent `json:"Events"`
}

// ConfigEvent 单个触发阶段下的动作列表。
type ConfigEvent struct {
	Actions []ConfigAction `json:"Actions"`
}

// ConfigValue 配置值既可能是整数常量也可能是表达式串。
// 目前服务端只消费常量，表达式原样保留。
type ConfigValue struct {
	Constant   int32
	Expression string
}

func (v *ConfigValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		// 字符串形式的纯数字仍按常量处理
		if n, err := strconv.ParseInt(s, 10, 32); err == nil {
			v.Constant = int32(n)
			return nil
		}
		v.Expression = s
		return nil
	}
	var n int32
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v.Constant = n
	return nil
}

// ConfigAction 事件图动作，按 $type 判别。
type ConfigAction interface {
	isConfigAction()
}

// ActionEmpty 占位动作。
type ActionEmpty struct{}

// ActionSetMapState 修改棋盘格子的事件与可见状态。
type ActionSetMapState struct {
	X                ConfigValue
	Y                ConfigValue
	Type             []protocol.HollowEventType
	FromVisibleState []protocol.NodeVisible
	ToVisibleState   []protocol.NodeVisible
	FromState        []protocol.NodeState
	ToState          []protocol.NodeState
	IndexList        []ConfigValue
	UsePerform       bool
}

// ActionTriggerBattle 触发战斗。
type ActionTriggerBattle struct {
	BattleID       ConfigValue
	OnSuccess      string
	OnFailure      string
	EndHollow      bool
	GotoNextHollow bool
}

// ActionFinishHollow 结束当前空洞。
type ActionFinishHollow struct{}

// ActionUnknown 未识别的动作类型，保留原始类型名便于排查。
type ActionUnknown struct {
	Type string
}

func (ActionEmpty) isConfigAction()         {}
func (ActionSetMapState) isConfigAction()   {}
func (ActionTriggerBattle) isConfigAction() {}
func (ActionFinishHollow) isConfigAction()  {}
func (ActionUnknown) isConfigAction()       {}

func (e *ConfigEvent) UnmarshalJSON(data []byte) error {
	var raw struct {
		Actions []json.RawMessage `json:"Actions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Actions = make([]ConfigAction, 0, len(raw.Actions))
	for _, msg := range raw.Actions {
		action, err := decodeAction(msg)
		if err != nil {
			return err
		}
		e.Actions = append(e.Actions, action)
	}
	return nil
}

func decodeAction(msg json.RawMessage) (ConfigAction, error) {
	var head struct {
		Type string `json:"$type"`
	}
	if err := json.Unmarshal(msg, &head); err != nil {
		return nil, errors.Wrap(err, "action type")
	}

	switch head.Type {
	case "Share.CConfigEmpty":
		return ActionEmpty{}, nil
	case "Share.CConfigSetMapState":
		var raw struct {
			X                ConfigValue                `json:"X"`
			Y                ConfigValue                `json:"Y"`
			Type             []protocol.HollowEventType `json:"Type"`
			FromVisibleState []protocol.NodeVisible     `json:"FromVisibleState"`
			ToVisibleState   []protocol.NodeVisible     `json:"ToVisibleState"`
			FromState        []protocol.NodeState       `json:"FromState"`
			ToState          []protocol.NodeState       `json:"ToState"`
			IndexList        []ConfigValue              `json:"IndexList"`
			UsePerform       bool                       `json:"UsePerform"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, errors.Wrap(err, "set map state")
		}
		return ActionSetMapState(raw), nil
	case "Share.CConfigTriggerBattle":
		var raw struct {
			BattleID       ConfigValue `json:"BattleID"`
			OnSuccess      string      `json:"OnSuccess"`
			OnFailure      string      `json:"OnFailure"`
			EndHollow      bool        `json:"EndHollow"`
			GotoNextHollow bool        `json:"GotoNextHollow"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, errors.Wrap(err, "trigger battle")
		}
		return ActionTriggerBattle(raw), nil
	case "Share.CConfigFinishHollow":
		return ActionFinishHollow{}, nil
	default:
		return ActionUnknown{Type: head.Type}, nil
	}
}
